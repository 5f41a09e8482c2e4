// Package slideshow implements the question slideshow state machine:
// navigation between panels, answer evaluation, solution reveal and
// language selection. Rendering is left to the caller, which reads a View
// snapshot after each command.
package slideshow

import (
	"errors"

	"github.com/aliskhannn/jagd-quiz-bot/internal/domain/entities"
)

var (
	ErrNoPanels        = errors.New("slideshow has no panels")
	ErrUnknownLanguage = errors.New("unknown language")
)

// Options configures a Controller.
type Options struct {
	Languages []string   // selectable languages, the first one is the default
	Language  string     // initially active language, defaults to Languages[0]
	Observer  func(View) // called at the end of every command while the busy guard is still set
}

// Controller owns the state of one slideshow session. Commands report
// whether they changed anything; invalid commands are silent no-ops.
// A Controller is not safe for concurrent use.
type Controller struct {
	panels   []*entities.Panel
	current  int
	busy     bool
	scroll   bool
	score    entities.Score
	controls Controls
	jump     jumpField
	firstNr  int
	lastNr   int

	languages []string
	language  string
	observer  func(View)
}

// New creates a controller showing the first panel. Every selection,
// mark, verdict and solution of panels is reset, so a controller always
// starts a clean session.
func New(panels []*entities.Panel, opts Options) (*Controller, error) {
	if len(panels) == 0 {
		return nil, ErrNoPanels
	}

	c := &Controller{
		panels:    panels,
		languages: opts.Languages,
		observer:  opts.Observer,
	}

	first := true
	for _, p := range panels {
		p.Visibility = entities.Hidden
		if mc := p.MultipleChoice; mc != nil {
			mc.Reset()
			c.score.Total++
		}
		if viz := p.Visualization; viz != nil && viz.Solution != nil {
			viz.Solution.Visibility = entities.Hidden
		}
		if p.IsSummary() {
			continue
		}
		if first {
			c.firstNr = p.Number
			first = false
		}
		c.lastNr = p.Number
	}

	switch {
	case opts.Language != "":
		if !c.knownLanguage(opts.Language) {
			return nil, ErrUnknownLanguage
		}
		c.language = opts.Language
	case len(opts.Languages) > 0:
		c.language = opts.Languages[0]
	}

	c.controls.Previous.Visibility = entities.Visible
	c.controls.Next.Visibility = entities.Visible
	c.show(0)

	return c, nil
}

// begin sets the busy guard. It reports false when a command is already
// in progress.
func (c *Controller) begin() bool {
	if c.busy {
		return false
	}
	c.busy = true
	c.scroll = false
	return true
}

// end notifies the observer and releases the busy guard.
func (c *Controller) end() {
	if c.observer != nil {
		c.observer(c.View())
	}
	c.busy = false
}

// Busy reports whether a command is in progress.
func (c *Controller) Busy() bool {
	return c.busy
}

// Current returns the visible panel.
func (c *Controller) Current() *entities.Panel {
	return c.panels[c.current]
}

// Score returns the aggregate score.
func (c *Controller) Score() entities.Score {
	return c.score
}

// View returns a render snapshot.
func (c *Controller) View() View {
	return View{
		Panel:            c.panels[c.current],
		Position:         c.current,
		Count:            len(c.panels),
		FirstNr:          c.firstNr,
		LastNr:           c.lastNr,
		Controls:         c.controls,
		Jump:             c.jump.snapshot(),
		Score:            c.score,
		Language:         c.language,
		Languages:        c.languages,
		ScrollToSolution: c.scroll,
	}
}

// Previous shows the preceding panel.
func (c *Controller) Previous() bool {
	if c.busy || !c.controls.Previous.Enabled {
		return false
	}
	c.begin()
	defer c.end()

	if c.current == 0 {
		c.controls.Previous.Enabled = false
		return false
	}
	c.show(c.current - 1)
	return true
}

// Next shows the following panel.
func (c *Controller) Next() bool {
	if c.busy || !c.controls.Next.Enabled {
		return false
	}
	c.begin()
	defer c.end()

	if c.current == len(c.panels)-1 {
		c.controls.Next.Enabled = false
		return false
	}
	c.show(c.current + 1)
	return true
}

// GoTo shows the question panel with ordinal nr. It reports false when no
// such question exists.
func (c *Controller) GoTo(nr int) bool {
	if !c.begin() {
		return false
	}
	defer c.end()

	idx, ok := c.indexOf(nr)
	if !ok {
		return false
	}
	c.show(idx)
	return true
}

func (c *Controller) indexOf(nr int) (int, bool) {
	for i, p := range c.panels {
		if !p.IsSummary() && p.Number == nr {
			return i, true
		}
	}
	return 0, false
}

// show makes the panel at idx the sole visible panel and recomputes the
// controls for it.
func (c *Controller) show(idx int) {
	leaving := c.panels[c.current]
	leaving.Visibility = entities.Hidden
	if sol := solutionOf(leaving); sol != nil && sol.Visibility == entities.Visible {
		sol.Visibility = entities.Hidden
		c.controls.HideSolution = entities.Hidden
		c.controls.ShowSolution = entities.Visible
	}

	p := c.panels[idx]
	p.Visibility = entities.Visible
	c.current = idx

	c.controls.Previous.Enabled = idx > 0
	c.controls.Next.Enabled = idx < len(c.panels)-1

	if p.IsSummary() {
		c.controls.Evaluation = entities.Hidden
		c.controls.ShowSolution = entities.Hidden
		c.controls.HideSolution = entities.Hidden
		c.controls.Counter = entities.Hidden
		c.jump.set(c.lastNr)
		return
	}
	c.jump.set(p.Number)

	if mc := p.MultipleChoice; mc != nil {
		c.controls.ShowSolution = entities.Hidden
		c.controls.HideSolution = entities.Hidden
		c.controls.Evaluation = entities.Visible

		if !mc.Evaluated() {
			c.controls.Correct = entities.Hidden
			c.controls.Wrong = entities.Hidden
			c.controls.Counter = entities.Hidden
			c.controls.Submit.Visibility = entities.Visible
			c.updateSubmitEnablement()
			return
		}

		c.controls.Submit.Visibility = entities.Hidden
		c.showVerdict(mc.Verdict)
		c.controls.Counter = entities.Visible
		return
	}

	c.controls.Evaluation = entities.Hidden
	c.controls.Counter = entities.Hidden
	c.controls.HideSolution = entities.Hidden
	c.controls.ShowSolution = entities.Hidden
	if solutionOf(p) != nil {
		c.controls.ShowSolution = entities.Visible
	}
}

func (c *Controller) showVerdict(v entities.Verdict) {
	c.controls.Correct = entities.Hidden
	c.controls.Wrong = entities.Hidden
	switch v {
	case entities.VerdictCorrect:
		c.controls.Correct = entities.Visible
	case entities.VerdictWrong:
		c.controls.Wrong = entities.Visible
	}
}

func solutionOf(p *entities.Panel) *entities.Solution {
	if p.Visualization == nil {
		return nil
	}
	return p.Visualization.Solution
}
