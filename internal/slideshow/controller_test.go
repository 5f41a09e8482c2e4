package slideshow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/jagd-quiz-bot/internal/domain/entities"
)

func helperChoice(nr int, input entities.InputKind, options int, correct ...int) *entities.Panel {
	mc := &entities.MultipleChoice{Input: input}
	for i := 1; i <= options; i++ {
		o := &entities.Option{Text: entities.Text{"de": "Antwort", "en": "Answer"}}
		for _, c := range correct {
			if c == i {
				o.Correct = true
			}
		}
		mc.Options = append(mc.Options, o)
	}
	return &entities.Panel{
		Kind:           entities.PanelQuestion,
		Number:         nr,
		Text:           entities.Text{"de": "Frage", "en": "Question"},
		MultipleChoice: mc,
	}
}

func helperVisualization(nr int, withSolution bool) *entities.Panel {
	viz := &entities.Visualization{}
	if withSolution {
		viz.Solution = &entities.Solution{Text: entities.Text{"de": "Lösung"}}
	}
	return &entities.Panel{
		Kind:          entities.PanelQuestion,
		Number:        nr,
		Visualization: viz,
	}
}

// helperController builds: 1 checkbox {2,4}, 2 radio {1}, 3 visualization, summary.
func helperController(t *testing.T) *Controller {
	t.Helper()

	panels := []*entities.Panel{
		helperChoice(1, entities.InputCheckbox, 4, 2, 4),
		helperChoice(2, entities.InputRadio, 3, 1),
		helperVisualization(3, true),
		entities.NewSummaryPanel(),
	}

	c, err := New(panels, Options{Languages: []string{"de", "en"}})
	require.NoError(t, err)
	return c
}

func helperVisibleCount(c *Controller) int {
	n := 0
	for _, p := range c.panels {
		if p.Visibility == entities.Visible {
			n++
		}
	}
	return n
}

func helperAssertNavigation(t *testing.T, c *Controller) {
	t.Helper()

	require.Equal(t, 1, helperVisibleCount(c), "exactly one panel must be visible")
	assert.Equal(t, c.current > 0, c.controls.Previous.Enabled, "previous enablement")
	assert.Equal(t, c.current < len(c.panels)-1, c.controls.Next.Enabled, "next enablement")
}

func TestNew_RejectsEmptyPanels(t *testing.T) {
	_, err := New(nil, Options{})
	require.ErrorIs(t, err, ErrNoPanels)
}

func TestNew_RejectsUnknownLanguage(t *testing.T) {
	_, err := New([]*entities.Panel{entities.NewSummaryPanel()}, Options{Languages: []string{"de"}, Language: "fr"})
	require.ErrorIs(t, err, ErrUnknownLanguage)
}

func TestNew_StartsCleanSession(t *testing.T) {
	p := helperChoice(7, entities.InputCheckbox, 3, 1)
	p.MultipleChoice.Options[0].Selected = true
	p.MultipleChoice.Options[2].Selected = true
	p.MultipleChoice.Verdict = entities.VerdictWrong
	p.Visibility = entities.Visible
	summary := entities.NewSummaryPanel()
	summary.Visibility = entities.Visible

	c, err := New([]*entities.Panel{p, summary}, Options{})
	require.NoError(t, err)

	assert.False(t, p.MultipleChoice.HasSelection())
	assert.False(t, p.MultipleChoice.Evaluated())
	assert.Equal(t, entities.Hidden, summary.Visibility)
	assert.Equal(t, entities.Score{Total: 1}, c.Score())

	v := c.View()
	assert.Same(t, p, v.Panel)
	assert.Equal(t, 7, v.FirstNr)
	assert.Equal(t, 7, v.LastNr)
	assert.Equal(t, "7", v.Jump.Text)
	assert.False(t, v.Controls.Previous.Enabled)
	assert.True(t, v.Controls.Next.Enabled)
	assert.Equal(t, entities.Visible, v.Controls.Submit.Visibility)
	assert.False(t, v.Controls.Submit.Enabled)
}

func TestNavigation_EnablementReflectsNeighbours(t *testing.T) {
	c := helperController(t)
	helperAssertNavigation(t, c)

	for c.controls.Next.Enabled {
		require.True(t, c.Next())
		helperAssertNavigation(t, c)
	}
	assert.True(t, c.Current().IsSummary())
	assert.False(t, c.Next(), "next past the summary is a no-op")
	helperAssertNavigation(t, c)

	for c.controls.Previous.Enabled {
		require.True(t, c.Previous())
		helperAssertNavigation(t, c)
	}
	assert.Equal(t, 1, c.Current().Number)
	assert.False(t, c.Previous(), "previous before the first panel is a no-op")
	helperAssertNavigation(t, c)
}

func TestNavigation_SingleSummaryPanel(t *testing.T) {
	c, err := New([]*entities.Panel{entities.NewSummaryPanel()}, Options{})
	require.NoError(t, err)

	helperAssertNavigation(t, c)
	assert.False(t, c.Next())
	assert.False(t, c.Previous())
}

func TestNavigation_SummaryHidesEvaluationUI(t *testing.T) {
	c := helperController(t)
	require.True(t, c.SelectOption(2))
	require.True(t, c.Submit())

	require.True(t, c.GoTo(3))
	require.True(t, c.Next())

	v := c.View()
	require.True(t, v.Panel.IsSummary())
	assert.Equal(t, entities.Hidden, v.Controls.Evaluation)
	assert.Equal(t, entities.Hidden, v.Controls.ShowSolution)
	assert.Equal(t, entities.Hidden, v.Controls.Counter)
	assert.Equal(t, "3", v.Jump.Text)
}

func TestNavigation_VisualizationShowsOnlySolutionControl(t *testing.T) {
	c := helperController(t)
	require.True(t, c.GoTo(3))

	v := c.View()
	assert.Equal(t, entities.Hidden, v.Controls.Evaluation)
	assert.Equal(t, entities.Hidden, v.Controls.Counter)
	assert.Equal(t, entities.Visible, v.Controls.ShowSolution)
	assert.Equal(t, entities.Hidden, v.Controls.HideSolution)
}

func TestNavigation_VisualizationWithoutSolution(t *testing.T) {
	c, err := New([]*entities.Panel{helperVisualization(1, false), entities.NewSummaryPanel()}, Options{})
	require.NoError(t, err)

	assert.Equal(t, entities.Hidden, c.View().Controls.ShowSolution)
	assert.False(t, c.ShowSolution())
}

func TestNavigation_RevisitShowsVerdict(t *testing.T) {
	c := helperController(t)
	require.True(t, c.SelectOption(1))
	require.True(t, c.Submit())
	require.True(t, c.Next())

	v := c.View()
	assert.Equal(t, entities.Hidden, v.Controls.Wrong)
	assert.Equal(t, entities.Hidden, v.Controls.Counter)
	assert.Equal(t, entities.Visible, v.Controls.Submit.Visibility)

	require.True(t, c.Previous())
	v = c.View()
	assert.Equal(t, entities.Visible, v.Controls.Evaluation)
	assert.Equal(t, entities.Visible, v.Controls.Wrong)
	assert.Equal(t, entities.Hidden, v.Controls.Correct)
	assert.Equal(t, entities.Visible, v.Controls.Counter)
	assert.Equal(t, entities.Hidden, v.Controls.Submit.Visibility)
}

func TestNavigation_LeavingHidesSolution(t *testing.T) {
	c := helperController(t)
	require.True(t, c.GoTo(3))
	require.True(t, c.ShowSolution())

	sol := c.Current().Visualization.Solution
	require.Equal(t, entities.Visible, sol.Visibility)

	require.True(t, c.Previous())
	assert.Equal(t, entities.Hidden, sol.Visibility)

	require.True(t, c.Next())
	v := c.View()
	assert.Equal(t, entities.Visible, v.Controls.ShowSolution)
	assert.Equal(t, entities.Hidden, v.Controls.HideSolution)
}

func TestGoTo_UnknownOrdinal(t *testing.T) {
	c := helperController(t)
	assert.False(t, c.GoTo(42))
	assert.False(t, c.GoTo(0), "the summary panel has no ordinal to jump to")
	assert.Equal(t, 1, c.Current().Number)
}

func TestBusyGuard_CommandsFromObserverAreNoOps(t *testing.T) {
	var c *Controller
	var nested []bool

	panels := []*entities.Panel{
		helperChoice(1, entities.InputRadio, 2, 1),
		helperChoice(2, entities.InputRadio, 2, 2),
		entities.NewSummaryPanel(),
	}

	c, err := New(panels, Options{
		Languages: []string{"de", "en"},
		Observer: func(v View) {
			require.True(t, c.Busy())
			nested = append(nested,
				c.Next(),
				c.Previous(),
				c.SelectOption(2),
				c.Submit(),
				c.SelectLanguage("en"),
				c.FocusJump(),
			)
		},
	})
	require.NoError(t, err)

	require.True(t, c.SelectOption(1))
	assert.False(t, c.Busy())
	for _, changed := range nested {
		assert.False(t, changed)
	}

	assert.Equal(t, 1, c.Current().Number)
	assert.Equal(t, []int{1}, c.Current().MultipleChoice.SelectedPositions())
	assert.Equal(t, "de", c.Language())
}
