// Package entities contains domain entities used across the application.
package entities

// Visibility is the display state of a panel, control or solution.
type Visibility int

const (
	Hidden Visibility = iota
	Visible
)

// PanelKind distinguishes question panels from the trailing summary panel.
type PanelKind string

const (
	PanelQuestion PanelKind = "question"
	PanelSummary  PanelKind = "summary"
)

// InputKind is the selection semantics of a multiple choice.
type InputKind string

const (
	InputRadio    InputKind = "radio"    // at most one option selected
	InputCheckbox InputKind = "checkbox" // options selected independently
)

// Verdict is the immutable outcome of an evaluated multiple choice.
type Verdict string

const (
	VerdictNone    Verdict = ""
	VerdictCorrect Verdict = "correct"
	VerdictWrong   Verdict = "wrong"
)

// Mark is the evaluation mark an option receives on submit.
type Mark string

const (
	MarkNone          Mark = ""
	MarkAnswerCorrect Mark = "answer-correct" // selected and correct
	MarkAnswerWrong   Mark = "answer-wrong"   // selected but not correct
	MarkAnswerMissed  Mark = "answer-missed"  // correct but not selected
)

// MaxOptions is the number of options reachable by keyboard shortcuts a..l.
const MaxOptions = 12

// Text holds pre-rendered content keyed by language code.
type Text map[string]string

// In returns the text for lang, falling back to fallback and then to any
// non-empty translation.
func (t Text) In(lang, fallback string) string {
	if s, ok := t[lang]; ok && s != "" {
		return s
	}
	if s, ok := t[fallback]; ok && s != "" {
		return s
	}
	for _, s := range t {
		if s != "" {
			return s
		}
	}
	return ""
}

// Option is a single answer of a multiple choice.
type Option struct {
	Text     Text
	Correct  bool // set at authoring time
	Selected bool
	Mark     Mark
}

// MultipleChoice is the answerable part of a question panel.
type MultipleChoice struct {
	Input   InputKind
	Options []*Option
	Verdict Verdict
}

// Evaluated reports whether a verdict was already assigned.
func (mc *MultipleChoice) Evaluated() bool {
	return mc.Verdict != VerdictNone
}

// HasSelection reports whether at least one option is selected.
func (mc *MultipleChoice) HasSelection() bool {
	for _, o := range mc.Options {
		if o.Selected {
			return true
		}
	}
	return false
}

// Select applies a click on the option at position (1-based).
// Radio inputs keep a clicked option selected and clear the others,
// checkbox inputs toggle. It reports false when the position does not
// exist or the multiple choice is locked.
func (mc *MultipleChoice) Select(position int) bool {
	if mc.Evaluated() || position < 1 || position > len(mc.Options) {
		return false
	}

	target := mc.Options[position-1]
	if mc.Input == InputRadio {
		for _, o := range mc.Options {
			o.Selected = o == target
		}
		return true
	}

	target.Selected = !target.Selected
	return true
}

// Evaluate marks every option and locks the multiple choice with a verdict.
// The verdict is correct only when the selection matches the correct set
// exactly. Evaluate returns the existing verdict when already evaluated.
func (mc *MultipleChoice) Evaluate() Verdict {
	if mc.Evaluated() {
		return mc.Verdict
	}

	verdict := VerdictCorrect
	for _, o := range mc.Options {
		switch {
		case o.Selected && o.Correct:
			o.Mark = MarkAnswerCorrect
		case o.Selected && !o.Correct:
			o.Mark = MarkAnswerWrong
			verdict = VerdictWrong
		case !o.Selected && o.Correct:
			o.Mark = MarkAnswerMissed
			verdict = VerdictWrong
		}
	}

	mc.Verdict = verdict
	return verdict
}

// SelectedPositions returns the 1-based positions of selected options.
func (mc *MultipleChoice) SelectedPositions() []int {
	var positions []int
	for i, o := range mc.Options {
		if o.Selected {
			positions = append(positions, i+1)
		}
	}
	return positions
}

// Reset clears selections, marks and the verdict.
func (mc *MultipleChoice) Reset() {
	mc.Verdict = VerdictNone
	for _, o := range mc.Options {
		o.Selected = false
		o.Mark = MarkNone
	}
}

// Solution is the revealable explanation of a visualization.
type Solution struct {
	Text       Text
	Visibility Visibility
}

// Visualization is a non-quiz question with an optional solution.
type Visualization struct {
	Solution *Solution
}

// Panel is one slide of the navigable sequence.
type Panel struct {
	Kind           PanelKind
	Number         int // question ordinal, zero for the summary panel
	Category       string
	Text           Text
	Visibility     Visibility
	MultipleChoice *MultipleChoice
	Visualization  *Visualization
}

// IsSummary reports whether p is the summary panel.
func (p *Panel) IsSummary() bool {
	return p.Kind == PanelSummary
}

// NewSummaryPanel creates the final summary panel.
func NewSummaryPanel() *Panel {
	return &Panel{Kind: PanelSummary}
}
