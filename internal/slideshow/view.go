package slideshow

import "github.com/aliskhannn/jagd-quiz-bot/internal/domain/entities"

// Button is a navigation or submit control.
type Button struct {
	Visibility entities.Visibility
	Enabled    bool
}

// Usable reports whether the button is visible and enabled.
func (b Button) Usable() bool {
	return b.Visibility == entities.Visible && b.Enabled
}

// Controls is the state of every control surrounding the panels.
type Controls struct {
	Previous     Button
	Next         Button
	Evaluation   entities.Visibility // answer evaluation container
	Submit       Button
	Correct      entities.Visibility // "correct" verdict indicator
	Wrong        entities.Visibility // "wrong" verdict indicator
	ShowSolution entities.Visibility
	HideSolution entities.Visibility
	Counter      entities.Visibility // running score counter
}

// JumpField is the state of the question number input.
type JumpField struct {
	Text    string
	Caret   int
	Focused bool
}

// View is a render snapshot of a session. Panel points into the session
// state and must be treated as read-only.
type View struct {
	Panel            *entities.Panel
	Position         int // 0-based index of the visible panel
	Count            int // number of panels including the summary
	FirstNr          int
	LastNr           int
	Controls         Controls
	Jump             JumpField
	Score            entities.Score
	Language         string
	Languages        []string
	ScrollToSolution bool // fire-and-forget hint set by ShowSolution
}
