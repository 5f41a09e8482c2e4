// Package keyboard maps key presses to slideshow commands.
package keyboard

import "strings"

// Key names as reported by the input adapters.
const (
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyEnter      = "Enter"
	KeyEscape     = "Escape"
	KeyBackspace  = "Backspace"
	KeyDelete     = "Delete"
	KeySubmit     = "?"
	KeySolution   = "!"
)

// optionKeys maps a..l to option positions 1..12.
const optionKeys = "abcdefghijkl"

// Result tells the input adapter what happened to a key.
type Result int

const (
	Unmapped   Result = iota // key has no binding
	Dispatched               // key was routed to a command
	Suppressed               // key was swallowed by the focused jump field
)

// Target is the command surface of a slideshow session.
type Target interface {
	Previous() bool
	Next() bool
	SelectOption(position int) bool
	Submit() bool
	ToggleSolution() bool

	JumpFocused() bool
	InsertJumpDigit(r rune) bool
	JumpBackspace() bool
	JumpDelete() bool
	MoveJumpCaret(delta int) bool
	JumpFirst() bool
	JumpLast() bool
	CommitJump() bool
	CancelJump() bool
}

// Router routes key presses to a Target.
type Router struct {
	target Target
}

// NewRouter creates a router for target.
func NewRouter(target Target) *Router {
	return &Router{target: target}
}

// OptionKey returns the key selecting the option at position (1-based),
// or an empty string when the position has no shortcut.
func OptionKey(position int) string {
	if position < 1 || position > len(optionKeys) {
		return ""
	}
	return optionKeys[position-1 : position]
}

// Press routes a single key press.
func (r *Router) Press(key string) Result {
	if r.target.JumpFocused() {
		return r.pressJump(key)
	}

	if len(key) == 1 {
		if pos := strings.Index(optionKeys, key); pos >= 0 {
			r.target.SelectOption(pos + 1)
			return Dispatched
		}
	}

	switch key {
	case KeySubmit:
		r.target.Submit()
	case KeySolution:
		r.target.ToggleSolution()
	case KeyArrowLeft:
		r.target.Previous()
	case KeyArrowRight:
		r.target.Next()
	default:
		return Unmapped
	}
	return Dispatched
}

// pressJump handles a key while the jump field has focus. Only digits and
// the editing keys reach the field, everything else is swallowed.
func (r *Router) pressJump(key string) Result {
	switch key {
	case KeyEnter:
		r.target.CommitJump()
	case KeyEscape:
		r.target.CancelJump()
	case KeyArrowUp:
		r.target.JumpLast()
	case KeyArrowDown:
		r.target.JumpFirst()
	case KeyArrowLeft:
		r.target.MoveJumpCaret(-1)
	case KeyArrowRight:
		r.target.MoveJumpCaret(1)
	case KeyBackspace:
		r.target.JumpBackspace()
	case KeyDelete:
		r.target.JumpDelete()
	default:
		if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
			r.target.InsertJumpDigit(rune(key[0]))
			return Dispatched
		}
		return Suppressed
	}
	return Dispatched
}
