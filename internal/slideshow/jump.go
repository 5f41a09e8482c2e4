package slideshow

import (
	"strconv"
	"unicode"
)

// jumpField is the editable question number display.
type jumpField struct {
	text    []rune
	caret   int
	focused bool
}

func (f *jumpField) set(nr int) {
	f.text = []rune(strconv.Itoa(nr))
	f.caret = len(f.text)
}

func (f *jumpField) snapshot() JumpField {
	return JumpField{Text: string(f.text), Caret: f.caret, Focused: f.focused}
}

// JumpFocused reports whether the question number field has focus.
func (c *Controller) JumpFocused() bool {
	return c.jump.focused
}

// FocusJump focuses the question number field with the caret at the end.
func (c *Controller) FocusJump() bool {
	if c.jump.focused || !c.begin() {
		return false
	}
	defer c.end()

	c.jump.focused = true
	c.jump.caret = len(c.jump.text)
	return true
}

// edit runs fn on the focused field under the busy guard.
func (c *Controller) edit(fn func(f *jumpField) bool) bool {
	if !c.jump.focused || !c.begin() {
		return false
	}
	defer c.end()

	return fn(&c.jump)
}

// InsertJumpDigit inserts a digit at the caret.
func (c *Controller) InsertJumpDigit(r rune) bool {
	if r > unicode.MaxASCII || !unicode.IsDigit(r) {
		return false
	}
	return c.edit(func(f *jumpField) bool {
		text := make([]rune, 0, len(f.text)+1)
		text = append(text, f.text[:f.caret]...)
		text = append(text, r)
		text = append(text, f.text[f.caret:]...)
		f.text = text
		f.caret++
		return true
	})
}

// JumpBackspace removes the character before the caret.
func (c *Controller) JumpBackspace() bool {
	return c.edit(func(f *jumpField) bool {
		if f.caret == 0 {
			return false
		}
		f.text = append(f.text[:f.caret-1], f.text[f.caret:]...)
		f.caret--
		return true
	})
}

// JumpDelete removes the character after the caret.
func (c *Controller) JumpDelete() bool {
	return c.edit(func(f *jumpField) bool {
		if f.caret >= len(f.text) {
			return false
		}
		f.text = append(f.text[:f.caret], f.text[f.caret+1:]...)
		return true
	})
}

// MoveJumpCaret moves the caret by delta characters within the text.
func (c *Controller) MoveJumpCaret(delta int) bool {
	return c.edit(func(f *jumpField) bool {
		caret := min(max(f.caret+delta, 0), len(f.text))
		if caret == f.caret {
			return false
		}
		f.caret = caret
		return true
	})
}

// JumpFirst fills the field with the first question ordinal.
func (c *Controller) JumpFirst() bool {
	return c.edit(func(f *jumpField) bool {
		f.set(c.firstNr)
		return true
	})
}

// JumpLast fills the field with the last question ordinal.
func (c *Controller) JumpLast() bool {
	return c.edit(func(f *jumpField) bool {
		f.set(c.lastNr)
		return true
	})
}

// CommitJump navigates to the question typed into the field and blurs it.
// An unknown ordinal reverts the field to the visible panel's ordinal, or
// to the last question ordinal on the summary panel.
func (c *Controller) CommitJump() bool {
	if !c.jump.focused || !c.begin() {
		return false
	}
	defer c.end()

	c.jump.focused = false

	nr, err := strconv.Atoi(string(c.jump.text))
	if err == nil {
		if idx, ok := c.indexOf(nr); ok {
			c.show(idx)
			return true
		}
	}

	c.revertJump()
	return false
}

// CancelJump blurs the field and reverts its text.
func (c *Controller) CancelJump() bool {
	if !c.jump.focused || !c.begin() {
		return false
	}
	defer c.end()

	c.jump.focused = false
	c.revertJump()
	return true
}

func (c *Controller) revertJump() {
	p := c.panels[c.current]
	if p.IsSummary() {
		c.jump.set(c.lastNr)
		return
	}
	c.jump.set(p.Number)
}
