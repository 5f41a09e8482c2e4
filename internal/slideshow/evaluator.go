package slideshow

import "github.com/aliskhannn/jagd-quiz-bot/internal/domain/entities"

func (c *Controller) currentChoice() *entities.MultipleChoice {
	return c.panels[c.current].MultipleChoice
}

// SelectOption clicks the option at position (1-based) of the visible
// multiple choice and updates the submit control.
func (c *Controller) SelectOption(position int) bool {
	if !c.begin() {
		return false
	}
	defer c.end()

	mc := c.currentChoice()
	if mc == nil || !mc.Select(position) {
		return false
	}
	c.updateSubmitEnablement()
	return true
}

// Submit evaluates the visible multiple choice. The verdict is final:
// later calls for the same panel are no-ops.
func (c *Controller) Submit() bool {
	if !c.begin() {
		return false
	}
	defer c.end()

	mc := c.currentChoice()
	if mc == nil || mc.Evaluated() || !c.controls.Submit.Usable() {
		return false
	}

	verdict := mc.Evaluate()
	c.score.Record(verdict)

	c.controls.Submit.Visibility = entities.Hidden
	c.showVerdict(verdict)
	c.controls.Counter = entities.Visible
	return true
}

// updateSubmitEnablement enables the submit control iff an option of the
// visible multiple choice is selected.
func (c *Controller) updateSubmitEnablement() {
	mc := c.currentChoice()
	if mc == nil || mc.Evaluated() {
		return
	}
	c.controls.Submit.Enabled = mc.HasSelection()
}
