package slideshow

import "github.com/aliskhannn/jagd-quiz-bot/internal/domain/entities"

// ShowSolution reveals the solution of the visible visualization.
func (c *Controller) ShowSolution() bool {
	if !c.begin() {
		return false
	}
	defer c.end()

	return c.showSolution()
}

// HideSolution hides the solution of the visible visualization.
func (c *Controller) HideSolution() bool {
	if !c.begin() {
		return false
	}
	defer c.end()

	return c.hideSolution()
}

// ToggleSolution uses whichever of the show or hide controls is visible.
func (c *Controller) ToggleSolution() bool {
	if !c.begin() {
		return false
	}
	defer c.end()

	if c.controls.HideSolution == entities.Visible {
		return c.hideSolution()
	}
	return c.showSolution()
}

func (c *Controller) showSolution() bool {
	sol := solutionOf(c.panels[c.current])
	if sol == nil || c.controls.ShowSolution != entities.Visible {
		return false
	}

	sol.Visibility = entities.Visible
	c.scroll = true
	c.controls.ShowSolution = entities.Hidden
	c.controls.HideSolution = entities.Visible
	return true
}

func (c *Controller) hideSolution() bool {
	sol := solutionOf(c.panels[c.current])
	if sol == nil || c.controls.HideSolution != entities.Visible {
		return false
	}

	sol.Visibility = entities.Hidden
	c.controls.HideSolution = entities.Hidden
	c.controls.ShowSolution = entities.Visible
	return true
}
