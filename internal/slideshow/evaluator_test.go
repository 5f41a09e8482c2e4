package slideshow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/jagd-quiz-bot/internal/domain/entities"
)

func TestSubmit_ExactSelectionIsCorrect(t *testing.T) {
	c := helperController(t)
	require.True(t, c.SelectOption(2))
	require.True(t, c.SelectOption(4))
	require.True(t, c.Submit())

	mc := c.Current().MultipleChoice
	assert.Equal(t, entities.VerdictCorrect, mc.Verdict)
	assert.Equal(t, entities.MarkNone, mc.Options[0].Mark)
	assert.Equal(t, entities.MarkAnswerCorrect, mc.Options[1].Mark)
	assert.Equal(t, entities.MarkNone, mc.Options[2].Mark)
	assert.Equal(t, entities.MarkAnswerCorrect, mc.Options[3].Mark)
	assert.Equal(t, entities.Score{Correct: 1, Answered: 1, Total: 2}, c.Score())

	v := c.View()
	assert.Equal(t, entities.Visible, v.Controls.Correct)
	assert.Equal(t, entities.Hidden, v.Controls.Wrong)
	assert.Equal(t, entities.Visible, v.Controls.Counter)
	assert.Equal(t, entities.Hidden, v.Controls.Submit.Visibility)
}

func TestSubmit_ExtraSelectionIsWrong(t *testing.T) {
	c := helperController(t)
	for _, pos := range []int{1, 2, 4} {
		require.True(t, c.SelectOption(pos))
	}
	require.True(t, c.Submit())

	mc := c.Current().MultipleChoice
	assert.Equal(t, entities.VerdictWrong, mc.Verdict)
	assert.Equal(t, entities.MarkAnswerWrong, mc.Options[0].Mark)
	assert.Equal(t, entities.MarkAnswerCorrect, mc.Options[1].Mark)
	assert.Equal(t, entities.MarkAnswerCorrect, mc.Options[3].Mark)
	assert.Equal(t, entities.Score{Correct: 0, Answered: 1, Total: 2}, c.Score())
	assert.Equal(t, entities.Visible, c.View().Controls.Wrong)
}

func TestSubmit_MissingSelectionIsWrong(t *testing.T) {
	c := helperController(t)
	require.True(t, c.SelectOption(2))
	require.True(t, c.Submit())

	mc := c.Current().MultipleChoice
	assert.Equal(t, entities.VerdictWrong, mc.Verdict)
	assert.Equal(t, entities.MarkAnswerMissed, mc.Options[3].Mark)
}

func TestSubmit_VerdictMatchesExactSelectionForAllSubsets(t *testing.T) {
	const options = 4
	correctSets := [][]int{{1}, {2, 4}, {1, 2, 3, 4}, {3}}

	for _, correct := range correctSets {
		want := 0
		for _, pos := range correct {
			want |= 1 << (pos - 1)
		}

		for subset := 1; subset < 1<<options; subset++ {
			c, err := New([]*entities.Panel{
				helperChoice(1, entities.InputCheckbox, options, correct...),
				entities.NewSummaryPanel(),
			}, Options{})
			require.NoError(t, err)

			for pos := 1; pos <= options; pos++ {
				if subset&(1<<(pos-1)) != 0 {
					require.True(t, c.SelectOption(pos))
				}
			}
			require.True(t, c.Submit())

			got := c.Current().MultipleChoice.Verdict
			if subset == want {
				assert.Equal(t, entities.VerdictCorrect, got, "correct=%v subset=%04b", correct, subset)
			} else {
				assert.Equal(t, entities.VerdictWrong, got, "correct=%v subset=%04b", correct, subset)
			}
		}
	}
}

func TestSubmit_IsFinal(t *testing.T) {
	c := helperController(t)
	require.True(t, c.SelectOption(2))
	require.True(t, c.SelectOption(4))
	require.True(t, c.Submit())

	before := c.View()
	assert.False(t, c.Submit())
	assert.False(t, c.SelectOption(1), "evaluated choices are locked")
	assert.False(t, c.SelectOption(2))

	after := c.View()
	assert.Equal(t, before.Score, after.Score)
	assert.Equal(t, before.Controls, after.Controls)
	assert.Equal(t, entities.VerdictCorrect, c.Current().MultipleChoice.Verdict)
	assert.Equal(t, []int{2, 4}, c.Current().MultipleChoice.SelectedPositions())

	require.True(t, c.Next())
	require.True(t, c.Previous())
	assert.False(t, c.Submit())
	assert.Equal(t, before.Score, c.Score())
}

func TestSubmit_RequiresSelection(t *testing.T) {
	c := helperController(t)
	assert.False(t, c.View().Controls.Submit.Enabled)
	assert.False(t, c.Submit())
	assert.Equal(t, 0, c.Score().Answered)
}

func TestSubmit_InvalidOnNonChoicePanels(t *testing.T) {
	c := helperController(t)
	require.True(t, c.GoTo(3))
	assert.False(t, c.Submit())
	require.True(t, c.Next())
	assert.False(t, c.Submit())
	assert.Equal(t, 0, c.Score().Answered)
}

func TestSubmitEnablement_FollowsSelection(t *testing.T) {
	c := helperController(t)
	assert.False(t, c.View().Controls.Submit.Enabled)

	require.True(t, c.SelectOption(3))
	assert.True(t, c.View().Controls.Submit.Enabled)

	require.True(t, c.SelectOption(3))
	assert.False(t, c.View().Controls.Submit.Enabled, "unticking the only checkbox disables submit")
}

func TestSubmitEnablement_KeptAcrossNavigation(t *testing.T) {
	c := helperController(t)
	require.True(t, c.SelectOption(1))
	require.True(t, c.Next())
	assert.False(t, c.View().Controls.Submit.Enabled)

	require.True(t, c.Previous())
	assert.True(t, c.View().Controls.Submit.Enabled)
}

func TestSelectOption_RadioReplacesSelection(t *testing.T) {
	c := helperController(t)
	require.True(t, c.Next())

	require.True(t, c.SelectOption(2))
	require.True(t, c.SelectOption(3))
	assert.Equal(t, []int{3}, c.Current().MultipleChoice.SelectedPositions())

	require.True(t, c.SelectOption(3))
	assert.Equal(t, []int{3}, c.Current().MultipleChoice.SelectedPositions(), "clicking a checked radio keeps it checked")
}

func TestSelectOption_OutOfRange(t *testing.T) {
	c := helperController(t)
	assert.False(t, c.SelectOption(0))
	assert.False(t, c.SelectOption(5))
	assert.False(t, c.Current().MultipleChoice.HasSelection())
}

func TestScore_RunningAndTotalPercent(t *testing.T) {
	panels := make([]*entities.Panel, 0, 9)
	for nr := 1; nr <= 8; nr++ {
		panels = append(panels, helperChoice(nr, entities.InputRadio, 2, 1))
	}
	panels = append(panels, entities.NewSummaryPanel())

	c, err := New(panels, Options{})
	require.NoError(t, err)

	for _, pos := range []int{1, 1, 2, 1} {
		require.True(t, c.SelectOption(pos))
		require.True(t, c.Submit())
		require.True(t, c.Next())
	}

	s := c.Score()
	assert.Equal(t, entities.Score{Correct: 3, Answered: 4, Total: 8}, s)
	assert.Equal(t, 75, s.RunningPercent())
	assert.Equal(t, 38, s.TotalPercent())
	assert.Equal(t, "3 / 4 (75 %)", s.Line())
	assert.Equal(t, "38 %", entities.FormatPercent(s.TotalPercent()))
	assert.LessOrEqual(t, s.Correct, s.Answered)
}
