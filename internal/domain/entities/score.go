package entities

import "fmt"

// Score holds the aggregate counters of a session.
type Score struct {
	Correct  int // number of correctly answered multiple choice questions
	Answered int // number of evaluated multiple choice questions
	Total    int // number of multiple choice questions in the set
}

// Record counts one evaluated multiple choice.
func (s *Score) Record(v Verdict) {
	s.Answered++
	if v == VerdictCorrect {
		s.Correct++
	}
}

// RunningPercent returns the share of correct answers among answered ones.
func (s Score) RunningPercent() int {
	return percent(s.Correct, s.Answered)
}

// TotalPercent returns the share of correct answers among all questions.
func (s Score) TotalPercent() int {
	return percent(s.Correct, s.Total)
}

// Line formats the score counter, e.g. "3 / 4 (75 %)".
func (s Score) Line() string {
	return fmt.Sprintf("%d / %d (%s)", s.Correct, s.Answered, FormatPercent(s.RunningPercent()))
}

// FormatPercent formats an integer percentage, e.g. "75 %".
func FormatPercent(p int) string {
	return fmt.Sprintf("%d %%", p)
}

// percent rounds n/d*100 half up using integer arithmetic.
func percent(n, d int) int {
	if d <= 0 || n <= 0 {
		return 0
	}
	return (200*n + d) / (2 * d)
}
