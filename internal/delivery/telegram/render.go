package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/jagd-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/jagd-quiz-bot/internal/keyboard"
	"github.com/aliskhannn/jagd-quiz-bot/internal/slideshow"
)

const caretGlyph = "▏"

// html escapes plain text for the HTML parse mode.
func html(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeHTML, s)
}

func bold(s string) string {
	return "<b>" + html(s) + "</b>"
}

// renderView renders the visible panel of v with its score and jump field.
func renderView(v slideshow.View) string {
	l := labelsFor(v.Language)

	var b strings.Builder
	if v.Panel.IsSummary() {
		renderSummary(&b, v, l)
	} else {
		renderQuestion(&b, v, l)
	}

	if v.Controls.Counter == entities.Visible {
		fmt.Fprintf(&b, "\n\n%s: %s", html(l.Score), html(v.Score.Line()))
	}

	if v.Jump.Focused {
		fmt.Fprintf(&b, "\n\n%s: <code>%s</code>", html(l.JumpPrompt), html(jumpText(v.Jump)))
	}

	return b.String()
}

func renderQuestion(b *strings.Builder, v slideshow.View, l labels) {
	p := v.Panel

	b.WriteString(bold(fmt.Sprintf("%s %d %s %d", l.Question, p.Number, l.Of, v.LastNr)))
	if p.Category != "" {
		b.WriteString("\n<i>" + html(p.Category) + "</i>")
	}
	b.WriteString("\n\n" + html(p.Text.In(v.Language, fallbackLanguage(v))))

	if mc := p.MultipleChoice; mc != nil {
		b.WriteString("\n")
		for i, o := range mc.Options {
			fmt.Fprintf(b, "\n%s <b>%s)</b> %s",
				optionGlyph(mc.Input, o),
				keyboard.OptionKey(i+1),
				html(o.Text.In(v.Language, fallbackLanguage(v))),
			)
		}

		switch {
		case v.Controls.Correct == entities.Visible:
			b.WriteString("\n\n" + bold(l.VerdictCorrect))
		case v.Controls.Wrong == entities.Visible:
			b.WriteString("\n\n" + bold(l.VerdictWrong))
		}
	}

	if vis := p.Visualization; vis != nil && vis.Solution != nil && vis.Solution.Visibility == entities.Visible {
		fmt.Fprintf(b, "\n\n%s\n%s",
			bold(l.Solution+":"),
			html(vis.Solution.Text.In(v.Language, fallbackLanguage(v))),
		)
	}
}

func renderSummary(b *strings.Builder, v slideshow.View, l labels) {
	s := v.Score

	b.WriteString(bold(l.Summary))
	fmt.Fprintf(b, "\n\n%s: %d %s %d", html(l.Answered), s.Answered, html(l.Of), s.Total)
	fmt.Fprintf(b, "\n%s: %d", html(l.Correct), s.Correct)
	fmt.Fprintf(b, "\n%s: %s", html(l.RunningPercent), html(entities.FormatPercent(s.RunningPercent())))
	fmt.Fprintf(b, "\n%s: %s", html(l.TotalPercent), html(entities.FormatPercent(s.TotalPercent())))
}

// optionGlyph shows the evaluation mark once a verdict exists and the
// selection state before.
func optionGlyph(input entities.InputKind, o *entities.Option) string {
	switch o.Mark {
	case entities.MarkAnswerCorrect:
		return "✅"
	case entities.MarkAnswerWrong:
		return "❌"
	case entities.MarkAnswerMissed:
		return "⚠️"
	}

	if input == entities.InputRadio {
		if o.Selected {
			return "🔘"
		}
		return "⚪"
	}
	if o.Selected {
		return "☑️"
	}
	return "⬜"
}

// jumpText renders the field content with the caret.
func jumpText(j slideshow.JumpField) string {
	r := []rune(j.Text)
	caret := min(max(j.Caret, 0), len(r))
	return string(r[:caret]) + caretGlyph + string(r[caret:])
}

func fallbackLanguage(v slideshow.View) string {
	if len(v.Languages) > 0 {
		return v.Languages[0]
	}
	return v.Language
}
