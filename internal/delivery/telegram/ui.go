package telegram

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/jagd-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/jagd-quiz-bot/internal/keyboard"
	"github.com/aliskhannn/jagd-quiz-bot/internal/slideshow"
)

const optionsPerRow = 6

// buildViewKeyboard builds the inline keyboard of v. While the jump field
// has focus only the numeric keypad is offered.
func buildViewKeyboard(v slideshow.View) tgbotapi.InlineKeyboardMarkup {
	if v.Jump.Focused {
		return buildJumpKeyboard()
	}

	l := labelsFor(v.Language)
	var rows [][]tgbotapi.InlineKeyboardButton

	if mc := v.Panel.MultipleChoice; mc != nil && !mc.Evaluated() {
		rows = append(rows, buildOptionRows(len(mc.Options))...)
	}

	if row := buildControlRow(v.Controls, l); len(row) > 0 {
		rows = append(rows, row)
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(l.JumpTo, buildJumpCallback()),
		tgbotapi.NewInlineKeyboardButtonData(l.Restart, buildStartCallback()),
	))

	if row := buildLanguageRow(v.Languages, v.Language); len(row) > 0 {
		rows = append(rows, row)
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildOptionRows builds one button per option labeled with its shortcut.
func buildOptionRows(n int) [][]tgbotapi.InlineKeyboardButton {
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton

	for pos := 1; pos <= n && pos <= entities.MaxOptions; pos++ {
		key := keyboard.OptionKey(pos)
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(key, buildKeyCallback(key)))
		if len(row) == optionsPerRow {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	return rows
}

// buildControlRow renders visible controls. Disabled ones stay in place but
// do nothing when pressed.
func buildControlRow(c slideshow.Controls, l labels) []tgbotapi.InlineKeyboardButton {
	var row []tgbotapi.InlineKeyboardButton

	add := func(b slideshow.Button, label, key string) {
		if b.Visibility != entities.Visible {
			return
		}
		data := buildKeyCallback(key)
		if !b.Enabled {
			label = "· " + label + " ·"
			data = buildNoopCallback()
		}
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(label, data))
	}

	add(c.Previous, l.Previous, keyboard.KeyArrowLeft)
	if c.Evaluation == entities.Visible {
		add(c.Submit, l.Submit, keyboard.KeySubmit)
	}
	add(slideshow.Button{Visibility: c.ShowSolution, Enabled: true}, l.ShowSolution, keyboard.KeySolution)
	add(slideshow.Button{Visibility: c.HideSolution, Enabled: true}, l.HideSolution, keyboard.KeySolution)
	add(c.Next, l.Next, keyboard.KeyArrowRight)

	return row
}

// buildJumpKeyboard builds the numeric keypad of the focused jump field.
func buildJumpKeyboard() tgbotapi.InlineKeyboardMarkup {
	digit := func(d string) tgbotapi.InlineKeyboardButton {
		return tgbotapi.NewInlineKeyboardButtonData(d, buildKeyCallback(d))
	}
	key := func(label, k string) tgbotapi.InlineKeyboardButton {
		return tgbotapi.NewInlineKeyboardButtonData(label, buildKeyCallback(k))
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(digit("1"), digit("2"), digit("3")),
		tgbotapi.NewInlineKeyboardRow(digit("4"), digit("5"), digit("6")),
		tgbotapi.NewInlineKeyboardRow(digit("7"), digit("8"), digit("9")),
		tgbotapi.NewInlineKeyboardRow(
			key("⌫", keyboard.KeyBackspace),
			digit("0"),
			key("⌦", keyboard.KeyDelete),
		),
		tgbotapi.NewInlineKeyboardRow(
			key("◀", keyboard.KeyArrowLeft),
			key("⤒", keyboard.KeyArrowDown),
			key("⤓", keyboard.KeyArrowUp),
			key("▶", keyboard.KeyArrowRight),
		),
		tgbotapi.NewInlineKeyboardRow(
			key("✖️ Esc", keyboard.KeyEscape),
			key("⏎ OK", keyboard.KeyEnter),
		),
	)
}

// buildLanguageRow offers every language with a marker on the active one.
func buildLanguageRow(languages []string, active string) []tgbotapi.InlineKeyboardButton {
	if len(languages) < 2 {
		return nil
	}

	row := make([]tgbotapi.InlineKeyboardButton, 0, len(languages))
	for _, lang := range languages {
		label := strings.ToUpper(lang)
		if lang == active {
			label = "• " + label
		}
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(label, buildLangCallback(lang)))
	}

	return row
}
