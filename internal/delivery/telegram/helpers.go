package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/jagd-quiz-bot/internal/slideshow"
)

func newHTMLMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	return msg
}

// newViewMessage renders v as a new message with its keyboard.
func newViewMessage(chatID int64, v slideshow.View) tgbotapi.MessageConfig {
	msg := newHTMLMessage(chatID, renderView(v))
	msg.ReplyMarkup = buildViewKeyboard(v)
	return msg
}

// newViewEdit renders v into an existing message.
func newViewEdit(chatID int64, messageID int, v slideshow.View) tgbotapi.EditMessageTextConfig {
	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, renderView(v), buildViewKeyboard(v))
	edit.ParseMode = tgbotapi.ModeHTML
	return edit
}

func (h *Handler) sendView(chatID int64, v slideshow.View) {
	h.send(newViewMessage(chatID, v))
}
