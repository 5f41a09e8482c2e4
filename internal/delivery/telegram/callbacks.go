package telegram

import (
	"context"
	"errors"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/jagd-quiz-bot/internal/keyboard"
	"github.com/aliskhannn/jagd-quiz-bot/internal/service"
	"github.com/aliskhannn/jagd-quiz-bot/internal/slideshow"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	// Remove the user's "clock".
	var notice string
	defer func() { h.answerCallback(cb.ID, notice) }()

	if cb.Message == nil {
		return
	}
	chatID := cb.Message.Chat.ID
	data := decodeCallback(cb.Data)

	var (
		v   slideshow.View
		err error
	)

	switch data.Action {
	case actionKey:
		var res keyboard.Result
		v, res, err = h.sessions.Press(ctx, chatID, data.param(0))
		if err == nil && res == keyboard.Unmapped {
			h.logger.Debug("unmapped key", zap.String("data", cb.Data))
			return
		}
	case actionLang:
		v, err = h.sessions.SelectLanguage(ctx, chatID, data.param(0))
	case actionJump:
		v, err = h.sessions.FocusJump(ctx, chatID)
	case actionStart:
		v, err = h.sessions.Start(ctx, chatID)
	case actionNoop:
		return
	default:
		h.logger.Debug("unknown callback", zap.String("data", cb.Data))
		return
	}

	if errors.Is(err, service.ErrSessionNotFound) {
		notice = labelsFor(h.language).NoSession
		return
	}
	if err != nil {
		h.logger.Error("callback failed",
			zap.Int64("chat_id", chatID),
			zap.String("data", cb.Data),
			zap.Error(err),
		)
		return
	}

	h.edit(newViewEdit(chatID, cb.Message.MessageID, v))
}

// edit sends an edit request. Telegram rejects edits that change nothing,
// which happens on no-op commands and is not an error.
func (h *Handler) edit(c tgbotapi.Chattable) {
	if _, err := h.bot.Request(c); err != nil {
		if strings.Contains(err.Error(), "message is not modified") {
			return
		}
		h.logger.Error("failed to edit telegram message", zap.Error(err))
	}
}

func (h *Handler) answerCallback(id, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(id, text)); err != nil {
		h.logger.Debug("callback answer error", zap.Error(err))
	}
}
