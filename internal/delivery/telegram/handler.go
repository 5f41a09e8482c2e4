package telegram

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type Handler struct {
	bot           *tgbotapi.BotAPI
	logger        *zap.Logger
	sessions      SessionService
	language      string
	updateTimeout int
}

func NewHandler(
	bot *tgbotapi.BotAPI,
	logger *zap.Logger,
	sessions SessionService,
	language string,
	updateTimeout int,
) *Handler {
	return &Handler{
		bot:           bot,
		logger:        logger,
		sessions:      sessions,
		language:      language,
		updateTimeout: updateTimeout,
	}
}

// Commands returns the bot commands shown in the Telegram menu.
func Commands() []tgbotapi.BotCommand {
	return []tgbotapi.BotCommand{
		{Command: "start", Description: "Fragenkatalog starten"},
		{Command: "jump", Description: "Zu einer Frage springen"},
		{Command: "lang", Description: "Sprache wechseln (/lang de, /lang en)"},
		{Command: "help", Description: "Hilfe"},
	}
}

// Run processes updates one at a time until ctx is cancelled.
func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = h.updateTimeout

	updates := h.bot.GetUpdatesChan(u)
	defer h.bot.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	chatID := update.Message.Chat.ID

	if update.Message.IsCommand() {
		switch update.Message.Command() {
		case "start":
			_ = h.withErrorHandling(h.startHandler())(ctx, chatID)

		case "jump":
			_ = h.withErrorHandling(h.jumpHandler())(ctx, chatID)

		case "lang":
			_ = h.withErrorHandling(h.langHandler(update.Message.CommandArguments()))(ctx, chatID)

		case "help":
			h.send(newHTMLMessage(chatID, html(h.chatLabels(chatID).Help)))

		default:
			h.send(newHTMLMessage(chatID, html(h.chatLabels(chatID).UnknownCommand)))
		}

		return
	}

	_ = h.withErrorHandling(h.textHandler(update.Message.Text))(ctx, chatID)
}

func (h *Handler) startHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		v, err := h.sessions.Start(ctx, chatID)
		if err != nil {
			return err
		}

		h.send(newHTMLMessage(chatID, html(labelsFor(v.Language).Welcome)))
		h.sendView(chatID, v)
		return nil
	}
}

func (h *Handler) jumpHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		v, err := h.sessions.FocusJump(ctx, chatID)
		if err != nil {
			return err
		}

		h.sendView(chatID, v)
		return nil
	}
}

func (h *Handler) langHandler(args string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		lang := strings.ToLower(strings.TrimSpace(args))
		if lang == "" {
			h.send(newHTMLMessage(chatID, html(h.chatLabels(chatID).UseLang)))
			return nil
		}

		v, err := h.sessions.SelectLanguage(ctx, chatID, lang)
		if err != nil {
			return err
		}
		if v.Language != lang {
			h.send(newHTMLMessage(chatID, html(labelsFor(v.Language).UseLang)))
			return nil
		}

		h.sendView(chatID, v)
		return nil
	}
}

// textHandler types plain text into the session: a number jumps, a single
// character is a key press, anything else is ignored.
func (h *Handler) textHandler(text string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		v, err := h.sessions.Type(ctx, chatID, text)
		if err != nil {
			return err
		}

		h.sendView(chatID, v)
		return nil
	}
}

// chatLabels returns the texts in the language of the chat session, or in the
// default language without one.
func (h *Handler) chatLabels(chatID int64) labels {
	if v, err := h.sessions.View(chatID); err == nil {
		return labelsFor(v.Language)
	}
	return labelsFor(h.language)
}

func (h *Handler) sendError(chatID int64, err string) {
	msg := newHTMLMessage(chatID, html(err))
	h.send(msg)
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
}
