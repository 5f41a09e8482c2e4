package telegram

import (
	"context"

	"github.com/aliskhannn/jagd-quiz-bot/internal/keyboard"
	"github.com/aliskhannn/jagd-quiz-bot/internal/slideshow"
)

type SessionService interface {
	Start(ctx context.Context, chatID int64) (slideshow.View, error)
	Stop(chatID int64)
	View(chatID int64) (slideshow.View, error)
	Press(ctx context.Context, chatID int64, key string) (slideshow.View, keyboard.Result, error)
	Type(ctx context.Context, chatID int64, text string) (slideshow.View, error)
	FocusJump(ctx context.Context, chatID int64) (slideshow.View, error)
	SelectLanguage(ctx context.Context, chatID int64, lang string) (slideshow.View, error)
}
