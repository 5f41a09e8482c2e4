package logger

import (
	"go.uber.org/zap"

	"github.com/aliskhannn/jagd-quiz-bot/internal/config"
)

// New returns a JSON production logger in production and a human readable
// development logger everywhere else.
func New(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Env == "production" {
		return zap.NewProduction()
	}

	return zap.NewDevelopment()
}
