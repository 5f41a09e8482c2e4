package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/jagd-quiz-bot/internal/config"
	"github.com/aliskhannn/jagd-quiz-bot/internal/delivery/telegram"
	"github.com/aliskhannn/jagd-quiz-bot/internal/infra/postgres"
	"github.com/aliskhannn/jagd-quiz-bot/internal/logger"
	"github.com/aliskhannn/jagd-quiz-bot/internal/repository"
	"github.com/aliskhannn/jagd-quiz-bot/internal/service"
	"github.com/aliskhannn/jagd-quiz-bot/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		lg.Fatal("failed to create bot", zap.Error(err))
	}
	bot.Debug = cfg.Telegram.Debug

	if _, err := bot.Request(tgbotapi.NewSetMyCommands(telegram.Commands()...)); err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	lg.Info("authorized", zap.String("account", bot.Self.UserName))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	catalogRepo, err := repository.NewCatalogRepository(cfg.CatalogPath)
	if err != nil {
		lg.Fatal("failed to load catalog", zap.String("path", cfg.CatalogPath), zap.Error(err))
	}
	lg.Info("catalog loaded",
		zap.String("title", catalogRepo.Title()),
		zap.Strings("languages", catalogRepo.Languages()),
	)

	// A nil journal keeps sessions purely in memory.
	var journal service.Journal
	if cfg.DB.Enabled() {
		pool, err := postgres.NewPool(ctx, cfg.DB.URL, postgres.PoolConfig{
			MaxConns:        cfg.DB.MaxConnections,
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		})
		if err != nil {
			lg.Fatal("failed to connect to database", zap.Error(err))
		}
		defer pool.Close()

		journal = service.NewJournalService(postgres.NewTransactor(pool))
		lg.Info("answer journal enabled")
	}

	sessionService := service.NewSessionService(
		catalogRepo,
		storage.NewSessionStorage[*service.Session](),
		journal,
		lg,
		cfg.Languages,
		cfg.DefaultLanguage,
	)

	handler := telegram.NewHandler(
		bot,
		lg,
		sessionService,
		cfg.DefaultLanguage,
		cfg.Telegram.UpdateTimeout,
	)
	if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		lg.Error("handler stopped", zap.Error(err))
	}

	lg.Info("shutdown signal received")
}
