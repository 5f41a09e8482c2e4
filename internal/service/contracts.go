package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/jagd-quiz-bot/internal/domain/entities"
)

// CatalogRepository provides fresh panels for every new session.
type CatalogRepository interface {
	Panels() []*entities.Panel
}

// SessionStorage keeps the sessions of all chats.
type SessionStorage interface {
	Store(chatID int64, session *Session)
	Get(chatID int64) (*Session, bool)
	Delete(chatID int64)
}

// Journal records started sessions and evaluated questions. It is
// write-only: nothing is read back into a session.
type Journal interface {
	CreateSession(ctx context.Context, rec *entities.SessionRecord) error
	SaveVerdict(ctx context.Context, rec *entities.VerdictRecord) error
}

// Transactor runs fn inside a database transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error
}
