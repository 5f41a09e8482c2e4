package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/jagd-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/jagd-quiz-bot/internal/repository"
)

// JournalService writes the answer journal to Postgres.
type JournalService struct {
	tr Transactor
}

func NewJournalService(tr Transactor) *JournalService {
	return &JournalService{tr: tr}
}

func (s *JournalService) CreateSession(ctx context.Context, rec *entities.SessionRecord) error {
	return s.tr.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return repository.NewAnswerRepository(tx).CreateSession(ctx, rec)
	})
}

// SaveVerdict stores the answer and the updated session score atomically.
func (s *JournalService) SaveVerdict(ctx context.Context, rec *entities.VerdictRecord) error {
	return s.tr.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		answerRepo := repository.NewAnswerRepository(tx)

		if err := answerRepo.SaveAnswer(ctx, rec); err != nil {
			return err
		}

		if err := answerRepo.UpdateScore(ctx, rec); err != nil {
			return err
		}

		return nil
	})
}
