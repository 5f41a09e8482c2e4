package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/aliskhannn/jagd-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/jagd-quiz-bot/internal/infra/postgres"
)

var ErrJournalSessionNotFound = errors.New("journal session not found")

// AnswerRepository writes the answer journal.
type AnswerRepository struct {
	db postgres.DBTX
}

// NewAnswerRepository creates a new AnswerRepository on a pool or a transaction.
func NewAnswerRepository(db postgres.DBTX) *AnswerRepository {
	return &AnswerRepository{db: db}
}

// CreateSession inserts a started session.
func (r *AnswerRepository) CreateSession(ctx context.Context, rec *entities.SessionRecord) error {
	query := `
		INSERT INTO quiz_sessions (id, chat_id, total_questions, started_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query, rec.ID, rec.ChatID, rec.Total, rec.StartedAt)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}

	return nil
}

// SaveAnswer inserts the verdict of one question. A question is journaled
// at most once per session.
func (r *AnswerRepository) SaveAnswer(ctx context.Context, rec *entities.VerdictRecord) error {
	query := `
		INSERT INTO quiz_answers (session_id, chat_id, question_nr, verdict, selected, answered_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (session_id, question_nr) DO NOTHING
	`

	selected := make([]int32, len(rec.Selected))
	for i, pos := range rec.Selected {
		selected[i] = int32(pos)
	}

	_, err := r.db.Exec(
		ctx,
		query,
		rec.SessionID,
		rec.ChatID,
		rec.QuestionNr,
		string(rec.Verdict),
		selected,
		rec.AnsweredAt,
	)
	if err != nil {
		return fmt.Errorf("save answer: %w", err)
	}

	return nil
}

// UpdateScore stores the aggregate score of the session after a verdict.
func (r *AnswerRepository) UpdateScore(ctx context.Context, rec *entities.VerdictRecord) error {
	query := `
		UPDATE quiz_sessions
		SET answered = $1,
		    correct_answers = $2,
		    last_answer_at = $3
		WHERE id = $4
	`

	result, err := r.db.Exec(ctx, query, rec.Score.Answered, rec.Score.Correct, rec.AnsweredAt, rec.SessionID)
	if err != nil {
		return fmt.Errorf("update score: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrJournalSessionNotFound
	}

	return nil
}
