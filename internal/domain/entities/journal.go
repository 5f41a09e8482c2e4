package entities

import (
	"time"

	"github.com/google/uuid"
)

// SessionRecord is the journal entry written when a chat starts a session.
type SessionRecord struct {
	ID        uuid.UUID // session identifier
	ChatID    int64     // chat that owns the session
	Total     int       // number of multiple choice questions in the set
	StartedAt time.Time // timestamp when the session started
}

// VerdictRecord is the journal entry written for every evaluated question.
type VerdictRecord struct {
	SessionID  uuid.UUID // journal session identifier
	ChatID     int64     // chat that answered
	QuestionNr int       // ordinal of the evaluated question
	Verdict    Verdict   // correct or wrong
	Selected   []int     // 1-based positions of the selected options
	Score      Score     // aggregate score after the evaluation
	AnsweredAt time.Time // timestamp of the evaluation
}
