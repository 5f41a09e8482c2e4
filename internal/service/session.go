package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aliskhannn/jagd-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/jagd-quiz-bot/internal/keyboard"
	"github.com/aliskhannn/jagd-quiz-bot/internal/slideshow"
)

var ErrSessionNotFound = errors.New("session not found")

// Session is the slideshow session of one chat.
type Session struct {
	ID         uuid.UUID
	ChatID     int64
	StartedAt  time.Time
	controller *slideshow.Controller
	router     *keyboard.Router
}

// SessionService owns the slideshow sessions of all chats.
type SessionService struct {
	mu        sync.Mutex
	catalog   CatalogRepository
	storage   SessionStorage
	journal   Journal
	logger    *zap.Logger
	languages []string
	language  string
	now       func() time.Time
}

// NewSessionService creates a SessionService. A nil journal disables the
// answer journal.
func NewSessionService(
	catalog CatalogRepository,
	storage SessionStorage,
	journal Journal,
	logger *zap.Logger,
	languages []string,
	language string,
) *SessionService {
	if journal == nil {
		journal = nopJournal{}
	}
	return &SessionService{
		catalog:   catalog,
		storage:   storage,
		journal:   journal,
		logger:    logger,
		languages: languages,
		language:  language,
		now:       time.Now,
	}
}

// Start begins a clean session for the chat, replacing any previous one.
func (s *SessionService) Start(ctx context.Context, chatID int64) (slideshow.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := slideshow.New(s.catalog.Panels(), slideshow.Options{
		Languages: s.languages,
		Language:  s.language,
	})
	if err != nil {
		return slideshow.View{}, err
	}

	ses := &Session{
		ID:         uuid.New(),
		ChatID:     chatID,
		StartedAt:  s.now(),
		controller: c,
		router:     keyboard.NewRouter(c),
	}
	s.storage.Store(chatID, ses)

	rec := &entities.SessionRecord{
		ID:        ses.ID,
		ChatID:    chatID,
		Total:     c.Score().Total,
		StartedAt: ses.StartedAt,
	}
	if err := s.journal.CreateSession(ctx, rec); err != nil {
		s.logger.Error("failed to journal session",
			zap.Int64("chat_id", chatID),
			zap.String("session_id", ses.ID.String()),
			zap.Error(err),
		)
	}

	s.logger.Info("session started",
		zap.Int64("chat_id", chatID),
		zap.String("session_id", ses.ID.String()),
		zap.Int("questions", rec.Total),
	)

	return c.View(), nil
}

// Stop drops the session of the chat.
func (s *SessionService) Stop(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.storage.Delete(chatID)
}

// View returns the current view of the chat session.
func (s *SessionService) View(chatID int64) (slideshow.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ses, ok := s.storage.Get(chatID)
	if !ok {
		return slideshow.View{}, ErrSessionNotFound
	}
	return ses.controller.View(), nil
}

// Press routes a single key press to the chat session.
func (s *SessionService) Press(ctx context.Context, chatID int64, key string) (slideshow.View, keyboard.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ses, ok := s.storage.Get(chatID)
	if !ok {
		return slideshow.View{}, keyboard.Unmapped, ErrSessionNotFound
	}

	res := s.press(ctx, ses, key)
	return ses.controller.View(), res, nil
}

// Type handles free text sent by the chat. While the jump field has focus
// the text replaces the field content and is committed. Otherwise a
// number jumps to that question and a single character is a key press.
func (s *SessionService) Type(ctx context.Context, chatID int64, text string) (slideshow.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ses, ok := s.storage.Get(chatID)
	if !ok {
		return slideshow.View{}, ErrSessionNotFound
	}

	c := ses.controller
	text = strings.TrimSpace(text)

	switch {
	case c.JumpFocused():
		c.MoveJumpCaret(utf8.RuneCountInString(c.View().Jump.Text))
		for c.JumpBackspace() {
		}
		for _, r := range text {
			s.press(ctx, ses, string(r))
		}
		s.press(ctx, ses, keyboard.KeyEnter)

	case isNumber(text):
		nr, _ := strconv.Atoi(text)
		if !c.GoTo(nr) {
			s.logger.Debug("jump to unknown question",
				zap.Int64("chat_id", chatID),
				zap.Int("nr", nr),
			)
		}

	case utf8.RuneCountInString(text) == 1:
		s.press(ctx, ses, text)
	}

	return c.View(), nil
}

// FocusJump focuses the question number field of the chat session.
func (s *SessionService) FocusJump(_ context.Context, chatID int64) (slideshow.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ses, ok := s.storage.Get(chatID)
	if !ok {
		return slideshow.View{}, ErrSessionNotFound
	}
	ses.controller.FocusJump()
	return ses.controller.View(), nil
}

// SelectLanguage switches the display language of the chat session.
func (s *SessionService) SelectLanguage(_ context.Context, chatID int64, lang string) (slideshow.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ses, ok := s.storage.Get(chatID)
	if !ok {
		return slideshow.View{}, ErrSessionNotFound
	}
	ses.controller.SelectLanguage(lang)
	return ses.controller.View(), nil
}

// press routes key and journals a verdict the key produced.
func (s *SessionService) press(ctx context.Context, ses *Session, key string) keyboard.Result {
	p := ses.controller.Current()
	evaluated := p.MultipleChoice != nil && p.MultipleChoice.Evaluated()

	res := ses.router.Press(key)
	s.logger.Debug("key pressed",
		zap.Int64("chat_id", ses.ChatID),
		zap.String("key", key),
		zap.Int("result", int(res)),
	)

	if p.MultipleChoice == nil || evaluated || !p.MultipleChoice.Evaluated() {
		return res
	}

	rec := &entities.VerdictRecord{
		SessionID:  ses.ID,
		ChatID:     ses.ChatID,
		QuestionNr: p.Number,
		Verdict:    p.MultipleChoice.Verdict,
		Selected:   p.MultipleChoice.SelectedPositions(),
		Score:      ses.controller.Score(),
		AnsweredAt: s.now(),
	}
	if err := s.journal.SaveVerdict(ctx, rec); err != nil {
		s.logger.Error("failed to journal verdict",
			zap.Int64("chat_id", ses.ChatID),
			zap.Int("nr", p.Number),
			zap.Error(err),
		)
	}

	return res
}

func isNumber(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

type nopJournal struct{}

func (nopJournal) CreateSession(context.Context, *entities.SessionRecord) error { return nil }
func (nopJournal) SaveVerdict(context.Context, *entities.VerdictRecord) error { return nil }
