// File: internal/services/chatbot/service.go
package chatbot

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/chadhq/chad-backend/internal/domain"
	"github.com/chadhq/chad-backend/internal/services"
	"github.com/chadhq/chad-backend/internal/services/reply"
	"github.com/chadhq/chad-backend/internal/store/session"
)

// Session titles keep the first 30 characters of the opening message.
const titleLimit = 30

var ErrEmptyMessage = errors.New("message is empty")

// Service is the chat controller: it appends user messages to the active
// session (creating one when none is active) and schedules the bot reply
// through the reply provider.
type Service struct {
	store    *session.Store
	provider reply.Provider
	logger   services.Logger
	timeout  time.Duration

	pending sync.WaitGroup
}

func NewService(store *session.Store, provider reply.Provider, logger services.Logger) *Service {
	return &Service{
		store:    store,
		provider: provider,
		logger:   logger,
		timeout:  2 * time.Minute,
	}
}

// Send records a user message and schedules the reply. Whitespace-only text
// is rejected without touching the store. Returns the id of the session the
// message landed in.
//
// The reply is delivered to the session that was active at send time. When
// no session was active, the send opens one, but the reply deliberately
// falls back to the most recently created session at delivery time; changing
// that attribution rule means changing deliverReply, nothing else.
func (s *Service) Send(userID uint, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyMessage
	}

	activeAtSend := s.store.ActiveID(userID)
	msg := domain.ChatMessage{
		Content:   text,
		Sender:    domain.SenderUser,
		CreatedAt: time.Now().UTC(),
	}

	sessionID := activeAtSend
	if activeAtSend == "" {
		created := s.store.Create(userID, deriveTitle(text), msg)
		sessionID = created.ID
	} else if err := s.store.Append(userID, activeAtSend, msg); err != nil {
		return "", err
	}

	s.pending.Add(1)
	go s.deliverReply(userID, activeAtSend, text)

	return sessionID, nil
}

func (s *Service) deliverReply(userID uint, activeAtSend, text string) {
	defer s.pending.Done()

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	content, err := s.provider.Reply(ctx, text)
	if err != nil {
		s.logger.Error("reply provider failed", "user_id", userID, "error", err.Error())
		return
	}

	target := activeAtSend
	if target == "" {
		target = s.store.LatestID(userID)
	}
	if target == "" {
		s.logger.Warn("no session left to receive reply", "user_id", userID)
		return
	}

	botMsg := domain.ChatMessage{
		Content:   content,
		Sender:    domain.SenderBot,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.Append(userID, target, botMsg); err != nil {
		s.logger.Error("failed to append reply", "user_id", userID, "session_id", target, "error", err.Error())
	}
}

// Wait blocks until all in-flight replies have been delivered. Used by
// graceful shutdown and by tests.
func (s *Service) Wait() {
	s.pending.Wait()
}

// Sessions lists the user's sessions in creation order.
func (s *Service) Sessions(userID uint) []domain.ChatSession {
	return s.store.Sessions(userID)
}

// Messages returns one session's ordered transcript.
func (s *Service) Messages(userID uint, sessionID string) ([]domain.ChatMessage, error) {
	return s.store.Messages(userID, sessionID)
}

// Activate makes an existing session the target of subsequent sends.
func (s *Service) Activate(userID uint, sessionID string) error {
	return s.store.SetActive(userID, sessionID)
}

// NewChat clears the active pointer so the next send opens a fresh session.
func (s *Service) NewChat(userID uint) {
	s.store.ClearActive(userID)
}

func deriveTitle(text string) string {
	runes := []rune(text)
	if len(runes) > titleLimit {
		return string(runes[:titleLimit])
	}
	return text
}
