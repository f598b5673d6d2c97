// File: internal/store/session/store.go
package session

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/chadhq/chad-backend/internal/domain"
)

var ErrSessionNotFound = errors.New("session not found")

// Store keeps chat sessions in memory only. Sessions live for the lifetime
// of the process and are never persisted; each user owns an ordered list of
// sessions plus a non-owning active pointer (a session id, possibly empty).
//
// All mutation goes through the store's methods, which is the concurrency
// boundary for session state.
type Store struct {
	mu       sync.Mutex
	sessions map[uint][]*domain.ChatSession
	active   map[uint]string
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[uint][]*domain.ChatSession),
		active:   make(map[uint]string),
	}
}

// Create opens a new session seeded with its first message, makes it the
// active session and returns a copy. The id is derived from the current time
// in milliseconds, bumped on the rare collision so ids stay unique per user.
func (s *Store) Create(userID uint, title string, first domain.ChatMessage) domain.ChatSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextIDLocked(userID)
	sess := &domain.ChatSession{
		ID:        id,
		Title:     title,
		Messages:  []domain.ChatMessage{first},
		CreatedAt: time.Now().UTC(),
	}
	s.sessions[userID] = append(s.sessions[userID], sess)
	s.active[userID] = id
	return copySession(sess)
}

// Append adds a message to the end of an existing session.
func (s *Store) Append(userID uint, sessionID string, msg domain.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.findLocked(userID, sessionID)
	if sess == nil {
		return ErrSessionNotFound
	}
	sess.Messages = append(sess.Messages, msg)
	return nil
}

// ActiveID returns the active session id for a user, or "" if none.
func (s *Store) ActiveID(userID uint) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active[userID]
}

// SetActive points the active pointer at an existing session.
func (s *Store) SetActive(userID uint, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findLocked(userID, sessionID) == nil {
		return ErrSessionNotFound
	}
	s.active[userID] = sessionID
	return nil
}

// ClearActive drops the active pointer, so the next send opens a new session.
func (s *Store) ClearActive(userID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.active, userID)
}

// LatestID returns the id of the most recently created session, or "".
func (s *Store) LatestID(userID uint) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.sessions[userID]
	if len(list) == 0 {
		return ""
	}
	return list[len(list)-1].ID
}

// Sessions returns copies of all sessions in creation order.
func (s *Store) Sessions(userID uint) []domain.ChatSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.sessions[userID]
	out := make([]domain.ChatSession, 0, len(list))
	for _, sess := range list {
		out = append(out, copySession(sess))
	}
	return out
}

// Messages returns a copy of one session's ordered message sequence.
func (s *Store) Messages(userID uint, sessionID string) ([]domain.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.findLocked(userID, sessionID)
	if sess == nil {
		return nil, ErrSessionNotFound
	}
	out := make([]domain.ChatMessage, len(sess.Messages))
	copy(out, sess.Messages)
	return out, nil
}

func (s *Store) findLocked(userID uint, sessionID string) *domain.ChatSession {
	for _, sess := range s.sessions[userID] {
		if sess.ID == sessionID {
			return sess
		}
	}
	return nil
}

func (s *Store) nextIDLocked(userID uint) string {
	ms := time.Now().UnixMilli()
	for {
		id := strconv.FormatInt(ms, 10)
		if s.findLocked(userID, id) == nil {
			return id
		}
		ms++
	}
}

func copySession(sess *domain.ChatSession) domain.ChatSession {
	out := *sess
	out.Messages = make([]domain.ChatMessage, len(sess.Messages))
	copy(out.Messages, sess.Messages)
	return out
}
