// File: internal/store/journal/store.go
package journal

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/chadhq/chad-backend/internal/domain"
	"github.com/chadhq/chad-backend/internal/services"
)

var ErrInvalidEntry = errors.New("invalid journal entry")

// Store owns the journal entry collection. Entries are held in memory and
// mirrored to the persister on every mutation. Unknown ids on update and
// delete are silent no-ops.
type Store struct {
	mu        sync.Mutex
	entries   Snapshot
	persister Persister
	logger    services.Logger
}

// NewStore loads the persisted snapshot and returns the store. An absent or
// unreadable snapshot yields an empty collection.
func NewStore(persister Persister, logger services.Logger) (*Store, error) {
	snap, err := persister.Load()
	if err != nil {
		return nil, err
	}
	return &Store{
		entries:   snap,
		persister: persister,
		logger:    logger,
	}, nil
}

// Add creates an entry. The title must be set and the entry must carry
// written content or at least one recording; otherwise the store is left
// unchanged. Kind is derived from the audio references. New entries go to
// the front, newest first.
func (s *Store) Add(userID uint, title, content string, audioRefs []string) (domain.JournalEntry, error) {
	entry := domain.JournalEntry{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		Kind:      domain.DeriveJournalKind(audioRefs),
		AudioRefs: append([]string(nil), audioRefs...),
		CreatedAt: time.Now().UTC(),
	}
	if err := entry.IsValid(); err != nil {
		return domain.JournalEntry{}, errors.Join(ErrInvalidEntry, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[userID] = append([]domain.JournalEntry{entry}, s.entries[userID]...)
	s.persistLocked()
	return entry, nil
}

// Update replaces title, content and audio references in place and
// re-derives the kind. Returns false when the id is unknown.
func (s *Store) Update(userID uint, id, title, content string, audioRefs []string) (domain.JournalEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.entries[userID]
	for i := range list {
		if list[i].ID != id {
			continue
		}
		list[i].Title = title
		list[i].Content = content
		list[i].AudioRefs = append([]string(nil), audioRefs...)
		list[i].Kind = domain.DeriveJournalKind(audioRefs)
		s.persistLocked()
		return list[i], true
	}
	return domain.JournalEntry{}, false
}

// Delete removes an entry by id. Repeating the call is idempotent.
func (s *Store) Delete(userID uint, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.entries[userID]
	for i := range list {
		if list[i].ID == id {
			s.entries[userID] = append(list[:i], list[i+1:]...)
			s.persistLocked()
			return
		}
	}
}

// Get returns one entry by id.
func (s *Store) Get(userID uint, id string) (domain.JournalEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.entries[userID] {
		if e.ID == id {
			return e, true
		}
	}
	return domain.JournalEntry{}, false
}

// Entries returns a copy of the user's entries, newest first.
func (s *Store) Entries(userID uint) []domain.JournalEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.JournalEntry, len(s.entries[userID]))
	copy(out, s.entries[userID])
	return out
}

// persistLocked mirrors the full collection to durable storage. Failures are
// logged, not returned: the in-memory state stays authoritative and the next
// mutation retries the write.
func (s *Store) persistLocked() {
	if err := s.persister.Save(s.entries); err != nil {
		s.logger.Error("failed to persist journal snapshot", "error", err.Error())
	}
}
