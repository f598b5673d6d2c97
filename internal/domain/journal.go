// File: internal/domain/journal.go
package domain

import (
	"errors"
	"time"
)

// Journal entry kinds. A voice entry carries one or more audio references;
// a text entry carries written content.
const (
	JournalKindText  = "text"
	JournalKindVoice = "voice"
)

// JournalEntry is one user-authored record, either written text or a set of
// voice recordings referenced by audio blob id.
type JournalEntry struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Kind      string    `json:"kind"`
	AudioRefs []string  `json:"audio_refs"`
	CreatedAt time.Time `json:"created_at"`
}

// DeriveJournalKind picks the entry kind from its audio references.
func DeriveJournalKind(audioRefs []string) string {
	if len(audioRefs) > 0 {
		return JournalKindVoice
	}
	return JournalKindText
}

func (e *JournalEntry) IsValid() error {
	if e.Title == "" {
		return errors.New("title is required")
	}
	if e.Content == "" && len(e.AudioRefs) == 0 {
		return errors.New("entry needs written content or at least one recording")
	}
	return nil
}
