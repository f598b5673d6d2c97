// File: internal/domain/audio.go
package domain

import "time"

// AudioBlob is one finalized recording. Journal entries reference it by ID.
type AudioBlob struct {
	ID        string    `gorm:"primarykey" json:"id"`
	MimeType  string    `gorm:"not null" json:"mime_type"`
	Data      []byte    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
