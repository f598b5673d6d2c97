// File: internal/domain/chat.go
package domain

import "time"

// Message senders. Replies always come from the bot, whatever produces them.
const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// ChatMessage is a single turn in a session. Immutable once created.
type ChatMessage struct {
	Content   string    `json:"content"`
	Sender    string    `json:"sender"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatSession is one conversation thread. The title is derived from the
// first message and set once at creation.
type ChatSession struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Messages  []ChatMessage `json:"messages"`
	CreatedAt time.Time     `json:"created_at"`
}
