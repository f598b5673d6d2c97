// File: internal/services/reply/interface.go
package reply

import "context"

// Provider produces the chatbot's answer to one user message. The chat
// controller never knows whether the text comes from a canned stub or a real
// model; delay and wording live entirely behind this boundary.
type Provider interface {
	Reply(ctx context.Context, prompt string) (string, error)
}
