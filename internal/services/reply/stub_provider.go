// File: internal/services/reply/stub_provider.go
package reply

import (
	"context"
	"fmt"
	"time"
)

// StubProvider echoes a canned response after a fixed delay. It stands in
// for an inference backend during development and in tests.
type StubProvider struct {
	Delay time.Duration
}

func NewStubProvider(delay time.Duration) *StubProvider {
	return &StubProvider{Delay: delay}
}

func (p *StubProvider) Reply(ctx context.Context, prompt string) (string, error) {
	if p.Delay > 0 {
		timer := time.NewTimer(p.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-timer.C:
		}
	}
	// Raw interpolation: quotes and backslashes in the prompt pass through
	// unescaped.
	return fmt.Sprintf("This is a response to: \"%s\"", prompt), nil
}
