// File: internal/services/recorder/device.go
package recorder

import (
	"context"
	"errors"
)

// ErrAccessDenied means the capture device refused access. Callers surface
// a notice and leave recording state unset.
var ErrAccessDenied = errors.New("audio capture access denied")

// Stream delivers captured audio chunks until closed. Closing the stream
// releases the underlying device.
type Stream interface {
	// Chunks yields data-available events in capture order. The channel is
	// closed when the stream ends.
	Chunks() <-chan []byte
	Close() error
}

// CaptureDevice is the platform microphone boundary.
type CaptureDevice interface {
	RequestAccess(ctx context.Context) (Stream, error)
}

// NoDevice is the capture device of a headless deployment: every access
// request is denied. Audio still arrives through upload and websocket
// ingestion, which feed recordings directly.
type NoDevice struct{}

func (NoDevice) RequestAccess(ctx context.Context) (Stream, error) {
	return nil, ErrAccessDenied
}
