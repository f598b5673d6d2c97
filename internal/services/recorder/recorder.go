// File: internal/services/recorder/recorder.go
package recorder

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/chadhq/chad-backend/internal/domain"
	"github.com/chadhq/chad-backend/internal/repository/audio"
	"github.com/chadhq/chad-backend/internal/services"
)

const DefaultMimeType = "audio/webm"

var (
	ErrRecordingFinalized = errors.New("recording already finalized")
	ErrEmptyRecording     = errors.New("recording captured no audio")
)

// Recording accumulates audio chunks until finished. One recording becomes
// exactly one blob.
type Recording struct {
	mu        sync.Mutex
	mimeType  string
	buf       bytes.Buffer
	finalized bool

	stream Stream
	pumped chan struct{}
}

// Append adds one data-available chunk.
func (r *Recording) Append(chunk []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.finalized {
		return ErrRecordingFinalized
	}
	_, _ = r.buf.Write(chunk)
	return nil
}

func (r *Recording) finalize() ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.finalized {
		return nil, ErrRecordingFinalized
	}
	r.finalized = true
	if r.buf.Len() == 0 {
		return nil, ErrEmptyRecording
	}
	return r.buf.Bytes(), nil
}

// Service drives recordings and persists the finished blobs.
type Service struct {
	device CaptureDevice
	blobs  audio.AudioRepository
	logger services.Logger
}

func NewService(device CaptureDevice, blobs audio.AudioRepository, logger services.Logger) *Service {
	return &Service{device: device, blobs: blobs, logger: logger}
}

// Start acquires the capture device and begins accumulating its chunks.
// A denied device leaves no recording state behind.
func (s *Service) Start(ctx context.Context, mimeType string) (*Recording, error) {
	stream, err := s.device.RequestAccess(ctx)
	if err != nil {
		s.logger.Warn("capture device unavailable", "error", err.Error())
		return nil, fmt.Errorf("starting recording: %w", err)
	}

	rec := s.NewUpload(mimeType)
	rec.stream = stream
	rec.pumped = make(chan struct{})
	go func() {
		defer close(rec.pumped)
		for chunk := range stream.Chunks() {
			if err := rec.Append(chunk); err != nil {
				return
			}
		}
	}()
	return rec, nil
}

// NewUpload opens a recording fed by a transport (multipart body or
// websocket frames) instead of a local capture device.
func (s *Service) NewUpload(mimeType string) *Recording {
	if mimeType == "" {
		mimeType = DefaultMimeType
	}
	return &Recording{mimeType: mimeType}
}

// Finish stops capture, assembles the chunks into a single blob, persists it
// and returns the reference id journal entries use.
func (s *Service) Finish(ctx context.Context, rec *Recording) (string, error) {
	if rec.stream != nil {
		// Releasing the device ends the chunk channel; wait for the pump so
		// every delivered chunk lands in the buffer.
		_ = rec.stream.Close()
		<-rec.pumped
	}

	data, err := rec.finalize()
	if err != nil {
		return "", err
	}

	blob := &domain.AudioBlob{
		ID:        uuid.NewString(),
		MimeType:  rec.mimeType,
		Data:      data,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.blobs.Save(ctx, blob); err != nil {
		s.logger.Error("failed to save recording", "error", err.Error())
		return "", err
	}

	s.logger.Info("recording finalized", "ref", blob.ID, "bytes", len(data))
	return blob.ID, nil
}

// Blob fetches a stored recording for playback.
func (s *Service) Blob(ctx context.Context, ref string) (*domain.AudioBlob, error) {
	return s.blobs.FindByID(ctx, ref)
}
