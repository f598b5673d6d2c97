// File: internal/services/recorder/recorder_test.go
package recorder_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/chadhq/chad-backend/internal/domain"
	"github.com/chadhq/chad-backend/internal/services"
	"github.com/chadhq/chad-backend/internal/services/recorder"
)

// fakeStream plays back a fixed chunk sequence.
type fakeStream struct {
	ch     chan []byte
	closed bool
}

func newFakeStream(chunks ...[]byte) *fakeStream {
	ch := make(chan []byte, len(chunks))
	for _, c := range chunks {
		ch <- c
	}
	return &fakeStream{ch: ch}
}

func (s *fakeStream) Chunks() <-chan []byte { return s.ch }

func (s *fakeStream) Close() error {
	if !s.closed {
		s.closed = true
		close(s.ch)
	}
	return nil
}

type fakeDevice struct {
	stream *fakeStream
	err    error
}

func (d *fakeDevice) RequestAccess(ctx context.Context) (recorder.Stream, error) {
	if d.err != nil {
		return nil, d.err
	}
	return d.stream, nil
}

// fakeBlobRepo keeps saved blobs in memory.
type fakeBlobRepo struct {
	blobs map[string]*domain.AudioBlob
}

func newFakeBlobRepo() *fakeBlobRepo {
	return &fakeBlobRepo{blobs: map[string]*domain.AudioBlob{}}
}

func (f *fakeBlobRepo) Save(ctx context.Context, blob *domain.AudioBlob) error {
	f.blobs[blob.ID] = blob
	return nil
}

func (f *fakeBlobRepo) FindByID(ctx context.Context, id string) (*domain.AudioBlob, error) {
	if b, ok := f.blobs[id]; ok {
		return b, nil
	}
	return nil, errors.New("blob not found")
}

func (f *fakeBlobRepo) Delete(ctx context.Context, id string) error {
	delete(f.blobs, id)
	return nil
}

func TestRecordingAssemblesChunksInOrder(t *testing.T) {
	stream := newFakeStream([]byte("one"), []byte("two"), []byte("three"))
	blobs := newFakeBlobRepo()
	svc := recorder.NewService(&fakeDevice{stream: stream}, blobs, &services.NoOpLogger{})
	ctx := context.Background()

	rec, err := svc.Start(ctx, "audio/webm")
	if err != nil {
		t.Fatalf("Start err: %v", err)
	}
	stream.Close()

	ref, err := svc.Finish(ctx, rec)
	if err != nil {
		t.Fatalf("Finish err: %v", err)
	}

	blob, err := svc.Blob(ctx, ref)
	if err != nil {
		t.Fatalf("Blob err: %v", err)
	}
	if !bytes.Equal(blob.Data, []byte("onetwothree")) {
		t.Fatalf("blob data: got %q", blob.Data)
	}
	if blob.MimeType != "audio/webm" {
		t.Fatalf("mime type: got %q", blob.MimeType)
	}
}

func TestStartDeniedLeavesNoState(t *testing.T) {
	blobs := newFakeBlobRepo()
	svc := recorder.NewService(&fakeDevice{err: recorder.ErrAccessDenied}, blobs, &services.NoOpLogger{})

	rec, err := svc.Start(context.Background(), "")
	if !errors.Is(err, recorder.ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied, got %v", err)
	}
	if rec != nil {
		t.Fatal("expected no recording on denial")
	}
	if len(blobs.blobs) != 0 {
		t.Fatal("denial persisted a blob")
	}
}

func TestNoDeviceAlwaysDenies(t *testing.T) {
	if _, err := (recorder.NoDevice{}).RequestAccess(context.Background()); !errors.Is(err, recorder.ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied, got %v", err)
	}
}

func TestUploadRecordingRoundTrip(t *testing.T) {
	blobs := newFakeBlobRepo()
	svc := recorder.NewService(recorder.NoDevice{}, blobs, &services.NoOpLogger{})
	ctx := context.Background()

	rec := svc.NewUpload("")
	if err := rec.Append([]byte("chunk")); err != nil {
		t.Fatalf("Append err: %v", err)
	}

	ref, err := svc.Finish(ctx, rec)
	if err != nil {
		t.Fatalf("Finish err: %v", err)
	}
	blob, err := svc.Blob(ctx, ref)
	if err != nil {
		t.Fatalf("Blob err: %v", err)
	}
	if blob.MimeType != recorder.DefaultMimeType {
		t.Fatalf("mime type: got %q want default %q", blob.MimeType, recorder.DefaultMimeType)
	}
}

func TestFinishEmptyRecording(t *testing.T) {
	svc := recorder.NewService(recorder.NoDevice{}, newFakeBlobRepo(), &services.NoOpLogger{})

	if _, err := svc.Finish(context.Background(), svc.NewUpload("")); !errors.Is(err, recorder.ErrEmptyRecording) {
		t.Fatalf("expected ErrEmptyRecording, got %v", err)
	}
}

func TestAppendAfterFinishFails(t *testing.T) {
	svc := recorder.NewService(recorder.NoDevice{}, newFakeBlobRepo(), &services.NoOpLogger{})
	ctx := context.Background()

	rec := svc.NewUpload("")
	rec.Append([]byte("data"))
	if _, err := svc.Finish(ctx, rec); err != nil {
		t.Fatalf("Finish err: %v", err)
	}
	if err := rec.Append([]byte("late")); !errors.Is(err, recorder.ErrRecordingFinalized) {
		t.Fatalf("expected ErrRecordingFinalized, got %v", err)
	}
}

func TestPlayerSingleSlot(t *testing.T) {
	p := recorder.NewPlayer()

	if !p.Toggle(1, "a") {
		t.Fatal("first toggle should start playback")
	}
	if got := p.Playing(1); got != "a" {
		t.Fatalf("playing: got %q want %q", got, "a")
	}

	// Switching refs stops the old one implicitly.
	if !p.Toggle(1, "b") {
		t.Fatal("toggling a different ref should start it")
	}
	if got := p.Playing(1); got != "b" {
		t.Fatalf("playing: got %q want %q", got, "b")
	}

	// Toggling the playing ref stops it.
	if p.Toggle(1, "b") {
		t.Fatal("toggling the playing ref should stop it")
	}
	if got := p.Playing(1); got != "" {
		t.Fatalf("playing after stop: got %q want empty", got)
	}

	p.Toggle(1, "c")
	p.Stop(1)
	if got := p.Playing(1); got != "" {
		t.Fatalf("playing after Stop: got %q want empty", got)
	}
}

func TestPlayerSlotsAreIsolatedPerUser(t *testing.T) {
	p := recorder.NewPlayer()

	if !p.Toggle(1, "ref-user1") {
		t.Fatal("user 1's first toggle should start playback")
	}
	if !p.Toggle(2, "ref-user2") {
		t.Fatal("user 2's first toggle should start playback")
	}

	// User 2's playback did not touch user 1's slot.
	if got := p.Playing(1); got != "ref-user1" {
		t.Fatalf("user 1 playing: got %q want %q", got, "ref-user1")
	}

	// User 1 toggling their still-playing ref stops it, not restarts it.
	if p.Toggle(1, "ref-user1") {
		t.Fatal("toggling user 1's playing ref should stop it")
	}
	if got := p.Playing(2); got != "ref-user2" {
		t.Fatalf("user 2 playing after user 1 stop: got %q want %q", got, "ref-user2")
	}
}
