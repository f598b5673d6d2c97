// File: internal/store/session/store_test.go
package session_test

import (
	"testing"
	"time"

	"github.com/chadhq/chad-backend/internal/domain"
	"github.com/chadhq/chad-backend/internal/store/session"
)

func userMsg(text string) domain.ChatMessage {
	return domain.ChatMessage{Content: text, Sender: domain.SenderUser, CreatedAt: time.Now().UTC()}
}

func TestCreateSetsActiveAndSeedsFirstMessage(t *testing.T) {
	store := session.NewStore()

	sess := store.Create(1, "Hello", userMsg("Hello"))
	if sess.ID == "" {
		t.Fatal("expected a session id")
	}
	if got := store.ActiveID(1); got != sess.ID {
		t.Fatalf("active id: got %q want %q", got, sess.ID)
	}

	msgs, err := store.Messages(1, sess.ID)
	if err != nil {
		t.Fatalf("Messages err: %v", err)
	}
	if len(msgs) != 1 || msgs[0].Content != "Hello" {
		t.Fatalf("unexpected messages: %+v", msgs)
	}
}

func TestCreateIDsAreUniquePerUser(t *testing.T) {
	store := session.NewStore()

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		sess := store.Create(1, "s", userMsg("s"))
		if seen[sess.ID] {
			t.Fatalf("duplicate session id %q", sess.ID)
		}
		seen[sess.ID] = true
	}
}

func TestAppendToUnknownSession(t *testing.T) {
	store := session.NewStore()
	if err := store.Append(1, "missing", userMsg("x")); err != session.ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSetActiveAndClearActive(t *testing.T) {
	store := session.NewStore()
	first := store.Create(1, "first", userMsg("first"))
	second := store.Create(1, "second", userMsg("second"))

	if got := store.ActiveID(1); got != second.ID {
		t.Fatalf("active id after second create: got %q want %q", got, second.ID)
	}

	if err := store.SetActive(1, first.ID); err != nil {
		t.Fatalf("SetActive err: %v", err)
	}
	if got := store.ActiveID(1); got != first.ID {
		t.Fatalf("active id: got %q want %q", got, first.ID)
	}

	store.ClearActive(1)
	if got := store.ActiveID(1); got != "" {
		t.Fatalf("active id after clear: got %q want empty", got)
	}

	if err := store.SetActive(1, "missing"); err != session.ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestLatestIDFollowsCreationOrder(t *testing.T) {
	store := session.NewStore()
	if got := store.LatestID(1); got != "" {
		t.Fatalf("latest id with no sessions: got %q", got)
	}

	store.Create(1, "a", userMsg("a"))
	second := store.Create(1, "b", userMsg("b"))
	if got := store.LatestID(1); got != second.ID {
		t.Fatalf("latest id: got %q want %q", got, second.ID)
	}
}

func TestSessionsAreCopies(t *testing.T) {
	store := session.NewStore()
	sess := store.Create(1, "t", userMsg("t"))

	list := store.Sessions(1)
	list[0].Messages[0].Content = "mutated"

	msgs, err := store.Messages(1, sess.ID)
	if err != nil {
		t.Fatalf("Messages err: %v", err)
	}
	if msgs[0].Content != "t" {
		t.Fatal("store state leaked through a returned copy")
	}
}

func TestUsersAreIsolated(t *testing.T) {
	store := session.NewStore()
	sess := store.Create(1, "mine", userMsg("mine"))

	if _, err := store.Messages(2, sess.ID); err != session.ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound for other user, got %v", err)
	}
	if got := store.Sessions(2); len(got) != 0 {
		t.Fatalf("expected no sessions for other user, got %d", len(got))
	}
}
