// File: internal/uistate/store_test.go
package uistate_test

import (
	"errors"
	"testing"

	"github.com/chadhq/chad-backend/internal/uistate"
)

func TestGetReturnsDefaultsOnFirstUse(t *testing.T) {
	store := uistate.NewStore()

	st := store.Get(1)
	if st.Theme != uistate.ThemeLight {
		t.Fatalf("theme: got %q want %q", st.Theme, uistate.ThemeLight)
	}
	if st.ActiveTab != uistate.TabHome {
		t.Fatalf("active tab: got %q want %q", st.ActiveTab, uistate.TabHome)
	}
	if !st.Notifications {
		t.Fatal("notifications should default to on")
	}
}

func TestMutationsPersistPerUser(t *testing.T) {
	store := uistate.NewStore()

	if _, err := store.SetTheme(1, uistate.ThemeDark); err != nil {
		t.Fatalf("SetTheme err: %v", err)
	}
	if _, err := store.SetActiveTab(1, uistate.TabJournal); err != nil {
		t.Fatalf("SetActiveTab err: %v", err)
	}
	store.SetNotifications(1, false)

	st := store.Get(1)
	if st.Theme != uistate.ThemeDark || st.ActiveTab != uistate.TabJournal || st.Notifications {
		t.Fatalf("unexpected state: %+v", st)
	}

	// Another user still sees the defaults.
	other := store.Get(2)
	if other != uistate.DefaultState() {
		t.Fatalf("other user state: %+v", other)
	}
}

func TestInvalidValuesLeaveStateUnchanged(t *testing.T) {
	store := uistate.NewStore()

	if _, err := store.SetTheme(1, "sepia"); !errors.Is(err, uistate.ErrUnknownTheme) {
		t.Fatalf("expected ErrUnknownTheme, got %v", err)
	}
	if _, err := store.SetActiveTab(1, "profile"); !errors.Is(err, uistate.ErrUnknownTab) {
		t.Fatalf("expected ErrUnknownTab, got %v", err)
	}

	if st := store.Get(1); st != uistate.DefaultState() {
		t.Fatalf("rejected mutation changed state: %+v", st)
	}
}
