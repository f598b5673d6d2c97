// File: internal/uistate/store.go
package uistate

import (
	"errors"
	"sync"
)

// Themes and tabs known to the shell. The auth surface is outside the tab
// set; everything after sign-in lives under one of these tabs.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

const (
	TabHome      = "home"
	TabChat      = "chat"
	TabHistory   = "history"
	TabJournal   = "journal"
	TabResources = "resources"
	TabSettings  = "settings"
)

var (
	ErrUnknownTheme = errors.New("unknown theme")
	ErrUnknownTab   = errors.New("unknown tab")
)

// State is the shell-wide UI state for one user. It is owned here and
// injected into views; views never declare their own copy.
type State struct {
	Theme         string `json:"theme"`
	ActiveTab     string `json:"active_tab"`
	Notifications bool   `json:"notifications"`
}

// DefaultState is the explicit initial state: light theme, home tab,
// notifications on.
func DefaultState() State {
	return State{Theme: ThemeLight, ActiveTab: TabHome, Notifications: true}
}

// Store holds per-user UI state with explicit mutation entry points.
type Store struct {
	mu     sync.Mutex
	states map[uint]State
}

func NewStore() *Store {
	return &Store{states: make(map[uint]State)}
}

// Get returns the user's state, initialized to the defaults on first use.
func (s *Store) Get(userID uint) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.states[userID]; ok {
		return st
	}
	return DefaultState()
}

func (s *Store) SetTheme(userID uint, theme string) (State, error) {
	if theme != ThemeLight && theme != ThemeDark {
		return State{}, ErrUnknownTheme
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.getLocked(userID)
	st.Theme = theme
	s.states[userID] = st
	return st, nil
}

func (s *Store) SetActiveTab(userID uint, tab string) (State, error) {
	switch tab {
	case TabHome, TabChat, TabHistory, TabJournal, TabResources, TabSettings:
	default:
		return State{}, ErrUnknownTab
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.getLocked(userID)
	st.ActiveTab = tab
	s.states[userID] = st
	return st, nil
}

func (s *Store) SetNotifications(userID uint, enabled bool) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.getLocked(userID)
	st.Notifications = enabled
	s.states[userID] = st
	return st
}

func (s *Store) getLocked(userID uint) State {
	if st, ok := s.states[userID]; ok {
		return st
	}
	return DefaultState()
}
