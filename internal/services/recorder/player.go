// File: internal/services/recorder/player.go
package recorder

import "sync"

// Player tracks each user's single playback slot: per user, at most one
// audio reference is playing at a time, and it is tracked here rather than
// per reference. Users never share a slot.
type Player struct {
	mu      sync.Mutex
	playing map[uint]string
}

func NewPlayer() *Player {
	return &Player{playing: make(map[uint]string)}
}

// Toggle starts playback of ref for the user, implicitly stopping whatever
// else that user was playing. Toggling the currently playing ref stops it.
// Returns whether ref is now playing.
func (p *Player) Toggle(userID uint, ref string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.playing[userID] == ref {
		delete(p.playing, userID)
		return false
	}
	p.playing[userID] = ref
	return true
}

// Playing returns the ref the user is currently playing, or "".
func (p *Player) Playing(userID uint) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing[userID]
}

// Stop clears the user's slot, used when a recording ends on its own.
func (p *Player) Stop(userID uint) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.playing, userID)
}
