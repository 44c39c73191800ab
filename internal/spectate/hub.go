// Package spectate publishes live game snapshots to HTTP and websocket
// spectators.
package spectate

import (
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/vovakirdan/neon-snake/internal/game"
)

// subscriberBuffer is how many snapshots a slow spectator may lag behind
// before snapshots are dropped for it.
const subscriberBuffer = 16

// SessionInfo describes a running game.
type SessionInfo struct {
	ID       string    `json:"id"`
	User     string    `json:"user"`
	Started  time.Time `json:"started"`
	Tick     uint64    `json:"tick"`
	Score    int       `json:"score"`
	MaxScore int       `json:"max_score"`
}

type session struct {
	info   SessionInfo
	latest game.Snapshot
	subs   map[chan game.Snapshot]struct{}
}

// Hub tracks running sessions and fans snapshots out to subscribers.
// It is safe for concurrent use.
type Hub struct {
	mu       sync.RWMutex
	sessions map[string]*session
	now      func() time.Time
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		sessions: make(map[string]*session),
		now:      time.Now,
	}
}

// Register announces a session. Registering an existing id updates its user.
func (h *Hub) Register(id, user string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if s, ok := h.sessions[id]; ok {
		s.info.User = user
		return
	}
	h.sessions[id] = &session{
		info: SessionInfo{ID: id, User: user, Started: h.now()},
		subs: make(map[chan game.Snapshot]struct{}),
	}
}

// Publish stores snap as the session's latest state and forwards it to
// every subscriber without blocking. Unknown ids are registered on the fly.
func (h *Hub) Publish(id string, snap game.Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()

	s, ok := h.sessions[id]
	if !ok {
		s = &session{
			info: SessionInfo{ID: id, Started: h.now()},
			subs: make(map[chan game.Snapshot]struct{}),
		}
		h.sessions[id] = s
	}
	s.latest = snap
	s.info.Tick = snap.Tick
	s.info.Score = snap.Score
	s.info.MaxScore = snap.MaxScore

	for ch := range s.subs {
		select {
		case ch <- snap:
		default:
		}
	}
}

// Remove drops a session and closes its subscribers' channels.
func (h *Hub) Remove(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	s, ok := h.sessions[id]
	if !ok {
		return
	}
	for ch := range s.subs {
		close(ch)
	}
	delete(h.sessions, id)
}

// Sessions lists running sessions, oldest first.
func (h *Hub) Sessions() []SessionInfo {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]SessionInfo, 0, len(h.sessions))
	for _, s := range h.sessions {
		out = append(out, s.info)
	}
	slices.SortFunc(out, func(a, b SessionInfo) int {
		if c := a.Started.Compare(b.Started); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

// Latest returns the last snapshot published for id.
func (h *Hub) Latest(id string) (game.Snapshot, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	s, ok := h.sessions[id]
	if !ok {
		return game.Snapshot{}, false
	}
	return s.latest, true
}

// Subscribe returns a channel of snapshots for id and a cancel func.
// The channel is closed when the session is removed or cancel is called.
func (h *Hub) Subscribe(id string) (<-chan game.Snapshot, func(), bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	s, ok := h.sessions[id]
	if !ok {
		return nil, func() {}, false
	}
	ch := make(chan game.Snapshot, subscriberBuffer)
	s.subs[ch] = struct{}{}

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			// Remove may have closed it already.
			if cur, ok := h.sessions[id]; ok && cur == s {
				if _, live := s.subs[ch]; live {
					delete(s.subs, ch)
					close(ch)
				}
			}
		})
	}
	return ch, cancel, true
}

// Len returns the number of running sessions.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}
