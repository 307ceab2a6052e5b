package service

import (
	"sync"
	"time"
)

// SessionTracker holds the in-memory map of users currently in voice and
// when they joined. It is the single source of truth for open sessions;
// nothing here touches the database.
type SessionTracker struct {
	mu       sync.Mutex
	sessions map[int64]time.Time
}

// NewSessionTracker creates an empty tracker
func NewSessionTracker() *SessionTracker {
	return &SessionTracker{
		sessions: make(map[int64]time.Time),
	}
}

// Begin records a user joining voice. A second Begin for the same user
// overwrites any stale entry, so an unsettled earlier segment is never
// double counted.
func (t *SessionTracker) Begin(userID int64, at time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.sessions[userID] = at
}

// End removes and returns a user's session start. The entry is consumed
// under the lock, so concurrent settles of the same session see it exactly
// once.
func (t *SessionTracker) End(userID int64) (time.Time, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	start, ok := t.sessions[userID]
	if ok {
		delete(t.sessions, userID)
	}
	return start, ok
}

// Peek returns a user's session start without consuming it
func (t *SessionTracker) Peek(userID int64) (time.Time, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	start, ok := t.sessions[userID]
	return start, ok
}

// Snapshot copies the open sessions map
func (t *SessionTracker) Snapshot() map[int64]time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make(map[int64]time.Time, len(t.sessions))
	for userID, start := range t.sessions {
		out[userID] = start
	}
	return out
}
