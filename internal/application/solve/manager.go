// Package solve holds the in-memory exam-taking sessions. Sessions are
// scoped to one sitting, owned by one user and never persisted; a process
// restart ends every sitting in progress.
package solve

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shiken-app/shiken/internal/domain/exam"
	vo "github.com/shiken-app/shiken/internal/domain/problem/valueobjects"
)

// Entry pairs a session with its owner and, for practice, the drawing pool.
type Entry struct {
	Session      *exam.Session
	UserID       uint
	PracticeType vo.ProblemType
	mu           sync.Mutex
	lastAccess   time.Time
}

// Lock serializes operations on the session. The domain session is not
// safe for concurrent use, so callers hold the entry lock across the
// mutation and the snapshot they return.
func (e *Entry) Lock() { e.mu.Lock() }

func (e *Entry) Unlock() { e.mu.Unlock() }

// SessionManager is the process-wide registry of live sittings.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*Entry
}

func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*Entry),
	}
}

// NewID returns a fresh session identifier.
func (m *SessionManager) NewID() string {
	return uuid.NewString()
}

// Put registers a session under its ID.
func (m *SessionManager) Put(entry *Entry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry.lastAccess = time.Now()
	m.sessions[entry.Session.ID()] = entry
}

// Get returns the session entry owned by userID, or false when the session
// does not exist or belongs to someone else. Ownership mismatches are
// indistinguishable from missing sessions on purpose.
func (m *SessionManager) Get(sessionID string, userID uint) (*Entry, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.sessions[sessionID]
	if !ok || entry.UserID != userID {
		return nil, false
	}
	entry.lastAccess = time.Now()
	return entry, true
}

// Delete drops a session.
func (m *SessionManager) Delete(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
}

// Len reports the number of live sessions.
func (m *SessionManager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep drops sessions idle longer than maxIdle and returns how many were
// removed.
func (m *SessionManager) Sweep(maxIdle time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-maxIdle)
	removed := 0
	for id, entry := range m.sessions {
		if entry.lastAccess.Before(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

// StartJanitor sweeps idle sessions on an interval until stop is closed.
func (m *SessionManager) StartJanitor(interval, maxIdle time.Duration) (stop func()) {
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.Sweep(maxIdle)
			case <-done:
				return
			}
		}
	}()
	return func() { close(done) }
}
