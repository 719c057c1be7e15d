// apps/go-solver/internal/store/memory.go
//
// In-memory session store backing the HTTP API.
//
// Characteristics:
//   - Holds *session.Session values keyed by ID.
//   - Concurrency-safe via RWMutex (concurrent reads, exclusive writes).
//   - State is lost when the process restarts; sessions are never resumed
//     across runs.
//   - Over capacity, finished sessions are evicted first, then the least
//     recently saved live ones.
//   - Eviction only reads state captured at Save, never other sessions.

package store

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/robalobadob/wordle/apps/go-solver/internal/session"
)

// ErrNotFound is returned by Get for unknown IDs.
var ErrNotFound = errors.New("session not found")

// Store defines the persistence interface for live sessions.
type Store interface {
	// Save adds or replaces a session.
	Save(ctx context.Context, s *session.Session) error

	// Get retrieves a session by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*session.Session, error)

	// Len reports how many sessions are held.
	Len() int
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex
	sessions map[string]*session.Session
	done     map[string]bool // finished flag captured at Save time
	order    []string        // least recently saved first
	capacity int
}

// NewMemoryStore constructs an in-memory Store. capacity <= 0 means unbounded.
func NewMemoryStore(capacity int) Store {
	return &memory{
		sessions: make(map[string]*session.Session),
		done:     make(map[string]bool),
		capacity: capacity,
	}
}

// Save adds or replaces the session and marks it most recently used. Over
// capacity, finished sessions go first, oldest first; then the least
// recently saved live sessions.
func (m *memory) Save(ctx context.Context, s *session.Session) error {
	id := s.ID()
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; ok {
		m.order = slices.DeleteFunc(m.order, func(o string) bool { return o == id })
	}
	m.order = append(m.order, id)
	m.sessions[id] = s
	m.done[id] = s.Done()
	m.evict(id)
	return nil
}

// evict never removes keep, the session being saved.
func (m *memory) evict(keep string) {
	if m.capacity <= 0 || len(m.sessions) <= m.capacity {
		return
	}
	for _, finishedOnly := range []bool{true, false} {
		kept := m.order[:0]
		for _, id := range m.order {
			if len(m.sessions) > m.capacity && id != keep && (m.done[id] || !finishedOnly) {
				delete(m.sessions, id)
				delete(m.done, id)
				continue
			}
			kept = append(kept, id)
		}
		m.order = kept
	}
}

// Get looks up a session by ID.
func (m *memory) Get(ctx context.Context, id string) (*session.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
