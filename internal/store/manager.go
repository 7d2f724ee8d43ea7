package store

import (
	"sync"
	"time"

	"github.com/Ratheesh-24/ai-resume-builder-lab/internal/domain"
)

// Manager is the in-memory session registry. Each session owns one Store;
// nothing is persisted, sessions simply age out.
type Manager struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]*entry
}

type entry struct {
	session *domain.Session
	store   *Store
}

func NewManager(ttl time.Duration) *Manager {
	return &Manager{ttl: ttl, sessions: make(map[string]*entry)}
}

// Create starts a new session with an empty document.
func (m *Manager) Create() *domain.Session {
	sess := domain.NewSession()
	m.mu.Lock()
	m.sessions[sess.ID.String()] = &entry{session: sess, store: New()}
	m.mu.Unlock()
	return sess
}

// Get returns the session and its store, refreshing the idle timer.
func (m *Manager) Get(id string) (*domain.Session, *Store, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.sessions[id]
	if !ok {
		return nil, nil, domain.ErrSessionNotFound
	}
	if m.ttl > 0 && time.Since(e.session.LastSeen) > m.ttl {
		delete(m.sessions, id)
		return nil, nil, domain.ErrSessionNotFound
	}
	e.session.Touch()
	return e.session, e.store, nil
}

// Sweep drops sessions idle for longer than the ttl and reports how many
// were removed.
func (m *Manager) Sweep() int {
	if m.ttl <= 0 {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for id, e := range m.sessions {
		if time.Since(e.session.LastSeen) > m.ttl {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
