package pos

import (
	"sync"

	"github.com/google/uuid"

	"zeneva/internal/domain"
)

// Manager owns the live sessions for a process. Each session belongs
// to exactly one register tab; the mutex only guards against the same
// session id arriving on overlapping HTTP requests, not concurrent
// multi-user editing, which the product does not have.
type Manager struct {
	mu           sync.Mutex
	sessions     map[string]*Session
	houseTaxRate float64
}

// NewManager creates a Manager whose sessions start at the house
// default tax rate.
func NewManager(houseTaxRatePct float64) *Manager {
	return &Manager{
		sessions:     make(map[string]*Session),
		houseTaxRate: houseTaxRatePct,
	}
}

// Open creates a fresh empty session and returns its snapshot.
func (m *Manager) Open() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := NewSession(uuid.NewString(), m.houseTaxRate)
	m.sessions[s.ID()] = s
	return s.Snapshot()
}

// Get returns the snapshot for an open session.
func (m *Manager) Get(id string) (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return Snapshot{}, domain.ErrNotFound
	}
	return s.Snapshot(), nil
}

// Mutate runs fn against the session under the manager lock and
// returns the resulting snapshot.
func (m *Manager) Mutate(id string, fn func(*Session)) (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return Snapshot{}, domain.ErrNotFound
	}
	fn(s)
	return s.Snapshot(), nil
}

// Close discards a session. Abandoned sessions have no persisted state
// to reconcile, so closing is just deletion.
func (m *Manager) Close(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}
