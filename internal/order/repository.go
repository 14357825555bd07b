package order

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/proyectoseconomicosexclusivos-cmd/configurador-ventanas/internal/pricing"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionRepository keeps one lifecycle per browser session, in memory
// only. Sessions do not survive a restart.
type SessionRepository struct {
	mu       sync.Mutex
	sessions map[string]*Lifecycle
	tables   pricing.Tables
	vatRate  float64
}

func NewSessionRepository(tables pricing.Tables, vatRate float64) *SessionRepository {
	return &SessionRepository{
		sessions: make(map[string]*Lifecycle),
		tables:   tables,
		vatRate:  vatRate,
	}
}

// Create opens a new session and returns its id.
func (r *SessionRepository) Create() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.NewString()
	r.sessions[id] = NewLifecycle(r.tables, r.vatRate)
	return id
}

// With runs fn against the session's lifecycle while holding the registry
// lock, so all transitions for one session apply serially.
func (r *SessionRepository) With(id string, fn func(*Lifecycle) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	lc, ok := r.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	return fn(lc)
}
