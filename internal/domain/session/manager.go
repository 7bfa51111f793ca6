// internal/domain/session/manager.go
package session

import (
	"sync"
	"time"

	"github.com/your-org/storefront-backend/internal/pkg/auth"
	"github.com/your-org/storefront-backend/internal/pkg/notify"
)

// PersisterFactory builds the persister scoped to one client session
type PersisterFactory func(sessionID string) Persister

// Manager hands out the session store owned by each client context,
// creating and hydrating it on first use
type Manager struct {
	mu       sync.Mutex
	stores   map[string]*Store
	factory  PersisterFactory
	notifier notify.Notifier
	policy   *auth.CredentialPolicy
	latency  time.Duration
}

// NewManager creates a session store manager
func NewManager(factory PersisterFactory, notifier notify.Notifier, policy *auth.CredentialPolicy, latency time.Duration) *Manager {
	return &Manager{
		stores:   make(map[string]*Store),
		factory:  factory,
		notifier: notifier,
		policy:   policy,
		latency:  latency,
	}
}

// For returns the session store for a client context, creating it if needed
func (m *Manager) For(sessionID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	if store, ok := m.stores[sessionID]; ok {
		return store
	}

	store := NewStore(m.factory(sessionID), m.notifier, m.policy, m.latency)
	m.stores[sessionID] = store
	return store
}
