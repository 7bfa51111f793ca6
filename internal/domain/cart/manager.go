// internal/domain/cart/manager.go
package cart

import (
	"sync"

	"github.com/your-org/storefront-backend/internal/pkg/notify"
)

// PersisterFactory builds the persister scoped to one client session
type PersisterFactory func(sessionID string) Persister

// Manager hands out the cart store owned by each client session. A store is
// created (and rehydrated from persistence) on first use and reused for the
// lifetime of the process.
type Manager struct {
	mu       sync.Mutex
	stores   map[string]*Store
	factory  PersisterFactory
	notifier notify.Notifier
}

// NewManager creates a cart store manager
func NewManager(factory PersisterFactory, notifier notify.Notifier) *Manager {
	return &Manager{
		stores:   make(map[string]*Store),
		factory:  factory,
		notifier: notifier,
	}
}

// For returns the cart store for a client session, creating it if needed
func (m *Manager) For(sessionID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	if store, ok := m.stores[sessionID]; ok {
		return store
	}

	store := NewStore(m.factory(sessionID), m.notifier)
	m.stores[sessionID] = store
	return store
}
