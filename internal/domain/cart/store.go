// internal/domain/cart/store.go
package cart

import (
	"fmt"
	"sync"

	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/pkg/notify"
)

// Persister mirrors the line sequence to durable storage. Implementations
// are best-effort: they never return errors to the store and treat
// unreadable persisted state as absent.
type Persister interface {
	SaveCart(lines []Line)
	LoadCart() []Line
}

// Store holds the ordered line items of one client session's cart. All
// operations are total: unknown product ids are silent no-ops, and there is
// no error channel. Every mutation re-persists the full line sequence.
type Store struct {
	mu        sync.Mutex
	lines     []Line
	persister Persister
	notifier  notify.Notifier
}

// NewStore creates a cart store, rehydrating any persisted line sequence
func NewStore(persister Persister, notifier notify.Notifier) *Store {
	return &Store{
		lines:     persister.LoadCart(),
		persister: persister,
		notifier:  notifier,
	}
}

// AddItem adds quantity units of a product to the cart. A repeat add for the
// same product id increments the existing line in place, preserving its
// insertion position. Non-positive quantities are rejected as no-ops.
func (s *Store) AddItem(product catalog.Product, quantity int) {
	if quantity <= 0 {
		return
	}

	s.mu.Lock()
	for i := range s.lines {
		if s.lines[i].Product.ID == product.ID {
			s.lines[i].Quantity += quantity
			s.persist()
			s.mu.Unlock()

			s.notifier.Notify(notify.Notification{
				Title:       "Added to cart",
				Description: fmt.Sprintf("%s has been added to your cart.", product.Name),
			})
			return
		}
	}

	s.lines = append(s.lines, Line{Product: product, Quantity: quantity})
	s.persist()
	s.mu.Unlock()

	s.notifier.Notify(notify.Notification{
		Title:       "Added to cart",
		Description: fmt.Sprintf("%s has been added to your cart.", product.Name),
	})
}

// UpdateQuantity replaces the quantity of the matching line. A quantity of
// zero or less removes the line; a zero or negative quantity is never
// stored. Unknown product ids are a no-op.
func (s *Store) UpdateQuantity(productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Product.ID != productID {
			continue
		}
		if quantity <= 0 {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
		} else {
			s.lines[i].Quantity = quantity
		}
		s.persist()
		return
	}
}

// RemoveItem deletes the line for the given product id, if present
func (s *Store) RemoveItem(productID string) {
	s.mu.Lock()
	for i := range s.lines {
		if s.lines[i].Product.ID != productID {
			continue
		}
		s.lines = append(s.lines[:i], s.lines[i+1:]...)
		s.persist()
		s.mu.Unlock()

		s.notifier.Notify(notify.Notification{
			Title:       "Item removed",
			Description: "The item has been removed from your cart.",
		})
		return
	}
	s.mu.Unlock()
}

// Clear empties the cart
func (s *Store) Clear() {
	s.mu.Lock()
	s.lines = nil
	s.persist()
	s.mu.Unlock()

	s.notifier.Notify(notify.Notification{
		Title:       "Cart cleared",
		Description: "All items have been removed from your cart.",
	})
}

// Snapshot returns a copy of the current line sequence and the derived item
// count (sum of quantities, used by the navigation badge)
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]Line, len(s.lines))
	copy(lines, s.lines)

	count := 0
	for _, l := range lines {
		count += l.Quantity
	}

	return Snapshot{Lines: lines, ItemCount: count}
}

// persist mirrors the full current line sequence; callers hold s.mu
func (s *Store) persist() {
	lines := make([]Line, len(s.lines))
	copy(lines, s.lines)
	s.persister.SaveCart(lines)
}
