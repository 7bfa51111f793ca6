// internal/domain/cart/entity.go
package cart

import (
	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// Line is one product-quantity pairing within a cart. A cart holds at most
// one line per product id, and a line's quantity is always >= 1.
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Snapshot is a read-only copy of the cart state at a point in time, used
// for derived computations (totals, badges) without touching the live store
type Snapshot struct {
	Lines     []Line `json:"items"`
	ItemCount int    `json:"itemCount"`
}
