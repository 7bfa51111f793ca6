// internal/persist/bridge.go
package persist

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/session"
)

// schemaVersion tags every persisted record. Records with any other version
// are discarded on load rather than trusted on structural parse success.
const schemaVersion = 1

const opTimeout = 3 * time.Second

// cartRecord is the persisted shape of a cart
type cartRecord struct {
	Version int         `json:"version"`
	Items   []cart.Line `json:"items"`
}

// userRecord is the persisted shape of a session user
type userRecord struct {
	Version int             `json:"version"`
	User    session.Profile `json:"user"`
}

// Bridge mirrors one client session's cart and session state to durable
// key-value storage. It is best-effort by contract: no fault crosses its
// boundary. Serialization and storage errors are logged and downgraded to
// "treat as absent".
type Bridge struct {
	kv      KV
	cartKey string
	userKey string
	log     *logrus.Entry
}

// NewBridge creates a bridge scoped to one client session id
func NewBridge(kv KV, sessionID string, log *logrus.Logger) *Bridge {
	return &Bridge{
		kv:      kv,
		cartKey: fmt.Sprintf("cart:session:%s", sessionID),
		userKey: fmt.Sprintf("session:user:%s", sessionID),
		log:     log.WithField("session_id", sessionID),
	}
}

// SaveCart stores the full current line sequence
func (b *Bridge) SaveCart(lines []cart.Line) {
	data, err := json.Marshal(cartRecord{Version: schemaVersion, Items: lines})
	if err != nil {
		b.log.WithError(err).Warn("failed to serialize cart record")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if err := b.kv.Set(ctx, b.cartKey, string(data)); err != nil {
		b.log.WithError(err).Warn("failed to store cart record")
	}
}

// LoadCart reads the persisted line sequence. Missing, malformed, or
// invariant-violating records yield an empty cart, never a failure.
func (b *Bridge) LoadCart() []cart.Line {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	data, err := b.kv.Get(ctx, b.cartKey)
	if err == ErrNotFound {
		return nil
	}
	if err != nil {
		b.log.WithError(err).Warn("failed to read cart record")
		return nil
	}

	var record cartRecord
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		b.log.WithError(err).Warn("discarding malformed cart record")
		return nil
	}

	if err := validateCart(record); err != nil {
		b.log.WithError(err).Warn("discarding invalid cart record")
		return nil
	}

	return record.Items
}

// SaveUser stores the full profile
func (b *Bridge) SaveUser(p session.Profile) {
	data, err := json.Marshal(userRecord{Version: schemaVersion, User: p})
	if err != nil {
		b.log.WithError(err).Warn("failed to serialize session record")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if err := b.kv.Set(ctx, b.userKey, string(data)); err != nil {
		b.log.WithError(err).Warn("failed to store session record")
	}
}

// LoadUser reads the persisted profile, or nil when absent or invalid
func (b *Bridge) LoadUser() *session.Profile {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	data, err := b.kv.Get(ctx, b.userKey)
	if err == ErrNotFound {
		return nil
	}
	if err != nil {
		b.log.WithError(err).Warn("failed to read session record")
		return nil
	}

	var record userRecord
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		b.log.WithError(err).Warn("discarding malformed session record")
		return nil
	}

	if err := validateUser(record); err != nil {
		b.log.WithError(err).Warn("discarding invalid session record")
		return nil
	}

	return &record.User
}

// DeleteUser removes the persisted profile
func (b *Bridge) DeleteUser() {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if err := b.kv.Del(ctx, b.userKey); err != nil {
		b.log.WithError(err).Warn("failed to delete session record")
	}
}

// validateCart enforces the in-memory cart invariants on a deserialized
// record: known version, quantities >= 1, one line per product id, and
// non-negative prices
func validateCart(record cartRecord) error {
	if record.Version != schemaVersion {
		return fmt.Errorf("unknown cart record version %d", record.Version)
	}

	seen := make(map[string]bool, len(record.Items))
	for _, line := range record.Items {
		if line.Product.ID == "" {
			return fmt.Errorf("cart line missing product id")
		}
		if seen[line.Product.ID] {
			return fmt.Errorf("duplicate cart line for product %s", line.Product.ID)
		}
		seen[line.Product.ID] = true

		if line.Quantity < 1 {
			return fmt.Errorf("cart line for product %s has quantity %d", line.Product.ID, line.Quantity)
		}
		if line.Product.Price < 0 {
			return fmt.Errorf("cart line for product %s has negative price", line.Product.ID)
		}
		if line.Product.DiscountedPrice != nil && *line.Product.DiscountedPrice < 0 {
			return fmt.Errorf("cart line for product %s has negative discounted price", line.Product.ID)
		}
	}
	return nil
}

// validateUser enforces the session invariants on a deserialized record
func validateUser(record userRecord) error {
	if record.Version != schemaVersion {
		return fmt.Errorf("unknown session record version %d", record.Version)
	}
	if record.User.ID == "" {
		return fmt.Errorf("session record missing user id")
	}
	if record.User.Email == "" {
		return fmt.Errorf("session record missing email")
	}
	return nil
}
