// internal/domain/order/service.go
package order

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/pricing"
	"github.com/your-org/storefront-backend/internal/domain/session"
)

// Service handles order history and checkout order creation
type Service struct {
	repo Repository
	log  *logrus.Entry
}

// NewService creates a new order service
func NewService(repo Repository, log *logrus.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.WithField("component", "order"),
	}
}

// ListByUser returns a user's order history, newest first
func (s *Service) ListByUser(userID string) ([]Order, error) {
	return s.repo.ListByUser(userID)
}

// Get returns a single order, or nil if absent
func (s *Service) Get(id string) (*Order, error) {
	return s.repo.Get(id)
}

// CreateFromCart snapshots a cart into a new pending order at checkout time.
// Item prices capture the effective unit price at purchase, and the total
// carries the full quoted amount including tax and shipping.
func (s *Service) CreateFromCart(userID string, lines []cart.Line, shippingAddress session.Address, paymentMethod string, quote pricing.Breakdown) (*Order, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("cannot create order from empty cart")
	}

	now := time.Now().UTC()
	o := &Order{
		ID:              "ord-" + uuid.NewString(),
		UserID:          userID,
		Status:          StatusPending,
		ShippingAddress: shippingAddress,
		PaymentMethod:   paymentMethod,
		TotalAmount:     pricing.RoundCurrency(quote.Total),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	for _, line := range lines {
		o.Items = append(o.Items, Item{
			ProductID:    line.Product.ID,
			ProductName:  line.Product.Name,
			ProductImage: line.Product.Image,
			Quantity:     line.Quantity,
			Price:        line.Product.UnitPrice(),
		})
	}

	if err := s.repo.Create(o); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"order_id": o.ID,
		"user_id":  userID,
		"total":    o.TotalAmount,
	}).Info("order created from cart")

	return o, nil
}
