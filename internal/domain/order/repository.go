// internal/domain/order/repository.go
package order

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Repository stores order history
type Repository interface {
	ListByUser(userID string) ([]Order, error)
	Get(id string) (*Order, error)
	Create(o *Order) error
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository creates a gorm-backed order repository
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) ListByUser(userID string) ([]Order, error) {
	var orders []Order
	err := r.db.Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (r *gormRepository) Get(id string) (*Order, error) {
	var o Order
	err := r.db.Preload("Items").Where("id = ?", id).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return &o, nil
}

func (r *gormRepository) Create(o *Order) error {
	if err := r.db.Create(o).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}
