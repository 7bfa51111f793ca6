// internal/domain/order/entity.go
package order

import (
	"time"

	"github.com/your-org/storefront-backend/internal/domain/session"
)

// Status represents the order status
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// StatusLabel returns the display label for a status
func StatusLabel(s Status) string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusProcessing:
		return "Processing"
	case StatusShipped:
		return "Shipped"
	case StatusDelivered:
		return "Delivered"
	case StatusCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// Order is an immutable historical purchase record. Items snapshot the
// product name, image, and price at purchase time, so later catalog changes
// never rewrite history.
type Order struct {
	ID                string          `gorm:"primaryKey;size:64" json:"id"`
	UserID            string          `gorm:"not null;size:64;index" json:"userId"`
	Status            Status          `gorm:"not null;default:'pending';size:20" json:"status"`
	ShippingAddress   session.Address `gorm:"embedded;embeddedPrefix:shipping_" json:"shippingAddress"`
	PaymentMethod     string          `gorm:"size:50" json:"paymentMethod"`
	TotalAmount       float64         `gorm:"not null" json:"totalAmount"`
	TrackingNumber    string          `gorm:"size:100" json:"trackingNumber,omitempty"`
	EstimatedDelivery *time.Time      `json:"estimatedDelivery,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`

	Items []Item `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}

// TableName overrides the table name
func (Order) TableName() string {
	return "orders"
}

// Item is one product snapshot within an order
type Item struct {
	ID           uint    `gorm:"primaryKey" json:"-"`
	OrderID      string  `gorm:"not null;size:64;index" json:"-"`
	ProductID    string  `gorm:"not null;size:64" json:"productId"`
	ProductName  string  `gorm:"not null;size:255" json:"productName"`
	ProductImage string  `gorm:"size:500" json:"productImage"`
	Quantity     int     `gorm:"not null" json:"quantity"`
	Price        float64 `gorm:"not null" json:"price"`
}

// TableName overrides the table name
func (Item) TableName() string {
	return "order_items"
}
