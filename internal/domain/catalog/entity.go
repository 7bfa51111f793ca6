// internal/domain/catalog/entity.go
package catalog

import (
	"time"
)

// Product represents a storefront product. The catalog is a fixed set loaded
// once at process start; carts only ever hold snapshots of these values.
// JSON field names follow the persisted-record contract consumed by the UI.
type Product struct {
	ID              string    `gorm:"primaryKey;size:64" json:"id"`
	Name            string    `gorm:"not null;size:255" json:"name"`
	Description     string    `gorm:"type:text" json:"description"`
	Price           float64   `gorm:"not null" json:"price"`
	DiscountedPrice *float64  `json:"discountedPrice,omitempty"`
	Category        string    `gorm:"not null;size:100;index" json:"category"`
	Tags            []string  `gorm:"serializer:json" json:"tags"`
	Image           string    `gorm:"size:500" json:"image"`
	Rating          float64   `json:"rating"`
	ReviewCount     int       `json:"reviewCount"`
	InStock         bool      `gorm:"default:true" json:"inStock"`
	Featured        bool      `gorm:"default:false;index" json:"featured,omitempty"`
	Position        int       `gorm:"default:0;index" json:"-"`
	CreatedAt       time.Time `json:"-"`
	UpdatedAt       time.Time `json:"-"`
}

// TableName overrides the table name
func (Product) TableName() string {
	return "products"
}

// UnitPrice returns the effective price for one unit, preferring the
// discounted price when present
func (p Product) UnitPrice() float64 {
	if p.DiscountedPrice != nil {
		return *p.DiscountedPrice
	}
	return p.Price
}

// Category represents a product category
type Category struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	Name      string    `gorm:"not null;size:255" json:"name"`
	Slug      string    `gorm:"uniqueIndex;not null;size:255" json:"slug"`
	SortOrder int       `gorm:"default:0" json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName overrides the table name
func (Category) TableName() string {
	return "categories"
}
