// internal/domain/catalog/service.go
package catalog

import (
	"fmt"

	"gorm.io/gorm"
)

// relatedLimit bounds the number of related products returned for display
const relatedLimit = 4

// Service provides read-only catalog lookups over the fixed product set.
// The backing data is loaded once at construction and never mutated.
type Service struct {
	products   []Product
	categories []Category
	index      map[string]int
}

// NewService loads the full catalog from the database
func NewService(db *gorm.DB) (*Service, error) {
	var products []Product
	if err := db.Order("position ASC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	var categories []Category
	if err := db.Order("sort_order ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	return NewServiceFromData(products, categories), nil
}

// NewServiceFromData builds a catalog service over an in-memory product set
func NewServiceFromData(products []Product, categories []Category) *Service {
	index := make(map[string]int, len(products))
	for i, p := range products {
		index[p.ID] = i
	}
	return &Service{
		products:   products,
		categories: categories,
		index:      index,
	}
}

// ByID returns the product with the given id, or nil if absent
func (s *Service) ByID(id string) *Product {
	i, ok := s.index[id]
	if !ok {
		return nil
	}
	p := s.products[i]
	return &p
}

// All returns every product in catalog order
func (s *Service) All() []Product {
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// ByCategorySlug returns the products in a category, preserving catalog order
func (s *Service) ByCategorySlug(slug string) []Product {
	var out []Product
	for _, p := range s.products {
		if p.Category == slug {
			out = append(out, p)
		}
	}
	return out
}

// Featured returns the products flagged for the featured listing
func (s *Service) Featured() []Product {
	var out []Product
	for _, p := range s.products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// Related returns up to relatedLimit products sharing the given product's
// category, excluding the product itself. Unknown ids yield an empty slice.
func (s *Service) Related(id string) []Product {
	base := s.ByID(id)
	if base == nil {
		return nil
	}

	var out []Product
	for _, p := range s.products {
		if p.ID == id || p.Category != base.Category {
			continue
		}
		out = append(out, p)
		if len(out) == relatedLimit {
			break
		}
	}
	return out
}

// Categories returns all categories in display order
func (s *Service) Categories() []Category {
	out := make([]Category, len(s.categories))
	copy(out, s.categories)
	return out
}
