// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"
	"log"
	"time"

	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/domain/session"
	"gorm.io/gorm"
)

// Migration handles database migrations
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{
		db: db,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	log.Println("🔄 Running database auto-migrations...")

	models := []interface{}{
		// Catalog - base tables
		&catalog.Category{},
		&catalog.Product{},

		// Order history - dependent tables
		&order.Order{},
		&order.Item{},
	}

	for _, model := range models {
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	log.Println("✅ Database auto-migrations completed successfully")
	return nil
}

// SeedInitialData seeds the fixed catalog and the fixture order history.
// Seeding is idempotent: existing rows are left untouched.
func (m *Migration) SeedInitialData() error {
	log.Println("🌱 Seeding initial data...")

	if err := m.seedCategories(); err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	if err := m.seedProducts(); err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	if err := m.seedOrders(); err != nil {
		return fmt.Errorf("failed to seed orders: %w", err)
	}

	log.Println("✅ Initial data seeded successfully")
	return nil
}

// seedCategories creates the product categories
func (m *Migration) seedCategories() error {
	categories := []catalog.Category{
		{ID: "c1", Name: "Electronics", Slug: "electronics", SortOrder: 1},
		{ID: "c2", Name: "Clothing", Slug: "clothing", SortOrder: 2},
		{ID: "c3", Name: "Home & Kitchen", Slug: "home-kitchen", SortOrder: 3},
		{ID: "c4", Name: "Accessories", Slug: "accessories", SortOrder: 4},
	}

	for _, category := range categories {
		var existing catalog.Category
		result := m.db.Where("slug = ?", category.Slug).First(&existing)
		if result.Error != nil {
			if err := m.db.Create(&category).Error; err != nil {
				return err
			}
			log.Printf("✅ Created category: %s", category.Name)
		}
	}

	return nil
}

func price(v float64) *float64 {
	return &v
}

// seedProducts creates the fixed product set
func (m *Migration) seedProducts() error {
	products := []catalog.Product{
		{
			ID:          "p1",
			Name:        "Premium Wireless Headphones",
			Description: "Immersive sound quality with active noise cancellation and a 30-hour battery life.",
			Price:       249.99,
			Category:    "electronics",
			Tags:        []string{"audio", "wireless", "premium"},
			Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e",
			Rating:      4.8,
			ReviewCount: 1254,
			InStock:     true,
			Featured:    true,
			Position:    1,
		},
		{
			ID:          "p2",
			Name:        "Ultra-Slim Laptop",
			Description: "Powerful performance in a feather-light aluminum body with an edge-to-edge display.",
			Price:       1299.99,
			Category:    "electronics",
			Tags:        []string{"computing", "portable"},
			Image:       "https://images.unsplash.com/photo-1496181133206-80ce9b88a853",
			Rating:      4.7,
			ReviewCount: 843,
			InStock:     true,
			Featured:    true,
			Position:    2,
		},
		{
			ID:              "p3",
			Name:            "Smart Fitness Watch",
			Description:     "Track workouts, heart rate, and sleep with a week-long battery.",
			Price:           199.99,
			DiscountedPrice: price(169.99),
			Category:        "electronics",
			Tags:            []string{"fitness", "wearable"},
			Image:           "https://images.unsplash.com/photo-1575311373937-040b8e3fd243",
			Rating:          4.5,
			ReviewCount:     1876,
			InStock:         true,
			Position:        3,
		},
		{
			ID:          "p4",
			Name:        "Merino Wool Sweater",
			Description: "Soft, breathable merino wool in a relaxed fit that works year round.",
			Price:       89.99,
			Category:    "clothing",
			Tags:        []string{"knitwear", "merino"},
			Image:       "https://images.unsplash.com/photo-1576871337622-98d48d1cf531",
			Rating:      4.6,
			ReviewCount: 412,
			InStock:     true,
			Position:    4,
		},
		{
			ID:          "p5",
			Name:        "Handcrafted Ceramic Dinnerware Set",
			Description: "A 16-piece stoneware set, glazed by hand, dishwasher and microwave safe.",
			Price:       189.99,
			Category:    "home-kitchen",
			Tags:        []string{"kitchen", "handmade"},
			Image:       "https://images.unsplash.com/photo-1610701596061-2ecf227e85b2",
			Rating:      4.9,
			ReviewCount: 327,
			InStock:     true,
			Featured:    true,
			Position:    5,
		},
		{
			ID:              "p6",
			Name:            "Pour-Over Coffee Maker",
			Description:     "Borosilicate glass brewer with a reusable stainless filter for a clean cup.",
			Price:           49.99,
			DiscountedPrice: price(39.99),
			Category:        "home-kitchen",
			Tags:            []string{"coffee", "kitchen"},
			Image:           "https://images.unsplash.com/photo-1544787219-7f47ccb76574",
			Rating:          4.4,
			ReviewCount:     958,
			InStock:         true,
			Position:        6,
		},
		{
			ID:          "p7",
			Name:        "Leather Weekender Bag",
			Description: "Full-grain leather duffel sized for carry-on with a separate shoe compartment.",
			Price:       229.99,
			Category:    "accessories",
			Tags:        []string{"travel", "leather"},
			Image:       "https://images.unsplash.com/photo-1553062407-98eeb64c6a62",
			Rating:      4.7,
			ReviewCount: 203,
			InStock:     false,
			Position:    7,
		},
		{
			ID:          "p8",
			Name:        "Polarized Aviator Sunglasses",
			Description: "Classic metal frame with polarized lenses and full UV protection.",
			Price:       129.99,
			Category:    "accessories",
			Tags:        []string{"eyewear", "summer"},
			Image:       "https://images.unsplash.com/photo-1572635196237-14b3f281503f",
			Rating:      4.3,
			ReviewCount: 689,
			InStock:     true,
			Position:    8,
		},
	}

	for _, product := range products {
		var existing catalog.Product
		result := m.db.Where("id = ?", product.ID).First(&existing)
		if result.Error != nil {
			if err := m.db.Create(&product).Error; err != nil {
				return err
			}
			log.Printf("✅ Created product: %s", product.Name)
		}
	}

	return nil
}

// seedOrders creates the fixture order history for the demo user
func (m *Migration) seedOrders() error {
	shippingAddress := session.Address{
		Street:  "123 Main St",
		City:    "Anytown",
		State:   "CA",
		ZipCode: "12345",
		Country: "United States",
	}

	date := func(s string) time.Time {
		t, _ := time.Parse("2006-01-02", s)
		return t
	}
	datePtr := func(s string) *time.Time {
		t := date(s)
		return &t
	}

	orders := []order.Order{
		{
			ID:     "ord-1",
			UserID: "user-1",
			Items: []order.Item{
				{
					ProductID:    "p1",
					ProductName:  "Premium Wireless Headphones",
					ProductImage: "https://images.unsplash.com/photo-1505740420928-5e560c06d30e",
					Quantity:     1,
					Price:        249.99,
				},
				{
					ProductID:    "p3",
					ProductName:  "Smart Fitness Watch",
					ProductImage: "https://images.unsplash.com/photo-1575311373937-040b8e3fd243",
					Quantity:     1,
					Price:        169.99,
				},
			},
			Status:            order.StatusDelivered,
			ShippingAddress:   shippingAddress,
			PaymentMethod:     "Credit Card",
			TotalAmount:       419.98,
			CreatedAt:         date("2023-07-15"),
			UpdatedAt:         date("2023-07-20"),
			TrackingNumber:    "TRK123456789",
			EstimatedDelivery: datePtr("2023-07-22"),
		},
		{
			ID:     "ord-2",
			UserID: "user-1",
			Items: []order.Item{
				{
					ProductID:    "p5",
					ProductName:  "Handcrafted Ceramic Dinnerware Set",
					ProductImage: "https://images.unsplash.com/photo-1610701596061-2ecf227e85b2",
					Quantity:     1,
					Price:        189.99,
				},
			},
			Status:            order.StatusShipped,
			ShippingAddress:   shippingAddress,
			PaymentMethod:     "PayPal",
			TotalAmount:       189.99,
			CreatedAt:         date("2023-09-01"),
			UpdatedAt:         date("2023-09-03"),
			TrackingNumber:    "TRK987654321",
			EstimatedDelivery: datePtr("2023-09-08"),
		},
		{
			ID:     "ord-3",
			UserID: "user-1",
			Items: []order.Item{
				{
					ProductID:    "p2",
					ProductName:  "Ultra-Slim Laptop",
					ProductImage: "https://images.unsplash.com/photo-1496181133206-80ce9b88a853",
					Quantity:     1,
					Price:        1299.99,
				},
			},
			Status:          order.StatusProcessing,
			ShippingAddress: shippingAddress,
			PaymentMethod:   "Credit Card",
			TotalAmount:     1299.99,
			CreatedAt:       date("2023-10-15"),
			UpdatedAt:       date("2023-10-16"),
		},
	}

	for _, o := range orders {
		var existing order.Order
		result := m.db.Where("id = ?", o.ID).First(&existing)
		if result.Error != nil {
			if err := m.db.Create(&o).Error; err != nil {
				return err
			}
			log.Printf("✅ Created fixture order: %s", o.ID)
		}
	}

	return nil
}
