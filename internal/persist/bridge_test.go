package persist

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/session"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestBridge(t *testing.T) (*Bridge, *MemoryKV) {
	t.Helper()
	kv := NewMemoryKV()
	return NewBridge(kv, "sess-1", testLogger()), kv
}

func sampleLines() []cart.Line {
	discounted := 169.99
	return []cart.Line{
		{
			Product: catalog.Product{
				ID:              "p3",
				Name:            "Smart Fitness Watch",
				Price:           199.99,
				DiscountedPrice: &discounted,
				InStock:         true,
			},
			Quantity: 2,
		},
		{
			Product: catalog.Product{ID: "p1", Name: "Wireless Headphones", Price: 249.99, InStock: true},
			Quantity: 1,
		},
	}
}

func TestCartRoundTrip(t *testing.T) {
	bridge, _ := newTestBridge(t)

	saved := sampleLines()
	bridge.SaveCart(saved)

	loaded := bridge.LoadCart()
	require.Len(t, loaded, 2)
	assert.Equal(t, saved, loaded)
}

func TestLoadCartMissingKeyYieldsEmptyCart(t *testing.T) {
	bridge, _ := newTestBridge(t)

	assert.Nil(t, bridge.LoadCart())
}

func TestLoadCartDiscardsMalformedRecord(t *testing.T) {
	bridge, kv := newTestBridge(t)

	require.NoError(t, kv.Set(context.Background(), "cart:session:sess-1", "{not json"))

	assert.Nil(t, bridge.LoadCart())
}

func TestLoadCartDiscardsUnknownVersion(t *testing.T) {
	bridge, kv := newTestBridge(t)

	record := `{"version":2,"items":[{"product":{"id":"p1","price":10},"quantity":1}]}`
	require.NoError(t, kv.Set(context.Background(), "cart:session:sess-1", record))

	assert.Nil(t, bridge.LoadCart())
}

func TestLoadCartDiscardsInvariantViolations(t *testing.T) {
	cases := map[string]string{
		"zero quantity":     `{"version":1,"items":[{"product":{"id":"p1","price":10},"quantity":0}]}`,
		"negative quantity": `{"version":1,"items":[{"product":{"id":"p1","price":10},"quantity":-2}]}`,
		"missing id":        `{"version":1,"items":[{"product":{"price":10},"quantity":1}]}`,
		"duplicate lines":   `{"version":1,"items":[{"product":{"id":"p1","price":10},"quantity":1},{"product":{"id":"p1","price":10},"quantity":2}]}`,
		"negative price":    `{"version":1,"items":[{"product":{"id":"p1","price":-10},"quantity":1}]}`,
	}

	for name, record := range cases {
		t.Run(name, func(t *testing.T) {
			bridge, kv := newTestBridge(t)
			require.NoError(t, kv.Set(context.Background(), "cart:session:sess-1", record))

			assert.Nil(t, bridge.LoadCart())
		})
	}
}

func TestUserRoundTrip(t *testing.T) {
	bridge, _ := newTestBridge(t)

	created := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	profile := session.Profile{
		ID:        "user-1",
		Email:     "shopper@example.com",
		FirstName: "John",
		LastName:  "Doe",
		Address: &session.Address{
			Street:  "123 Main St",
			City:    "Anytown",
			State:   "CA",
			ZipCode: "12345",
			Country: "USA",
		},
		CreatedAt: created,
	}

	bridge.SaveUser(profile)

	loaded := bridge.LoadUser()
	require.NotNil(t, loaded)
	assert.Equal(t, profile, *loaded)
	assert.True(t, loaded.CreatedAt.Equal(created))
}

func TestLoadUserMissingKeyYieldsNil(t *testing.T) {
	bridge, _ := newTestBridge(t)

	assert.Nil(t, bridge.LoadUser())
}

func TestLoadUserDiscardsInvalidRecords(t *testing.T) {
	cases := map[string]string{
		"malformed":       `garbage`,
		"unknown version": `{"version":9,"user":{"id":"user-1","email":"a@b.com"}}`,
		"missing id":      `{"version":1,"user":{"email":"a@b.com"}}`,
		"missing email":   `{"version":1,"user":{"id":"user-1"}}`,
	}

	for name, record := range cases {
		t.Run(name, func(t *testing.T) {
			bridge, kv := newTestBridge(t)
			require.NoError(t, kv.Set(context.Background(), "session:user:sess-1", record))

			assert.Nil(t, bridge.LoadUser())
		})
	}
}

func TestDeleteUserRemovesRecord(t *testing.T) {
	bridge, _ := newTestBridge(t)

	bridge.SaveUser(session.Profile{ID: "user-1", Email: "shopper@example.com"})
	require.NotNil(t, bridge.LoadUser())

	bridge.DeleteUser()

	assert.Nil(t, bridge.LoadUser())
}

func TestBridgesAreScopedBySessionID(t *testing.T) {
	kv := NewMemoryKV()
	first := NewBridge(kv, "sess-1", testLogger())
	second := NewBridge(kv, "sess-2", testLogger())

	first.SaveCart(sampleLines())
	first.SaveUser(session.Profile{ID: "user-1", Email: "shopper@example.com"})

	assert.Nil(t, second.LoadCart())
	assert.Nil(t, second.LoadUser())
}

func TestPersistedRecordsUseDocumentedFieldNames(t *testing.T) {
	bridge, kv := newTestBridge(t)

	bridge.SaveCart(sampleLines())

	raw, err := kv.Get(context.Background(), "cart:session:sess-1")
	require.NoError(t, err)
	assert.Contains(t, raw, `"version":1`)
	assert.Contains(t, raw, `"items"`)
	assert.Contains(t, raw, `"discountedPrice":169.99`)
	assert.Contains(t, raw, `"inStock":true`)
	assert.NotContains(t, raw, `"discounted_price"`)
}
