// internal/domain/pricing/calculator.go
package pricing

import (
	"math"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
)

// Breakdown holds the derived checkout amounts for a cart snapshot. Amounts
// are unrounded; rounding to currency precision happens only at display time
// via Display.
type Breakdown struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

// Calculator derives checkout totals from a cart snapshot. It is a pure
// function of its inputs and carries no state beyond the configured rates.
type Calculator struct {
	TaxRate               float64
	FreeShippingThreshold float64
	FlatShippingFee       float64
}

// NewCalculator builds a calculator from the pricing configuration
func NewCalculator(cfg *config.Config) Calculator {
	return Calculator{
		TaxRate:               cfg.Pricing.TaxRate,
		FreeShippingThreshold: cfg.Pricing.FreeShippingThreshold,
		FlatShippingFee:       cfg.Pricing.FlatShippingFee,
	}
}

// LineTotal returns the extended price of one line, preferring the
// discounted unit price when present
func (c Calculator) LineTotal(l cart.Line) float64 {
	return l.Product.UnitPrice() * float64(l.Quantity)
}

// Quote derives subtotal, tax, shipping, and total for a cart snapshot.
// An empty cart owes nothing, including shipping.
func (c Calculator) Quote(lines []cart.Line) Breakdown {
	if len(lines) == 0 {
		return Breakdown{}
	}

	var subtotal float64
	for _, l := range lines {
		subtotal += c.LineTotal(l)
	}

	tax := subtotal * c.TaxRate

	shipping := c.FlatShippingFee
	if subtotal > c.FreeShippingThreshold {
		shipping = 0
	}

	return Breakdown{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Total:    subtotal + tax + shipping,
	}
}

// Display rounds every amount to currency precision for presentation
func (b Breakdown) Display() Breakdown {
	return Breakdown{
		Subtotal: RoundCurrency(b.Subtotal),
		Tax:      RoundCurrency(b.Tax),
		Shipping: RoundCurrency(b.Shipping),
		Total:    RoundCurrency(b.Total),
	}
}

// RoundCurrency rounds an amount to two decimal places
func RoundCurrency(v float64) float64 {
	return math.Round(v*100) / 100
}
