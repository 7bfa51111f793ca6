// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/domain/pricing"
	"github.com/your-org/storefront-backend/internal/domain/session"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
)

// CheckoutHandler handles checkout endpoints
type CheckoutHandler struct {
	carts      *cart.Manager
	orders     *order.Service
	calculator pricing.Calculator
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(carts *cart.Manager, orders *order.Service, calculator pricing.Calculator) *CheckoutHandler {
	return &CheckoutHandler{
		carts:      carts,
		orders:     orders,
		calculator: calculator,
	}
}

// CheckoutRequest represents the checkout submission
type CheckoutRequest struct {
	ShippingAddress session.Address `json:"shippingAddress" binding:"required"`
	PaymentMethod   string          `json:"paymentMethod" binding:"required"`
}

// Quote handles GET /checkout/quote, the totals preview for the cart page
func (h *CheckoutHandler) Quote(c *gin.Context) {
	store := h.carts.For(middleware.GetSessionIDFromContext(c))
	snapshot := store.Snapshot()

	c.JSON(http.StatusOK, gin.H{
		"message": "Quote computed successfully",
		"data": gin.H{
			"itemCount": snapshot.ItemCount,
			"totals":    h.calculator.Quote(snapshot.Lines).Display(),
		},
	})
}

// Checkout handles POST /checkout. The cart snapshot becomes a pending
// order and the cart is cleared; no payment is processed.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
		})
		return
	}

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	store := h.carts.For(middleware.GetSessionIDFromContext(c))
	snapshot := store.Snapshot()

	if len(snapshot.Lines) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Cart is empty",
		})
		return
	}

	quote := h.calculator.Quote(snapshot.Lines)

	created, err := h.orders.CreateFromCart(userID, snapshot.Lines, req.ShippingAddress, req.PaymentMethod, quote)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create order",
		})
		return
	}

	store.Clear()

	c.JSON(http.StatusOK, gin.H{
		"message": "Order placed successfully",
		"data": gin.H{
			"order":  created,
			"totals": quote.Display(),
		},
	})
}
