// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/pricing"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	carts      *cart.Manager
	catalog    *catalog.Service
	calculator pricing.Calculator
}

// NewCartHandler creates a new cart handler
func NewCartHandler(carts *cart.Manager, catalogService *catalog.Service, calculator pricing.Calculator) *CartHandler {
	return &CartHandler{
		carts:      carts,
		catalog:    catalogService,
		calculator: calculator,
	}
}

// AddToCartRequest represents add to cart request
type AddToCartRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// UpdateCartItemRequest represents update cart item request
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// cartResponse builds the cart payload: lines, badge count, and the
// display-rounded totals breakdown
func (h *CartHandler) cartResponse(snapshot cart.Snapshot) gin.H {
	return gin.H{
		"items":     snapshot.Lines,
		"itemCount": snapshot.ItemCount,
		"totals":    h.calculator.Quote(snapshot.Lines).Display(),
	}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	store := h.carts.For(middleware.GetSessionIDFromContext(c))

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    h.cartResponse(store.Snapshot()),
	})
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Quantity must be positive",
		})
		return
	}

	product := h.catalog.ByID(req.ProductID)
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	if !product.InStock {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Product is out of stock",
		})
		return
	}

	store := h.carts.For(middleware.GetSessionIDFromContext(c))
	store.AddItem(*product, req.Quantity)

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
		"data":    h.cartResponse(store.Snapshot()),
	})
}

// UpdateCartItem handles PUT /cart/items/:id
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	store := h.carts.For(middleware.GetSessionIDFromContext(c))
	store.UpdateQuantity(c.Param("id"), req.Quantity)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
		"data":    h.cartResponse(store.Snapshot()),
	})
}

// RemoveFromCart handles DELETE /cart/items/:id
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	store := h.carts.For(middleware.GetSessionIDFromContext(c))
	store.RemoveItem(c.Param("id"))

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart successfully",
		"data":    h.cartResponse(store.Snapshot()),
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	store := h.carts.For(middleware.GetSessionIDFromContext(c))
	store.Clear()

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
		"data":    h.cartResponse(store.Snapshot()),
	})
}

// GetCartCount handles GET /cart/count
func (h *CartHandler) GetCartCount(c *gin.Context) {
	store := h.carts.For(middleware.GetSessionIDFromContext(c))

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart count retrieved successfully",
		"data": gin.H{
			"count": store.Snapshot().ItemCount,
		},
	})
}
