// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/interfaces/http/handlers"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
)

// Handlers bundles the constructed handlers the routes dispatch to
type Handlers struct {
	Catalog  *handlers.CatalogHandler
	Cart     *handlers.CartHandler
	Auth     *handlers.AuthHandler
	Checkout *handlers.CheckoutHandler
	Orders   *handlers.OrderHandler
}

// SetupRoutes wires all API routes
func SetupRoutes(rg *gin.RouterGroup, h Handlers, cfg *config.Config) {
	setupCatalogRoutes(rg, h)
	setupCartRoutes(rg, h, cfg)
	setupAuthRoutes(rg, h, cfg)
	setupCheckoutRoutes(rg, h, cfg)
	setupOrderRoutes(rg, h, cfg)
}

// setupCatalogRoutes sets up product and category routes
func setupCatalogRoutes(rg *gin.RouterGroup, h Handlers) {
	products := rg.Group("/products")
	{
		products.GET("", h.Catalog.GetProducts)
		products.GET("/featured", h.Catalog.GetFeaturedProducts)
		products.GET("/:id", h.Catalog.GetProduct)
		products.GET("/:id/related", h.Catalog.GetRelatedProducts)
	}

	categories := rg.Group("/categories")
	{
		categories.GET("", h.Catalog.GetCategories)
		categories.GET("/:slug/products", h.Catalog.GetCategoryProducts)
	}
}

// setupCartRoutes sets up cart routes, scoped to the client session
func setupCartRoutes(rg *gin.RouterGroup, h Handlers, cfg *config.Config) {
	cart := rg.Group("/cart")
	cart.Use(middleware.ClientSession())
	cart.Use(middleware.OptionalAuthMiddleware(cfg))
	{
		cart.GET("", h.Cart.GetCart)
		cart.GET("/count", h.Cart.GetCartCount)
		cart.POST("/items", h.Cart.AddToCart)
		cart.PUT("/items/:id", h.Cart.UpdateCartItem)
		cart.DELETE("/items/:id", h.Cart.RemoveFromCart)
		cart.DELETE("", h.Cart.ClearCart)
	}
}

// setupAuthRoutes sets up authentication related routes
func setupAuthRoutes(rg *gin.RouterGroup, h Handlers, cfg *config.Config) {
	auth := rg.Group("/auth")
	auth.Use(middleware.ClientSession())
	{
		// Public auth endpoints
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)

		// Protected auth endpoints
		protected := auth.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			protected.POST("/logout", h.Auth.Logout)
			protected.GET("/profile", h.Auth.GetProfile)
			protected.PUT("/profile", h.Auth.UpdateProfile)
		}
	}
}

// setupCheckoutRoutes sets up checkout routes
func setupCheckoutRoutes(rg *gin.RouterGroup, h Handlers, cfg *config.Config) {
	checkout := rg.Group("/checkout")
	checkout.Use(middleware.ClientSession())
	{
		checkout.GET("/quote", middleware.OptionalAuthMiddleware(cfg), h.Checkout.Quote)
		checkout.POST("", middleware.AuthMiddleware(cfg), h.Checkout.Checkout)
	}
}

// setupOrderRoutes sets up order history routes
func setupOrderRoutes(rg *gin.RouterGroup, h Handlers, cfg *config.Config) {
	orders := rg.Group("/orders")
	orders.Use(middleware.AuthMiddleware(cfg))
	{
		orders.GET("", h.Orders.ListOrders)
		orders.GET("/:id", h.Orders.GetOrder)
	}
}
