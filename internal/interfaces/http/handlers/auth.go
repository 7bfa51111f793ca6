// internal/interfaces/http/handlers/auth.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/session"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-backend/internal/pkg/auth"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	sessions   *session.Manager
	jwtManager *auth.JWTManager
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(sessions *session.Manager, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		sessions:   sessions,
		jwtManager: auth.NewJWTManager(cfg),
	}
}

// LoginRequest represents user login data
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	sessionID := middleware.GetSessionIDFromContext(c)
	store := h.sessions.For(sessionID)

	user := store.Login(req.Email, req.Password)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid email or password",
		})
		return
	}

	h.respondWithSession(c, user, sessionID, "Login successful")
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req session.RegisterData
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	sessionID := middleware.GetSessionIDFromContext(c)
	store := h.sessions.For(sessionID)

	user := store.Register(req)
	if user == nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Registration failed",
		})
		return
	}

	h.respondWithSession(c, user, sessionID, "Registration successful")
}

// GetProfile handles GET /auth/profile
func (h *AuthHandler) GetProfile(c *gin.Context) {
	store := h.sessions.For(middleware.GetSessionIDFromContext(c))

	state := store.Current()
	if !state.IsAuthenticated {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Not authenticated",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile retrieved successfully",
		"data":    state.User,
	})
}

// UpdateProfile handles PUT /auth/profile
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req session.ProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	store := h.sessions.For(middleware.GetSessionIDFromContext(c))

	user := store.UpdateProfile(req)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Not authenticated",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"data":    user,
	})
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	store := h.sessions.For(middleware.GetSessionIDFromContext(c))
	store.Logout()

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

// respondWithSession issues an access token for the granted profile. The
// profile is the one the auth call returned, not a re-read of the store's
// current state, which another request on the same session may have reset.
func (h *AuthHandler) respondWithSession(c *gin.Context, user *session.Profile, sessionID, message string) {
	token, err := h.jwtManager.GenerateAccessToken(user.ID, user.Email, user.IsAdmin, sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate access token",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"data": gin.H{
			"user":        user,
			"accessToken": token,
		},
	})
}
