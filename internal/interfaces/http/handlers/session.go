// internal/interfaces/http/handlers/session.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/rupedia-backend/internal/config"
	"github.com/your-org/rupedia-backend/internal/pkg/auth"
	"github.com/your-org/rupedia-backend/internal/store"
)

// SessionHandler handles the mock admin session endpoints. There are no
// passwords: any username yields an admin session token.
type SessionHandler struct {
	store   *store.Store
	config  *config.Config
	manager *auth.Manager
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(st *store.Store, cfg *config.Config) *SessionHandler {
	return &SessionHandler{
		store:   st,
		config:  cfg,
		manager: auth.NewManager(cfg),
	}
}

// LoginRequest is the payload for POST /session/login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
}

// Login handles POST /session/login
func (h *SessionHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	user, err := h.store.Login(req.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to log in",
		})
		return
	}

	token, err := h.manager.GenerateSessionToken(user.Username, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate session token",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged in successfully",
		"data": gin.H{
			"user":  user,
			"token": token,
		},
	})
}

// Logout handles POST /session/logout
func (h *SessionHandler) Logout(c *gin.Context) {
	if err := h.store.Logout(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to log out",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

// Current handles GET /session
func (h *SessionHandler) Current(c *gin.Context) {
	user := h.store.CurrentUser()
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "No active session",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Session retrieved successfully",
		"data":    user,
	})
}
