// internal/interfaces/http/handlers/order.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/rupedia-backend/internal/config"
	"github.com/your-org/rupedia-backend/internal/store"
)

// OrderHandler handles the public order tracking endpoint
type OrderHandler struct {
	store  *store.Store
	config *config.Config
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(st *store.Store, cfg *config.Config) *OrderHandler {
	return &OrderHandler{
		store:  st,
		config: cfg,
	}
}

// TrackOrder handles GET /orders/track/:number. The response includes the
// cancellation request status when one exists for the order.
func (h *OrderHandler) TrackOrder(c *gin.Context) {
	o, err := h.store.OrderByNumber(c.Param("number"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve order",
		})
		return
	}

	data := gin.H{
		"order":            o,
		"can_be_cancelled": o.CanBeCancelled(),
	}
	if req, err := h.store.CancellationRequestForOrder(o.ID); err == nil {
		data["cancellation_request"] = gin.H{
			"status":     req.Status,
			"admin_note": req.AdminNote,
			"created_at": req.CreatedAt,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order retrieved successfully",
		"data":    data,
	})
}
