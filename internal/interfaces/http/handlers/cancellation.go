// internal/interfaces/http/handlers/cancellation.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/rupedia-backend/internal/config"
	"github.com/your-org/rupedia-backend/internal/domain/cancellation"
	"github.com/your-org/rupedia-backend/internal/store"
)

// CancellationHandler handles the customer-facing cancellation endpoint
type CancellationHandler struct {
	store  *store.Store
	config *config.Config
}

// NewCancellationHandler creates a new cancellation handler
func NewCancellationHandler(st *store.Store, cfg *config.Config) *CancellationHandler {
	return &CancellationHandler{
		store:  st,
		config: cfg,
	}
}

// CancellationRequestPayload is the payload for POST /cancellations
type CancellationRequestPayload struct {
	OrderID      string `json:"order_id" binding:"required"`
	CustomerName string `json:"customer_name" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Address      string `json:"address"`
	TrxID        string `json:"trx_id"`
	Reason       string `json:"reason" binding:"required"`
}

// Create handles POST /cancellations. The order must exist, must still be
// cancellable, and must not already carry a request.
func (h *CancellationHandler) Create(c *gin.Context) {
	var req CancellationRequestPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	o, err := h.store.OrderByNumber(req.OrderID)
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

	if !o.CanBeCancelled() {
		c.JSON(http.StatusConflict, gin.H{
			"error": "Order can no longer be cancelled",
		})
		return
	}

	if _, err := h.store.CancellationRequestForOrder(o.ID); err == nil {
		c.JSON(http.StatusConflict, gin.H{
			"error": "A cancellation request already exists for this order",
		})
		return
	}

	created, err := h.store.AddCancellationRequest(cancellation.Request{
		OrderID:      o.ID,
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Address:      req.Address,
		TrxID:        req.TrxID,
		Reason:       req.Reason,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to file cancellation request",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Cancellation request submitted successfully",
		"data":    created,
	})
}
