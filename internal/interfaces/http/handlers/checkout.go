// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/your-org/rupedia-backend/internal/config"
	"github.com/your-org/rupedia-backend/internal/domain/cart"
	"github.com/your-org/rupedia-backend/internal/store"
)

// PaymentMethodCOD and PaymentMethodOnline are the accepted checkout
// payment methods
const (
	PaymentMethodCOD    = "COD"
	PaymentMethodOnline = "Online Payment"
)

// CheckoutHandler handles delivery quoting and order placement
type CheckoutHandler struct {
	store  *store.Store
	config *config.Config
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(st *store.Store, cfg *config.Config) *CheckoutHandler {
	return &CheckoutHandler{
		store:  st,
		config: cfg,
	}
}

// CheckoutRequest is the payload for POST /checkout
type CheckoutRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address" binding:"required"`
	City    string `json:"city" binding:"required"`

	PaymentMethod   string `json:"payment_method" binding:"required,oneof=COD 'Online Payment'"`
	PaymentPlatform string `json:"payment_platform" binding:"omitempty,oneof=bKash Nagad"`
	TrxID           string `json:"trx_id"`
}

// GetDeliveryQuote handles GET /checkout/quote?city=...
func (h *CheckoutHandler) GetDeliveryQuote(c *gin.Context) {
	city := c.Query("city")
	if city == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "city query parameter is required",
		})
		return
	}

	lines := h.store.Cart()
	totals := cart.CalculateTotals(lines)
	fee := h.deliveryFeeFor(city)

	c.JSON(http.StatusOK, gin.H{
		"message": "Delivery quote calculated successfully",
		"data": gin.H{
			"subtotal":     totals.Subtotal,
			"delivery_fee": fee,
			"total":        totals.Subtotal + fee,
			"currency":     h.config.Store.Currency,
		},
	})
}

// Checkout handles POST /checkout. Online payments must carry a
// transaction ID; delivery fee depends on the destination city.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if req.PaymentMethod == PaymentMethodOnline {
		if req.PaymentPlatform == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Payment platform is required for online payment",
			})
			return
		}
		if strings.TrimSpace(req.TrxID) == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Transaction ID is required for online payment",
			})
			return
		}
	}

	lines := h.store.Cart()
	totals := cart.CalculateTotals(lines)
	fee := h.deliveryFeeFor(req.City)

	placed, err := h.store.PlaceOrder(store.PlaceOrderInput{
		CustomerName:    req.Name,
		CustomerPhone:   req.Phone,
		CustomerAddress: req.Address,
		City:            req.City,

		Subtotal:    totals.Subtotal,
		DeliveryFee: fee,
		TotalAmount: totals.Subtotal + fee,

		PaymentMethod:   req.PaymentMethod,
		PaymentPlatform: req.PaymentPlatform,
		TrxID:           req.TrxID,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Cart is empty",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to place order",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"data":    placed,
	})
}

// deliveryFeeFor returns the flat delivery fee for a destination city
func (h *CheckoutHandler) deliveryFeeFor(city string) int64 {
	if strings.EqualFold(strings.TrimSpace(city), "Dhaka") {
		return h.config.Store.DeliveryFeeInsideDhaka
	}
	return h.config.Store.DeliveryFeeOutside
}
