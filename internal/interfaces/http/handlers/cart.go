// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/rupedia-backend/internal/config"
	"github.com/your-org/rupedia-backend/internal/domain/cart"
	"github.com/your-org/rupedia-backend/internal/store"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	store  *store.Store
	config *config.Config
}

// NewCartHandler creates a new cart handler
func NewCartHandler(st *store.Store, cfg *config.Config) *CartHandler {
	return &CartHandler{
		store:  st,
		config: cfg,
	}
}

// AddToCartRequest is the payload for POST /cart/items
type AddToCartRequest struct {
	ProductID       string            `json:"product_id" binding:"required"`
	SelectedOptions map[string]string `json:"selected_options"`
}

// UpdateQuantityRequest is the payload for PATCH /cart/items/:id
type UpdateQuantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	lines := h.store.Cart()

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data": gin.H{
			"items":  lines,
			"totals": cart.CalculateTotals(lines),
		},
	})
}

// AddToCart handles POST /cart/items. The product is looked up server-side
// so the cart snapshot always reflects the catalog, and every declared
// variant option must carry a selection before the line is accepted.
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	product, err := h.store.ProductByID(req.ProductID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	for _, option := range product.VariantOptions {
		if req.SelectedOptions[option.Name] == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("Please select a %s", option.Name),
			})
			return
		}
	}

	line, err := h.store.AddToCart(product, req.SelectedOptions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to add item to cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
		"data":    line,
	})
}

// UpdateQuantity handles PATCH /cart/items/:id
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.store.UpdateQuantity(c.Param("id"), req.Delta); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Cart item not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update cart item",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
		"data": gin.H{
			"items": h.store.Cart(),
		},
	})
}

// RemoveLine handles DELETE /cart/items/:id
func (h *CartHandler) RemoveLine(c *gin.Context) {
	if err := h.store.RemoveLine(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to remove cart item",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart successfully",
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.store.ClearCart(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to clear cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
	})
}
