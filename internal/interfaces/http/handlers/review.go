// internal/interfaces/http/handlers/review.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/rupedia-backend/internal/config"
	"github.com/your-org/rupedia-backend/internal/domain/catalog"
	"github.com/your-org/rupedia-backend/internal/store"
)

// ReviewHandler handles product review endpoints
type ReviewHandler struct {
	store  *store.Store
	config *config.Config
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(st *store.Store, cfg *config.Config) *ReviewHandler {
	return &ReviewHandler{
		store:  st,
		config: cfg,
	}
}

// AddReviewRequest is the payload for POST /products/:id/reviews
type AddReviewRequest struct {
	UserName string `json:"user_name" binding:"required"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Comment  string `json:"comment" binding:"required"`
}

// AddReview handles POST /products/:id/reviews
func (h *ReviewHandler) AddReview(c *gin.Context) {
	var req AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	product, err := h.store.AddReview(c.Param("id"), catalog.Review{
		UserName: req.UserName,
		Rating:   req.Rating,
		Comment:  req.Comment,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to add review",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Review added successfully",
		"data":    product,
	})
}
