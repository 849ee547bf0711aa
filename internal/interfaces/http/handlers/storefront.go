// internal/interfaces/http/handlers/storefront.go
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/your-org/rupedia-backend/internal/config"
	"github.com/your-org/rupedia-backend/internal/domain/catalog"
	"github.com/your-org/rupedia-backend/internal/store"
)

// StorefrontHandler handles the public catalog endpoints
type StorefrontHandler struct {
	store  *store.Store
	config *config.Config
}

// NewStorefrontHandler creates a new storefront handler
func NewStorefrontHandler(st *store.Store, cfg *config.Config) *StorefrontHandler {
	return &StorefrontHandler{
		store:  st,
		config: cfg,
	}
}

// GetProducts handles GET /products with optional category, search and
// featured filters
func (h *StorefrontHandler) GetProducts(c *gin.Context) {
	products := h.store.Products()

	if category := c.Query("category"); category != "" {
		products = filterProducts(products, func(p catalog.Product) bool {
			return p.Category == category
		})
	}

	if search := c.Query("search"); search != "" {
		needle := strings.ToLower(search)
		products = filterProducts(products, func(p catalog.Product) bool {
			return strings.Contains(strings.ToLower(p.Name), needle) ||
				strings.Contains(strings.ToLower(p.Description), needle)
		})
	}

	if c.Query("featured") == "true" {
		products = filterProducts(products, func(p catalog.Product) bool {
			return p.IsFeatured
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data": gin.H{
			"products": products,
			"total":    len(products),
		},
	})
}

// GetProduct handles GET /products/:id
func (h *StorefrontHandler) GetProduct(c *gin.Context) {
	product, err := h.store.ProductByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve product",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data":    product,
	})
}

// GetCategories handles GET /categories
func (h *StorefrontHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Categories retrieved successfully",
		"data":    h.store.Categories(),
	})
}

func filterProducts(products []catalog.Product, keep func(catalog.Product) bool) []catalog.Product {
	filtered := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if keep(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
