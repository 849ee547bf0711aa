// internal/interfaces/http/handlers/admin.go
package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/your-org/rupedia-backend/internal/config"
	"github.com/your-org/rupedia-backend/internal/domain/cancellation"
	"github.com/your-org/rupedia-backend/internal/domain/catalog"
	"github.com/your-org/rupedia-backend/internal/domain/order"
	"github.com/your-org/rupedia-backend/internal/pkg/export"
	"github.com/your-org/rupedia-backend/internal/pkg/pdf"
	"github.com/your-org/rupedia-backend/internal/store"
)

// AdminHandler handles the admin panel endpoints
type AdminHandler struct {
	store      *store.Store
	config     *config.Config
	pdfService *pdf.Service
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(st *store.Store, cfg *config.Config) *AdminHandler {
	return &AdminHandler{
		store:      st,
		config:     cfg,
		pdfService: pdf.NewService(cfg),
	}
}

// ProductRequest is the payload for creating and updating products
type ProductRequest struct {
	Name           string                  `json:"name" binding:"required"`
	Category       string                  `json:"category" binding:"required"`
	Price          int64                   `json:"price" binding:"required,min=1"`
	OriginalPrice  int64                   `json:"original_price"`
	Description    string                  `json:"description"`
	Images         []string                `json:"images"`
	IsFeatured     bool                    `json:"is_featured"`
	IsPreOrder     bool                    `json:"is_pre_order"`
	PreOrderEndDate *time.Time             `json:"pre_order_end_date"`
	IsCustomOrder  bool                    `json:"is_custom_order"`
	Stock          *int                    `json:"stock"`
	VariantOptions []catalog.VariantOption `json:"variant_options"`
}

// CategoryRequest is the payload for POST /admin/categories
type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateStatusRequest is the payload for PATCH /admin/orders/:id/status
type UpdateStatusRequest struct {
	Status order.Status `json:"status" binding:"required"`
}

// RecordPaymentRequest is the payload for POST /admin/orders/:id/payments
type RecordPaymentRequest struct {
	Amount int64  `json:"amount" binding:"required,min=1"`
	TrxID  string `json:"trx_id"`
}

// TriageCancellationRequest is the payload for PATCH /admin/cancellations/:id
type TriageCancellationRequest struct {
	Status    cancellation.Status `json:"status" binding:"required"`
	AdminNote string              `json:"admin_note"`
}

// Dashboard handles GET /admin/dashboard
func (h *AdminHandler) Dashboard(c *gin.Context) {
	orders := h.store.Orders()

	var revenue int64
	var pendingOrders int
	for _, o := range orders {
		revenue += o.TotalAmount
		if o.Status == order.StatusPending {
			pendingOrders++
		}
	}

	pendingCancellations := 0
	for _, r := range h.store.CancellationRequests() {
		if r.Status == cancellation.StatusPending {
			pendingCancellations++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Dashboard retrieved successfully",
		"data": gin.H{
			"total_orders":          len(orders),
			"pending_orders":        pendingOrders,
			"total_revenue":         revenue,
			"total_products":        len(h.store.Products()),
			"pending_cancellations": pendingCancellations,
			"currency":              h.config.Store.Currency,
		},
	})
}

// CreateProduct handles POST /admin/products
func (h *AdminHandler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	product, err := h.store.AddProduct(productFromRequest(req))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create product",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product created successfully",
		"data":    product,
	})
}

// UpdateProduct handles PUT /admin/products/:id
func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	existing, err := h.store.ProductByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	product := productFromRequest(req)
	product.ID = existing.ID
	product.Reviews = existing.Reviews
	product.Rating = existing.Rating

	if err := h.store.UpdateProduct(product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update product",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product updated successfully",
		"data":    product,
	})
}

// DeleteProduct handles DELETE /admin/products/:id
func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	if err := h.store.DeleteProduct(c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to delete product",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product deleted successfully",
	})
}

// AddCategory handles POST /admin/categories
func (h *AdminHandler) AddCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.store.AddCategory(req.Name); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to add category",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Category added successfully",
		"data":    h.store.Categories(),
	})
}

// ListOrders handles GET /admin/orders
func (h *AdminHandler) ListOrders(c *gin.Context) {
	orders := h.store.Orders()

	if status := c.Query("status"); status != "" {
		filtered := make([]order.Order, 0, len(orders))
		for _, o := range orders {
			if string(o.Status) == status {
				filtered = append(filtered, o)
			}
		}
		orders = filtered
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Orders retrieved successfully",
		"data": gin.H{
			"orders": orders,
			"total":  len(orders),
		},
	})
}

// GetOrder handles GET /admin/orders/:id
func (h *AdminHandler) GetOrder(c *gin.Context) {
	o, err := h.store.OrderByID(c.Param("id"))
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

	c.JSON(http.StatusOK, gin.H{
		"message": "Order retrieved successfully",
		"data":    o,
	})
}

// UpdateOrderStatus handles PATCH /admin/orders/:id/status
func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.store.UpdateOrderStatus(c.Param("id"), req.Status); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update order status",
		})
		return
	}

	o, _ := h.store.OrderByID(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{
		"message": "Order status updated successfully",
		"data":    o,
	})
}

// RecordPayment handles POST /admin/orders/:id/payments
func (h *AdminHandler) RecordPayment(c *gin.Context) {
	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.store.RecordPayment(c.Param("id"), req.Amount, req.TrxID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to record payment",
		})
		return
	}

	o, _ := h.store.OrderByID(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{
		"message": "Payment recorded successfully",
		"data":    o,
	})
}

// ListCancellations handles GET /admin/cancellations
func (h *AdminHandler) ListCancellations(c *gin.Context) {
	requests := h.store.CancellationRequests()

	c.JSON(http.StatusOK, gin.H{
		"message": "Cancellation requests retrieved successfully",
		"data": gin.H{
			"requests": requests,
			"total":    len(requests),
		},
	})
}

// TriageCancellation handles PATCH /admin/cancellations/:id. Approving a
// request also cancels the order it names.
func (h *AdminHandler) TriageCancellation(c *gin.Context) {
	var req TriageCancellationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if !req.Status.Valid() || req.Status == cancellation.StatusPending {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Status must be approved or rejected",
		})
		return
	}

	if err := h.store.UpdateCancellationStatus(c.Param("id"), req.Status, req.AdminNote); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Cancellation request not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update cancellation request",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cancellation request updated successfully",
	})
}

// ExportOrdersCSV handles GET /admin/orders/export
func (h *AdminHandler) ExportOrdersCSV(c *gin.Context) {
	var buf bytes.Buffer
	if err := export.WriteOrdersCSV(&buf, h.store.Orders()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to export orders",
		})
		return
	}

	filename := fmt.Sprintf("orders-%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

// DownloadInvoice handles GET /admin/orders/:id/invoice
func (h *AdminHandler) DownloadInvoice(c *gin.Context) {
	o, err := h.store.OrderByID(c.Param("id"))
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

	invoice, err := h.pdfService.GenerateInvoice(&o)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate invoice",
		})
		return
	}

	filename := fmt.Sprintf("invoice-%s.pdf", o.OrderNumber)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/pdf", invoice.Bytes())
}

func productFromRequest(req ProductRequest) catalog.Product {
	return catalog.Product{
		Name:            req.Name,
		Category:        req.Category,
		Price:           req.Price,
		OriginalPrice:   req.OriginalPrice,
		Description:     req.Description,
		Images:          req.Images,
		IsFeatured:      req.IsFeatured,
		IsPreOrder:      req.IsPreOrder,
		PreOrderEndDate: req.PreOrderEndDate,
		IsCustomOrder:   req.IsCustomOrder,
		Stock:           req.Stock,
		VariantOptions:  req.VariantOptions,
	}
}
