// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/rupedia-backend/internal/config"
	"github.com/your-org/rupedia-backend/internal/interfaces/http/handlers"
	"github.com/your-org/rupedia-backend/internal/interfaces/http/middleware"
	"github.com/your-org/rupedia-backend/internal/store"
)

// SetupRoutes wires every endpoint group onto the API router group
func SetupRoutes(rg *gin.RouterGroup, st *store.Store, cfg *config.Config) {
	setupStorefrontRoutes(rg, st, cfg)
	setupCartRoutes(rg, st, cfg)
	setupCheckoutRoutes(rg, st, cfg)
	setupOrderRoutes(rg, st, cfg)
	setupSessionRoutes(rg, st, cfg)
	setupAdminRoutes(rg, st, cfg)
}

// setupStorefrontRoutes sets up the public catalog routes
func setupStorefrontRoutes(rg *gin.RouterGroup, st *store.Store, cfg *config.Config) {
	storefrontHandler := handlers.NewStorefrontHandler(st, cfg)
	reviewHandler := handlers.NewReviewHandler(st, cfg)

	products := rg.Group("/products")
	{
		products.GET("", storefrontHandler.GetProducts)
		products.GET("/:id", storefrontHandler.GetProduct)
		products.POST("/:id/reviews", reviewHandler.AddReview)
	}

	rg.GET("/categories", storefrontHandler.GetCategories)
}

// setupCartRoutes sets up the cart routes
func setupCartRoutes(rg *gin.RouterGroup, st *store.Store, cfg *config.Config) {
	cartHandler := handlers.NewCartHandler(st, cfg)

	cart := rg.Group("/cart")
	{
		cart.GET("", cartHandler.GetCart)
		cart.DELETE("", cartHandler.ClearCart)
		cart.POST("/items", cartHandler.AddToCart)
		cart.PATCH("/items/:id", cartHandler.UpdateQuantity)
		cart.DELETE("/items/:id", cartHandler.RemoveLine)
	}
}

// setupCheckoutRoutes sets up the checkout routes
func setupCheckoutRoutes(rg *gin.RouterGroup, st *store.Store, cfg *config.Config) {
	checkoutHandler := handlers.NewCheckoutHandler(st, cfg)

	checkout := rg.Group("/checkout")
	{
		checkout.GET("/quote", checkoutHandler.GetDeliveryQuote)
		checkout.POST("", checkoutHandler.Checkout)
	}
}

// setupOrderRoutes sets up the public order tracking and cancellation routes
func setupOrderRoutes(rg *gin.RouterGroup, st *store.Store, cfg *config.Config) {
	orderHandler := handlers.NewOrderHandler(st, cfg)
	cancellationHandler := handlers.NewCancellationHandler(st, cfg)

	rg.GET("/orders/track/:number", orderHandler.TrackOrder)
	rg.POST("/cancellations", cancellationHandler.Create)
}

// setupSessionRoutes sets up the session routes
func setupSessionRoutes(rg *gin.RouterGroup, st *store.Store, cfg *config.Config) {
	sessionHandler := handlers.NewSessionHandler(st, cfg)

	session := rg.Group("/session")
	{
		session.POST("/login", sessionHandler.Login)
		session.POST("/logout", sessionHandler.Logout)
		session.GET("", sessionHandler.Current)
	}
}

// setupAdminRoutes sets up the token-guarded admin routes
func setupAdminRoutes(rg *gin.RouterGroup, st *store.Store, cfg *config.Config) {
	adminHandler := handlers.NewAdminHandler(st, cfg)

	admin := rg.Group("/admin")
	admin.Use(middleware.RequireAdmin(cfg))
	{
		admin.GET("/dashboard", adminHandler.Dashboard)

		admin.POST("/products", adminHandler.CreateProduct)
		admin.PUT("/products/:id", adminHandler.UpdateProduct)
		admin.DELETE("/products/:id", adminHandler.DeleteProduct)

		admin.POST("/categories", adminHandler.AddCategory)

		admin.GET("/orders", adminHandler.ListOrders)
		admin.GET("/orders/export", adminHandler.ExportOrdersCSV)
		admin.GET("/orders/:id", adminHandler.GetOrder)
		admin.PATCH("/orders/:id/status", adminHandler.UpdateOrderStatus)
		admin.POST("/orders/:id/payments", adminHandler.RecordPayment)
		admin.GET("/orders/:id/invoice", adminHandler.DownloadInvoice)

		admin.GET("/cancellations", adminHandler.ListCancellations)
		admin.PATCH("/cancellations/:id", adminHandler.TriageCancellation)
	}
}
