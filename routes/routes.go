package routes

import (
	"github.com/gin-gonic/gin"

	"medstore/controllers"
)

// InitializeRoutes mounts the API. auth guards every route except login and
// the health check; admin additionally guards destructive operations.
func InitializeRoutes(router *gin.Engine, h *controllers.Handler, auth, admin gin.HandlerFunc) {
	router.POST("/auth/login", h.Login)
	router.GET("/healthz", h.Healthz)

	api := router.Group("/")
	api.Use(auth)
	{
		api.POST("/auth/logout", h.Logout)
		api.GET("/auth/me", h.Me)

		api.GET("/products", h.ListProducts)
		api.POST("/products", h.CreateProduct)
		api.GET("/products/stats", h.ProductStats)
		api.GET("/products/filter", h.FilterProducts)
		api.GET("/products/search", h.SearchProducts)
		api.GET("/products/expiring", h.ExpiringProducts)
		api.GET("/products/:id", h.GetProduct)
		api.PUT("/products/:id", h.UpdateProduct)
		api.DELETE("/products/:id", admin, h.DeleteProduct)
		api.POST("/products/:id/batch", h.AddBatch)
		api.PUT("/products/:id/batch/:batchId/stock", h.SetBatchStock)
		api.PUT("/products/:id/batch/:batchId/discount", h.SetBatchDiscount)
		api.PUT("/products/:id/flags", h.SetProductFlags)

		api.GET("/purchases", h.ListPurchases)
		api.POST("/purchases", h.CreatePurchase)
		api.GET("/purchases/:id", h.GetPurchase)
		api.PUT("/purchases/:id", h.UpdatePurchase)

		api.GET("/purchase-orders", h.ListPurchaseOrders)
		api.POST("/purchase-orders", h.CreatePurchaseOrder)
		api.GET("/purchase-orders/:id", h.GetPurchaseOrder)
		api.PUT("/purchase-orders/:id", h.UpdatePurchaseOrder)

		api.GET("/transactions", h.ListTransactions)
		api.POST("/transactions", h.CreateTransaction)
		api.GET("/transactions/filter", h.FilterTransactions)
		api.GET("/transactions/chart/:range", h.TransactionChart)
		api.GET("/transactions/:id", h.GetTransaction)
		api.PUT("/transactions/:id", h.UpdateTransaction)
		api.POST("/transactions/:id/prescription", h.UploadPrescription)

		api.POST("/returns/customer", h.CreateCustomerReturn)
		api.POST("/returns/supplier", h.CreateSupplierReturn)
		api.GET("/returns", h.ListReturns)
		api.GET("/returns/search", h.SearchReturnable)
		api.GET("/returns/:id", h.GetReturn)

		api.GET("/search", h.GlobalSearch)

		api.GET("/suppliers", h.ListSuppliers)
		api.POST("/suppliers", h.CreateSupplier)
		api.GET("/suppliers/:id", h.GetSupplier)
		api.PUT("/suppliers/:id", h.UpdateSupplier)
		api.DELETE("/suppliers/:id", admin, h.DeleteSupplier)

		api.GET("/customers", h.ListCustomers)
		api.POST("/customers", h.CreateCustomer)
		api.GET("/customers/search", h.SearchCustomers)
		api.GET("/customers/:id", h.GetCustomer)
		api.PUT("/customers/:id", h.UpdateCustomer)
		api.DELETE("/customers/:id", admin, h.DeleteCustomer)

		api.GET("/dashboard/stats", h.DashboardStats)
		api.GET("/dashboard/alerts", h.DashboardAlerts)
	}
}
