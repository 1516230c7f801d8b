package routes

import (
	"github.com/gin-gonic/gin"
	adminController "github.com/papon78/RoyTopUpBazar/controllers/admin"
	orderControllers "github.com/papon78/RoyTopUpBazar/controllers/order"
	productcontroller "github.com/papon78/RoyTopUpBazar/controllers/product"
	"github.com/papon78/RoyTopUpBazar/middleware"
	"github.com/papon78/RoyTopUpBazar/store"
)

// SetupAdminRoutes registers all “/admin/*” endpoints. Requires the admin
// session token issued by POST /auth/admin.
func SetupAdminRoutes(r *gin.Engine, s *store.Store) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		// ─────────── User Management ───────────
		userAdmin := adminGroup.Group("/users")
		{
			userAdmin.GET("", adminController.GetAllUsers(s))
			userAdmin.POST("/balance", adminController.UpdateUserBalance(s))
			userAdmin.POST("/:email/ban", adminController.ToggleUserBan(s))
		}

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(s))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(s))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(s))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(s))
		}

		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(s))
			orderAdmin.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(s))
			orderAdmin.GET("/export-excel", orderControllers.ExportOrdersToExcel(s))
		}

		// ─────────── Marketing ───────────
		promoAdmin := adminGroup.Group("/promos")
		{
			promoAdmin.GET("", adminController.GetPromoCodes(s))
			promoAdmin.POST("", adminController.AddPromoCode(s))
			promoAdmin.DELETE("/:code", adminController.DeletePromoCode(s))
		}
		adminGroup.PUT("/notice", adminController.UpdateSiteNotice(s))
	}
}
