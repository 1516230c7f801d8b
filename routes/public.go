package routes

import (
	"github.com/gin-gonic/gin"
	adminController "github.com/papon78/RoyTopUpBazar/controllers/admin"
	notifyControllers "github.com/papon78/RoyTopUpBazar/controllers/notify"
	orderControllers "github.com/papon78/RoyTopUpBazar/controllers/order"
	productcontroller "github.com/papon78/RoyTopUpBazar/controllers/product"
	"github.com/papon78/RoyTopUpBazar/middleware"
	"github.com/papon78/RoyTopUpBazar/store"
)

// SetupPublicRoutes registers the storefront endpoints anyone can hit.
func SetupPublicRoutes(r *gin.Engine, s *store.Store) {
	// ──────────────── Browse Products ────────────────
	r.GET("/products", productcontroller.GetProducts(s))
	r.GET("/products/:id", productcontroller.GetProductByID(s))

	// ──────────────── Landing Page Extras ────────────────
	r.GET("/notice", adminController.GetSiteNotice(s))
	r.GET("/payment-info", orderControllers.PaymentInfoHandler())
	r.POST("/promo/verify", adminController.VerifyPromoCode(s))

	// ──────────────── Toast Notification ────────────────
	// Session-scoped: a guest token is enough, but some token is required.
	r.GET("/notification", middleware.ValidateToken, notifyControllers.GetNotification(s))
	r.DELETE("/notification", middleware.ValidateToken, notifyControllers.HideNotification(s))
}
