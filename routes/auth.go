package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/papon78/RoyTopUpBazar/auth"
	adminController "github.com/papon78/RoyTopUpBazar/controllers/admin"
	userControllers "github.com/papon78/RoyTopUpBazar/controllers/user"
	"github.com/papon78/RoyTopUpBazar/store"
)

// SetupAuthRoutes registers all “/auth/*” endpoints.
func SetupAuthRoutes(r *gin.Engine, s *store.Store) {
	authGroup := r.Group("/auth")
	{
		// Guest session for anonymous carts and orders
		authGroup.POST("/guest", auth.CreateGuestSession())

		// Upsert-by-email user login
		authGroup.POST("/login", userControllers.Login(s))

		// Fixed-credential admin login
		authGroup.POST("/admin", adminController.AdminLogin(s))
	}
}
