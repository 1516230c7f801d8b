package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/papon78/RoyTopUpBazar/store"
)

// SetupRoutes is the single entry‐point that wires up Auth, Public, User,
// Order, and Admin route groups.
func SetupRoutes(r *gin.Engine, s *store.Store) {
	// 1️⃣ Public Auth routes (no middleware)
	SetupAuthRoutes(r, s)

	// 2️⃣ Public storefront routes (no middleware)
	SetupPublicRoutes(r, s)

	// 3️⃣ User routes (JWT‐protected, guests included)
	SetupUserRoutes(r, s)

	// 4️⃣ Order routes
	SetupOrderRoutes(r, s)

	// 5️⃣ Admin routes (admin JWT‐protected)
	SetupAdminRoutes(r, s)
}
