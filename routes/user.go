package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/papon78/RoyTopUpBazar/controllers/cart"
	orderControllers "github.com/papon78/RoyTopUpBazar/controllers/order"
	userControllers "github.com/papon78/RoyTopUpBazar/controllers/user"
	walletControllers "github.com/papon78/RoyTopUpBazar/controllers/wallet"
	"github.com/papon78/RoyTopUpBazar/middleware"
	"github.com/papon78/RoyTopUpBazar/store"
)

// SetupUserRoutes registers all “/user/*” endpoints. Requires a session token;
// guest tokens are enough for the cart.
func SetupUserRoutes(r *gin.Engine, s *store.Store) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(s))    // GET /user/
		userGroup.PUT("/", userControllers.UpdateUser(s)) // PUT /user/
		userGroup.POST("/logout", userControllers.Logout(s))

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetCart(s))
			cartGroup.POST("/", cartControllers.AddToCart(s))
			cartGroup.DELETE("/:product_id/:option_id", cartControllers.RemoveCartItem(s))
			cartGroup.DELETE("/", cartControllers.ClearCart(s))
		}

		// ──────────────── Wallet ────────────────
		walletGroup := userGroup.Group("/wallet")
		{
			walletGroup.GET("/", walletControllers.GetWallet(s))
			walletGroup.POST("/add", walletControllers.AddMoney(s))
		}

		// ──────────────── Order History ────────────────
		userGroup.GET("/orders", orderControllers.GetMyOrdersHandler(s))
	}
}
