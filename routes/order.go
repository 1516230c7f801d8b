package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/papon78/RoyTopUpBazar/controllers/order"
	"github.com/papon78/RoyTopUpBazar/middleware"
	"github.com/papon78/RoyTopUpBazar/store"
)

func SetupOrderRoutes(r *gin.Engine, s *store.Store) {
	orders := r.Group("/orders")
	{
		// Create a new order (guests allowed, session token required)
		orders.POST("/place", middleware.ValidateToken, orderControllers.PlaceOrderHandler(s))

		// Track any order by its id
		orders.GET("/track/:orderID", orderControllers.TrackOrderHandler(s))

		// websocket endpoint for real-time order updates
		orders.GET("/ws", orderControllers.OrderWebSocketHandler)
	}
}
