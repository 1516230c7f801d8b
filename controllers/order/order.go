package orderControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/papon78/RoyTopUpBazar/models"
	"github.com/papon78/RoyTopUpBazar/store"
)

// -------- Request Structs --------

type PlaceOrderRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"` // "Bkash", "Nagad" or "Wallet"
	PaymentPhone  string `json:"payment_phone"`
	TransactionID string `json:"transaction_id"`
	PromoCode     string `json:"promo_code"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// -------- Handlers --------

// POST /orders/place
func PlaceOrderHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := c.GetString("session_id")
		if sid == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		method, err := models.ParsePaymentMethod(req.PaymentMethod)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := s.PlaceOrder(c.Request.Context(), sid, store.PlaceOrderInput{
			PaymentMethod: method,
			PaymentPhone:  req.PaymentPhone,
			TransactionID: req.TransactionID,
			PromoCode:     strings.ToUpper(req.PromoCode),
		})
		if err != nil {
			switch {
			case errors.Is(err, store.ErrNotLoggedIn):
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login to use wallet"})
			case errors.Is(err, store.ErrInsufficientBalance):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient wallet balance. Please add money."})
			case errors.Is(err, store.ErrEmptyCart),
				errors.Is(err, store.ErrMissingPaymentInfo),
				errors.Is(err, store.ErrInvalidPromo):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			}
			return
		}

		broadcastOrderEvent("order_placed", order)
		c.JSON(http.StatusOK, order)
	}
}

// GET /orders/track/:orderID
func TrackOrderHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		order, ok := s.Order(orderID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GET /user/orders
func GetMyOrdersHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := c.GetString("session_id")
		if sid == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		user, ok, err := s.CurrentUser(c.Request.Context(), sid)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
			return
		}
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Login required"})
			return
		}
		c.JSON(http.StatusOK, s.UserOrders(user.Email))
	}
}

// GET /admin/orders
func GetAllOrdersHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.Orders())
	}
}

// PUT /admin/orders/:orderID/status
func UpdateOrderStatusHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := models.ParseOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := s.UpdateOrderStatus(c.Request.Context(), c.GetString("session_id"), orderID, newStatus); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order status"})
			return
		}

		if order, ok := s.Order(orderID); ok {
			broadcastOrderEvent("status_changed", order)
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}

// GET /payment-info
// The collection numbers buyers send mobile-wallet transfers to.
func PaymentInfoHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"bkash": models.BkashNumber,
			"nagad": models.NagadNumber,
		})
	}
}
