package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/papon78/RoyTopUpBazar/models"
	"github.com/papon78/RoyTopUpBazar/store"
)

type CartItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
	OptionID  string `json:"option_id" binding:"required"`
	PlayerID  string `json:"player_id"`
	Server    string `json:"server"`
}

// POST /user/cart
func AddToCart(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := c.GetString("session_id")
		if sid == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// Denormalize display fields from the live catalog entry.
		product, ok := s.Product(input.ProductID)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}
		var option *models.ProductOption
		for i := range product.Options {
			if product.Options[i].ID == input.OptionID {
				option = &product.Options[i]
				break
			}
		}
		if option == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product option does not exist"})
			return
		}
		if product.Type == models.ProductTypePlayerID && input.PlayerID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Player ID is required for this product"})
			return
		}

		item := models.CartItem{
			ProductID:    product.ID,
			ProductTitle: product.Title,
			ProductImage: product.Image,
			OptionID:     option.ID,
			OptionName:   option.Name,
			Price:        option.Price,
			PlayerID:     input.PlayerID,
			Server:       input.Server,
			Quantity:     1,
		}
		if err := s.AddToCart(c.Request.Context(), sid, item); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}

		cart, err := s.Cart(c.Request.Context(), sid)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// GET /user/cart
func GetCart(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := c.GetString("session_id")
		if sid == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		cart, err := s.Cart(c.Request.Context(), sid)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// DELETE /user/cart/:product_id/:option_id
func RemoveCartItem(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := c.GetString("session_id")
		if sid == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		productID := c.Param("product_id")
		optionID := c.Param("option_id")

		if err := s.RemoveFromCart(c.Request.Context(), sid, productID, optionID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item removed"})
	}
}

// DELETE /user/cart
func ClearCart(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := c.GetString("session_id")
		if sid == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if err := s.ClearCart(c.Request.Context(), sid); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
