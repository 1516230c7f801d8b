package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/papon78/RoyTopUpBazar/store"
)

// UpdateProduct replaces the catalog entry with the id in the URL.
// PUT /admin/products/:id
func UpdateProduct(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		product := input.toModel()
		product.ID = id

		if err := s.UpdateProduct(c.Request.Context(), c.GetString("session_id"), product); err != nil {
			switch {
			case errors.Is(err, store.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			case errors.Is(err, store.ErrNoOptions):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product needs at least one option"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			}
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
