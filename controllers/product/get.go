package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/papon78/RoyTopUpBazar/store"
)

// GetProducts returns the full catalog.
// GET /products
func GetProducts(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.Products())
	}
}

// GetProductByID returns a single product with its priced options.
// URL param: /products/:id
func GetProductByID(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		product, ok := s.Product(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
