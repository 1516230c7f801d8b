package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/papon78/RoyTopUpBazar/models"
	"github.com/papon78/RoyTopUpBazar/store"
)

type ProductInput struct {
	ID          string                 `json:"id" binding:"required"`
	Title       string                 `json:"title" binding:"required"`
	Category    string                 `json:"category"`
	Image       string                 `json:"image"`
	Description string                 `json:"description"`
	Type        string                 `json:"type" binding:"required,oneof=player_id voucher"`
	Options     []models.ProductOption `json:"options" binding:"required,min=1"`
}

func (in ProductInput) toModel() models.Product {
	return models.Product{
		ID:          in.ID,
		Title:       in.Title,
		Category:    in.Category,
		Image:       in.Image,
		Description: in.Description,
		Type:        models.ProductType(in.Type),
		Options:     in.Options,
	}
}

// CreateProduct adds a new catalog entry.
// POST /admin/products
func CreateProduct(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product := input.toModel()
		if err := s.AddProduct(c.Request.Context(), c.GetString("session_id"), product); err != nil {
			switch {
			case errors.Is(err, store.ErrProductExists):
				c.JSON(http.StatusConflict, gin.H{"error": "Product id already exists"})
			case errors.Is(err, store.ErrNoOptions):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product needs at least one option"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			}
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
