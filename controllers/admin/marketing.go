package adminController

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/papon78/RoyTopUpBazar/models"
	"github.com/papon78/RoyTopUpBazar/store"
)

type PromoInput struct {
	Code     string  `json:"code" binding:"required"`
	Type     string  `json:"type" binding:"required,oneof=fixed percentage"`
	Value    float64 `json:"value" binding:"required,gt=0"`
	IsActive bool    `json:"is_active"`
}

type NoticeInput struct {
	Notice string `json:"notice"`
}

type VerifyPromoInput struct {
	Code string `json:"code" binding:"required"`
}

// GET /admin/promos
func GetPromoCodes(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.PromoCodes())
	}
}

// POST /admin/promos
func AddPromoCode(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input PromoInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Type == string(models.PromoPercentage) && input.Value > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Percentage value cannot exceed 100"})
			return
		}

		promo := models.PromoCode{
			Code:     input.Code,
			Type:     models.PromoType(input.Type),
			Value:    input.Value,
			IsActive: input.IsActive,
		}
		if err := s.AddPromoCode(c.Request.Context(), c.GetString("session_id"), promo); err != nil {
			if errors.Is(err, store.ErrPromoExists) {
				c.JSON(http.StatusConflict, gin.H{"error": "Promo code already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create promo code"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Promo Code created"})
	}
}

// DELETE /admin/promos/:code
func DeletePromoCode(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Param("code")
		if code == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "code is required"})
			return
		}

		if err := s.DeletePromoCode(c.Request.Context(), c.GetString("session_id"), code); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Promo code not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete promo code"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Promo Code deleted"})
	}
}

// POST /promo/verify
// Public: the checkout page checks a code before applying it.
func VerifyPromoCode(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input VerifyPromoInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		promo, ok := s.VerifyPromoCode(strings.ToUpper(input.Code))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invalid or expired promo code"})
			return
		}
		c.JSON(http.StatusOK, promo)
	}
}

// GET /notice
func GetSiteNotice(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"notice": s.SiteNotice()})
	}
}

// PUT /admin/notice
func UpdateSiteNotice(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input NoticeInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := s.UpdateSiteNotice(c.Request.Context(), c.GetString("session_id"), input.Notice); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notice"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Notice Board updated"})
	}
}
