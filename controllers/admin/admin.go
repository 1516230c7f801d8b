package adminController

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/papon78/RoyTopUpBazar/auth"
	"github.com/papon78/RoyTopUpBazar/models"
	"github.com/papon78/RoyTopUpBazar/store"
)

type AdminLoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type BalanceInput struct {
	Email  string `json:"email" binding:"required,email"`
	Amount int    `json:"amount" binding:"required,min=1"`
	Type   string `json:"type" binding:"required,oneof=credit debit"`
}

// POST /auth/admin
// Single fixed credential pair; a failed check changes nothing.
func AdminLogin(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AdminLoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		sid := uuid.NewString()
		admin, ok, err := s.AdminLogin(c.Request.Context(), sid, input.Username, input.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Admin login failed"})
			return
		}
		if !ok {
			log.Println("❌ Rejected admin login attempt for:", input.Username)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid admin credentials"})
			return
		}

		token, err := auth.IssueToken(auth.SessionClaims{
			SessionID: sid,
			Role:      string(models.RoleAdmin),
			Email:     admin.Email,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token, "user": admin})
	}
}

// GET /admin/users
func GetAllUsers(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.AllUsers())
	}
}

// POST /admin/users/balance
func UpdateUserBalance(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input BalanceInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user, err := s.UpdateUserBalance(c.Request.Context(), c.GetString("session_id"), input.Email, input.Amount, models.TransactionType(input.Type))
		if err != nil {
			switch {
			case errors.Is(err, store.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			case errors.Is(err, store.ErrInvalidAmount):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must be positive"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update balance"})
			}
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// POST /admin/users/:email/ban
func ToggleUserBan(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")
		if email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
			return
		}

		user, err := s.ToggleUserBan(c.Request.Context(), c.GetString("session_id"), email)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update ban status"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
