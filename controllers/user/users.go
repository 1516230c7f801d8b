package userControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/papon78/RoyTopUpBazar/auth"
	"github.com/papon78/RoyTopUpBazar/store"
)

type LoginInput struct {
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
	Phone  string `json:"phone"`
	Avatar string `json:"avatar"`
	// Collected by the form but not verified; login is upsert-by-email.
	Password string `json:"password"`
}

type UpdateUserInput struct {
	Name   *string `json:"name"`
	Phone  *string `json:"phone"`
	Avatar *string `json:"avatar"`
}

// POST /auth/login
// Logging in with a guest token keeps that session's cart.
func Login(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		sid := uuid.NewString()
		if tokenString := c.GetHeader("Authorization"); tokenString != "" {
			if claims, err := auth.ParseToken(tokenString); err == nil {
				sid = claims.SessionID
			}
		}

		user, err := s.Login(c.Request.Context(), sid, store.LoginProfile{
			Name:   input.Name,
			Email:  input.Email,
			Phone:  input.Phone,
			Avatar: input.Avatar,
		})
		if err != nil {
			if errors.Is(err, store.ErrBanned) {
				c.JSON(http.StatusForbidden, gin.H{"error": "This account has been banned by Admin."})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
			return
		}

		token, err := auth.IssueToken(auth.SessionClaims{
			SessionID: sid,
			Role:      string(user.Role),
			Email:     user.Email,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
	}
}

// POST /user/logout
func Logout(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := c.GetString("session_id")
		if sid == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if err := s.Logout(c.Request.Context(), sid); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
	}
}

// GET /user
func GetUser(s *store.Store) gin.HandlerFunc {
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
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// PUT /user
func UpdateUser(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := c.GetString("session_id")
		if sid == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input UpdateUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user, err := s.UpdateUser(c.Request.Context(), sid, store.UserUpdate{
			Name:   input.Name,
			Phone:  input.Phone,
			Avatar: input.Avatar,
		})
		if err != nil {
			if errors.Is(err, store.ErrNotLoggedIn) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Login required"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
