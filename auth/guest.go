package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// POST /auth/guest
// Guests can browse, cart and order without registering; they just need a
// session id for their cart to live under.
func CreateGuestSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := uuid.NewString()

		token, err := IssueToken(SessionClaims{SessionID: sid, Role: "guest"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"session_id": sid,
			"token":      token,
		})
	}
}
