package notifyControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/papon78/RoyTopUpBazar/store"
)

// GET /notification
// The session's current toast, if one is showing. It auto-dismisses
// server-side; a session never sees another session's toasts.
func GetNotification(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := c.GetString("session_id")
		if sid == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		n := s.Notification(sid)
		if n == nil {
			c.JSON(http.StatusNoContent, nil)
			return
		}
		c.JSON(http.StatusOK, n)
	}
}

// DELETE /notification
func HideNotification(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := c.GetString("session_id")
		if sid == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		s.HideNotification(sid)
		c.JSON(http.StatusOK, gin.H{"message": "Notification dismissed"})
	}
}
