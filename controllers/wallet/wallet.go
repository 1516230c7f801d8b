package walletControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/papon78/RoyTopUpBazar/store"
)

type AddMoneyInput struct {
	Amount int    `json:"amount" binding:"required,min=1"`
	Method string `json:"method" binding:"required"` // Bkash or Nagad
	TrxID  string `json:"trx_id" binding:"required"`
}

// GET /user/wallet
func GetWallet(s *store.Store) gin.HandlerFunc {
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

		transactions, err := s.WalletTransactions(c.Request.Context(), sid)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transactions"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"balance":      user.WalletBalance,
			"transactions": transactions,
		})
	}
}

// POST /user/wallet/add
// The trx id is recorded as entered; there is no gateway to verify against.
func AddMoney(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := c.GetString("session_id")
		if sid == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input AddMoneyInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := s.AddMoneyToWallet(c.Request.Context(), sid, input.Amount, input.Method, input.TrxID); err != nil {
			switch {
			case errors.Is(err, store.ErrNotLoggedIn):
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Login required"})
			case errors.Is(err, store.ErrInvalidAmount):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must be positive"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add money"})
			}
			return
		}

		user, _, err := s.CurrentUser(c.Request.Context(), sid)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Money added to wallet", "balance": user.WalletBalance})
	}
}
