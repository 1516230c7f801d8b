package models

type TransactionType string

const (
	TransactionCredit TransactionType = "credit"
	TransactionDebit  TransactionType = "debit"
)

// WalletTransaction is an append-only ledger entry, kept newest-first.
type WalletTransaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Amount      int             `json:"amount"`
	Date        string          `json:"date"` // ISO-8601
	Description string          `json:"description"`
	Method      string          `json:"method,omitempty"` // Bkash, Nagad, or Wallet
	Status      string          `json:"status"`           // always "Completed" today
}
