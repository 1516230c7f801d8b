package models

import (
	"errors"
	"strings"
)

type OrderStatus string
type PaymentMethod string

const (
	// Order lifecycle. Mobile-wallet orders start pending, internal-wallet
	// orders start processing because the funds are already debited.
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusCompleted  OrderStatus = "Completed"
	OrderStatusCancelled  OrderStatus = "Cancelled"

	PaymentBkash  PaymentMethod = "Bkash"
	PaymentNagad  PaymentMethod = "Nagad"
	PaymentWallet PaymentMethod = "Wallet"
)

// ParseOrderStatus maps a request string to an OrderStatus.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch strings.ToLower(s) {
	case "pending":
		return OrderStatusPending, nil
	case "processing":
		return OrderStatusProcessing, nil
	case "completed":
		return OrderStatusCompleted, nil
	case "cancelled":
		return OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// ParsePaymentMethod maps a request string to a PaymentMethod.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch strings.ToLower(s) {
	case "bkash":
		return PaymentBkash, nil
	case "nagad":
		return PaymentNagad, nil
	case "wallet":
		return PaymentWallet, nil
	default:
		return "", errors.New("invalid payment method")
	}
}

// Order is an immutable snapshot of the cart at placement time. Items are a
// copy, not a live reference. PaymentPhone and TransactionID are set only for
// mobile-wallet methods; UserID is the placing user's email, empty for guests.
type Order struct {
	ID              string        `json:"id"`
	Date            string        `json:"date"` // ISO-8601
	Items           []CartItem    `json:"items"`
	Total           int           `json:"total"`
	Status          OrderStatus   `json:"status"`
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
	PaymentPhone    string        `json:"paymentPhone,omitempty"`
	TransactionID   string        `json:"transactionId,omitempty"`
	UserID          string        `json:"userId,omitempty"`
	DiscountApplied int           `json:"discountApplied,omitempty"`
}
