package models

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is identified by email; IDs are assigned at first registration.
// Exactly one admin identity exists and it is never stored in the registry.
type User struct {
	ID            string `json:"id,omitempty"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone,omitempty"`
	Avatar        string `json:"avatar,omitempty"`
	WalletBalance int    `json:"walletBalance"`
	Role          Role   `json:"role"`
	IsBanned      bool   `json:"isBanned,omitempty"`
}
