package models

type NotificationType string

const (
	NotifySuccess NotificationType = "success"
	NotifyError   NotificationType = "error"
	NotifyInfo    NotificationType = "info"
)

// Notification is the transient toast message surfaced after store operations.
type Notification struct {
	ID      int64            `json:"id"`
	Message string           `json:"message"`
	Type    NotificationType `json:"type"`
}
