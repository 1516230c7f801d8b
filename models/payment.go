package models

// Collection numbers buyers send mobile-wallet transfers to. Shown on the
// checkout page next to the manual transaction-id entry.
const (
	BkashNumber = "01712627336"
	NagadNumber = "01917243974"
)
