package models

type PromoType string

const (
	PromoFixed      PromoType = "fixed"
	PromoPercentage PromoType = "percentage"
)

// PromoCode is keyed by its uppercase code. UsageCount is persisted but not
// yet incremented anywhere; there is no usage cap in the current product.
type PromoCode struct {
	Code       string    `json:"code"`
	Type       PromoType `json:"type"`
	Value      float64   `json:"value"` // taka for fixed, percent 0-100 otherwise
	IsActive   bool      `json:"isActive"`
	UsageCount int       `json:"usageCount"`
}

// Discount returns the amount this promo takes off the given subtotal,
// clamped so the payable total never drops below zero.
func (p PromoCode) Discount(subtotal int) int {
	var discount int
	if p.Type == PromoPercentage {
		discount = int(float64(subtotal)*p.Value/100 + 0.5)
	} else {
		discount = int(p.Value)
	}
	if discount > subtotal {
		discount = subtotal
	}
	if discount < 0 {
		discount = 0
	}
	return discount
}
