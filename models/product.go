package models

type ProductType string

const (
	// ProductTypePlayerID products need the buyer's in-game account id at purchase time.
	ProductTypePlayerID ProductType = "player_id"
	// ProductTypeVoucher products are redeemable codes, no account id needed.
	ProductTypeVoucher ProductType = "voucher"
)

// ProductOption is a single priced denomination of a product, e.g. "50 Diamonds".
// Prices are integers in the smallest currency unit (BDT taka).
type ProductOption struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Price         int    `json:"price"`
	OriginalPrice int    `json:"originalPrice,omitempty"` // strikethrough display only
}

type Product struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Type        ProductType     `json:"type"`
	Options     []ProductOption `json:"options"`
}
