package models

// CartItem is a priced option selection carrying denormalized display fields.
// Identity within a cart is the (ProductID, OptionID, PlayerID) triple: adding
// the same triple again bumps Quantity instead of creating a new line.
type CartItem struct {
	ProductID    string `json:"productId"`
	ProductTitle string `json:"productTitle"`
	ProductImage string `json:"productImage"`
	OptionID     string `json:"optionId"`
	OptionName   string `json:"optionName"`
	Price        int    `json:"price"`
	PlayerID     string `json:"playerId,omitempty"`
	Server       string `json:"server,omitempty"`
	Quantity     int    `json:"quantity"`
}
