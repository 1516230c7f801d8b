// Package data holds the built-in catalog used when no catalog has been
// persisted yet. The admin console edits the live copy; this list is only the
// default.
package data

import (
	"fmt"
	"net/url"

	"github.com/papon78/RoyTopUpBazar/models"
)

// placeholder images until real art is hosted on the CDN
func img(text, bg string) string {
	return fmt.Sprintf("https://placehold.co/400x400/%s/FFFFFF/png?text=%s&font=roboto", bg, url.QueryEscape(text))
}

func Products() []models.Product {
	return []models.Product{
		{
			ID:          "ff-diamonds",
			Title:       "Free Fire Diamonds (BD)",
			Category:    "Game Topup",
			Image:       img("Free Fire", "FF6B00"),
			Description: "Instant Free Fire Diamond Top Up via Player ID. 100% Safe & Secure.",
			Type:        models.ProductTypePlayerID,
			Options: []models.ProductOption{
				{ID: "ff-25", Name: "25 Diamonds", Price: 23},
				{ID: "ff-50", Name: "50 Diamonds", Price: 36},
				{ID: "ff-115", Name: "115 Diamonds", Price: 80},
				{ID: "ff-240", Name: "240 Diamonds", Price: 157},
				{ID: "ff-355", Name: "355 Diamonds", Price: 236},
				{ID: "ff-480", Name: "480 Diamonds", Price: 312},
				{ID: "ff-505", Name: "505 Diamonds", Price: 349},
				{ID: "ff-610", Name: "610 Diamonds", Price: 398},
				{ID: "ff-850", Name: "850 Diamonds", Price: 555},
				{ID: "ff-1090", Name: "1090 Diamonds", Price: 745},
				{ID: "ff-1240", Name: "1240 Diamonds", Price: 795},
				{ID: "ff-2530", Name: "2530 Diamonds", Price: 1609},
				{ID: "ff-5060", Name: "5060 Diamonds", Price: 3219},
				{ID: "ff-10120", Name: "10120 Diamonds", Price: 6383},
				{ID: "ff-12650", Name: "12650 Diamonds", Price: 7978},
				{ID: "ff-weekly", Name: "Weekly Membership", Price: 155},
				{ID: "ff-monthly", Name: "Monthly Membership", Price: 775},
			},
		},
		{
			ID:          "pubg-uc",
			Title:       "PUBG Mobile UC (Global)",
			Category:    "Game Topup",
			Image:       img("PUBG Mobile", "1A1A2E"),
			Description: "Top Up PUBG Mobile UC securely with Player ID. Global Server.",
			Type:        models.ProductTypePlayerID,
			Options: []models.ProductOption{
				{ID: "pubg-60", Name: "60 UC", Price: 115},
				{ID: "pubg-120", Name: "120 UC", Price: 230},
				{ID: "pubg-180", Name: "180 UC", Price: 345},
				{ID: "pubg-240", Name: "240 UC", Price: 460},
				{ID: "pubg-325", Name: "325 UC", Price: 575},
				{ID: "pubg-660", Name: "660 UC", Price: 1150},
				{ID: "pubg-1800", Name: "1800 UC", Price: 2865},
				{ID: "pubg-3850", Name: "3850 UC", Price: 5720},
				{ID: "pubg-8100", Name: "8100 UC", Price: 11450},
			},
		},
		{
			ID:          "farlight-84",
			Title:       "Farlight 84 Diamonds",
			Category:    "Game Topup",
			Image:       img("Farlight 84", "FBBF24"),
			Description: "Farlight 84 Diamond Top Up via Player ID. Fast & Secure.",
			Type:        models.ProductTypePlayerID,
			Options: []models.ProductOption{
				{ID: "fl-30", Name: "30 Diamonds", Price: 45},
				{ID: "fl-50", Name: "50 Diamonds", Price: 65},
				{ID: "fl-80", Name: "80 Diamonds", Price: 100},
				{ID: "fl-100", Name: "100 Diamonds", Price: 120},
				{ID: "fl-165", Name: "165 Diamonds", Price: 185},
				{ID: "fl-220", Name: "220 Diamonds", Price: 240},
				{ID: "fl-330", Name: "330 Diamonds", Price: 350},
				{ID: "fl-880", Name: "880 Diamonds", Price: 925},
				{ID: "fl-2240", Name: "2240 Diamonds", Price: 2350},
				{ID: "fl-4700", Name: "4700 Diamonds", Price: 4700},
			},
		},
		{
			ID:          "cod-mobile",
			Title:       "Call of Duty Mobile CP",
			Category:    "Game Topup",
			Image:       img("Call of Duty", "374151"),
			Description: "Call of Duty Mobile CP Top Up via Player ID.",
			Type:        models.ProductTypePlayerID,
			Options: []models.ProductOption{
				{ID: "cod-80", Name: "80 CP", Price: 125},
				{ID: "cod-160", Name: "160 CP", Price: 250},
				{ID: "cod-240", Name: "240 CP", Price: 375},
				{ID: "cod-420", Name: "420 CP", Price: 625},
				{ID: "cod-880", Name: "880 CP", Price: 1250},
				{ID: "cod-2400", Name: "2400 CP", Price: 2500},
			},
		},
		{
			ID:          "mlbb-diamonds",
			Title:       "Mobile Legends (Global)",
			Category:    "Game Topup",
			Image:       img("Mobile Legends", "2563EB"),
			Description: "Mobile Legends Bang Bang Diamond Top Up. Instant Delivery.",
			Type:        models.ProductTypePlayerID,
			Options: []models.ProductOption{
				{ID: "mlbb-11", Name: "11 Diamonds", Price: 20},
				{ID: "mlbb-56", Name: "56 Diamonds", Price: 90},
				{ID: "mlbb-277", Name: "277 Diamonds", Price: 450},
				{ID: "mlbb-starlight", Name: "Starlight Member", Price: 950},
			},
		},
		{
			ID:          "clash-of-clans",
			Title:       "Clash of Clans",
			Category:    "Game Topup",
			Image:       img("Clash of Clans", "DC2626"),
			Description: "Instant Gems via Player Tag. Supercell ID safe.",
			Type:        models.ProductTypePlayerID,
			Options: []models.ProductOption{
				{ID: "coc-80", Name: "80 Gems", Price: 95},
				{ID: "coc-500", Name: "500 Gems", Price: 480},
				{ID: "coc-pass", Name: "Gold Pass", Price: 600},
			},
		},
		{
			ID:          "netflix-card",
			Title:       "Netflix Gift Card",
			Category:    "Gift Cards",
			Image:       img("NETFLIX", "E50914"),
			Description: "Netflix subscription gift cards. Code delivered to email/orders page.",
			Type:        models.ProductTypeVoucher,
			Options: []models.ProductOption{
				{ID: "nf-10", Name: "$10 Gift Card", Price: 1200},
				{ID: "nf-25", Name: "$25 Gift Card", Price: 2900},
			},
		},
		{
			ID:          "google-play",
			Title:       "Google Play Card (US)",
			Category:    "Gift Cards",
			Image:       img("Google Play", "34A853"),
			Description: "US Region Google Play Store Gift Card.",
			Type:        models.ProductTypeVoucher,
			Options: []models.ProductOption{
				{ID: "gp-5", Name: "$5 Gift Card", Price: 600},
				{ID: "gp-10", Name: "$10 Gift Card", Price: 1150},
				{ID: "gp-100", Name: "$100 Gift Card", Price: 11000},
			},
		},
		{
			ID:          "roblox-robux",
			Title:       "Roblox Robux",
			Category:    "Game Topup",
			Image:       img("ROBLOX", "000000"),
			Description: "Robux via Code voucher. Redeem globally.",
			Type:        models.ProductTypeVoucher,
			Options: []models.ProductOption{
				{ID: "rbx-100", Name: "100 Robux", Price: 150},
				{ID: "rbx-400", Name: "400 Robux", Price: 550},
				{ID: "rbx-800", Name: "800 Robux", Price: 1050},
			},
		},
	}
}
