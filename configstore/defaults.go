package configstore

import "github.com/pixelrevive/pixelrevive-api/models"

// DefaultConfig is the hardcoded storefront configuration used on first load
// and as the base every persisted document is merged onto, so required keys
// are always present.
func DefaultConfig() models.StoreConfig {
	return models.StoreConfig{
		StoreName:    "PixelRevive",
		HeroTitle:    "Bring your old photos back to life",
		HeroSubtitle: "AI-powered restoration and natural colorization in seconds.",
		FooterText:   "© PixelRevive. Restoring memories, one photo at a time.",
		MainMenu: []models.MenuItem{
			{ID: "home", Label: "Home", Path: "/"},
			{ID: "restore", Label: "Restore a Photo", Path: "/restore"},
			{ID: "pricing", Label: "Pricing", Path: "/pricing"},
			{ID: "contact", Label: "Contact", Path: "/contact"},
		},
		FooterMenu: []models.MenuItem{
			{ID: "terms", Label: "Terms of Service", Path: "/terms"},
			{ID: "privacy", Label: "Privacy", Path: "/privacy"},
		},
		PaymentMethods: []models.PaymentMethod{
			{ID: "card", Name: "Credit / Debit Card", Enabled: true, Type: models.PaymentTypeCard},
			{ID: "paypal", Name: "PayPal", Enabled: true, Type: models.PaymentTypePayPal},
			{ID: "mbway", Name: "MB WAY", Enabled: true, Type: models.PaymentTypeMBWay},
		},
		Bundles: []models.Bundle{
			{ID: "single", Name: "Single Restoration", Restorations: 1, Price: 2.99},
			{ID: "family", Name: "Family Pack", Restorations: 5, Price: 9.99},
			{ID: "archive", Name: "Archive Pack", Restorations: 20, Price: 29.99},
		},
		// Empty credential means "use the simulated flow" for that provider.
		APIKeys: map[string]string{
			"gemini":        "",
			"paypal":        "",
			"paypal_secret": "",
		},
	}
}
