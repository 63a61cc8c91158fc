package models

type PaymentMethodType string

const (
	// Supported checkout methods. Card and MB WAY run as simulated flows;
	// PayPal hands off to the hosted checkout when credentials exist.
	PaymentTypeCard   PaymentMethodType = "card"
	PaymentTypePayPal PaymentMethodType = "paypal"
	PaymentTypeMBWay  PaymentMethodType = "mbway"
)

// MenuItem is one navigation entry. Path is an internal route string and is
// not validated by the backend.
type MenuItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Path  string `json:"path"`
}

// PaymentMethod toggles visibility of a method in checkout. Enabled is a
// display flag, not a capability restriction.
type PaymentMethod struct {
	ID      string            `json:"id"`
	Name    string            `json:"name"`
	Enabled bool              `json:"enabled"`
	Type    PaymentMethodType `json:"type"`
}

// Bundle is a priced package of N photo restorations.
type Bundle struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Restorations int     `json:"restorations"`
	Price        float64 `json:"price"`
}

// StoreConfig is the single storefront configuration document. One instance
// exists process-wide, persisted as one JSON document. An empty string in
// APIKeys means "use the simulated flow" for that provider.
type StoreConfig struct {
	StoreName      string            `json:"store_name"`
	HeroTitle      string            `json:"hero_title"`
	HeroSubtitle   string            `json:"hero_subtitle"`
	FooterText     string            `json:"footer_text"`
	MainMenu       []MenuItem        `json:"main_menu"`
	FooterMenu     []MenuItem        `json:"footer_menu"`
	PaymentMethods []PaymentMethod   `json:"payment_methods"`
	Bundles        []Bundle          `json:"bundles"`
	APIKeys        map[string]string `json:"api_keys"`
}

// ConfigPatch is a partial StoreConfig update. Nil fields are left untouched;
// set fields replace the current value wholesale (a patched PaymentMethods
// slice replaces the whole slice, no element-wise merge).
type ConfigPatch struct {
	StoreName      *string           `json:"store_name"`
	HeroTitle      *string           `json:"hero_title"`
	HeroSubtitle   *string           `json:"hero_subtitle"`
	FooterText     *string           `json:"footer_text"`
	MainMenu       []MenuItem        `json:"main_menu"`
	FooterMenu     []MenuItem        `json:"footer_menu"`
	PaymentMethods []PaymentMethod   `json:"payment_methods"`
	Bundles        []Bundle          `json:"bundles"`
	APIKeys        map[string]string `json:"api_keys"`
}
