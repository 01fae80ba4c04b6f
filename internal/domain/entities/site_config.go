package entities

// SiteConfig is the small admin-editable settings object.
//
// FreeShippingThreshold, when set, waives ShippingFee for orders whose
// discounted subtotal reaches it.
type SiteConfig struct {
	StoreName             string      `json:"store_name"`
	ShippingFee           int64       `json:"shipping_fee" validate:"gte=0"`
	FreeShippingThreshold *int64      `json:"free_shipping_threshold,omitempty" validate:"omitempty,gte=0"`
	Bank                  BankAccount `json:"bank"`
}

// BankAccount is where ONLINE payments are sent.
type BankAccount struct {
	BankName      string `json:"bank_name"`
	AccountTitle  string `json:"account_title"`
	AccountNumber string `json:"account_number"`
}

// DefaultSiteConfig is used when no configuration has been saved yet.
func DefaultSiteConfig() SiteConfig {
	return SiteConfig{
		StoreName:   "Gem Store",
		ShippingFee: 250,
	}
}

// ShippingFor returns the fee charged for an order with the given discounted subtotal.
func (s SiteConfig) ShippingFor(discountedSubtotal int64) int64 {
	if s.FreeShippingThreshold != nil && discountedSubtotal >= *s.FreeShippingThreshold {
		return 0
	}
	return s.ShippingFee
}
