package discount

import (
	"time"

	"gemstore/internal/domain/entities"
)

func rupees(v int64) *int64 { return &v }

// DefaultCatalog is the storefront's fixed coupon table.
// Each call returns a fresh slice so callers cannot alter the catalog.
func DefaultCatalog() []entities.Coupon {
	newYearEnd := time.Date(2026, time.January, 31, 23, 59, 59, 0, time.UTC)
	return []entities.Coupon{
		{
			Code:   "SAVE10",
			Label:  "10% off your order",
			Kind:   entities.CouponKindPercent,
			Amount: 10,
		},
		{
			Code:                "RINGS200",
			Label:               "Rs. 200 off rings over Rs. 2,000",
			Kind:                entities.CouponKindFlat,
			Amount:              200,
			MinEligibleSubtotal: rupees(2000),
			RestrictedCategory:  entities.CategoryRing,
		},
		{
			Code:                "FEST25",
			Label:               "25% off over Rs. 6,000 (up to Rs. 1,500)",
			Kind:                entities.CouponKindPercent,
			Amount:              25,
			MinEligibleSubtotal: rupees(6000),
			MaxDiscount:         rupees(1500),
		},
		{
			Code:                "GEM15",
			Label:               "15% off gemstones over Rs. 5,000 (up to Rs. 2,000)",
			Kind:                entities.CouponKindPercent,
			Amount:              15,
			MinEligibleSubtotal: rupees(5000),
			RestrictedCategory:  entities.CategoryGemstone,
			MaxDiscount:         rupees(2000),
		},
		{
			Code:      "NEWYEAR500",
			Label:     "Rs. 500 off (New Year)",
			Kind:      entities.CouponKindFlat,
			Amount:    500,
			ExpiresAt: &newYearEnd,
		},
	}
}
