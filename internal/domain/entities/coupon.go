package entities

import (
	"strings"
	"time"
)

type CouponKind string

const (
	CouponKindPercent CouponKind = "PERCENT"
	CouponKindFlat    CouponKind = "FLAT"
)

// Coupon is a discount rule from the static catalog.
//
// Amount is percentage points for PERCENT and rupees for FLAT.
// MaxDiscount only applies to PERCENT coupons.
type Coupon struct {
	Code                string     `json:"code"`
	Label               string     `json:"label"`
	Kind                CouponKind `json:"kind"`
	Amount              float64    `json:"amount"`
	MinEligibleSubtotal *int64     `json:"min_eligible_subtotal,omitempty"`
	RestrictedCategory  Category   `json:"restricted_category,omitempty"`
	MaxDiscount         *int64     `json:"max_discount,omitempty"`
	ExpiresAt           *time.Time `json:"expires_at,omitempty"`
}

// NormalizeCouponCode trims and upper-cases a user-entered code.
func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Matches compares codes case-insensitively.
func (c Coupon) Matches(code string) bool {
	return NormalizeCouponCode(c.Code) == NormalizeCouponCode(code)
}

func (c Coupon) IsRestricted() bool {
	return c.RestrictedCategory != ""
}

// ExpiredAt is true only when now is strictly after ExpiresAt.
func (c Coupon) ExpiredAt(now time.Time) bool {
	return c.ExpiresAt != nil && now.After(*c.ExpiresAt)
}
