package response

import (
	"gemstore/internal/domain/discount"
	"gemstore/internal/domain/entities"
	"time"
)

type CouponResponse struct {
	Code                string     `json:"code"`
	Label               string     `json:"label"`
	Kind                string     `json:"kind"`
	Amount              float64    `json:"amount"`
	MinEligibleSubtotal *int64     `json:"min_eligible_subtotal,omitempty"`
	RestrictedCategory  string     `json:"restricted_category,omitempty"`
	MaxDiscount         *int64     `json:"max_discount,omitempty"`
	ExpiresAt           *time.Time `json:"expires_at,omitempty"`
}

func FromCoupons(coupons []entities.Coupon) []CouponResponse {
	out := make([]CouponResponse, 0, len(coupons))
	for _, c := range coupons {
		out = append(out, CouponResponse{
			Code:                c.Code,
			Label:               c.Label,
			Kind:                string(c.Kind),
			Amount:              c.Amount,
			MinEligibleSubtotal: c.MinEligibleSubtotal,
			RestrictedCategory:  string(c.RestrictedCategory),
			MaxDiscount:         c.MaxDiscount,
			ExpiresAt:           c.ExpiresAt,
		})
	}
	return out
}

// DiscountResponse renders a discount.Result. Rejections are a normal 200 body.
type DiscountResponse struct {
	Applied          bool   `json:"applied"`
	Code             string `json:"code,omitempty"`
	Label            string `json:"label,omitempty"`
	Discount         int64  `json:"discount"`
	EligibleSubtotal int64  `json:"eligible_subtotal,omitempty"`
	Reason           string `json:"reason,omitempty"`
	Message          string `json:"message,omitempty"`
}

func FromDiscountResult(code string, r discount.Result) DiscountResponse {
	switch v := r.(type) {
	case discount.Approved:
		return DiscountResponse{
			Applied:          true,
			Code:             v.Coupon.Code,
			Label:            v.Coupon.Label,
			Discount:         v.Discount,
			EligibleSubtotal: v.EligibleSubtotal,
		}
	case discount.Rejected:
		return DiscountResponse{
			Code:    entities.NormalizeCouponCode(code),
			Reason:  string(v.Reason),
			Message: v.Message,
		}
	}
	return DiscountResponse{}
}
