package response

import (
	"gemstore/internal/domain/money"
	"gemstore/internal/usecase"
)

type QuoteResponse struct {
	Cart           CartResponse      `json:"cart"`
	Coupon         *DiscountResponse `json:"coupon,omitempty"`
	Subtotal       int64             `json:"subtotal"`
	Discount       int64             `json:"discount"`
	ShippingFee    int64             `json:"shipping_fee"`
	Total          int64             `json:"total"`
	FormattedTotal string            `json:"formatted_total"`
}

func FromQuote(q usecase.Quote, f money.Formatter) QuoteResponse {
	res := QuoteResponse{
		Cart:           FromCart(q.Cart, f),
		Subtotal:       q.Subtotal,
		Discount:       q.Discount,
		ShippingFee:    q.ShippingFee,
		Total:          q.Total,
		FormattedTotal: f.Format(q.Total),
	}
	if q.Coupon.Code != "" {
		d := FromDiscountResult(q.Coupon.Code, q.Coupon.Result)
		res.Coupon = &d
	}
	return res
}
