// Package discount decides whether a coupon applies to a cart and for how much.
package discount

import (
	"fmt"
	"time"

	"gemstore/internal/domain/entities"
	"gemstore/internal/domain/money"

	"github.com/shopspring/decimal"
)

const (
	MsgInvalidCode = "Invalid coupon code"
	MsgNoReduction = "Coupon does not reduce your total"
	msgNoEligible  = "No items in your cart are eligible for this coupon"
)

var hundred = decimal.NewFromInt(100)

// Evaluator is a pure coupon evaluator. The formatter only affects message text.
type Evaluator struct {
	formatter money.Formatter
}

func NewEvaluator(formatter money.Formatter) Evaluator {
	return Evaluator{formatter: formatter}
}

var defaultEvaluator = NewEvaluator(money.NewFormatter("en"))

// Evaluate runs the default English-formatting evaluator.
func Evaluate(items []entities.CartLine, code string, coupons []entities.Coupon, now time.Time) Result {
	return defaultEvaluator.Evaluate(items, code, coupons, now)
}

// Evaluate checks, in order: code lookup, expiry, category eligibility,
// minimum eligible spend, and finally that the computed discount is positive.
// The first failing check decides the rejection.
func (e Evaluator) Evaluate(items []entities.CartLine, code string, coupons []entities.Coupon, now time.Time) Result {
	coupon, ok := Lookup(coupons, code)
	if !ok {
		return Rejected{Reason: ReasonInvalidCode, Message: MsgInvalidCode}
	}

	if coupon.ExpiredAt(now) {
		return Rejected{Reason: ReasonExpired, Message: fmt.Sprintf("Coupon %s has expired", coupon.Code)}
	}

	eligible := EligibleLines(items, coupon)
	if len(eligible) == 0 {
		msg := msgNoEligible
		if coupon.IsRestricted() {
			msg = fmt.Sprintf("Coupon %s is valid on %s only", coupon.Code, coupon.RestrictedCategory.Plural())
		}
		return Rejected{Reason: ReasonNoEligibleItems, Message: msg}
	}

	subtotal := Subtotal(eligible)
	if coupon.MinEligibleSubtotal != nil && subtotal < *coupon.MinEligibleSubtotal {
		minSpend := e.formatter.Format(*coupon.MinEligibleSubtotal)
		msg := fmt.Sprintf("Minimum spend of %s required for this coupon", minSpend)
		if coupon.IsRestricted() {
			msg = fmt.Sprintf("Minimum spend of %s on %s required for this coupon", minSpend, coupon.RestrictedCategory.Plural())
		}
		return Rejected{Reason: ReasonBelowMinimum, Message: msg}
	}

	amount := Compute(coupon, subtotal)
	if amount <= 0 {
		return Rejected{Reason: ReasonNoReduction, Message: MsgNoReduction}
	}

	return Approved{Discount: amount, EligibleSubtotal: subtotal, Coupon: coupon}
}

// Lookup finds a coupon by trimmed, case-insensitive code.
func Lookup(coupons []entities.Coupon, code string) (entities.Coupon, bool) {
	code = entities.NormalizeCouponCode(code)
	if code == "" {
		return entities.Coupon{}, false
	}
	for _, c := range coupons {
		if c.Matches(code) {
			return c, true
		}
	}
	return entities.Coupon{}, false
}

// EligibleLines filters items to the coupon's category; unrestricted coupons accept every line.
func EligibleLines(items []entities.CartLine, coupon entities.Coupon) []entities.CartLine {
	if !coupon.IsRestricted() {
		return items
	}
	out := make([]entities.CartLine, 0, len(items))
	for _, it := range items {
		if it.Category == coupon.RestrictedCategory {
			out = append(out, it)
		}
	}
	return out
}

func Subtotal(items []entities.CartLine) int64 {
	var total int64
	for _, it := range items {
		total += it.LineTotal()
	}
	return total
}

// Compute is the raw discount before the positivity check.
//
// FLAT never exceeds the eligible subtotal. PERCENT rounds half away from
// zero to whole rupees and is then capped by MaxDiscount.
func Compute(coupon entities.Coupon, eligibleSubtotal int64) int64 {
	switch coupon.Kind {
	case entities.CouponKindFlat:
		amount := decimal.NewFromFloat(coupon.Amount).Round(0).IntPart()
		if amount > eligibleSubtotal {
			amount = eligibleSubtotal
		}
		return amount
	case entities.CouponKindPercent:
		amount := decimal.NewFromInt(eligibleSubtotal).
			Mul(decimal.NewFromFloat(coupon.Amount)).
			Div(hundred).
			Round(0).
			IntPart()
		if coupon.MaxDiscount != nil && amount > *coupon.MaxDiscount {
			amount = *coupon.MaxDiscount
		}
		return amount
	default:
		return 0
	}
}
