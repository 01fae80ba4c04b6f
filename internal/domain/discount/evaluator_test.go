package discount

import (
	"testing"
	"time"

	"gemstore/internal/domain/entities"
	"gemstore/internal/domain/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

func line(id string, cat entities.Category, price int64, qty int) entities.CartLine {
	return entities.CartLine{ID: id, Name: id, UnitPrice: price, Category: cat, Quantity: qty}
}

func requireRejected(t *testing.T, r Result, reason RejectionReason) Rejected {
	t.Helper()
	rej, ok := r.(Rejected)
	require.Truef(t, ok, "expected Rejected, got %#v", r)
	assert.Equal(t, reason, rej.Reason)
	assert.NotEmpty(t, rej.Message)
	return rej
}

func requireApproved(t *testing.T, r Result) Approved {
	t.Helper()
	ok, isApproved := r.(Approved)
	require.Truef(t, isApproved, "expected Approved, got %#v", r)
	assert.Positive(t, ok.Discount)
	return ok
}

func TestEvaluate_Scenarios(t *testing.T) {
	catalog := DefaultCatalog()

	t.Run("percent without min or cap", func(t *testing.T) {
		items := []entities.CartLine{line("r1", entities.CategoryRing, 2500, 2)}
		got := requireApproved(t, Evaluate(items, "SAVE10", catalog, now))
		assert.Equal(t, int64(500), got.Discount)
		assert.Equal(t, "SAVE10", got.Coupon.Code)
	})

	t.Run("ring-only coupon on gemstone cart", func(t *testing.T) {
		items := []entities.CartLine{line("g1", entities.CategoryGemstone, 3000, 1)}
		rej := requireRejected(t, Evaluate(items, "RINGS200", catalog, now), ReasonNoEligibleItems)
		assert.Contains(t, rej.Message, "rings")
	})

	t.Run("percent capped by max discount", func(t *testing.T) {
		items := []entities.CartLine{
			line("r1", entities.CategoryRing, 4000, 1),
			line("g1", entities.CategoryGemstone, 6000, 1),
		}
		got := requireApproved(t, Evaluate(items, "FEST25", catalog, now))
		assert.Equal(t, int64(1500), got.Discount)
		assert.Equal(t, int64(10000), got.EligibleSubtotal)
	})

	t.Run("unknown code", func(t *testing.T) {
		items := []entities.CartLine{line("r1", entities.CategoryRing, 100, 1)}
		rej := requireRejected(t, Evaluate(items, "NOPE", catalog, now), ReasonInvalidCode)
		assert.Equal(t, "Invalid coupon code", rej.Message)
	})
}

func TestEvaluate_CodeNormalization(t *testing.T) {
	items := []entities.CartLine{line("r1", entities.CategoryRing, 1000, 1)}
	got := requireApproved(t, Evaluate(items, "  save10 ", DefaultCatalog(), now))
	assert.Equal(t, int64(100), got.Discount)

	requireRejected(t, Evaluate(items, "   ", DefaultCatalog(), now), ReasonInvalidCode)
}

func TestEvaluate_Expiry(t *testing.T) {
	items := []entities.CartLine{line("r1", entities.CategoryRing, 1000, 1)}
	expires := time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC)

	requireApproved(t, Evaluate(items, "NEWYEAR500", DefaultCatalog(), expires))
	rej := requireRejected(t, Evaluate(items, "NEWYEAR500", DefaultCatalog(), expires.Add(time.Second)), ReasonExpired)
	assert.Contains(t, rej.Message, "expired")
}

func TestEvaluate_MinimumUsesEligibleSubtotalOnly(t *testing.T) {
	items := []entities.CartLine{
		line("r1", entities.CategoryRing, 1500, 1),
		line("g1", entities.CategoryGemstone, 9000, 1),
	}
	rej := requireRejected(t, Evaluate(items, "RINGS200", DefaultCatalog(), now), ReasonBelowMinimum)
	assert.Contains(t, rej.Message, "Rs. 2,000")
	assert.Contains(t, rej.Message, "rings")

	items[0].Quantity = 2
	got := requireApproved(t, Evaluate(items, "RINGS200", DefaultCatalog(), now))
	assert.Equal(t, int64(200), got.Discount)
	assert.Equal(t, int64(3000), got.EligibleSubtotal)
}

func TestEvaluate_MinimumMessageUsesFormatter(t *testing.T) {
	items := []entities.CartLine{line("r1", entities.CategoryRing, 100, 1)}
	e := NewEvaluator(money.NewFormatter("en"))
	rej := requireRejected(t, e.Evaluate(items, "FEST25", DefaultCatalog(), now), ReasonBelowMinimum)
	assert.Equal(t, "Minimum spend of Rs. 6,000 required for this coupon", rej.Message)
}

func TestEvaluate_NonPositiveDiscount(t *testing.T) {
	coupons := []entities.Coupon{
		{Code: "ZERO", Kind: entities.CouponKindPercent, Amount: 0},
		{Code: "TINY", Kind: entities.CouponKindPercent, Amount: 1},
		{Code: "BROKEN", Kind: entities.CouponKind("BOGO"), Amount: 50},
	}
	items := []entities.CartLine{line("r1", entities.CategoryRing, 40, 1)}

	requireRejected(t, Evaluate(items, "ZERO", coupons, now), ReasonNoReduction)
	requireRejected(t, Evaluate(items, "TINY", coupons, now), ReasonNoReduction)
	requireRejected(t, Evaluate(items, "BROKEN", coupons, now), ReasonNoReduction)
}

func TestEvaluate_GenericNoEligibleItems(t *testing.T) {
	rej := requireRejected(t, Evaluate(nil, "SAVE10", DefaultCatalog(), now), ReasonNoEligibleItems)
	assert.Equal(t, msgNoEligible, rej.Message)
}

func TestCompute_Rounding(t *testing.T) {
	pct := entities.Coupon{Kind: entities.CouponKindPercent, Amount: 10}
	assert.Equal(t, int64(1), Compute(pct, 5))  // 0.5 rounds up
	assert.Equal(t, int64(0), Compute(pct, 4))  // 0.4 rounds down
	assert.Equal(t, int64(2), Compute(pct, 15)) // 1.5 rounds up
	assert.Equal(t, int64(3), Compute(pct, 25)) // 2.5 rounds up

	fractional := entities.Coupon{Kind: entities.CouponKindPercent, Amount: 12.5}
	assert.Equal(t, int64(125), Compute(fractional, 1000))
}

func TestEvaluate_Properties(t *testing.T) {
	maxCap := int64(300)
	coupons := []entities.Coupon{
		{Code: "FLAT", Kind: entities.CouponKindFlat, Amount: 750},
		{Code: "PCT", Kind: entities.CouponKindPercent, Amount: 33, MaxDiscount: &maxCap},
	}

	for price := int64(1); price <= 3000; price += 37 {
		for qty := 1; qty <= 3; qty++ {
			items := []entities.CartLine{line("x", entities.CategoryGemstone, price, qty)}
			subtotal := price * int64(qty)

			flat := Evaluate(items, "FLAT", coupons, now)
			assert.LessOrEqual(t, AmountOf(flat), subtotal)

			pct := Evaluate(items, "PCT", coupons, now)
			assert.LessOrEqual(t, AmountOf(pct), maxCap)

			assert.Equal(t, pct, Evaluate(items, "PCT", coupons, now), "evaluation is deterministic")
		}
	}
}

func TestDefaultCatalogIsFresh(t *testing.T) {
	a := DefaultCatalog()
	a[0].Amount = 99
	assert.Equal(t, float64(10), DefaultCatalog()[0].Amount)
}
