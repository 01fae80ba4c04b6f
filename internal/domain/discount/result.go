package discount

import "gemstore/internal/domain/entities"

// RejectionReason classifies why a coupon was not applied.
type RejectionReason string

const (
	ReasonInvalidCode     RejectionReason = "INVALID_CODE"
	ReasonExpired         RejectionReason = "EXPIRED"
	ReasonNoEligibleItems RejectionReason = "NO_ELIGIBLE_ITEMS"
	ReasonBelowMinimum    RejectionReason = "BELOW_MINIMUM"
	ReasonNoReduction     RejectionReason = "NO_REDUCTION"
)

// Result is either Approved or Rejected.
type Result interface {
	isResult()
}

// Approved always carries a Discount greater than zero.
type Approved struct {
	Discount         int64
	EligibleSubtotal int64
	Coupon           entities.Coupon
}

// Rejected carries a customer-facing Message.
type Rejected struct {
	Reason  RejectionReason
	Message string
}

func (Approved) isResult() {}
func (Rejected) isResult() {}

// AmountOf is the discount to subtract: the approved amount, or zero.
func AmountOf(r Result) int64 {
	switch v := r.(type) {
	case Approved:
		return v.Discount
	case Rejected:
		return 0
	default:
		return 0
	}
}
