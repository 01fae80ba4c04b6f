package usecase

import (
	"context"
	"gemstore/internal/domain/discount"
	"gemstore/internal/domain/entities"
	"gemstore/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// AppliedCoupon is the applied-coupon slot evaluated against a cart.
// Code is empty (and Result nil) when no coupon is applied.
type AppliedCoupon struct {
	Code   string
	Result discount.Result
}

// Discount is the approved amount, or 0.
func (a AppliedCoupon) Discount() int64 {
	if a.Result == nil {
		return 0
	}
	return discount.AmountOf(a.Result)
}

// ICouponUseCase applies catalog coupons to the current cart.
//
// Only one coupon is applied at a time; applying a new one replaces the old.
// A rejected code leaves the slot untouched.

type ICouponUseCase interface {
	ListCoupons() []entities.Coupon
	Apply(ctx context.Context, code string) (discount.Result, error)
	Current(ctx context.Context) (AppliedCoupon, error)
	EvaluateFor(ctx context.Context, cart entities.Cart) (AppliedCoupon, error)
	Clear(ctx context.Context) error
}

type CouponUseCase struct {
	carts     interfaces.ICartRepository
	slot      interfaces.IAppliedCouponRepository
	coupons   []entities.Coupon
	evaluator discount.Evaluator
	clock     interfaces.IClock
	logger    *zap.Logger
}

var _ ICouponUseCase = (*CouponUseCase)(nil)

func NewCouponUseCase(
	carts interfaces.ICartRepository,
	slot interfaces.IAppliedCouponRepository,
	coupons []entities.Coupon,
	evaluator discount.Evaluator,
	clock interfaces.IClock,
	logger *zap.Logger,
) *CouponUseCase {
	return &CouponUseCase{
		carts:     carts,
		slot:      slot,
		coupons:   coupons,
		evaluator: evaluator,
		clock:     clock,
		logger:    logger.Named("coupon"),
	}
}

func (u *CouponUseCase) ListCoupons() []entities.Coupon {
	out := make([]entities.Coupon, len(u.coupons))
	copy(out, u.coupons)
	return out
}

func (u *CouponUseCase) Apply(ctx context.Context, code string) (discount.Result, error) {
	cart, err := u.carts.Load(ctx)
	if err != nil {
		return nil, err
	}

	result := u.evaluator.Evaluate(cart.Lines, code, u.coupons, u.clock.Now())
	switch r := result.(type) {
	case discount.Approved:
		if err := u.slot.Set(ctx, r.Coupon.Code); err != nil {
			return nil, err
		}
		u.logger.Info("coupon applied", zap.String("code", r.Coupon.Code), zap.Int64("discount", r.Discount))
	case discount.Rejected:
		u.logger.Debug("coupon rejected", zap.String("code", code), zap.String("reason", string(r.Reason)))
	}
	return result, nil
}

func (u *CouponUseCase) Current(ctx context.Context) (AppliedCoupon, error) {
	cart, err := u.carts.Load(ctx)
	if err != nil {
		return AppliedCoupon{}, err
	}
	return u.EvaluateFor(ctx, cart)
}

// EvaluateFor re-evaluates the applied code against cart, so a coupon that
// stopped applying (cart changed, coupon expired) reports its rejection.
func (u *CouponUseCase) EvaluateFor(ctx context.Context, cart entities.Cart) (AppliedCoupon, error) {
	code, ok, err := u.slot.Get(ctx)
	if err != nil {
		return AppliedCoupon{}, err
	}
	if !ok {
		return AppliedCoupon{}, nil
	}
	return AppliedCoupon{
		Code:   code,
		Result: u.evaluator.Evaluate(cart.Lines, code, u.coupons, u.clock.Now()),
	}, nil
}

func (u *CouponUseCase) Clear(ctx context.Context) error {
	return u.slot.Clear(ctx)
}
