package interfaces

import (
	"context"
	"gemstore/internal/domain/entities"
)

// ICartRepository loads and saves the cart snapshot.
// A missing or corrupt snapshot loads as an empty cart.

type ICartRepository interface {
	Load(ctx context.Context) (entities.Cart, error)
	Save(ctx context.Context, cart entities.Cart) error
}

// IAppliedCouponRepository is the single applied-coupon slot.
// Set replaces whatever code was there before.

type IAppliedCouponRepository interface {
	Get(ctx context.Context) (code string, ok bool, err error)
	Set(ctx context.Context, code string) error
	Clear(ctx context.Context) error
}
