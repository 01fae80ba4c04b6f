package repository

import (
	"context"
	"gemstore/internal/domain/entities"
	"gemstore/internal/usecase/interfaces"
)

// CartRepository stores the cart as the JSON array of its lines.
type CartRepository struct {
	store *SnapshotStore
}

var _ interfaces.ICartRepository = (*CartRepository)(nil)

func NewCartRepository(store *SnapshotStore) *CartRepository {
	return &CartRepository{store: store}
}

// Load rebuilds the cart through AddItem, so duplicate ids in an old snapshot
// are merged into a single line.
func (r *CartRepository) Load(ctx context.Context) (entities.Cart, error) {
	lines, err := loadList[entities.CartLine](ctx, r.store, KeyCart)
	if err != nil {
		return entities.Cart{}, err
	}
	var cart entities.Cart
	for _, l := range lines {
		cart.AddItem(l, l.Quantity)
	}
	return cart, nil
}

func (r *CartRepository) Save(ctx context.Context, cart entities.Cart) error {
	lines := cart.Lines
	if lines == nil {
		lines = []entities.CartLine{}
	}
	return r.store.writeJSON(ctx, KeyCart, lines)
}

// AppliedCouponRepository stores the applied coupon code as a bare string.
type AppliedCouponRepository struct {
	store *SnapshotStore
}

var _ interfaces.IAppliedCouponRepository = (*AppliedCouponRepository)(nil)

func NewAppliedCouponRepository(store *SnapshotStore) *AppliedCouponRepository {
	return &AppliedCouponRepository{store: store}
}

func (r *AppliedCouponRepository) Get(ctx context.Context) (string, bool, error) {
	raw, found, err := r.store.raw(ctx, KeyAppliedCoupon)
	if err != nil || !found {
		return "", false, err
	}
	code := entities.NormalizeCouponCode(raw)
	return code, code != "", nil
}

func (r *AppliedCouponRepository) Set(ctx context.Context, code string) error {
	code = entities.NormalizeCouponCode(code)
	if code == "" {
		return r.Clear(ctx)
	}
	return r.store.kv.Set(ctx, r.store.Key(KeyAppliedCoupon), code)
}

func (r *AppliedCouponRepository) Clear(ctx context.Context) error {
	return r.store.remove(ctx, KeyAppliedCoupon)
}
