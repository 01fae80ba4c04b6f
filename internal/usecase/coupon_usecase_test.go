package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"gemstore/internal/domain/discount"
	"gemstore/internal/domain/entities"
	"gemstore/internal/domain/money"
	mock_interfaces "gemstore/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var couponNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func ringCart(qty int) entities.Cart {
	return entities.Cart{Lines: []entities.CartLine{
		{ID: "r1", Name: "Ruby Ring", UnitPrice: 1500, Category: entities.CategoryRing, Quantity: qty},
	}}
}

type couponMocks struct {
	carts *mock_interfaces.MockICartRepository
	slot  *mock_interfaces.MockIAppliedCouponRepository
	clock *mock_interfaces.MockIClock
}

func newCouponUseCase(ctrl *gomock.Controller) (*CouponUseCase, couponMocks) {
	m := couponMocks{
		carts: mock_interfaces.NewMockICartRepository(ctrl),
		slot:  mock_interfaces.NewMockIAppliedCouponRepository(ctrl),
		clock: mock_interfaces.NewMockIClock(ctrl),
	}
	m.clock.EXPECT().Now().Return(couponNow).AnyTimes()
	uc := NewCouponUseCase(m.carts, m.slot, discount.DefaultCatalog(), discount.NewEvaluator(money.NewFormatter("en")), m.clock, zap.NewNop())
	return uc, m
}

func TestCouponUseCase_Apply(t *testing.T) {
	t.Run("approved code is stored normalized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCouponUseCase(ctrl)

		m.carts.EXPECT().Load(gomock.Any()).Return(ringCart(2), nil)
		m.slot.EXPECT().Set(gomock.Any(), "RINGS200").Return(nil)

		res, err := uc.Apply(context.Background(), " rings200 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		approved, ok := res.(discount.Approved)
		if !ok || approved.Discount != 200 {
			t.Fatalf("expected approved 200, got %#v", res)
		}
	})

	t.Run("rejected code leaves slot untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCouponUseCase(ctrl)

		m.carts.EXPECT().Load(gomock.Any()).Return(ringCart(1), nil)

		res, err := uc.Apply(context.Background(), "FEST25")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		rejected, ok := res.(discount.Rejected)
		if !ok || rejected.Reason != discount.ReasonBelowMinimum {
			t.Fatalf("expected below minimum rejection, got %#v", res)
		}
	})

	t.Run("slot error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCouponUseCase(ctrl)

		m.carts.EXPECT().Load(gomock.Any()).Return(ringCart(1), nil)
		m.slot.EXPECT().Set(gomock.Any(), "SAVE10").Return(errors.New("db"))

		_, err := uc.Apply(context.Background(), "save10")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestCouponUseCase_Current(t *testing.T) {
	t.Run("nothing applied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCouponUseCase(ctrl)

		m.carts.EXPECT().Load(gomock.Any()).Return(ringCart(1), nil)
		m.slot.EXPECT().Get(gomock.Any()).Return("", false, nil)

		cur, err := uc.Current(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cur.Code != "" || cur.Result != nil || cur.Discount() != 0 {
			t.Fatalf("expected empty applied coupon, got %+v", cur)
		}
	})

	t.Run("applied coupon that stopped applying reports rejection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCouponUseCase(ctrl)

		// RINGS200 needs 2,000 of rings; one ring is 1,500.
		m.carts.EXPECT().Load(gomock.Any()).Return(ringCart(1), nil)
		m.slot.EXPECT().Get(gomock.Any()).Return("RINGS200", true, nil)

		cur, err := uc.Current(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := cur.Result.(discount.Rejected); !ok || cur.Code != "RINGS200" {
			t.Fatalf("expected rejected RINGS200, got %+v", cur)
		}
		if cur.Discount() != 0 {
			t.Fatalf("expected no discount, got %d", cur.Discount())
		}
	})
}

func TestCouponUseCase_ListCouponsIsACopy(t *testing.T) {
	uc := NewCouponUseCase(nil, nil, discount.DefaultCatalog(), discount.Evaluator{}, nil, zap.NewNop())
	list := uc.ListCoupons()
	list[0].Code = "HACKED"
	if uc.ListCoupons()[0].Code == "HACKED" {
		t.Fatalf("expected ListCoupons to return a copy")
	}
}
