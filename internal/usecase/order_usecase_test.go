package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"gemstore/internal/domain/entities"
	mock_interfaces "gemstore/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var day0 = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func history() []entities.Order {
	return []entities.Order{
		{ID: "a", Status: entities.OrderStatusDelivered, CreatedAt: day0, Total: 1000},
		{ID: "b", Status: entities.OrderStatusShipped, CreatedAt: day0.Add(48 * time.Hour), Total: 2000},
		{ID: "c", Status: entities.OrderStatusCancelled, CreatedAt: day0.Add(24 * time.Hour), Total: 3000},
		{ID: "d", Status: entities.OrderStatusDelivered, CreatedAt: day0.Add(72 * time.Hour), Total: 4000},
	}
}

func TestOrderUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIOrderRepository(ctrl)
	uc := NewOrderUseCase(repo, nil, zap.NewNop())

	repo.EXPECT().List(gomock.Any()).Return(history(), nil)

	orders, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := ""
	for _, o := range orders {
		got += o.ID
	}
	if got != "dbca" {
		t.Fatalf("expected newest first (dbca), got %s", got)
	}
}

func TestOrderUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, zap.NewNop())
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, zap.NewNop())

		repo.EXPECT().List(gomock.Any()).Return(history(), nil)

		_, err := uc.GetByID(context.Background(), "zzz")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, zap.NewNop())

		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.GetByID(context.Background(), "a")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestOrderUseCase_Track(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIOrderRepository(ctrl)
	uc := NewOrderUseCase(repo, nil, zap.NewNop())

	repo.EXPECT().List(gomock.Any()).Return(history(), nil)

	tr, err := uc.Track(context.Background(), "b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !tr.Active {
		t.Fatalf("expected shipped order to be active")
	}
	// no explicit timeline: PLACED..SHIPPED synthesized one day apart
	if len(tr.Timeline) != 4 {
		t.Fatalf("expected 4 synthesized entries, got %+v", tr.Timeline)
	}
	if want := tr.Order.CreatedAt.Add(3 * 24 * time.Hour); !tr.Timeline[entities.OrderStatusShipped].Equal(want) {
		t.Fatalf("expected SHIPPED at %v, got %v", want, tr.Timeline[entities.OrderStatusShipped])
	}
	if len(tr.Steps) != len(entities.OrderSequence()) {
		t.Fatalf("expected one step per stage, got %d", len(tr.Steps))
	}
}

func TestOrderUseCase_Transitions(t *testing.T) {
	now := day0.Add(100 * time.Hour)

	t.Run("advance saves next status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		clock := mock_interfaces.NewMockIClock(ctrl)
		uc := NewOrderUseCase(repo, clock, zap.NewNop())

		clock.EXPECT().Now().Return(now)
		repo.EXPECT().List(gomock.Any()).Return(history(), nil)
		repo.EXPECT().SaveAll(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, orders []entities.Order) error {
			if orders[1].Status != entities.OrderStatusOutForDelivery {
				t.Fatalf("expected OUT_FOR_DELIVERY, got %s", orders[1].Status)
			}
			return nil
		})

		o, changed, err := uc.Advance(context.Background(), "b")
		if err != nil || !changed {
			t.Fatalf("expected advance, got changed=%v err=%v", changed, err)
		}
		if !o.Timeline[entities.OrderStatusOutForDelivery].Equal(now) {
			t.Fatalf("expected timestamp recorded, got %+v", o.Timeline)
		}
	})

	t.Run("advance on delivered is a no-op without a write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		clock := mock_interfaces.NewMockIClock(ctrl)
		uc := NewOrderUseCase(repo, clock, zap.NewNop())

		clock.EXPECT().Now().Return(now)
		repo.EXPECT().List(gomock.Any()).Return(history(), nil)

		o, changed, err := uc.Advance(context.Background(), "a")
		if err != nil || changed {
			t.Fatalf("expected no-op, got changed=%v err=%v", changed, err)
		}
		if o.Status != entities.OrderStatusDelivered {
			t.Fatalf("expected DELIVERED, got %s", o.Status)
		}
	})

	t.Run("cancel active order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		clock := mock_interfaces.NewMockIClock(ctrl)
		uc := NewOrderUseCase(repo, clock, zap.NewNop())

		clock.EXPECT().Now().Return(now)
		repo.EXPECT().List(gomock.Any()).Return(history(), nil)
		repo.EXPECT().SaveAll(gomock.Any(), gomock.Any()).Return(nil)

		o, changed, err := uc.Cancel(context.Background(), "b")
		if err != nil || !changed || o.Status != entities.OrderStatusCancelled {
			t.Fatalf("expected cancellation, got %+v changed=%v err=%v", o, changed, err)
		}
	})

	t.Run("save error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		clock := mock_interfaces.NewMockIClock(ctrl)
		uc := NewOrderUseCase(repo, clock, zap.NewNop())

		clock.EXPECT().Now().Return(now)
		repo.EXPECT().List(gomock.Any()).Return(history(), nil)
		repo.EXPECT().SaveAll(gomock.Any(), gomock.Any()).Return(errors.New("db"))

		_, _, err := uc.Advance(context.Background(), "b")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestOrderUseCase_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIOrderRepository(ctrl)
	uc := NewOrderUseCase(repo, nil, zap.NewNop())

	repo.EXPECT().List(gomock.Any()).Return(history(), nil)

	stats, err := uc.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Total != 4 || stats.Active != 1 || stats.Delivered != 2 || stats.Cancelled != 1 {
		t.Fatalf("unexpected counts: %+v", stats)
	}
	if stats.Revenue != 5000 {
		t.Fatalf("expected delivered revenue 5000, got %d", stats.Revenue)
	}
	if stats.ByStatus[entities.OrderStatusDelivered] != 2 {
		t.Fatalf("unexpected by-status: %+v", stats.ByStatus)
	}
}
