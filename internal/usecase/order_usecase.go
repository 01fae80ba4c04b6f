package usecase

import (
	"context"
	"errors"
	"gemstore/internal/domain/entities"
	"gemstore/internal/domain/lifecycle"
	"gemstore/internal/usecase/interfaces"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
)

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrInvalidOrderID = errors.New("invalid order id")
)

// OrderTracking is what the tracking page renders for one order.
type OrderTracking struct {
	Order    entities.Order
	Active   bool
	Timeline entities.Timeline
	Steps    []lifecycle.Step
}

// OrderStats summarizes the order history for the admin dashboard.
// Revenue counts delivered orders only.
type OrderStats struct {
	Total     int
	Active    int
	Delivered int
	Cancelled int
	ByStatus  map[entities.OrderStatus]int
	Revenue   int64
}

// IOrderUseCase exposes order history and status transitions.
//
// Advance and Cancel report whether anything changed; on terminal orders they
// return the order untouched with changed=false.

type IOrderUseCase interface {
	List(ctx context.Context) ([]entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	Track(ctx context.Context, id string) (OrderTracking, error)
	Advance(ctx context.Context, id string) (entities.Order, bool, error)
	Cancel(ctx context.Context, id string) (entities.Order, bool, error)
	Stats(ctx context.Context) (OrderStats, error)
}

type OrderUseCase struct {
	repo   interfaces.IOrderRepository
	clock  interfaces.IClock
	logger *zap.Logger
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, clock interfaces.IClock, logger *zap.Logger) *OrderUseCase {
	return &OrderUseCase{repo: repo, clock: clock, logger: logger.Named("order")}
}

// List returns every order, newest first.
func (u *OrderUseCase) List(ctx context.Context) ([]entities.Order, error) {
	orders, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	orders, i, err := u.find(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	return orders[i], nil
}

func (u *OrderUseCase) Track(ctx context.Context, id string) (OrderTracking, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return OrderTracking{}, err
	}
	return OrderTracking{
		Order:    o,
		Active:   lifecycle.IsActive(o.Status),
		Timeline: lifecycle.TimelineOf(o),
		Steps:    lifecycle.Progress(o),
	}, nil
}

func (u *OrderUseCase) Advance(ctx context.Context, id string) (entities.Order, bool, error) {
	return u.transition(ctx, id, "advanced", lifecycle.Advance)
}

func (u *OrderUseCase) Cancel(ctx context.Context, id string) (entities.Order, bool, error) {
	return u.transition(ctx, id, "cancelled", lifecycle.Cancel)
}

func (u *OrderUseCase) Stats(ctx context.Context) (OrderStats, error) {
	orders, err := u.repo.List(ctx)
	if err != nil {
		return OrderStats{}, err
	}
	stats := OrderStats{Total: len(orders), ByStatus: make(map[entities.OrderStatus]int)}
	for _, o := range orders {
		stats.ByStatus[o.Status]++
		switch {
		case lifecycle.IsActive(o.Status):
			stats.Active++
		case o.Status == entities.OrderStatusDelivered:
			stats.Delivered++
			stats.Revenue += o.Total
		case o.Status == entities.OrderStatusCancelled:
			stats.Cancelled++
		}
	}
	return stats, nil
}

func (u *OrderUseCase) transition(
	ctx context.Context,
	id, verb string,
	apply func(entities.Order, time.Time) (entities.Order, bool),
) (entities.Order, bool, error) {
	orders, i, err := u.find(ctx, id)
	if err != nil {
		return entities.Order{}, false, err
	}

	updated, changed := apply(orders[i], u.clock.Now())
	if !changed {
		return orders[i], false, nil
	}
	orders[i] = updated
	if err := u.repo.SaveAll(ctx, orders); err != nil {
		return entities.Order{}, false, err
	}
	u.logger.Info("order "+verb, zap.String("order_id", updated.ID), zap.String("status", string(updated.Status)))
	return updated, true, nil
}

func (u *OrderUseCase) find(ctx context.Context, id string) ([]entities.Order, int, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, -1, ErrInvalidOrderID
	}
	orders, err := u.repo.List(ctx)
	if err != nil {
		return nil, -1, err
	}
	for i, o := range orders {
		if o.ID == id {
			return orders, i, nil
		}
	}
	return nil, -1, ErrOrderNotFound
}
