package repository

import (
	"context"
	"gemstore/internal/domain/entities"
	"gemstore/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// OrderRepository stores the whole order history as one JSON array.
//
// History is permanent: elements List cannot read are carried over by SaveAll.
type OrderRepository struct {
	store *SnapshotStore
}

var _ interfaces.IOrderRepository = (*OrderRepository)(nil)

func NewOrderRepository(store *SnapshotStore) *OrderRepository {
	return &OrderRepository{store: store}
}

func (r *OrderRepository) List(ctx context.Context) ([]entities.Order, error) {
	orders, err := loadList[entities.Order](ctx, r.store, KeyOrders)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i] = r.normalize(orders[i])
	}
	return orders, nil
}

func (r *OrderRepository) SaveAll(ctx context.Context, orders []entities.Order) error {
	return saveListKeepingRejected(ctx, r.store, KeyOrders, orders)
}

// normalize fills defaults for fields older snapshots may lack.
func (r *OrderRepository) normalize(o entities.Order) entities.Order {
	if o.Payment.Method == "" {
		r.store.logger.Warn("order without payment, assuming cash on delivery", zap.String("order_id", o.ID))
		o.Payment = entities.CashOnDelivery()
	}
	if o.Items == nil {
		o.Items = []entities.OrderLine{}
	}
	for st := range o.Timeline {
		if !st.IsValid() {
			r.store.logger.Warn("dropping unknown timeline status", zap.String("order_id", o.ID), zap.String("status", string(st)))
			delete(o.Timeline, st)
		}
	}
	if o.Timeline != nil && len(o.Timeline) == 0 {
		o.Timeline = nil
	}
	return o
}
