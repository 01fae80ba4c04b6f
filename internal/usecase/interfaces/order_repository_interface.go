package interfaces

import (
	"context"
	"gemstore/internal/domain/entities"
)

// IOrderRepository persists the full order history as one snapshot.
//
// Callers read with List, modify the slice and write it back with SaveAll.
// Orders are never removed from the snapshot.

type IOrderRepository interface {
	List(ctx context.Context) ([]entities.Order, error)
	SaveAll(ctx context.Context, orders []entities.Order) error
}
