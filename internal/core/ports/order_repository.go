// Package ports defines the contracts between the application core and its
// adapters: repositories, the unit of work, the notification sender and the
// live-feed publisher.
package ports

import (
	"context"

	"atelier/internal/core/domain/model/order"
)

// OrderRepository persists Order aggregates.
type OrderRepository interface {
	// Add stores a new order. Adding an id that already exists fails.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update overwrites an existing order. Returns an ObjectNotFoundError when
	// the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get loads an order or returns an ObjectNotFoundError.
	Get(ctx context.Context, id string) (*order.Order, error)
}
