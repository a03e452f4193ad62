// Package ports defines the persistence contracts of the back-office domain.
// Adapters in internal/adapters/out implement them; use cases depend only on these interfaces.
package ports

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
)

// OrderRepository stores order aggregates together with their status history.
type OrderRepository interface {
	// Add persists a newly registered order and its first log entry.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the current status of an existing order and appends any
	// log entries not stored yet. Stored entries are never rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get loads an order with its items, address and full history.
	// Returns ObjectNotFoundError when no order has the given id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
