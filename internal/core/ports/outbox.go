package ports

import (
	"context"
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
)

// Event types written to the outbox.
const (
	OrderCreatedEvent = "order.created"
	OrderChangedEvent = "order.changed"
)

// OutboxMessage is an order change waiting to be published to the live feed.
type OutboxMessage struct {
	ID          kernel.UUID
	EventType   string
	AggregateID string
	Payload     []byte
	OccurredAt  time.Time
}

// OutboxRepository reads and acknowledges pending outbox messages.
type OutboxRepository interface {
	// GetUnpublished returns up to limit messages, oldest first.
	GetUnpublished(ctx context.Context, limit int) ([]OutboxMessage, error)
	MarkPublished(ctx context.Context, id kernel.UUID, at time.Time) error
}

// ErrPublisherDisabled is returned by a publisher that has no broker
// configured. Messages stay in the outbox.
var ErrPublisherDisabled = errors.New("live feed publisher is disabled")

// EventPublisher pushes an outbox message to subscribers of the live feed.
type EventPublisher interface {
	Publish(ctx context.Context, msg OutboxMessage) error
}
