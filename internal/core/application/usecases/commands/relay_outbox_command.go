package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"atelier/internal/core/ports"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

// DefaultRelayBatchSize is how many outbox messages one relay run publishes
// at most.
const DefaultRelayBatchSize = 100

var (
	ErrRelayOutboxCommandIsNotConstructed = errors.New(
		"RelayOutboxCommand must be created via NewRelayOutboxCommand constructor",
	)
)

// RelayOutboxCommand publishes pending order changes to the live feed.
type RelayOutboxCommand struct {
	batchSize int
	guard     guard.ConstructorGuard
}

func NewRelayOutboxCommand(batchSize int) (RelayOutboxCommand, error) {
	if batchSize <= 0 {
		return RelayOutboxCommand{}, errs.NewValueIsOutOfRangeError("batch size", batchSize, 1, "unbounded")
	}

	return RelayOutboxCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RelayOutboxCommand) Validate() error {
	return c.guard.Validate(ErrRelayOutboxCommandIsNotConstructed)
}

func (c RelayOutboxCommand) BatchSize() int {
	return c.batchSize
}

// RelayOutboxCommandHandler publishes outbox messages oldest first and marks
// each one published right after the broker accepted it. The first failure
// stops the run; the failed message and everything after it are retried on the
// next run.
type RelayOutboxCommandHandler struct {
	outbox    ports.OutboxRepository
	publisher ports.EventPublisher
	now       func() time.Time
}

func NewRelayOutboxCommandHandler(
	outbox ports.OutboxRepository,
	publisher ports.EventPublisher,
) RelayOutboxCommandHandler {
	return RelayOutboxCommandHandler{
		outbox:    outbox,
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Handle returns how many messages were published.
func (h RelayOutboxCommandHandler) Handle(ctx context.Context, cmd RelayOutboxCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	msgs, err := h.outbox.GetUnpublished(ctx, cmd.BatchSize())
	if err != nil {
		return 0, fmt.Errorf("load outbox: %w", err)
	}

	published := 0
	for _, msg := range msgs {
		if err = h.publisher.Publish(ctx, msg); err != nil {
			return published, fmt.Errorf("publish %s %s: %w", msg.EventType, msg.AggregateID, err)
		}

		if err = h.outbox.MarkPublished(ctx, msg.ID, h.now()); err != nil {
			return published, fmt.Errorf("mark %s published: %w", msg.ID, err)
		}
		published++
	}

	return published, nil
}
