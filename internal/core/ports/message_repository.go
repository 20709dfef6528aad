package ports

import (
	"context"

	"atelier/internal/core/domain/model/message"
)

// MessageRepository appends chat log entries.
type MessageRepository interface {
	Add(ctx context.Context, aggregate *message.Message) error
}
