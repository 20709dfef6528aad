package ports

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/notification"
)

// NotificationSender delivers one template message to one phone and returns
// the provider's message id.
type NotificationSender interface {
	Send(ctx context.Context, to kernel.PhoneNumber, template notification.Template) (string, error)
}
