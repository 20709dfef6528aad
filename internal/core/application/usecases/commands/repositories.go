// Package commands contains the operations that change state: order
// transitions, order creation and legacy updates, update messages, chat log
// entries and worker maintenance. Every command is built through its
// constructor and handled by a dedicated handler.
package commands

import (
	"context"

	"atelier/internal/core/domain/model/notification"
	"atelier/internal/core/domain/model/worker"
	"atelier/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each handler touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	WorkerRepoFactory interface {
		WorkerRepository() ports.WorkerRepository
	}

	MessageRepoFactory interface {
		MessageRepository() ports.MessageRepository
	}

	// OrderUoW manages transactions for order changes.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// WorkerUoW manages transactions for worker maintenance.
	WorkerUoW interface {
		TxManager
		WorkerRepoFactory
	}

	WorkerUoWFactory interface {
		Create() WorkerUoW
	}

	// MessageUoW manages transactions for chat log writes.
	MessageUoW interface {
		TxManager
		MessageRepoFactory
	}

	MessageUoWFactory interface {
		Create() MessageUoW
	}
)

// Collaborators of the order workflow.
type (
	// WorkerResolver maps a phone number or worker id to a worker; an empty
	// identifier resolves to nil.
	WorkerResolver interface {
		Resolve(ctx context.Context, identifier string) (*worker.Worker, error)
	}

	// NotificationDispatcher sends events in order and reports per phone.
	NotificationDispatcher interface {
		Dispatch(ctx context.Context, event notification.Event) (notification.DeliveryReport, error)
		DispatchAll(ctx context.Context, events []notification.Event) ([]notification.DeliveryReport, error)
	}
)
