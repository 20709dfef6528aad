package ports

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/worker"
)

// WorkerRepository persists Worker aggregates together with their phones.
// Phone numbers are unique across all workers; a clash is reported as
// ErrPhoneAlreadyRegistered.
type WorkerRepository interface {
	Add(ctx context.Context, aggregate *worker.Worker) error
	Update(ctx context.Context, aggregate *worker.Worker) error
	Delete(ctx context.Context, id kernel.UUID) error
	Get(ctx context.Context, id kernel.UUID) (*worker.Worker, error)

	// GetByPhone finds the worker owning a number, compared by digits.
	GetByPhone(ctx context.Context, phone kernel.PhoneNumber) (*worker.Worker, error)
}
