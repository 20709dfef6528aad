package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/worker"
	"atelier/internal/pkg/errs"
)

// DefaultLookupTimeout bounds a single worker lookup.
const DefaultLookupTimeout = 12 * time.Second

// WorkerFinder is the read side of the worker store used by the resolver.
type WorkerFinder interface {
	Get(ctx context.Context, id kernel.UUID) (*worker.Worker, error)
	GetByPhone(ctx context.Context, phone kernel.PhoneNumber) (*worker.Worker, error)
}

// WorkerResolver maps a worker identifier to a Worker.
//
//   - an empty identifier means "unassign" and resolves to nil
//   - a UUID is looked up by id, anything else by phone number
//   - a failed phone lookup degrades to a synthetic worker holding only the
//     identifier, so dispatch still reaches the one address the caller knew
//   - the phone the caller knew is always part of the result
type WorkerResolver struct {
	finder  WorkerFinder
	timeout time.Duration
	logger  *slog.Logger
}

func NewWorkerResolver(finder WorkerFinder, timeout time.Duration, logger *slog.Logger) WorkerResolver {
	if timeout <= 0 {
		timeout = DefaultLookupTimeout
	}
	return WorkerResolver{
		finder:  finder,
		timeout: timeout,
		logger:  logger.With("component", "worker_resolver"),
	}
}

// Resolve returns the worker for identifier, nil for an empty identifier.
// An error is returned only when the identifier is neither a known worker id
// nor a usable phone number, since then there is no address to fall back to.
func (r WorkerResolver) Resolve(ctx context.Context, identifier string) (*worker.Worker, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, nil
	}

	if kernel.LooksLikeUUID(identifier) {
		return r.resolveByID(ctx, identifier)
	}

	phone, err := kernel.NewPhoneNumber(identifier)
	if err != nil {
		return nil, fmt.Errorf("worker identifier %q: %w", identifier, err)
	}

	return r.resolveByPhone(ctx, phone)
}

func (r WorkerResolver) resolveByID(ctx context.Context, identifier string) (*worker.Worker, error) {
	id, err := kernel.UUIDFromString(identifier)
	if err != nil {
		return nil, err
	}

	lookupCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	w, err := r.finder.Get(lookupCtx, id)
	if err != nil {
		r.logger.WarnContext(ctx, "Worker lookup by id failed, no phone to fall back to",
			"worker_id", identifier, "error", err)
		return nil, errs.NewObjectNotFoundErrorWithCause("worker", identifier, err)
	}

	return w, nil
}

func (r WorkerResolver) resolveByPhone(ctx context.Context, phone kernel.PhoneNumber) (*worker.Worker, error) {
	lookupCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	w, err := r.finder.GetByPhone(lookupCtx, phone)
	if err != nil {
		r.logger.WarnContext(ctx, "Worker lookup by phone failed, using the bare number",
			"phone", phone.Digits(), "error", err)
		return worker.NewSyntheticWorker(phone)
	}

	w.EnsurePhone(phone)
	return w, nil
}
