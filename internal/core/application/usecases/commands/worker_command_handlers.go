package commands

import (
	"context"

	"atelier/internal/core/domain/model/worker"
)

// CreateWorkerCommandHandler stores a new worker. A phone already owned by
// another worker fails with ports.ErrPhoneAlreadyRegistered.
type CreateWorkerCommandHandler struct {
	uowFactory WorkerUoWFactory
}

func NewCreateWorkerCommandHandler(uowFactory WorkerUoWFactory) CreateWorkerCommandHandler {
	return CreateWorkerCommandHandler{uowFactory: uowFactory}
}

func (h CreateWorkerCommandHandler) Handle(ctx context.Context, cmd CreateWorkerCommand) (*worker.Worker, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	w, err := worker.NewWorker(cmd.WorkerID(), cmd.Name(), cmd.Phones())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.WorkerRepository().Add(ctx, w); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return w, nil
}

// UpdateWorkerCommandHandler renames a worker and replaces its phones.
type UpdateWorkerCommandHandler struct {
	uowFactory WorkerUoWFactory
}

func NewUpdateWorkerCommandHandler(uowFactory WorkerUoWFactory) UpdateWorkerCommandHandler {
	return UpdateWorkerCommandHandler{uowFactory: uowFactory}
}

func (h UpdateWorkerCommandHandler) Handle(ctx context.Context, cmd UpdateWorkerCommand) (*worker.Worker, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.WorkerRepository()
	w, err := repo.Get(ctx, cmd.WorkerID())
	if err != nil {
		return nil, err
	}

	if err = w.Rename(cmd.Name()); err != nil {
		return nil, err
	}
	if err = w.ReplacePhones(cmd.Phones()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, w); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return w, nil
}

// DeleteWorkerCommandHandler removes a worker and its phones.
type DeleteWorkerCommandHandler struct {
	uowFactory WorkerUoWFactory
}

func NewDeleteWorkerCommandHandler(uowFactory WorkerUoWFactory) DeleteWorkerCommandHandler {
	return DeleteWorkerCommandHandler{uowFactory: uowFactory}
}

func (h DeleteWorkerCommandHandler) Handle(ctx context.Context, cmd DeleteWorkerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.WorkerRepository().Delete(ctx, cmd.WorkerID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
