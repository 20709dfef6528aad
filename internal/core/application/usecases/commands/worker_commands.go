package commands

import (
	"errors"
	"strings"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/worker"
	"atelier/internal/pkg/guard"
)

var (
	ErrCreateWorkerCommandIsNotConstructed = errors.New(
		"CreateWorkerCommand must be created via NewCreateWorkerCommand constructor",
	)
	ErrUpdateWorkerCommandIsNotConstructed = errors.New(
		"UpdateWorkerCommand must be created via NewUpdateWorkerCommand constructor",
	)
	ErrDeleteWorkerCommandIsNotConstructed = errors.New(
		"DeleteWorkerCommand must be created via NewDeleteWorkerCommand constructor",
	)
)

// CreateWorkerCommand registers a worker with one or more phones.
//
// Example:
//
//	cmd, err := NewCreateWorkerCommand(kernel.NewUUID(), "Ravi", []worker.PhoneInput{
//	    {PhoneNumber: "+91 98765 43210", IsPrimary: true},
//	    {PhoneNumber: "+91 91234 56789"},
//	})
type CreateWorkerCommand struct {
	workerID kernel.UUID
	name     string
	phones   []worker.Phone
	guard    guard.ConstructorGuard
}

// NewCreateWorkerCommand validates every field and reports all problems at once.
func NewCreateWorkerCommand(workerID kernel.UUID, name string, phones []worker.PhoneInput) (CreateWorkerCommand, error) {
	parsed, phonesErr := worker.ParsePhones(phones)
	name, nameErr := requireWorkerName(name)

	if err := errors.Join(workerID.Validate(), nameErr, phonesErr); err != nil {
		return CreateWorkerCommand{}, err
	}

	return CreateWorkerCommand{
		workerID: workerID,
		name:     name,
		phones:   parsed,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CreateWorkerCommand) Validate() error {
	return c.guard.Validate(ErrCreateWorkerCommandIsNotConstructed)
}

func (c CreateWorkerCommand) WorkerID() kernel.UUID {
	return c.workerID
}

func (c CreateWorkerCommand) Name() string {
	return c.name
}

func (c CreateWorkerCommand) Phones() []worker.Phone {
	return c.phones
}

// UpdateWorkerCommand replaces a worker's name and phone list.
type UpdateWorkerCommand struct {
	workerID kernel.UUID
	name     string
	phones   []worker.Phone
	guard    guard.ConstructorGuard
}

func NewUpdateWorkerCommand(workerID kernel.UUID, name string, phones []worker.PhoneInput) (UpdateWorkerCommand, error) {
	create, err := NewCreateWorkerCommand(workerID, name, phones)
	if err != nil {
		return UpdateWorkerCommand{}, err
	}

	return UpdateWorkerCommand{
		workerID: create.workerID,
		name:     create.name,
		phones:   create.phones,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateWorkerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateWorkerCommandIsNotConstructed)
}

func (c UpdateWorkerCommand) WorkerID() kernel.UUID {
	return c.workerID
}

func (c UpdateWorkerCommand) Name() string {
	return c.name
}

func (c UpdateWorkerCommand) Phones() []worker.Phone {
	return c.phones
}

// DeleteWorkerCommand removes a worker. Orders keep the stored phone, so an
// order held by a deleted worker still resolves to that phone.
type DeleteWorkerCommand struct {
	workerID kernel.UUID
	guard    guard.ConstructorGuard
}

func NewDeleteWorkerCommand(workerID kernel.UUID) (DeleteWorkerCommand, error) {
	if err := workerID.Validate(); err != nil {
		return DeleteWorkerCommand{}, err
	}
	return DeleteWorkerCommand{workerID: workerID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteWorkerCommand) Validate() error {
	return c.guard.Validate(ErrDeleteWorkerCommandIsNotConstructed)
}

func (c DeleteWorkerCommand) WorkerID() kernel.UUID {
	return c.workerID
}

func requireWorkerName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", worker.ErrNameIsRequired
	}
	return name, nil
}
