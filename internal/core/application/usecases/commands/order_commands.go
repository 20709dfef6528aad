package commands

import (
	"errors"
	"strings"

	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var (
	ErrOrderIDIsRequired          = errs.NewValueIsRequiredError("order id")
	ErrWorkerIdentifierIsRequired = errs.NewValueIsRequiredError("worker phone or id")

	ErrAcceptOrderCommandIsNotConstructed = errors.New(
		"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
	)
	ErrDeclineOrderCommandIsNotConstructed = errors.New(
		"DeclineOrderCommand must be created via NewDeclineOrderCommand constructor",
	)
	ErrReassignWorkerCommandIsNotConstructed = errors.New(
		"ReassignWorkerCommand must be created via NewReassignWorkerCommand constructor",
	)
	ErrCompleteOrderCommandIsNotConstructed = errors.New(
		"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
	)
	ErrReopenOrderCommandIsNotConstructed = errors.New(
		"ReopenOrderCommand must be created via NewReopenOrderCommand constructor",
	)
)

func requireOrderID(orderID string) (string, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return "", ErrOrderIDIsRequired
	}
	return orderID, nil
}

// AcceptOrderCommand accepts a pending or declined order and assigns a worker.
// The worker is identified by one of its phone numbers or by its id.
type AcceptOrderCommand struct {
	orderID          string
	workerIdentifier string
	guard            guard.ConstructorGuard
}

func NewAcceptOrderCommand(orderID, workerIdentifier string) (AcceptOrderCommand, error) {
	id, idErr := requireOrderID(orderID)

	workerIdentifier = strings.TrimSpace(workerIdentifier)
	var workerErr error
	if workerIdentifier == "" {
		workerErr = ErrWorkerIdentifierIsRequired
	}

	if err := errors.Join(idErr, workerErr); err != nil {
		return AcceptOrderCommand{}, err
	}

	return AcceptOrderCommand{
		orderID:          id,
		workerIdentifier: workerIdentifier,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

func (c AcceptOrderCommand) OrderID() string {
	return c.orderID
}

func (c AcceptOrderCommand) WorkerIdentifier() string {
	return c.workerIdentifier
}

// DeclineOrderCommand declines a pending order.
type DeclineOrderCommand struct {
	orderID string
	guard   guard.ConstructorGuard
}

func NewDeclineOrderCommand(orderID string) (DeclineOrderCommand, error) {
	id, err := requireOrderID(orderID)
	if err != nil {
		return DeclineOrderCommand{}, err
	}
	return DeclineOrderCommand{orderID: id, guard: guard.NewConstructorGuard()}, nil
}

func (c DeclineOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeclineOrderCommandIsNotConstructed)
}

func (c DeclineOrderCommand) OrderID() string {
	return c.orderID
}

// ReassignWorkerCommand moves an accepted order to another worker. An empty
// worker identifier unassigns the current worker.
type ReassignWorkerCommand struct {
	orderID          string
	workerIdentifier string
	guard            guard.ConstructorGuard
}

func NewReassignWorkerCommand(orderID, workerIdentifier string) (ReassignWorkerCommand, error) {
	id, err := requireOrderID(orderID)
	if err != nil {
		return ReassignWorkerCommand{}, err
	}
	return ReassignWorkerCommand{
		orderID:          id,
		workerIdentifier: strings.TrimSpace(workerIdentifier),
		guard:            guard.NewConstructorGuard(),
	}, nil
}

func (c ReassignWorkerCommand) Validate() error {
	return c.guard.Validate(ErrReassignWorkerCommandIsNotConstructed)
}

func (c ReassignWorkerCommand) OrderID() string {
	return c.orderID
}

func (c ReassignWorkerCommand) WorkerIdentifier() string {
	return c.workerIdentifier
}

// CompleteOrderCommand marks an order completed.
type CompleteOrderCommand struct {
	orderID string
	guard   guard.ConstructorGuard
}

func NewCompleteOrderCommand(orderID string) (CompleteOrderCommand, error) {
	id, err := requireOrderID(orderID)
	if err != nil {
		return CompleteOrderCommand{}, err
	}
	return CompleteOrderCommand{orderID: id, guard: guard.NewConstructorGuard()}, nil
}

func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

func (c CompleteOrderCommand) OrderID() string {
	return c.orderID
}

// ReopenOrderCommand marks a completed order in progress again.
type ReopenOrderCommand struct {
	orderID string
	guard   guard.ConstructorGuard
}

func NewReopenOrderCommand(orderID string) (ReopenOrderCommand, error) {
	id, err := requireOrderID(orderID)
	if err != nil {
		return ReopenOrderCommand{}, err
	}
	return ReopenOrderCommand{orderID: id, guard: guard.NewConstructorGuard()}, nil
}

func (c ReopenOrderCommand) Validate() error {
	return c.guard.Validate(ErrReopenOrderCommandIsNotConstructed)
}

func (c ReopenOrderCommand) OrderID() string {
	return c.orderID
}
