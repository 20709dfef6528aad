package commands

import (
	"context"

	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/worker"
	domainservices "atelier/internal/core/domain/services"
)

// AcceptOrderCommandHandler resolves the selected worker, accepts the order and
// sends the assignment to every phone of the worker.
type AcceptOrderCommandHandler struct {
	workflow OrderWorkflow
}

func NewAcceptOrderCommandHandler(workflow OrderWorkflow) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{workflow: workflow}
}

func (h AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) (TransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionResult{}, err
	}

	next, err := h.workflow.resolver.Resolve(ctx, cmd.WorkerIdentifier())
	if err != nil {
		return TransitionResult{}, err
	}

	return h.workflow.run(ctx, cmd.OrderID(), func(_ context.Context, o *order.Order) (domainservices.Plan, error) {
		return h.workflow.planner.Accept(o, next)
	})
}

// DeclineOrderCommandHandler declines a pending order. Nobody is notified.
type DeclineOrderCommandHandler struct {
	workflow OrderWorkflow
}

func NewDeclineOrderCommandHandler(workflow OrderWorkflow) DeclineOrderCommandHandler {
	return DeclineOrderCommandHandler{workflow: workflow}
}

func (h DeclineOrderCommandHandler) Handle(ctx context.Context, cmd DeclineOrderCommand) (TransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionResult{}, err
	}

	return h.workflow.run(ctx, cmd.OrderID(), func(_ context.Context, o *order.Order) (domainservices.Plan, error) {
		return h.workflow.planner.Decline(o)
	})
}

// ReassignWorkerCommandHandler changes the worker of an accepted order.
//
// Reassigning to the worker that already holds the order is a no-op: nothing
// is written and nothing is sent. Otherwise every phone of the previous worker
// gets the removal notice before any phone of the new worker gets the
// assignment.
type ReassignWorkerCommandHandler struct {
	workflow OrderWorkflow
}

func NewReassignWorkerCommandHandler(workflow OrderWorkflow) ReassignWorkerCommandHandler {
	return ReassignWorkerCommandHandler{workflow: workflow}
}

func (h ReassignWorkerCommandHandler) Handle(ctx context.Context, cmd ReassignWorkerCommand) (TransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionResult{}, err
	}

	next, err := h.workflow.resolver.Resolve(ctx, cmd.WorkerIdentifier())
	if err != nil {
		return TransitionResult{}, err
	}

	return h.workflow.runWithHolder(ctx, cmd.OrderID(), func(
		_ context.Context,
		o *order.Order,
		previous *worker.Worker,
	) (domainservices.Plan, error) {
		if err := o.Status().ValidateReassign(); err != nil {
			return domainservices.Plan{}, err
		}
		if h.workflow.planner.IsSameAssignment(o, next) {
			return domainservices.Plan{}, nil
		}
		return h.workflow.planner.Reassign(o, previous, next)
	})
}

// CompleteOrderCommandHandler completes an order and notifies the client and
// every phone of the assigned worker.
type CompleteOrderCommandHandler struct {
	workflow OrderWorkflow
}

func NewCompleteOrderCommandHandler(workflow OrderWorkflow) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{workflow: workflow}
}

func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) (TransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionResult{}, err
	}

	return h.workflow.runWithHolder(ctx, cmd.OrderID(), func(
		_ context.Context,
		o *order.Order,
		assigned *worker.Worker,
	) (domainservices.Plan, error) {
		if _, err := o.Status().Complete(); err != nil {
			return domainservices.Plan{}, err
		}
		return h.workflow.planner.Complete(o, assigned)
	})
}

// ReopenOrderCommandHandler moves a completed order back to accepted. It is a
// plain status write.
type ReopenOrderCommandHandler struct {
	workflow OrderWorkflow
}

func NewReopenOrderCommandHandler(workflow OrderWorkflow) ReopenOrderCommandHandler {
	return ReopenOrderCommandHandler{workflow: workflow}
}

func (h ReopenOrderCommandHandler) Handle(ctx context.Context, cmd ReopenOrderCommand) (TransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionResult{}, err
	}

	return h.workflow.run(ctx, cmd.OrderID(), func(_ context.Context, o *order.Order) (domainservices.Plan, error) {
		return h.workflow.planner.Reopen(o)
	})
}
