package commands

import (
	"context"
	"errors"
	"fmt"

	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/worker"
	domainservices "atelier/internal/core/domain/services"
	"atelier/internal/pkg/errs"
)

// ErrWorkerChangeRequiresAccepted is returned when a full update changes the
// worker while asking for a status other than accepted.
var ErrWorkerChangeRequiresAccepted = errs.NewValueIsInvalidErrorWithCause(
	"worker",
	errors.New("the worker can only be changed on an accepted order"),
)

// UpdateOrderCommandHandler applies a full order update.
//
// Field changes are written as given. A status or worker change is routed
// through the same transitions as the dedicated endpoints, so an update that
// accepts, reassigns or completes an order notifies exactly like them.
// Sending the same payload twice changes nothing the second time.
type UpdateOrderCommandHandler struct {
	workflow OrderWorkflow
}

func NewUpdateOrderCommandHandler(workflow OrderWorkflow) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{workflow: workflow}
}

func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (TransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionResult{}, err
	}

	var next *worker.Worker
	identifier, hasWorker := cmd.WorkerIdentifier()
	if hasWorker {
		var err error
		next, err = h.workflow.resolver.Resolve(ctx, identifier)
		if err != nil {
			return TransitionResult{}, err
		}
	}

	if _, hasStatus := cmd.Status(); !hasStatus && !hasWorker {
		return h.workflow.run(ctx, cmd.OrderID(), func(_ context.Context, o *order.Order) (domainservices.Plan, error) {
			return h.applyFields(o, cmd)
		})
	}

	return h.workflow.runWithHolder(ctx, cmd.OrderID(), func(
		_ context.Context,
		o *order.Order,
		holder *worker.Worker,
	) (domainservices.Plan, error) {
		plan, err := h.applyFields(o, cmd)
		if err != nil {
			return domainservices.Plan{}, err
		}

		transition, err := h.applyTransition(o, cmd, next, holder)
		if err != nil {
			return domainservices.Plan{}, err
		}

		return mergePlans(plan, transition), nil
	})
}

func (h UpdateOrderCommandHandler) applyFields(o *order.Order, cmd UpdateOrderCommand) (domainservices.Plan, error) {
	var plan domainservices.Plan

	if phone := cmd.ClientPhone(); phone != nil {
		changed, err := o.ChangeClientPhone(*phone)
		if err != nil {
			return domainservices.Plan{}, err
		}
		plan.Changed = plan.Changed || changed
	}

	if details := cmd.Details(); details != nil {
		plan.Changed = o.UpdateDetails(*details) || plan.Changed
	}

	return plan, nil
}

func (h UpdateOrderCommandHandler) applyTransition(
	o *order.Order,
	cmd UpdateOrderCommand,
	next *worker.Worker,
	holder *worker.Worker,
) (domainservices.Plan, error) {
	planner := h.workflow.planner
	_, hasWorker := cmd.WorkerIdentifier()
	target, hasStatus := cmd.Status()

	if !hasStatus {
		if !hasWorker {
			return domainservices.Plan{}, nil
		}
		switch o.Status() {
		case order.Accepted:
			target = order.Accepted
		case order.Pending, order.Declined:
			target = o.Status()
			if next != nil {
				target = order.Accepted
			}
		default:
			target = o.Status()
		}
	}

	workerChanges := hasWorker && !planner.IsSameAssignment(o, next)
	if target != order.Accepted && workerChanges {
		return domainservices.Plan{}, ErrWorkerChangeRequiresAccepted
	}

	switch target {
	case order.Pending:
		if o.Status() == order.Pending {
			return domainservices.Plan{}, nil
		}
		return domainservices.Plan{}, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("cannot move an order that is %s back to pending", o.Status()),
		)

	case order.Declined:
		if o.Status() == order.Declined {
			return domainservices.Plan{}, nil
		}
		return planner.Decline(o)

	case order.Completed:
		if o.Status() == order.Completed {
			return domainservices.Plan{}, nil
		}
		return planner.Complete(o, holder)

	case order.Accepted:
		return h.accept(o, next, holder, workerChanges)

	default:
		return domainservices.Plan{}, errs.NewValueIsInvalidError("status")
	}
}

func (h UpdateOrderCommandHandler) accept(
	o *order.Order,
	next *worker.Worker,
	holder *worker.Worker,
	workerChanges bool,
) (domainservices.Plan, error) {
	planner := h.workflow.planner

	switch o.Status() {
	case order.Pending, order.Declined:
		return planner.Accept(o, next)

	case order.Accepted:
		if !workerChanges {
			return domainservices.Plan{}, nil
		}
		return planner.Reassign(o, holder, next)

	case order.Completed:
		reopened, err := planner.Reopen(o)
		if err != nil {
			return domainservices.Plan{}, err
		}
		if !workerChanges {
			return reopened, nil
		}
		reassigned, err := planner.Reassign(o, holder, next)
		if err != nil {
			return domainservices.Plan{}, err
		}
		return mergePlans(reopened, reassigned), nil

	default:
		return domainservices.Plan{}, errs.NewValueIsInvalidError("status")
	}
}

func mergePlans(plans ...domainservices.Plan) domainservices.Plan {
	var merged domainservices.Plan
	for _, p := range plans {
		merged.Changed = merged.Changed || p.Changed
		merged.Events = append(merged.Events, p.Events...)
	}
	return merged
}
