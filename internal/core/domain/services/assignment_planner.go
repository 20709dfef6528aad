package services

import (
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/notification"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/worker"
	"atelier/internal/pkg/errs"
)

// ErrWorkerIsRequired is returned when accepting an order without a worker.
var ErrWorkerIsRequired = errs.NewValueIsRequiredError("worker")

// Plan is the result of applying a transition.
type Plan struct {
	// Changed is false when the transition was a no-op and nothing must be persisted.
	Changed bool
	// Events are in dispatch order. A removal always precedes the assignment
	// that replaced it.
	Events []notification.Event
}

// AssignmentPlanner applies transitions to an order and derives the
// notifications each transition requires.
//
// Business rules:
//   - accepting notifies every phone of the new worker
//   - reassigning to the worker that already holds the order is a no-op
//   - reassigning notifies every phone of the previous worker first, then
//     every phone of the new one; without a previous worker there is no removal
//   - completing notifies the client and every phone of the assigned worker
//   - declining and reopening notify nobody
//
// The planner never sends anything. Callers persist the order first and
// dispatch Plan.Events afterwards.
type AssignmentPlanner struct{}

func NewAssignmentPlanner() AssignmentPlanner {
	return AssignmentPlanner{}
}

// Accept moves a pending or declined order to accepted with w assigned.
func (p AssignmentPlanner) Accept(o *order.Order, w *worker.Worker) (Plan, error) {
	if err := o.Validate(); err != nil {
		return Plan{}, err
	}
	if w == nil {
		return Plan{}, ErrWorkerIsRequired
	}
	if err := w.Validate(); err != nil {
		return Plan{}, err
	}

	if err := o.Accept(w.PrimaryPhone()); err != nil {
		return Plan{}, err
	}

	return Plan{
		Changed: true,
		Events:  []notification.Event{notification.NewAssignmentEvent(o, w.PhoneNumbers())},
	}, nil
}

// Reassign hands an accepted order from previous to next. A nil next
// unassigns. previous is the resolved holder of the stored phone and may be
// nil when the order had no worker.
func (p AssignmentPlanner) Reassign(o *order.Order, previous, next *worker.Worker) (Plan, error) {
	if err := o.Validate(); err != nil {
		return Plan{}, err
	}
	if err := o.Status().ValidateReassign(); err != nil {
		return Plan{}, err
	}

	if p.IsSameAssignment(o, next) {
		return Plan{}, nil
	}

	var phone *kernel.PhoneNumber
	if next != nil {
		if err := next.Validate(); err != nil {
			return Plan{}, err
		}
		primary := next.PrimaryPhone()
		phone = &primary
	}

	hadWorker := o.HasWorker()
	if err := o.Reassign(phone); err != nil {
		return Plan{}, err
	}

	var events []notification.Event
	if hadWorker && previous != nil {
		events = append(events, notification.NewRemovalEvent(o, previous.PhoneNumbers()))
	}
	if next != nil {
		events = append(events, notification.NewAssignmentEvent(o, next.PhoneNumbers()))
	}

	return Plan{Changed: true, Events: events}, nil
}

// IsSameAssignment reports whether next already holds the order: either both
// are empty, or next owns the stored phone.
func (p AssignmentPlanner) IsSameAssignment(o *order.Order, next *worker.Worker) bool {
	stored := o.AssignedWorkerPhone()
	if next == nil || stored == nil {
		return next == nil && stored == nil
	}
	return next.HasPhone(stored.Digits())
}

// Decline rejects a pending order.
func (p AssignmentPlanner) Decline(o *order.Order) (Plan, error) {
	if err := o.Validate(); err != nil {
		return Plan{}, err
	}
	if err := o.Decline(); err != nil {
		return Plan{}, err
	}
	return Plan{Changed: true}, nil
}

// Complete finishes the order. assigned is the resolved worker of the order
// or nil.
func (p AssignmentPlanner) Complete(o *order.Order, assigned *worker.Worker) (Plan, error) {
	if err := o.Validate(); err != nil {
		return Plan{}, err
	}
	if err := o.Complete(); err != nil {
		return Plan{}, err
	}

	targets := []kernel.PhoneNumber{o.ClientPhone()}
	if assigned != nil {
		targets = append(targets, assigned.PhoneNumbers()...)
	}

	return Plan{
		Changed: true,
		Events:  []notification.Event{notification.NewCompletionEvent(o, targets)},
	}, nil
}

// Reopen marks a completed order in progress. It is a plain status write.
func (p AssignmentPlanner) Reopen(o *order.Order) (Plan, error) {
	if err := o.Validate(); err != nil {
		return Plan{}, err
	}
	if err := o.Reopen(); err != nil {
		return Plan{}, err
	}
	return Plan{Changed: true}, nil
}
