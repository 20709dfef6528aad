package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"atelier/internal/core/domain/model/message"
	"atelier/internal/core/domain/model/notification"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/worker"
	domainservices "atelier/internal/core/domain/services"
)

// ErrNotificationDeliveryFailed marks a change that was persisted but whose
// notification reached no phone.
var ErrNotificationDeliveryFailed = errors.New("order saved but notification delivery failed")

// NotificationOutcome is what the notification side of a command produced.
type NotificationOutcome struct {
	Reports []notification.DeliveryReport
	// Err wraps ErrNotificationDeliveryFailed when at least one dispatch
	// reached no phone. It never undoes the persisted change.
	Err error
}

// Delivered is false when some dispatch reached no phone.
func (n NotificationOutcome) Delivered() bool {
	return n.Err == nil
}

// TransitionResult is returned by every order transition.
type TransitionResult struct {
	NotificationOutcome
	Order *order.Order
	// Changed is false for a no-op, e.g. reassigning to the current worker.
	Changed bool
}

// applyFunc applies a transition to a loaded order.
type applyFunc func(ctx context.Context, o *order.Order) (domainservices.Plan, error)

// holderApplyFunc is an applyFunc that also receives the worker holding the
// order, nil when it is unassigned.
type holderApplyFunc func(ctx context.Context, o *order.Order, holder *worker.Worker) (domainservices.Plan, error)

// OrderWorkflow runs the persist-then-notify sequence shared by all order
// transitions:
//
//  1. load the order and apply the transition in one unit of work
//  2. commit (skipped for a no-op)
//  3. dispatch the planned events in order
//  4. record a chat log entry per delivered event, best effort
type OrderWorkflow struct {
	uowFactory OrderUoWFactory
	resolver   WorkerResolver
	dispatcher NotificationDispatcher
	chatLog    chatLog
	planner    domainservices.AssignmentPlanner
}

// NewOrderWorkflow wires the collaborators shared by the order transition handlers.
func NewOrderWorkflow(
	uowFactory OrderUoWFactory,
	resolver WorkerResolver,
	dispatcher NotificationDispatcher,
	messageUoWFactory MessageUoWFactory,
	logger *slog.Logger,
) OrderWorkflow {
	return OrderWorkflow{
		uowFactory: uowFactory,
		resolver:   resolver,
		dispatcher: dispatcher,
		chatLog:    newChatLog(messageUoWFactory, logger),
		planner:    domainservices.NewAssignmentPlanner(),
	}
}

func (w OrderWorkflow) run(ctx context.Context, orderID string, apply applyFunc) (TransitionResult, error) {
	o, plan, err := w.persist(ctx, orderID, apply)
	if err != nil {
		return TransitionResult{}, err
	}

	result := TransitionResult{Order: o, Changed: plan.Changed}
	if !plan.Changed || len(plan.Events) == 0 {
		return result, nil
	}

	result.NotificationOutcome = w.notify(ctx, plan.Events)
	return result, nil
}

// runWithHolder resolves the worker holding the order before the unit of work
// opens, so the lookup never holds a transaction. When the assignment moved in
// between, the stored phone stands alone as the holder.
func (w OrderWorkflow) runWithHolder(ctx context.Context, orderID string, apply holderApplyFunc) (TransitionResult, error) {
	before, err := w.load(ctx, orderID)
	if err != nil {
		return TransitionResult{}, err
	}

	holder, err := w.currentWorker(ctx, before)
	if err != nil {
		return TransitionResult{}, err
	}

	return w.run(ctx, orderID, func(ctx context.Context, o *order.Order) (domainservices.Plan, error) {
		current, err := heldBy(o, before, holder)
		if err != nil {
			return domainservices.Plan{}, err
		}
		return apply(ctx, o, current)
	})
}

func heldBy(o, before *order.Order, holder *worker.Worker) (*worker.Worker, error) {
	stored := o.AssignedWorkerPhone()
	if stored == nil {
		return nil, nil
	}
	if seen := before.AssignedWorkerPhone(); seen != nil && seen.IsEqual(*stored) {
		return holder, nil
	}
	return worker.NewSyntheticWorker(*stored)
}

func (w OrderWorkflow) persist(ctx context.Context, orderID string, apply applyFunc) (*order.Order, domainservices.Plan, error) {
	uow := w.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, domainservices.Plan{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, orderID)
	if err != nil {
		return nil, domainservices.Plan{}, err
	}

	plan, err := apply(ctx, o)
	if err != nil {
		return nil, domainservices.Plan{}, err
	}
	if !plan.Changed {
		return o, plan, nil
	}

	if err = repo.Update(ctx, o); err != nil {
		return nil, domainservices.Plan{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, domainservices.Plan{}, err
	}

	return o, plan, nil
}

// load reads an order outside of any transition.
func (w OrderWorkflow) load(ctx context.Context, orderID string) (*order.Order, error) {
	uow := w.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return uow.OrderRepository().Get(ctx, orderID)
}

func (w OrderWorkflow) notify(ctx context.Context, events []notification.Event) NotificationOutcome {
	reports, err := w.dispatcher.DispatchAll(ctx, events)
	for i, report := range reports {
		if report.Succeeded() {
			w.chatLog.record(ctx, report.OrderID, chatLogContent(events[i]), chatLogRecipients(events[i])...)
		}
	}

	outcome := NotificationOutcome{Reports: reports}
	if err != nil {
		outcome.Err = fmt.Errorf("%w: %w", ErrNotificationDeliveryFailed, err)
	}
	return outcome
}

// currentWorker resolves the worker holding the order. The stored phone always
// resolves, falling back to a single-phone worker.
func (w OrderWorkflow) currentWorker(ctx context.Context, o *order.Order) (*worker.Worker, error) {
	stored := o.AssignedWorkerPhone()
	if stored == nil {
		return nil, nil
	}
	return w.resolver.Resolve(ctx, stored.String())
}

func chatLogContent(e notification.Event) string {
	params := e.Params()
	switch e.Kind() {
	case notification.Assignment:
		return fmt.Sprintf("Order %s (%s) assigned to worker", e.OrderID(), params[1])
	case notification.Removal:
		return fmt.Sprintf("Order %s (%s) removed from worker", e.OrderID(), params[1])
	case notification.Completion:
		return fmt.Sprintf("Order %s (%s) completed", e.OrderID(), params[1])
	case notification.Update:
		return params[1]
	default:
		return e.Template().Name
	}
}

func chatLogRecipients(e notification.Event) []string {
	switch e.Kind() {
	case notification.Completion:
		return []string{message.RecipientClient, message.RecipientWorker}
	case notification.Assignment, notification.Removal:
		return []string{message.RecipientWorker}
	default:
		return nil
	}
}

// chatLog writes enterprise messages into an order's thread. Failures are
// logged and swallowed.
type chatLog struct {
	uowFactory MessageUoWFactory
	logger     *slog.Logger
}

func newChatLog(uowFactory MessageUoWFactory, logger *slog.Logger) chatLog {
	return chatLog{
		uowFactory: uowFactory,
		logger:     logger.With("component", "chat_log"),
	}
}

func (c chatLog) record(ctx context.Context, orderID, content string, recipients ...string) {
	if err := c.write(ctx, orderID, content, recipients); err != nil {
		c.logger.WarnContext(ctx, "Failed to record chat log message", "order_id", orderID, "error", err)
	}
}

func (c chatLog) write(ctx context.Context, orderID, content string, recipients []string) error {
	msg, err := message.NewEnterpriseMessage(orderID, content, recipients...)
	if err != nil {
		return err
	}

	ctx = context.WithoutCancel(ctx)
	uow := c.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.MessageRepository().Add(ctx, msg); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
