package commands

import (
	"context"
	"errors"
	"fmt"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/message"
	"atelier/internal/core/domain/model/notification"
	"atelier/internal/pkg/errs"
)

// ErrNoWorkerAssigned is returned when an update addressed to the worker is
// sent for an order nobody holds.
var ErrNoWorkerAssigned = errs.NewValueIsInvalidErrorWithCause(
	"recipient",
	errors.New("order has no assigned worker"),
)

// SendOrderUpdateCommandHandler dispatches one update event and records it in
// the order's chat thread with the recipient labels. The order itself is not
// changed.
type SendOrderUpdateCommandHandler struct {
	workflow OrderWorkflow
}

func NewSendOrderUpdateCommandHandler(workflow OrderWorkflow) SendOrderUpdateCommandHandler {
	return SendOrderUpdateCommandHandler{workflow: workflow}
}

func (h SendOrderUpdateCommandHandler) Handle(ctx context.Context, cmd SendOrderUpdateCommand) (TransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionResult{}, err
	}

	o, err := h.workflow.load(ctx, cmd.OrderID())
	if err != nil {
		return TransitionResult{}, err
	}

	recipient := cmd.Recipient()
	if recipient.includesWorker() && !o.HasWorker() {
		return TransitionResult{}, ErrNoWorkerAssigned
	}

	var (
		targets []kernel.PhoneNumber
		labels  []string
	)
	if recipient.includesClient() {
		targets = append(targets, o.ClientPhone())
		labels = append(labels, message.RecipientClient)
	}
	if recipient.includesWorker() {
		assigned, err := h.workflow.currentWorker(ctx, o)
		if err != nil {
			return TransitionResult{}, err
		}
		targets = append(targets, assigned.PhoneNumbers()...)
		labels = append(labels, message.RecipientWorker)
	}

	event := notification.NewUpdateEvent(o, targets, cmd.Text())
	report, err := h.workflow.dispatcher.Dispatch(ctx, event)

	result := TransitionResult{
		Order: o,
		NotificationOutcome: NotificationOutcome{
			Reports: []notification.DeliveryReport{report},
		},
	}
	if err != nil {
		result.Err = fmt.Errorf("%w: %w", ErrNotificationDeliveryFailed, err)
		return result, nil
	}

	h.workflow.chatLog.record(ctx, o.ID(), cmd.Text(), labels...)
	return result, nil
}
