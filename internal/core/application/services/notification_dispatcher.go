package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"atelier/internal/core/domain/model/notification"
	"atelier/internal/core/ports"

	"golang.org/x/sync/errgroup"
)

const (
	// DefaultSendTimeout bounds a single WhatsApp send.
	DefaultSendTimeout = 12 * time.Second
	// DefaultMaxConcurrentSends caps the in-flight sends of one dispatch.
	DefaultMaxConcurrentSends = 8
)

// DispatcherConfig tunes a NotificationDispatcher. Zero values select defaults.
type DispatcherConfig struct {
	SendTimeout        time.Duration
	MaxConcurrentSends int
}

// NotificationDispatcher sends events through a NotificationSender.
//
// All sends of one event run concurrently. A failed send is logged and kept in
// the report; it never aborts the other sends. The dispatch as a whole fails
// only when no phone received the message. Sends are not cancelled when the
// caller's context is: once issued, a dispatch runs to completion bounded by
// the per-send timeout.
type NotificationDispatcher struct {
	sender      ports.NotificationSender
	sendTimeout time.Duration
	limit       int
	logger      *slog.Logger
}

func NewNotificationDispatcher(sender ports.NotificationSender, cfg DispatcherConfig, logger *slog.Logger) NotificationDispatcher {
	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = DefaultSendTimeout
	}
	if cfg.MaxConcurrentSends <= 0 {
		cfg.MaxConcurrentSends = DefaultMaxConcurrentSends
	}
	return NotificationDispatcher{
		sender:      sender,
		sendTimeout: cfg.SendTimeout,
		limit:       cfg.MaxConcurrentSends,
		logger:      logger.With("component", "notification_dispatcher"),
	}
}

// Dispatch sends event to each of its targets and returns one attempt per
// target in target order. The error is notification.ErrNoRecipients for an
// event without targets and notification.ErrAllDeliveriesFailed when every
// send failed.
func (d NotificationDispatcher) Dispatch(ctx context.Context, event notification.Event) (notification.DeliveryReport, error) {
	report := notification.DeliveryReport{Kind: event.Kind(), OrderID: event.OrderID()}
	if err := event.Validate(); err != nil {
		return report, err
	}

	ctx = context.WithoutCancel(ctx)
	targets := event.Targets()
	template := event.Template()
	report.Attempts = make([]notification.DeliveryAttempt, len(targets))

	var g errgroup.Group
	g.SetLimit(d.limit)
	for i, phone := range targets {
		g.Go(func() error {
			sendCtx, cancel := context.WithTimeout(ctx, d.sendTimeout)
			defer cancel()

			messageID, err := d.sender.Send(sendCtx, phone, template)
			report.Attempts[i] = notification.DeliveryAttempt{Phone: phone, MessageID: messageID, Err: err}
			if err != nil {
				d.logger.WarnContext(ctx, "Notification send failed",
					"kind", event.Kind().String(),
					"order_id", event.OrderID(),
					"phone", phone.Digits(),
					"error", err)
			}
			return nil
		})
	}
	_ = g.Wait()

	if err := report.Err(); err != nil {
		d.logger.ErrorContext(ctx, "Notification not delivered to any phone",
			"kind", event.Kind().String(),
			"order_id", event.OrderID(),
			"attempts", len(report.Attempts))
		return report, err
	}

	d.logger.InfoContext(ctx, "Notification dispatched",
		"kind", event.Kind().String(),
		"order_id", event.OrderID(),
		"delivered", report.Delivered(),
		"failed", report.Failed())
	return report, nil
}

// DispatchAll dispatches events one after another in the given order, so a
// removal is always issued before the assignment that follows it. Every event
// is attempted; the returned error joins the failures of individual events.
func (d NotificationDispatcher) DispatchAll(ctx context.Context, events []notification.Event) ([]notification.DeliveryReport, error) {
	reports := make([]notification.DeliveryReport, 0, len(events))
	var errList []error
	for _, event := range events {
		report, err := d.Dispatch(ctx, event)
		reports = append(reports, report)
		if err != nil {
			errList = append(errList, fmt.Errorf("%s notification: %w", event.Kind(), err))
		}
	}
	return reports, errors.Join(errList...)
}
