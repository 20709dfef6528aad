package notification

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
)

// ErrAllDeliveriesFailed is returned when no send of a dispatch succeeded.
var ErrAllDeliveriesFailed = errors.New("notification was not delivered to any phone")

// DeliveryAttempt is the outcome of one send.
type DeliveryAttempt struct {
	Phone     kernel.PhoneNumber
	MessageID string
	Err       error
}

func (a DeliveryAttempt) Succeeded() bool {
	return a.Err == nil
}

// DeliveryReport aggregates the attempts of one dispatch. Attempts are in
// target order.
type DeliveryReport struct {
	Kind     Kind
	OrderID  string
	Attempts []DeliveryAttempt
}

// Delivered counts successful attempts.
func (r DeliveryReport) Delivered() int {
	n := 0
	for _, a := range r.Attempts {
		if a.Succeeded() {
			n++
		}
	}
	return n
}

// Failed counts failed attempts.
func (r DeliveryReport) Failed() int {
	return len(r.Attempts) - r.Delivered()
}

// Succeeded is true when at least one phone received the message.
func (r DeliveryReport) Succeeded() bool {
	return r.Delivered() > 0
}

// Err returns ErrAllDeliveriesFailed unless the report succeeded.
func (r DeliveryReport) Err() error {
	if r.Succeeded() {
		return nil
	}
	return ErrAllDeliveriesFailed
}
