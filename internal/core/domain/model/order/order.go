package order

import (
	"errors"
	"strings"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrWorkerPhoneIsRequired is returned when an order is accepted without a worker.
	ErrWorkerPhoneIsRequired = errs.NewValueIsRequiredError("worker phone")
)

// Order is the aggregate root of a repair job.
//
// Invariants:
//   - the id is non-empty and never changes
//   - the client phone is a valid phone number
//   - at most one worker is assigned, referenced by phone number
//   - status changes only through the transition methods
type Order struct {
	id                  string
	status              Status
	clientPhone         kernel.PhoneNumber
	assignedWorkerPhone *kernel.PhoneNumber
	details             JewelleryDetails
	createdAt           time.Time
	updatedAt           time.Time
	guard               guard.ConstructorGuard
}

// NewOrder creates a pending order with no worker.
func NewOrder(id string, clientPhone kernel.PhoneNumber, details JewelleryDetails) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:    Pending,
		details:   details.Normalize(),
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setClientPhone(clientPhone),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an Order loaded from storage.
func RestoreOrder(
	id string,
	status Status,
	clientPhone kernel.PhoneNumber,
	assignedWorkerPhone *kernel.PhoneNumber,
	details JewelleryDetails,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		details:   details,
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setStatus(status),
		o.setClientPhone(clientPhone),
		o.setAssignedWorkerPhone(assignedWorkerPhone),
	); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares orders by id.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order identifier.
func (o *Order) ID() string {
	return o.id
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// ClientPhone returns the phone of the client who placed the order.
func (o *Order) ClientPhone() kernel.PhoneNumber {
	return o.clientPhone
}

// Details returns the jewellery details.
func (o *Order) Details() JewelleryDetails {
	return o.details
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// AssignedWorkerPhone returns the phone of the assigned worker or nil.
func (o *Order) AssignedWorkerPhone() *kernel.PhoneNumber {
	if o.assignedWorkerPhone == nil {
		return nil
	}
	p := *o.assignedWorkerPhone
	return &p
}

// HasWorker reports whether a worker is assigned.
func (o *Order) HasWorker() bool {
	return o.assignedWorkerPhone != nil
}

// IsAssignedTo reports whether identifier denotes the assigned worker's phone.
func (o *Order) IsAssignedTo(identifier string) bool {
	if o.assignedWorkerPhone == nil {
		return strings.TrimSpace(identifier) == ""
	}
	return o.assignedWorkerPhone.Matches(identifier)
}

// Accept moves the order to accepted and assigns the worker.
func (o *Order) Accept(workerPhone kernel.PhoneNumber) error {
	if err := workerPhone.Validate(); err != nil {
		return ErrWorkerPhoneIsRequired
	}

	next, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = next
	o.assignedWorkerPhone = &workerPhone
	o.touch()
	return nil
}

// Decline rejects a pending order.
func (o *Order) Decline() error {
	next, err := o.status.Decline()
	if err != nil {
		return err
	}

	o.status = next
	o.touch()
	return nil
}

// Reassign replaces the worker of an accepted order. A nil phone unassigns.
func (o *Order) Reassign(workerPhone *kernel.PhoneNumber) error {
	if err := o.status.ValidateReassign(); err != nil {
		return err
	}
	if err := o.setAssignedWorkerPhone(workerPhone); err != nil {
		return err
	}

	o.touch()
	return nil
}

// Complete marks the repair finished. The assigned worker is kept so that it
// can be notified.
func (o *Order) Complete() error {
	next, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = next
	o.touch()
	return nil
}

// Reopen marks a completed order as in progress again.
func (o *Order) Reopen() error {
	next, err := o.status.Reopen()
	if err != nil {
		return err
	}

	o.status = next
	o.touch()
	return nil
}

// UpdateDetails replaces the jewellery details and reports whether anything changed.
func (o *Order) UpdateDetails(details JewelleryDetails) bool {
	details = details.Normalize()
	if details == o.details {
		return false
	}

	o.details = details
	o.touch()
	return true
}

// ChangeClientPhone replaces the client phone and reports whether the number changed.
func (o *Order) ChangeClientPhone(phone kernel.PhoneNumber) (bool, error) {
	if err := phone.Validate(); err != nil {
		return false, err
	}
	if o.clientPhone.IsEqual(phone) {
		return false, nil
	}

	o.clientPhone = phone
	o.touch()
	return true, nil
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errs.NewValueIsRequiredError("order id")
	}
	o.id = id
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setClientPhone(phone kernel.PhoneNumber) error {
	if err := phone.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("client phone", err)
	}
	o.clientPhone = phone
	return nil
}

func (o *Order) setAssignedWorkerPhone(phone *kernel.PhoneNumber) error {
	if phone == nil {
		o.assignedWorkerPhone = nil
		return nil
	}
	if err := phone.Validate(); err != nil {
		return err
	}
	p := *phone
	o.assignedWorkerPhone = &p
	return nil
}
