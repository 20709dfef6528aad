package commands

import (
	"errors"
	"strings"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderFields holds the optional parts of a full order update.
// A nil field is left untouched.
type UpdateOrderFields struct {
	ClientPhone *string
	Details     *order.JewelleryDetails
	Status      *string
	// WorkerIdentifier is a phone number or worker id. An empty string asks
	// for the order to be unassigned.
	WorkerIdentifier *string
}

// UpdateOrderCommand is the normalized form of a full order update as sent by
// the dashboard. Status changes are applied through the regular transitions.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID          string
	clientPhone      *kernel.PhoneNumber
	details          *order.JewelleryDetails
	status           order.Status
	hasStatus        bool
	workerIdentifier string
	hasWorker        bool

	guard guard.ConstructorGuard
}

func NewUpdateOrderCommand(orderID string, fields UpdateOrderFields) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if fields.Details != nil {
		details := fields.Details.Normalize()
		cmd.details = &details
	}
	if fields.WorkerIdentifier != nil {
		cmd.workerIdentifier = strings.TrimSpace(*fields.WorkerIdentifier)
		cmd.hasWorker = true
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setClientPhone(fields.ClientPhone),
		cmd.setStatus(fields.Status),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) OrderID() string {
	return c.orderID
}

// ClientPhone returns nil when the client phone is not being changed.
func (c UpdateOrderCommand) ClientPhone() *kernel.PhoneNumber {
	return c.clientPhone
}

// Details returns nil when the jewellery details are not being changed.
func (c UpdateOrderCommand) Details() *order.JewelleryDetails {
	return c.details
}

// Status returns the requested status and whether one was given.
func (c UpdateOrderCommand) Status() (order.Status, bool) {
	return c.status, c.hasStatus
}

// WorkerIdentifier returns the requested worker and whether one was given.
func (c UpdateOrderCommand) WorkerIdentifier() (string, bool) {
	return c.workerIdentifier, c.hasWorker
}

func (c *UpdateOrderCommand) setOrderID(orderID string) error {
	id, err := requireOrderID(orderID)
	if err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *UpdateOrderCommand) setClientPhone(raw *string) error {
	if raw == nil {
		return nil
	}

	phone, err := kernel.NewPhoneNumber(*raw)
	if err != nil {
		return err
	}

	c.clientPhone = &phone
	return nil
}

func (c *UpdateOrderCommand) setStatus(raw *string) error {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil
	}

	status, err := order.ParseStatus(*raw)
	if err != nil {
		return err
	}

	c.status = status
	c.hasStatus = true
	return nil
}
