package commands

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand registers a repair order received from a client.
// The order id is assigned by the intake channel, not by this service.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("A-1042", "+91 98765 43210", order.JewelleryDetails{
//	    Name:   "Gold ring",
//	    Weight: "4.2g",
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     string
	clientPhone kernel.PhoneNumber
	details     order.JewelleryDetails

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the order id and the client phone.
// All validation errors are reported together.
func NewCreateOrderCommand(orderID, clientPhone string, details order.JewelleryDetails) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		details: details.Normalize(),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setClientPhone(clientPhone),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() string {
	return c.orderID
}

func (c CreateOrderCommand) ClientPhone() kernel.PhoneNumber {
	return c.clientPhone
}

func (c CreateOrderCommand) Details() order.JewelleryDetails {
	return c.details
}

func (c *CreateOrderCommand) setOrderID(orderID string) error {
	id, err := requireOrderID(orderID)
	if err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *CreateOrderCommand) setClientPhone(raw string) error {
	phone, err := kernel.NewPhoneNumber(raw)
	if err != nil {
		return err
	}

	c.clientPhone = phone
	return nil
}
