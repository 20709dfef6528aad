package commands

import (
	"errors"
	"fmt"
	"strings"

	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

// UpdateRecipient selects who receives a free-text order update.
type UpdateRecipient string

const (
	RecipientClient UpdateRecipient = "client"
	RecipientWorker UpdateRecipient = "worker"
	RecipientBoth   UpdateRecipient = "both"
)

var (
	ErrSendOrderUpdateCommandIsNotConstructed = errors.New(
		"SendOrderUpdateCommand must be created via NewSendOrderUpdateCommand constructor",
	)
	ErrUpdateTextIsRequired = errs.NewValueIsRequiredError("text")
)

// ParseUpdateRecipient validates the wire value of a recipient.
func ParseUpdateRecipient(s string) (UpdateRecipient, error) {
	switch r := UpdateRecipient(strings.ToLower(strings.TrimSpace(s))); r {
	case RecipientClient, RecipientWorker, RecipientBoth:
		return r, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause(
			"recipient",
			fmt.Errorf("%q is not one of client, worker, both", s),
		)
	}
}

func (r UpdateRecipient) includesClient() bool {
	return r == RecipientClient || r == RecipientBoth
}

func (r UpdateRecipient) includesWorker() bool {
	return r == RecipientWorker || r == RecipientBoth
}

// SendOrderUpdateCommand sends free text, or a media URL, about an order to its
// client, its worker or both.
type SendOrderUpdateCommand struct {
	orderID   string
	recipient UpdateRecipient
	text      string
	guard     guard.ConstructorGuard
}

func NewSendOrderUpdateCommand(orderID, recipient, text string) (SendOrderUpdateCommand, error) {
	id, idErr := requireOrderID(orderID)
	r, recipientErr := ParseUpdateRecipient(recipient)

	text = strings.TrimSpace(text)
	var textErr error
	if text == "" {
		textErr = ErrUpdateTextIsRequired
	}

	if err := errors.Join(idErr, recipientErr, textErr); err != nil {
		return SendOrderUpdateCommand{}, err
	}

	return SendOrderUpdateCommand{
		orderID:   id,
		recipient: r,
		text:      text,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c SendOrderUpdateCommand) Validate() error {
	return c.guard.Validate(ErrSendOrderUpdateCommandIsNotConstructed)
}

func (c SendOrderUpdateCommand) OrderID() string {
	return c.orderID
}

func (c SendOrderUpdateCommand) Recipient() UpdateRecipient {
	return c.recipient
}

func (c SendOrderUpdateCommand) Text() string {
	return c.text
}
