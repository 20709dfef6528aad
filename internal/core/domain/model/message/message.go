// Package message holds the chat log entries shown in an order's thread.
package message

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

// SenderType says who wrote a message.
type SenderType string

const (
	SenderClient     SenderType = "client"
	SenderWorker     SenderType = "worker"
	SenderEnterprise SenderType = "enterprise"
)

// Recipient labels used on enterprise messages.
const (
	RecipientClient = "Client"
	RecipientWorker = "Worker"
)

var (
	ErrMessageIsNotConstructed = errors.New("Message must be created via NewMessage constructor")
	ErrContentIsRequired       = errs.NewValueIsRequiredError("content or media")
)

// ParseSenderType validates the wire value of a sender type.
func ParseSenderType(s string) (SenderType, error) {
	switch st := SenderType(strings.ToLower(strings.TrimSpace(s))); st {
	case SenderClient, SenderWorker, SenderEnterprise:
		return st, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("sender type", fmt.Errorf("%q is not a valid sender type", s))
	}
}

// Media references an uploaded attachment.
type Media struct {
	ID   string
	Type string
}

// Message is one entry of an order's chat thread.
type Message struct {
	id         kernel.UUID
	orderID    string
	content    string
	senderType SenderType
	recipients []string
	media      *Media
	createdAt  time.Time
	guard      guard.ConstructorGuard
}

// NewMessage creates a message with a fresh id. Either content or media is required.
func NewMessage(orderID string, senderType SenderType, content string, recipients []string, media *Media) (*Message, error) {
	return RestoreMessage(kernel.NewUUID(), orderID, senderType, content, recipients, media, time.Now().UTC())
}

// NewEnterpriseMessage records text the business sent to the listed recipients.
func NewEnterpriseMessage(orderID, content string, recipients ...string) (*Message, error) {
	return NewMessage(orderID, SenderEnterprise, content, recipients, nil)
}

// RestoreMessage rebuilds a message from storage.
func RestoreMessage(
	id kernel.UUID,
	orderID string,
	senderType SenderType,
	content string,
	recipients []string,
	media *Media,
	createdAt time.Time,
) (*Message, error) {
	m := &Message{
		content:   strings.TrimSpace(content),
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}
	if media != nil && media.ID != "" {
		cp := *media
		m.media = &cp
	}
	if len(recipients) > 0 {
		m.recipients = append([]string(nil), recipients...)
	}

	var contentErr error
	if m.content == "" && m.media == nil {
		contentErr = ErrContentIsRequired
	}

	if err := errors.Join(
		id.Validate(),
		m.setOrderID(orderID),
		m.setSenderType(senderType),
		contentErr,
	); err != nil {
		return nil, err
	}
	m.id = id

	return m, nil
}

func (m *Message) Validate() error {
	if m == nil {
		return ErrMessageIsNotConstructed
	}
	return m.guard.Validate(ErrMessageIsNotConstructed)
}

func (m *Message) ID() kernel.UUID {
	return m.id
}

func (m *Message) OrderID() string {
	return m.orderID
}

func (m *Message) Content() string {
	return m.content
}

func (m *Message) SenderType() SenderType {
	return m.senderType
}

func (m *Message) CreatedAt() time.Time {
	return m.createdAt
}

// Recipients returns a copy of the recipient labels.
func (m *Message) Recipients() []string {
	return append([]string(nil), m.recipients...)
}

// Media returns the attachment or nil.
func (m *Message) Media() *Media {
	if m.media == nil {
		return nil
	}
	cp := *m.media
	return &cp
}

func (m *Message) setOrderID(orderID string) error {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return errs.NewValueIsRequiredError("order id")
	}
	m.orderID = orderID
	return nil
}

func (m *Message) setSenderType(st SenderType) error {
	parsed, err := ParseSenderType(string(st))
	if err != nil {
		return err
	}
	m.senderType = parsed
	return nil
}
