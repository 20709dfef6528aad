package notification

import (
	"errors"
	"fmt"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
)

const (
	notSpecified          = "Not specified"
	noSpecialInstructions = "No special instructions"
)

// ErrNoRecipients is returned for an event without target phones.
var ErrNoRecipients = errors.New("notification has no recipients")

// Template is a rendered template message: a name, a language and positional
// body parameters.
type Template struct {
	Name     string
	Language string
	Params   []string
}

// Event is one logical notification. Targets are unique by digits and keep the
// order they were given in.
type Event struct {
	kind    Kind
	orderID string
	targets []kernel.PhoneNumber
	params  []string
}

// NewAssignmentEvent tells a worker about a new order. Parameters: order id,
// name, weight, melting, timeline, special instructions.
func NewAssignmentEvent(o *order.Order, targets []kernel.PhoneNumber) Event {
	d := o.Details()
	return newEvent(Assignment, o.ID(), targets,
		o.ID(),
		orDefault(d.Name, notSpecified),
		orDefault(d.Weight, notSpecified),
		orDefault(d.Melting, notSpecified),
		orDefault(d.Timeline, notSpecified),
		orDefault(d.SpecialInstructions, noSpecialInstructions),
	)
}

// NewRemovalEvent tells the previous worker the order moved elsewhere.
func NewRemovalEvent(o *order.Order, targets []kernel.PhoneNumber) Event {
	return newEvent(Removal, o.ID(), targets, o.ID(), orDefault(o.Details().Name, notSpecified))
}

// NewCompletionEvent tells the client and the worker the repair is done.
func NewCompletionEvent(o *order.Order, targets []kernel.PhoneNumber) Event {
	return newEvent(Completion, o.ID(), targets, o.ID(), orDefault(o.Details().Name, notSpecified))
}

// NewUpdateEvent carries free text or a media URL about the order.
func NewUpdateEvent(o *order.Order, targets []kernel.PhoneNumber, text string) Event {
	label := fmt.Sprintf("%s-%s", orDefault(o.Details().Name, notSpecified), o.ID())
	return newEvent(Update, o.ID(), targets, label, text)
}

func newEvent(kind Kind, orderID string, targets []kernel.PhoneNumber, params ...string) Event {
	return Event{
		kind:    kind,
		orderID: orderID,
		targets: uniqueTargets(targets),
		params:  params,
	}
}

func (e Event) Kind() Kind {
	return e.kind
}

func (e Event) OrderID() string {
	return e.orderID
}

// Targets returns a copy of the target phones.
func (e Event) Targets() []kernel.PhoneNumber {
	return append([]kernel.PhoneNumber(nil), e.targets...)
}

// Params returns a copy of the positional template parameters.
func (e Event) Params() []string {
	return append([]string(nil), e.params...)
}

// Template renders the message body shared by every target.
func (e Event) Template() Template {
	return Template{
		Name:     e.kind.TemplateName(),
		Language: DefaultLanguage,
		Params:   e.Params(),
	}
}

// Validate checks that the event can be dispatched.
func (e Event) Validate() error {
	if e.kind.TemplateName() == "" {
		return fmt.Errorf("notification kind %d has no template", e.kind)
	}
	if len(e.targets) == 0 {
		return ErrNoRecipients
	}
	return nil
}

func uniqueTargets(targets []kernel.PhoneNumber) []kernel.PhoneNumber {
	out := make([]kernel.PhoneNumber, 0, len(targets))
	seen := make(map[string]struct{}, len(targets))
	for _, t := range targets {
		if t.Validate() != nil {
			continue
		}
		if _, ok := seen[t.Digits()]; ok {
			continue
		}
		seen[t.Digits()] = struct{}{}
		out = append(out, t)
	}
	return out
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
