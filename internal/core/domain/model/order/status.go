package order

import (
	"fmt"
	"strings"

	"atelier/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
type Status int

const (
	// Unknown is the zero value and never valid.
	Unknown Status = iota
	Pending
	Accepted
	Declined
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Accepted:  "accepted",
		Declined:  "declined",
		Completed: "completed",
	}
}

func getValidStatuses() map[string]Status {
	//nolint:exhaustive // Unknown cannot be parsed
	return map[string]Status{
		"pending":   Pending,
		"accepted":  Accepted,
		"declined":  Declined,
		"completed": Completed,
	}
}

// ParseStatus converts the wire form ("pending", "Accepted", ...) to a Status.
func ParseStatus(s string) (Status, error) {
	status, ok := getValidStatuses()[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
	}
	return status, nil
}

// Validate fails for Unknown and for values outside the enum.
func (s Status) Validate() error {
	if s <= Unknown || s > Completed {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Accept moves a pending or declined order to accepted.
func (s Status) Accept() (Status, error) {
	if s != Pending && s != Declined {
		return Unknown, transitionError(s, "accept")
	}
	return Accepted, nil
}

// Decline is only possible while the order is pending.
func (s Status) Decline() (Status, error) {
	if s != Pending {
		return Unknown, transitionError(s, "decline")
	}
	return Declined, nil
}

// ValidateReassign checks that the worker of an order may be changed. Only
// accepted orders are reassigned; accepting is how the first worker is set.
func (s Status) ValidateReassign() error {
	if s != Accepted {
		return transitionError(s, "reassign")
	}
	return nil
}

// Complete is allowed from pending as well as accepted. Declined orders have to
// be accepted again first.
func (s Status) Complete() (Status, error) {
	if s != Pending && s != Accepted {
		return Unknown, transitionError(s, "complete")
	}
	return Completed, nil
}

// Reopen puts a completed order back in progress.
func (s Status) Reopen() (Status, error) {
	if s != Completed {
		return Unknown, transitionError(s, "reopen")
	}
	return Accepted, nil
}

func transitionError(s Status, action string) error {
	return errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("cannot %s an order that is %s", action, s.String()),
	)
}
