package worker

import (
	"errors"
	"fmt"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
)

var (
	// ErrPhonesAreRequired is returned for a worker without phone numbers.
	ErrPhonesAreRequired = errs.NewValueIsRequiredError("at least one phone number")
	// ErrMultiplePrimaryPhones is returned when more than one phone is marked primary.
	ErrMultiplePrimaryPhones = errs.NewValueIsInvalidErrorWithCause(
		"phones", errors.New("only one phone number can be marked as primary"))
	// ErrDuplicatePhone is returned when the same number appears twice.
	ErrDuplicatePhone = errs.NewValueIsInvalidErrorWithCause(
		"phones", errors.New("phone numbers must be unique"))
)

// Phone is one number of a worker.
type Phone struct {
	number    kernel.PhoneNumber
	isPrimary bool
}

// NewPhone pairs a validated number with its primary flag.
func NewPhone(number kernel.PhoneNumber, isPrimary bool) (Phone, error) {
	if err := number.Validate(); err != nil {
		return Phone{}, err
	}
	return Phone{number: number, isPrimary: isPrimary}, nil
}

func (p Phone) Number() kernel.PhoneNumber {
	return p.number
}

func (p Phone) IsPrimary() bool {
	return p.isPrimary
}

// PhoneInput is a phone as submitted by staff.
type PhoneInput struct {
	PhoneNumber string
	IsPrimary   bool
}

// ParsePhones validates raw phone input. Every invalid entry is reported with
// its 1-based position.
func ParsePhones(inputs []PhoneInput) ([]Phone, error) {
	if len(inputs) == 0 {
		return nil, ErrPhonesAreRequired
	}

	phones := make([]Phone, 0, len(inputs))
	var errList []error
	for i, in := range inputs {
		number, err := kernel.NewPhoneNumber(in.PhoneNumber)
		if err != nil {
			errList = append(errList, fmt.Errorf("phone number at position %d: %w", i+1, err))
			continue
		}
		phones = append(phones, Phone{number: number, isPrimary: in.IsPrimary})
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return phones, nil
}

// normalizePhones enforces the phone list invariants and promotes the first
// phone to primary when none is flagged.
func normalizePhones(phones []Phone) ([]Phone, error) {
	if len(phones) == 0 {
		return nil, ErrPhonesAreRequired
	}

	result := make([]Phone, 0, len(phones))
	seen := make(map[string]struct{}, len(phones))
	primaries := 0
	for _, p := range phones {
		if err := p.number.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seen[p.number.Digits()]; ok {
			return nil, ErrDuplicatePhone
		}
		seen[p.number.Digits()] = struct{}{}
		if p.isPrimary {
			primaries++
		}
		result = append(result, p)
	}

	if primaries > 1 {
		return nil, ErrMultiplePrimaryPhones
	}
	if primaries == 0 {
		result[0].isPrimary = true
	}

	return result, nil
}
