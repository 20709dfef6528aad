package kernel

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

const (
	// MinPhoneDigits and MaxPhoneDigits bound the digit count after normalisation.
	MinPhoneDigits = 10
	MaxPhoneDigits = 15
)

var (
	// ErrPhoneNumberIsNotConstructed is returned when validating a zero-value PhoneNumber.
	ErrPhoneNumberIsNotConstructed = errors.New("PhoneNumber must be created via NewPhoneNumber")

	phoneCharset  = regexp.MustCompile(`^\+?[0-9\s\-()]+$`)
	nonDigitRunes = regexp.MustCompile(`\D`)
)

// PhoneNumber is a phone as typed by staff ("+1 (555) 111-0000") together with
// its digits-only form. The digits are what the messaging API receives and
// what two numbers are compared by.
type PhoneNumber struct {
	raw    string
	digits string
	guard  guard.ConstructorGuard
}

// NewPhoneNumber accepts an optional leading '+', digits, spaces, dashes and
// parentheses, and requires MinPhoneDigits to MaxPhoneDigits digits.
func NewPhoneNumber(raw string) (PhoneNumber, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return PhoneNumber{}, errs.NewValueIsRequiredError("phone number")
	}
	if !phoneCharset.MatchString(raw) {
		return PhoneNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"phone number",
			fmt.Errorf("%q contains characters other than digits, spaces, dashes, parentheses and a leading +", raw),
		)
	}

	digits := DigitsOnly(raw)
	if len(digits) < MinPhoneDigits || len(digits) > MaxPhoneDigits {
		return PhoneNumber{}, errs.NewValueIsOutOfRangeError("phone number digits", len(digits), MinPhoneDigits, MaxPhoneDigits)
	}

	return PhoneNumber{
		raw:    raw,
		digits: digits,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// DigitsOnly strips every non-digit rune from s.
func DigitsOnly(s string) string {
	return nonDigitRunes.ReplaceAllString(s, "")
}

// String returns the number as it was entered.
func (p PhoneNumber) String() string {
	return p.raw
}

// Digits returns the normalised number.
func (p PhoneNumber) Digits() string {
	return p.digits
}

// IsEqual compares by digits, so "+1 555 111 0000" equals "15551110000".
func (p PhoneNumber) IsEqual(other PhoneNumber) bool {
	return p.digits != "" && p.digits == other.digits
}

// Matches reports whether identifier denotes the same number.
func (p PhoneNumber) Matches(identifier string) bool {
	d := DigitsOnly(identifier)
	return d != "" && d == p.digits
}

func (p PhoneNumber) Validate() error {
	return p.guard.Validate(ErrPhoneNumberIsNotConstructed)
}
