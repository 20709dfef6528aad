package worker

import (
	"errors"
	"fmt"
	"strings"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when creating a worker without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrWorkerIsNotConstructed is returned when using an improperly initialized Worker.
	ErrWorkerIsNotConstructed = errors.New("Worker must be created via NewWorker constructor")
)

// Worker is the aggregate root for a craftsperson.
//
// Business rules:
//   - id is a valid UUID and name is non-empty (except for synthetic workers)
//   - at least one phone, all unique by digits
//   - exactly one phone is primary
type Worker struct {
	id        kernel.UUID
	name      string
	phones    []Phone
	synthetic bool
	guard     guard.ConstructorGuard
}

// NewWorker creates a worker. When no phone is flagged primary the first one
// becomes primary.
func NewWorker(id kernel.UUID, name string, phones []Phone) (*Worker, error) {
	w := &Worker{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		w.setID(id),
		w.setName(name),
		w.setPhones(phones),
	); err != nil {
		return nil, err
	}

	return w, nil
}

// RestoreWorker rebuilds a Worker from storage using the same rules as NewWorker.
func RestoreWorker(id kernel.UUID, name string, phones []Phone) (*Worker, error) {
	return NewWorker(id, name, phones)
}

// NewSyntheticWorker builds the fallback worker used when a lookup fails. Its
// only phone is the identifier the caller already knew and it is not flagged
// primary.
func NewSyntheticWorker(number kernel.PhoneNumber) (*Worker, error) {
	if err := number.Validate(); err != nil {
		return nil, err
	}

	return &Worker{
		phones:    []Phone{{number: number}},
		synthetic: true,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (w *Worker) Validate() error {
	if w == nil {
		return ErrWorkerIsNotConstructed
	}
	return w.guard.Validate(ErrWorkerIsNotConstructed)
}

// IsEqual compares workers by id. Synthetic workers compare by their phone.
func (w *Worker) IsEqual(other *Worker) bool {
	if other == nil {
		return false
	}
	if w.synthetic || other.synthetic {
		return w.synthetic == other.synthetic && w.phones[0].number.IsEqual(other.phones[0].number)
	}
	return w.id.IsEqual(other.id)
}

// ID returns the worker id. It is the zero UUID for synthetic workers.
func (w *Worker) ID() kernel.UUID {
	return w.id
}

func (w *Worker) Name() string {
	return w.name
}

// IsSynthetic reports whether the worker is a lookup fallback.
func (w *Worker) IsSynthetic() bool {
	return w.synthetic
}

// Phones returns a copy of the phone list in order.
func (w *Worker) Phones() []Phone {
	out := make([]Phone, len(w.phones))
	copy(out, w.phones)
	return out
}

// PhoneNumbers returns every number of the worker in list order.
func (w *Worker) PhoneNumbers() []kernel.PhoneNumber {
	out := make([]kernel.PhoneNumber, 0, len(w.phones))
	for _, p := range w.phones {
		out = append(out, p.number)
	}
	return out
}

// PrimaryPhone returns the primary number, or the first one when none is
// primary (synthetic workers).
func (w *Worker) PrimaryPhone() kernel.PhoneNumber {
	for _, p := range w.phones {
		if p.isPrimary {
			return p.number
		}
	}
	return w.phones[0].number
}

// HasPhone reports whether identifier matches one of the worker's numbers.
func (w *Worker) HasPhone(identifier string) bool {
	for _, p := range w.phones {
		if p.number.Matches(identifier) {
			return true
		}
	}
	return false
}

// EnsurePhone appends number as a secondary phone unless the worker already
// has it. It reports whether the list changed.
func (w *Worker) EnsurePhone(number kernel.PhoneNumber) bool {
	if err := number.Validate(); err != nil || w.HasPhone(number.Digits()) {
		return false
	}
	w.phones = append(w.phones, Phone{number: number})
	return true
}

// DisplayName renders "Name (primary +N more)".
func (w *Worker) DisplayName() string {
	name := w.name
	if name == "" {
		name = "Unknown Worker"
	}

	more := ""
	if extra := len(w.phones) - 1; extra > 0 {
		more = fmt.Sprintf(" +%d more", extra)
	}
	return fmt.Sprintf("%s (%s%s)", name, w.PrimaryPhone().String(), more)
}

// Rename changes the display name.
func (w *Worker) Rename(name string) error {
	return w.setName(name)
}

// ReplacePhones swaps the whole phone list, applying the same rules as NewWorker.
func (w *Worker) ReplacePhones(phones []Phone) error {
	return w.setPhones(phones)
}

func (w *Worker) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *Worker) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	w.name = name
	return nil
}

func (w *Worker) setPhones(phones []Phone) error {
	normalized, err := normalizePhones(phones)
	if err != nil {
		return err
	}
	w.phones = normalized
	return nil
}
