package queries

import (
	"context"
	"errors"
	"strings"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"

	"gorm.io/gorm"
)

var (
	ErrGetWorkerQueryIsNotConstructed = errors.New(
		"GetWorkerQuery must be created via NewGetWorkerQuery constructor",
	)
)

// GetWorkerQuery finds one worker by id or by any of its phones. A value
// shaped like a UUID is treated as an id, anything else as a phone compared
// by digits.
type GetWorkerQuery struct {
	identifier string
	id         *kernel.UUID
	digits     string

	guard guard.ConstructorGuard
}

func NewGetWorkerQuery(phoneOrID string) (GetWorkerQuery, error) {
	phoneOrID = strings.TrimSpace(phoneOrID)
	if phoneOrID == "" {
		return GetWorkerQuery{}, errs.NewValueIsRequiredError("phoneOrId")
	}

	q := GetWorkerQuery{
		identifier: phoneOrID,
		guard:      guard.NewConstructorGuard(),
	}

	if kernel.LooksLikeUUID(phoneOrID) {
		id, err := kernel.UUIDFromString(phoneOrID)
		if err != nil {
			return GetWorkerQuery{}, err
		}
		q.id = &id
		return q, nil
	}

	q.digits = kernel.DigitsOnly(phoneOrID)
	if q.digits == "" {
		return GetWorkerQuery{}, errs.NewValueIsInvalidError("phoneOrId")
	}

	return q, nil
}

func (q GetWorkerQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkerQueryIsNotConstructed)
}

func (q GetWorkerQuery) Identifier() string {
	return q.identifier
}

type GetWorkerQueryHandler struct {
	db *gorm.DB
}

func NewGetWorkerQueryHandler(db *gorm.DB) GetWorkerQueryHandler {
	return GetWorkerQueryHandler{db: db}
}

// Handle returns errs.ErrObjectNotFound when nothing matches.
func (h GetWorkerQueryHandler) Handle(ctx context.Context, query GetWorkerQuery) (WorkerView, error) {
	if err := query.Validate(); err != nil {
		return WorkerView{}, err
	}

	where := " WHERE w.id = (SELECT worker_id FROM worker_phones WHERE digits = ?)"
	var arg any = query.digits
	if query.id != nil {
		where = " WHERE w.id = ?"
		arg = query.id.Bytes()
	}

	rows, err := h.db.WithContext(ctx).
		Raw(selectWorkers+where+" ORDER BY p.is_primary DESC, p.position", arg).
		Rows()
	if err != nil {
		return WorkerView{}, err
	}
	defer rows.Close()

	workers, err := scanWorkers(rows)
	if err != nil {
		return WorkerView{}, err
	}
	if len(workers) == 0 {
		return WorkerView{}, errs.NewObjectNotFoundError("worker", query.Identifier())
	}

	return workers[0], nil
}
