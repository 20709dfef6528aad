package queries

import (
	"context"
	"database/sql"
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrGetWorkersQueryIsNotConstructed = errors.New(
		"GetWorkersQuery must be created via NewGetWorkersQuery constructor",
	)
)

// WorkerView is a worker with its phones, primary first.
type WorkerView struct {
	ID     kernel.UUID
	Name   string
	Phones []WorkerPhoneView
}

type WorkerPhoneView struct {
	PhoneNumber string
	IsPrimary   bool
}

const selectWorkers = `
	SELECT
		w.id,
		w.name,
		p.phone_number,
		p.is_primary
	FROM workers w
	LEFT JOIN worker_phones p
		ON p.worker_id = w.id
`

// GetWorkersQuery lists every registered worker by name.
type GetWorkersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetWorkersQuery() GetWorkersQuery {
	return GetWorkersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetWorkersQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkersQueryIsNotConstructed)
}

type GetWorkersQueryHandler struct {
	db *gorm.DB
}

func NewGetWorkersQueryHandler(db *gorm.DB) GetWorkersQueryHandler {
	return GetWorkersQueryHandler{db: db}
}

func (h GetWorkersQueryHandler) Handle(ctx context.Context, query GetWorkersQuery) ([]WorkerView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).
		Raw(selectWorkers + " ORDER BY w.name, w.id, p.is_primary DESC, p.position").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanWorkers(rows)
}

// scanWorkers folds one row per phone into one view per worker. Rows of the
// same worker must be adjacent.
func scanWorkers(rows *sql.Rows) ([]WorkerView, error) {
	workers := make([]WorkerView, 0)

	for rows.Next() {
		var id uuid.UUID
		var name string
		var phoneNumber sql.NullString
		var isPrimary sql.NullBool

		if err := rows.Scan(&id, &name, &phoneNumber, &isPrimary); err != nil {
			return nil, err
		}

		workerID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		last := len(workers) - 1
		if last < 0 || !workers[last].ID.IsEqual(workerID) {
			workers = append(workers, WorkerView{
				ID:     workerID,
				Name:   name,
				Phones: make([]WorkerPhoneView, 0, 1),
			})
			last++
		}

		if phoneNumber.Valid {
			workers[last].Phones = append(workers[last].Phones, WorkerPhoneView{
				PhoneNumber: phoneNumber.String,
				IsPrimary:   isPrimary.Bool,
			})
		}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return workers, nil
}
