package workerrepo

import (
	"context"
	"errors"

	"atelier/internal/adapters/out/postgres/pgerr"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/worker"
	"atelier/internal/core/ports"
	"atelier/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormWorkerRepository implements ports.WorkerRepository. Writes that touch
// several rows run in a transaction of their own, nested as a savepoint when
// the repository already works inside a unit of work.
type GormWorkerRepository struct {
	db *gorm.DB
}

func NewGormWorkerRepository(db *gorm.DB) *GormWorkerRepository {
	return &GormWorkerRepository{db: db}
}

func (r *GormWorkerRepository) Add(ctx context.Context, aggregate *worker.Worker) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&dto).Error; err != nil {
			return err
		}
		return createPhones(tx, dto.Phones)
	})
}

// Update renames the worker and replaces its phones.
func (r *GormWorkerRepository) Update(ctx context.Context, aggregate *worker.Worker) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&WorkerDTO{}).Where("id = ?", dto.ID).Update("name", dto.Name)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewObjectNotFoundError("worker", aggregate.ID().String())
		}

		if err := tx.Where("worker_id = ?", dto.ID).Delete(&PhoneDTO{}).Error; err != nil {
			return err
		}
		return createPhones(tx, dto.Phones)
	})
}

func (r *GormWorkerRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Where("id = ?", id.Bytes()).Delete(&WorkerDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("worker", id.String())
	}

	return nil
}

func (r *GormWorkerRepository) Get(ctx context.Context, id kernel.UUID) (*worker.Worker, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WorkerDTO
	if err := r.withPhones(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("worker", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByPhone compares digits only, so "+91 98765-43210" finds a worker
// registered as "919876543210".
func (r *GormWorkerRepository) GetByPhone(ctx context.Context, phone kernel.PhoneNumber) (*worker.Worker, error) {
	if err := phone.Validate(); err != nil {
		return nil, err
	}

	var dto WorkerDTO
	err := r.withPhones(ctx).
		Where("id = (SELECT worker_id FROM worker_phones WHERE digits = ?)", phone.Digits()).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("worker", phone.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormWorkerRepository) withPhones(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Phones", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}

func createPhones(tx *gorm.DB, phones []PhoneDTO) error {
	if len(phones) == 0 {
		return nil
	}
	if err := tx.Create(&phones).Error; err != nil {
		if pgerr.IsUniqueViolation(err, phoneDigitsConstraint) {
			return ports.ErrPhoneAlreadyRegistered
		}
		return err
	}
	return nil
}
