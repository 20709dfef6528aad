package outboxrepo

import (
	"context"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/ports"
	"atelier/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOutboxRepository implements ports.OutboxRepository and the write side
// used by the unit of work.
type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Add stores messages in one statement.
func (r *GormOutboxRepository) Add(ctx context.Context, msgs ...ports.OutboxMessage) error {
	if len(msgs) == 0 {
		return nil
	}

	dtos := make([]OutboxDTO, 0, len(msgs))
	for _, msg := range msgs {
		dtos = append(dtos, fromPort(msg))
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

func (r *GormOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	if limit <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("limit", limit, 1, "unbounded")
	}

	var dtos []OutboxDTO
	err := r.db.WithContext(ctx).
		Where("published_at IS NULL").
		Order("occurred_at").
		Order("id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	msgs := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		msg, err := toPort(dto)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, msg)
	}

	return msgs, nil
}

func (r *GormOutboxRepository) MarkPublished(ctx context.Context, id kernel.UUID, at time.Time) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OutboxDTO{}).
		Where("id = ?", id.Bytes()).
		Update("published_at", at)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("outbox message", id.String())
	}

	return nil
}
