// Package messagerepo stores chat log entries.
package messagerepo

import (
	"context"
	"encoding/json"
	"time"

	"atelier/internal/core/domain/model/message"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MessageDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    string    `gorm:"not null;index"`
	Content    string    `gorm:"not null"`
	SenderType string    `gorm:"not null"`
	Recipients string    `gorm:"type:jsonb;not null"`
	MediaID    *string
	MediaType  *string
	CreatedAt  time.Time `gorm:"autoCreateTime:false"`
}

func (MessageDTO) TableName() string {
	return "messages"
}

func fromDomain(m *message.Message) (MessageDTO, error) {
	recipients := m.Recipients()
	if recipients == nil {
		recipients = []string{}
	}
	encoded, err := json.Marshal(recipients)
	if err != nil {
		return MessageDTO{}, err
	}

	dto := MessageDTO{
		ID:         m.ID().Bytes(),
		OrderID:    m.OrderID(),
		Content:    m.Content(),
		SenderType: string(m.SenderType()),
		Recipients: string(encoded),
		CreatedAt:  m.CreatedAt(),
	}
	if media := m.Media(); media != nil {
		dto.MediaID = &media.ID
		dto.MediaType = &media.Type
	}

	return dto, nil
}

// GormMessageRepository implements ports.MessageRepository. Messages are
// read through the order messages query, so only Add is needed here.
type GormMessageRepository struct {
	db *gorm.DB
}

func NewGormMessageRepository(db *gorm.DB) *GormMessageRepository {
	return &GormMessageRepository{db: db}
}

func (r *GormMessageRepository) Add(ctx context.Context, aggregate *message.Message) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}
