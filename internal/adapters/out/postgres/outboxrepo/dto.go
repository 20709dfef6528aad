// Package outboxrepo stores order changes waiting to be published to the live
// feed, and reads them back for the relay job.
package outboxrepo

import (
	"encoding/json"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/ports"

	"github.com/google/uuid"
)

type OutboxDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EventType   string     `gorm:"not null"`
	AggregateID string     `gorm:"not null"`
	Payload     string     `gorm:"type:jsonb;not null"`
	OccurredAt  time.Time  `gorm:"not null"`
	PublishedAt *time.Time `gorm:"index"`
}

func (OutboxDTO) TableName() string {
	return "outbox"
}

// OrderSnapshot is the JSON payload of an order event.
type OrderSnapshot struct {
	OrderID             string                   `json:"order_id"`
	Status              string                   `json:"status"`
	ClientPhone         string                   `json:"client_phone"`
	AssignedWorkerPhone *string                  `json:"assigned_worker_phone,omitempty"`
	JewelleryDetails    JewelleryDetailsSnapshot `json:"jewellery_details"`
	CreatedAt           time.Time                `json:"created_at"`
	UpdatedAt           time.Time                `json:"updated_at"`
}

type JewelleryDetailsSnapshot struct {
	Name                string `json:"name"`
	Weight              string `json:"weight"`
	Melting             string `json:"melting"`
	Timeline            string `json:"timeline"`
	SpecialInstructions string `json:"special_instructions"`
}

// NewOrderMessage captures the current state of o as an outbox message.
func NewOrderMessage(eventType string, o *order.Order, occurredAt time.Time) (ports.OutboxMessage, error) {
	if err := o.Validate(); err != nil {
		return ports.OutboxMessage{}, err
	}

	var assigned *string
	if phone := o.AssignedWorkerPhone(); phone != nil {
		raw := phone.String()
		assigned = &raw
	}

	d := o.Details()
	payload, err := json.Marshal(OrderSnapshot{
		OrderID:             o.ID(),
		Status:              o.Status().String(),
		ClientPhone:         o.ClientPhone().String(),
		AssignedWorkerPhone: assigned,
		JewelleryDetails: JewelleryDetailsSnapshot{
			Name:                d.Name,
			Weight:              d.Weight,
			Melting:             d.Melting,
			Timeline:            d.Timeline,
			SpecialInstructions: d.SpecialInstructions,
		},
		CreatedAt: o.CreatedAt(),
		UpdatedAt: o.UpdatedAt(),
	})
	if err != nil {
		return ports.OutboxMessage{}, err
	}

	return ports.OutboxMessage{
		ID:          kernel.NewUUID(),
		EventType:   eventType,
		AggregateID: o.ID(),
		Payload:     payload,
		OccurredAt:  occurredAt,
	}, nil
}

func fromPort(msg ports.OutboxMessage) OutboxDTO {
	return OutboxDTO{
		ID:          msg.ID.Bytes(),
		EventType:   msg.EventType,
		AggregateID: msg.AggregateID,
		Payload:     string(msg.Payload),
		OccurredAt:  msg.OccurredAt,
	}
}

func toPort(dto OutboxDTO) (ports.OutboxMessage, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}

	return ports.OutboxMessage{
		ID:          id,
		EventType:   dto.EventType,
		AggregateID: dto.AggregateID,
		Payload:     []byte(dto.Payload),
		OccurredAt:  dto.OccurredAt,
	}, nil
}
