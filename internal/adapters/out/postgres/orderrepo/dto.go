// Package orderrepo persists the order aggregate with gorm and maps it to and
// from its row.
package orderrepo

import (
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
)

// OrderDTO is the row of the orders table.
type OrderDTO struct {
	ID                  string     `gorm:"column:order_id;primaryKey"`
	Status              string     `gorm:"not null;index"`
	ClientPhone         string     `gorm:"not null"`
	AssignedWorkerPhone *string    `gorm:"column:assigned_worker_phone"`
	Details             DetailsDTO `gorm:"embedded"`
	CreatedAt           time.Time  `gorm:"autoCreateTime:false"`
	UpdatedAt           time.Time  `gorm:"autoUpdateTime:false"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// DetailsDTO holds the jewellery details columns.
type DetailsDTO struct {
	Name                string `gorm:"column:jewellery_name"`
	Weight              string
	Melting             string
	Timeline            string
	SpecialInstructions string
}

func fromDomain(o *order.Order) OrderDTO {
	var assigned *string
	if phone := o.AssignedWorkerPhone(); phone != nil {
		raw := phone.String()
		assigned = &raw
	}

	d := o.Details()
	return OrderDTO{
		ID:                  o.ID(),
		Status:              o.Status().String(),
		ClientPhone:         o.ClientPhone().String(),
		AssignedWorkerPhone: assigned,
		Details: DetailsDTO{
			Name:                d.Name,
			Weight:              d.Weight,
			Melting:             d.Melting,
			Timeline:            d.Timeline,
			SpecialInstructions: d.SpecialInstructions,
		},
		CreatedAt: o.CreatedAt(),
		UpdatedAt: o.UpdatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	clientPhone, err := kernel.NewPhoneNumber(dto.ClientPhone)
	if err != nil {
		return nil, err
	}

	var assigned *kernel.PhoneNumber
	if dto.AssignedWorkerPhone != nil && *dto.AssignedWorkerPhone != "" {
		phone, phoneErr := kernel.NewPhoneNumber(*dto.AssignedWorkerPhone)
		if phoneErr != nil {
			return nil, phoneErr
		}
		assigned = &phone
	}

	return order.RestoreOrder(
		dto.ID,
		status,
		clientPhone,
		assigned,
		order.JewelleryDetails{
			Name:                dto.Details.Name,
			Weight:              dto.Details.Weight,
			Melting:             dto.Details.Melting,
			Timeline:            dto.Details.Timeline,
			SpecialInstructions: dto.Details.SpecialInstructions,
		},
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
