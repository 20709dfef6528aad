// Package workerrepo persists workers and their phone numbers with gorm.
package workerrepo

import (
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/worker"

	"github.com/google/uuid"
)

// phoneDigitsConstraint makes a phone number belong to at most one worker.
const phoneDigitsConstraint = "uq_worker_phones_digits"

type WorkerDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name      string     `gorm:"not null"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	Phones    []PhoneDTO `gorm:"foreignKey:WorkerID;constraint:OnDelete:CASCADE"`
}

func (WorkerDTO) TableName() string {
	return "workers"
}

// PhoneDTO is one row of worker_phones. Position keeps the order staff
// entered the phones in.
type PhoneDTO struct {
	WorkerID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position    int       `gorm:"primaryKey;autoIncrement:false"`
	PhoneNumber string    `gorm:"not null"`
	Digits      string    `gorm:"not null;uniqueIndex:uq_worker_phones_digits"`
	IsPrimary   bool      `gorm:"not null"`
}

func (PhoneDTO) TableName() string {
	return "worker_phones"
}

func fromDomain(w *worker.Worker) WorkerDTO {
	workerID := w.ID().Bytes()
	return WorkerDTO{
		ID:     workerID,
		Name:   w.Name(),
		Phones: phonesFromDomain(workerID, w.Phones()),
	}
}

func phonesFromDomain(workerID uuid.UUID, phones []worker.Phone) []PhoneDTO {
	dtos := make([]PhoneDTO, 0, len(phones))
	for i, p := range phones {
		dtos = append(dtos, PhoneDTO{
			WorkerID:    workerID,
			Position:    i,
			PhoneNumber: p.Number().String(),
			Digits:      p.Number().Digits(),
			IsPrimary:   p.IsPrimary(),
		})
	}
	return dtos
}

func toDomain(dto WorkerDTO) (*worker.Worker, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	phones := make([]worker.Phone, 0, len(dto.Phones))
	for _, p := range dto.Phones {
		number, numberErr := kernel.NewPhoneNumber(p.PhoneNumber)
		if numberErr != nil {
			return nil, numberErr
		}
		phone, phoneErr := worker.NewPhone(number, p.IsPrimary)
		if phoneErr != nil {
			return nil, phoneErr
		}
		phones = append(phones, phone)
	}

	return worker.RestoreWorker(id, dto.Name, phones)
}
