// Package postgres implements the unit of work over gorm.
//
// A unit of work wraps one database transaction. Repositories obtained from it
// after Begin run inside that transaction. Every order the order repository
// writes is tracked, and Commit turns the tracked orders into outbox rows in
// the same transaction, so the live feed never misses a committed change and
// never sees an uncommitted one.
//
// Usage:
//
//	uow := NewGormUnitOfWorkFactory(db).Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each unit of work is single-use per transaction and must not be shared
// between goroutines.
package postgres

import (
	"context"
	"time"

	"atelier/internal/adapters/out/postgres/messagerepo"
	"atelier/internal/adapters/out/postgres/orderrepo"
	"atelier/internal/adapters/out/postgres/outboxrepo"
	"atelier/internal/adapters/out/postgres/workerrepo"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an order written during the unit of work.
type trackedAggregate struct {
	EventType string
	Aggregate *order.Order
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Create returns a fresh unit of work with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		now:               f.now,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one transaction and the outbox rows it produces.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	now               func() time.Time
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling it twice keeps the first transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit writes the outbox rows for tracked orders and commits. When the
// outbox write fails the transaction is rolled back.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	if err := uow.writeOutbox(ctx); err != nil {
		_ = uow.tx.Rollback().Error
		uow.reset()
		return err
	}

	err := uow.tx.Commit().Error
	uow.reset()
	return err
}

// Rollback discards the transaction and the tracked orders.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.reset()
	return err
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) WorkerRepository() ports.WorkerRepository {
	return workerrepo.NewGormWorkerRepository(uow.conn())
}

func (uow *GormUnitOfWork) MessageRepository() ports.MessageRepository {
	return messagerepo.NewGormMessageRepository(uow.conn())
}

// TrackAggregate records an order write for the outbox. Repositories call it.
func (uow *GormUnitOfWork) TrackAggregate(eventType string, aggregate *order.Order) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		EventType: eventType,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) writeOutbox(ctx context.Context) error {
	if len(uow.trackedAggregates) == 0 {
		return nil
	}

	occurredAt := uow.now()
	msgs := make([]ports.OutboxMessage, 0, len(uow.trackedAggregates))
	for _, tracked := range uow.trackedAggregates {
		msg, err := outboxrepo.NewOrderMessage(tracked.EventType, tracked.Aggregate, occurredAt)
		if err != nil {
			return err
		}
		msgs = append(msgs, msg)
	}

	return outboxrepo.NewGormOutboxRepository(uow.tx).Add(ctx, msgs...)
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) reset() {
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
}
