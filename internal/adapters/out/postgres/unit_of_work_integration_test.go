package postgres_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	postgres_adapter "atelier/internal/adapters/out/postgres"
	"atelier/internal/adapters/out/postgres/outboxrepo"
	"atelier/internal/adapters/out/postgres/pgtest"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/message"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/worker"
	"atelier/internal/core/ports"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite checks transaction boundaries and the outbox
// rows written on commit against a real PostgreSQL.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	factory  ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(database.DB)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder(id string) *order.Order {
	client, err := kernel.NewPhoneNumber("+91 90000 00001")
	suite.Require().NoError(err)
	o, err := order.NewOrder(id, client, order.JewelleryDetails{Name: "Gold ring"})
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) outbox() []outboxrepo.OutboxDTO {
	var rows []outboxrepo.OutboxDTO
	suite.Require().NoError(suite.database.DB.Order("occurred_at").Find(&rows).Error)
	return rows
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WritesOrderAndOutboxTogether() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	o := suite.newOrder("A-1")
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	loaded, err := suite.factory.Create().OrderRepository().Get(ctx, "A-1")
	suite.Require().NoError(err)
	suite.Equal(order.Pending, loaded.Status())

	rows := suite.outbox()
	suite.Require().Len(rows, 1)
	suite.Equal(ports.OrderCreatedEvent, rows[0].EventType)
	suite.Equal("A-1", rows[0].AggregateID)
	suite.Nil(rows[0].PublishedAt)

	var snapshot outboxrepo.OrderSnapshot
	suite.Require().NoError(json.Unmarshal([]byte(rows[0].Payload), &snapshot))
	suite.Equal("pending", snapshot.Status)
	suite.Equal("Gold ring", snapshot.JewelleryDetails.Name)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsOrderAndOutbox() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.newOrder("A-2")))

	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().OrderRepository().Get(ctx, "A-2")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Empty(suite.outbox())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_UpdateWritesChangedEvent() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	o := suite.newOrder("A-3")
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(o.Decline())
	suite.Require().NoError(uow.OrderRepository().Update(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	rows := suite.outbox()
	suite.Require().Len(rows, 2)
	suite.Equal(ports.OrderChangedEvent, rows[1].EventType)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_Fails() {
	err := suite.factory.Create().Commit(context.Background())

	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_AfterCommit_IsHarmless() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestWorkerAndMessageShareTheTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	phones, err := worker.ParsePhones([]worker.PhoneInput{{PhoneNumber: "+91 98765 43210"}})
	suite.Require().NoError(err)
	w, err := worker.NewWorker(kernel.NewUUID(), "Asha", phones)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.WorkerRepository().Add(ctx, w))

	msg, err := message.NewEnterpriseMessage("A-4", "hello", message.RecipientWorker)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.MessageRepository().Add(ctx, msg))

	suite.Require().NoError(uow.Rollback(ctx))

	_, err = suite.factory.Create().WorkerRepository().Get(ctx, w.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	var count int64
	suite.Require().NoError(suite.database.DB.Table("messages").Count(&count).Error)
	suite.Zero(count)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestDuplicatePhoneInsideTransaction_IsReported() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	newWorker := func(name string) *worker.Worker {
		phones, err := worker.ParsePhones([]worker.PhoneInput{{PhoneNumber: "+91 98765 43210"}})
		suite.Require().NoError(err)
		w, err := worker.NewWorker(kernel.NewUUID(), name, phones)
		suite.Require().NoError(err)
		return w
	}

	suite.Require().NoError(uow.WorkerRepository().Add(ctx, newWorker("Asha")))
	err := uow.WorkerRepository().Add(ctx, newWorker("Bala"))
	suite.True(errors.Is(err, ports.ErrPhoneAlreadyRegistered))

	suite.Require().NoError(uow.Commit(ctx))

	var count int64
	suite.Require().NoError(suite.database.DB.Table("workers").Count(&count).Error)
	suite.Equal(int64(1), count)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
