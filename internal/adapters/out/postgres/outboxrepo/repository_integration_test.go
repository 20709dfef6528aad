package outboxrepo_test

import (
	"context"
	"testing"
	"time"

	"atelier/internal/adapters/out/postgres/outboxrepo"
	"atelier/internal/adapters/out/postgres/pgtest"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/ports"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type OutboxRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *outboxrepo.GormOutboxRepository
}

func (suite *OutboxRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.repository = outboxrepo.NewGormOutboxRepository(database.DB)
}

func (suite *OutboxRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
}

func (suite *OutboxRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *OutboxRepositoryIntegrationTestSuite) message(id string, at time.Time) ports.OutboxMessage {
	client, err := kernel.NewPhoneNumber("+91 90000 00001")
	suite.Require().NoError(err)
	o, err := order.NewOrder(id, client, order.JewelleryDetails{})
	suite.Require().NoError(err)
	msg, err := outboxrepo.NewOrderMessage(ports.OrderCreatedEvent, o, at)
	suite.Require().NoError(err)
	return msg
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestGetUnpublished_OldestFirstAndLimited() {
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Second)
	first := suite.message("A-1", base)
	suite.Require().NoError(suite.repository.Add(ctx,
		suite.message("A-3", base.Add(2*time.Second)),
		first,
		suite.message("A-2", base.Add(time.Second)),
	))

	msgs, err := suite.repository.GetUnpublished(ctx, 2)

	suite.Require().NoError(err)
	suite.Require().Len(msgs, 2)
	suite.Equal("A-1", msgs[0].AggregateID)
	suite.Equal("A-2", msgs[1].AggregateID)
	suite.True(first.ID.IsEqual(msgs[0].ID))
	suite.JSONEq(string(first.Payload), string(msgs[0].Payload))
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestMarkPublished_HidesMessage() {
	ctx := context.Background()
	msg := suite.message("A-1", time.Now().UTC())
	suite.Require().NoError(suite.repository.Add(ctx, msg))

	suite.Require().NoError(suite.repository.MarkPublished(ctx, msg.ID, time.Now().UTC()))

	msgs, err := suite.repository.GetUnpublished(ctx, 10)
	suite.Require().NoError(err)
	suite.Empty(msgs)
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestMarkPublished_Unknown() {
	err := suite.repository.MarkPublished(context.Background(), kernel.NewUUID(), time.Now())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestGetUnpublished_InvalidLimit() {
	_, err := suite.repository.GetUnpublished(context.Background(), 0)

	suite.Require().ErrorIs(err, errs.ErrValueIsOutOfRange)
}

func TestOutboxRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OutboxRepositoryIntegrationTestSuite))
}
