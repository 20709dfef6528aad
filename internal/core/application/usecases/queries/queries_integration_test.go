package queries_test

import (
	"context"
	"testing"
	"time"

	"atelier/internal/adapters/out/postgres/messagerepo"
	"atelier/internal/adapters/out/postgres/orderrepo"
	"atelier/internal/adapters/out/postgres/pgtest"
	"atelier/internal/adapters/out/postgres/workerrepo"
	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/message"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/worker"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type QueriesIntegrationTestSuite struct {
	suite.Suite
	database    *pgtest.Database
	orderRepo   *orderrepo.GormOrderRepository
	workerRepo  *workerrepo.GormWorkerRepository
	messageRepo *messagerepo.GormMessageRepository
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.orderRepo = orderrepo.NewGormOrderRepository(database.DB, &noopTracker{})
	suite.workerRepo = workerrepo.NewGormWorkerRepository(database.DB)
	suite.messageRepo = messagerepo.NewGormMessageRepository(database.DB)
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *QueriesIntegrationTestSuite) phone(raw string) kernel.PhoneNumber {
	p, err := kernel.NewPhoneNumber(raw)
	suite.Require().NoError(err)
	return p
}

func (suite *QueriesIntegrationTestSuite) addOrder(id string, createdAt time.Time, assigned *kernel.PhoneNumber) {
	status := order.Pending
	if assigned != nil {
		status = order.Accepted
	}
	o, err := order.RestoreOrder(
		id,
		status,
		suite.phone("+91 90000 00001"),
		assigned,
		order.JewelleryDetails{Name: "Ring " + id, Weight: "4g"},
		createdAt,
		createdAt,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
}

func (suite *QueriesIntegrationTestSuite) addWorker(name string, phones ...string) *worker.Worker {
	inputs := make([]worker.PhoneInput, 0, len(phones))
	for _, p := range phones {
		inputs = append(inputs, worker.PhoneInput{PhoneNumber: p})
	}
	parsed, err := worker.ParsePhones(inputs)
	suite.Require().NoError(err)
	w, err := worker.NewWorker(kernel.NewUUID(), name, parsed)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.workerRepo.Add(context.Background(), w))
	return w
}

func (suite *QueriesIntegrationTestSuite) TestGetOrders_NewestFirstWithWorkerName() {
	base := time.Now().UTC().Truncate(time.Millisecond)
	suite.addWorker("Ravi", "+91 98765 43210")
	assigned := suite.phone("919876543210")

	suite.addOrder("A-1", base.Add(-2*time.Hour), nil)
	suite.addOrder("A-2", base, &assigned)
	suite.addOrder("A-3", base.Add(-time.Hour), nil)

	query, err := queries.NewGetOrdersQuery("")
	suite.Require().NoError(err)

	result, err := queries.NewGetOrdersQueryHandler(suite.database.DB).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal([]string{"A-2", "A-3", "A-1"}, []string{result[0].OrderID, result[1].OrderID, result[2].OrderID})
	suite.Require().NotNil(result[0].AssignedWorkerName)
	suite.Equal("Ravi", *result[0].AssignedWorkerName)
	suite.Equal("accepted", result[0].Status)
	suite.Equal("Ring A-2", result[0].JewelleryDetails.Name)
	suite.Nil(result[1].AssignedWorkerPhone)
	suite.Nil(result[1].AssignedWorkerName)
}

func (suite *QueriesIntegrationTestSuite) TestGetOrders_FilterByStatus() {
	assigned := suite.phone("+91 98765 43210")
	suite.addOrder("A-1", time.Now().UTC(), nil)
	suite.addOrder("A-2", time.Now().UTC(), &assigned)

	query, err := queries.NewGetOrdersQuery("pending")
	suite.Require().NoError(err)

	result, err := queries.NewGetOrdersQueryHandler(suite.database.DB).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("A-1", result[0].OrderID)
}

func (suite *QueriesIntegrationTestSuite) TestGetOrders_Empty() {
	query, err := queries.NewGetOrdersQuery("")
	suite.Require().NoError(err)

	result, err := queries.NewGetOrdersQueryHandler(suite.database.DB).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *QueriesIntegrationTestSuite) TestGetOrder() {
	suite.addOrder("A-1", time.Now().UTC(), nil)
	handler := queries.NewGetOrderQueryHandler(suite.database.DB)

	query, err := queries.NewGetOrderQuery("A-1")
	suite.Require().NoError(err)
	view, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal("4g", view.JewelleryDetails.Weight)
	suite.Equal("+91 90000 00001", view.ClientPhone)

	query, err = queries.NewGetOrderQuery("missing")
	suite.Require().NoError(err)
	_, err = handler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestGetWorkers_GroupsPhonesPrimaryFirst() {
	bala := suite.addWorker("Bala", "+91 90000 11111")
	asha := suite.addWorker("Asha", "+91 90000 22222", "+91 90000 33333")
	suite.addWorker("Chitra", "+91 90000 44444")

	result, err := queries.NewGetWorkersQueryHandler(suite.database.DB).
		Handle(context.Background(), queries.NewGetWorkersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal("Asha", result[0].Name)
	suite.True(asha.ID().IsEqual(result[0].ID))
	suite.Require().Len(result[0].Phones, 2)
	suite.True(result[0].Phones[0].IsPrimary)
	suite.Equal("+91 90000 22222", result[0].Phones[0].PhoneNumber)
	suite.False(result[0].Phones[1].IsPrimary)
	suite.True(bala.ID().IsEqual(result[1].ID))
	suite.Equal("Chitra", result[2].Name)
}

func (suite *QueriesIntegrationTestSuite) TestGetWorker_ByIDOrAnyPhone() {
	w := suite.addWorker("Asha", "+91 90000 22222", "+91 90000 33333")
	handler := queries.NewGetWorkerQueryHandler(suite.database.DB)

	for _, identifier := range []string{w.ID().String(), "919000033333", "+91 (90000) 22222"} {
		query, err := queries.NewGetWorkerQuery(identifier)
		suite.Require().NoError(err)

		view, err := handler.Handle(context.Background(), query)

		suite.Require().NoError(err, identifier)
		suite.Equal("Asha", view.Name)
		suite.Len(view.Phones, 2)
	}
}

func (suite *QueriesIntegrationTestSuite) TestGetWorker_NotFound() {
	handler := queries.NewGetWorkerQueryHandler(suite.database.DB)

	for _, identifier := range []string{kernel.NewUUID().String(), "+91 90000 99999"} {
		query, err := queries.NewGetWorkerQuery(identifier)
		suite.Require().NoError(err)

		_, err = handler.Handle(context.Background(), query)

		suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	}
}

func (suite *QueriesIntegrationTestSuite) TestGetOrderMessages_OldestFirst() {
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Millisecond)
	second, err := message.RestoreMessage(kernel.NewUUID(), "A-1", message.SenderClient, "photo", nil,
		&message.Media{ID: "media-1", Type: "image"}, base.Add(time.Second))
	suite.Require().NoError(err)
	first, err := message.RestoreMessage(kernel.NewUUID(), "A-1", message.SenderEnterprise,
		"Order assigned to Ravi", []string{message.RecipientWorker}, nil, base)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.messageRepo.Add(ctx, first))

	suite.Require().NoError(suite.messageRepo.Add(ctx, second))

	other, err := message.NewEnterpriseMessage("A-2", "elsewhere")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.messageRepo.Add(ctx, other))

	query, err := queries.NewGetOrderMessagesQuery("A-1")
	suite.Require().NoError(err)

	result, err := queries.NewGetOrderMessagesQueryHandler(suite.database.DB).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.True(first.ID().IsEqual(result[0].ID))
	suite.Equal("enterprise", result[0].SenderType)
	suite.Equal([]string{"Worker"}, result[0].Recipients)
	suite.Nil(result[0].MediaID)
	suite.Equal("client", result[1].SenderType)
	suite.Empty(result[1].Recipients)
	suite.Require().NotNil(result[1].MediaID)
	suite.Equal("media-1", *result[1].MediaID)
	suite.Equal("image", *result[1].MediaType)
}

func (suite *QueriesIntegrationTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	suite.addOrder("A-1", time.Now().UTC(), nil)
	query, err := queries.NewGetOrdersQuery("")
	suite.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := queries.NewGetOrdersQueryHandler(suite.database.DB).Handle(ctx, query)

	suite.Require().Error(err)
	suite.Nil(result)
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesIntegrationTestSuite))
}

type noopTracker struct{}

func (noopTracker) TrackAggregate(string, *order.Order) {}
