package workerrepo_test

import (
	"context"
	"testing"

	"atelier/internal/adapters/out/postgres/pgtest"
	"atelier/internal/adapters/out/postgres/workerrepo"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/worker"
	"atelier/internal/core/ports"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type WorkerRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *workerrepo.GormWorkerRepository
}

func (suite *WorkerRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *WorkerRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
	suite.repository = workerrepo.NewGormWorkerRepository(suite.database.DB)
}

func (suite *WorkerRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *WorkerRepositoryIntegrationTestSuite) newWorker(name string, phones ...worker.PhoneInput) *worker.Worker {
	parsed, err := worker.ParsePhones(phones)
	suite.Require().NoError(err)
	w, err := worker.NewWorker(kernel.NewUUID(), name, parsed)
	suite.Require().NoError(err)
	return w
}

func (suite *WorkerRepositoryIntegrationTestSuite) TestAdd_ThenGet_KeepsPhoneOrderAndPrimary() {
	ctx := context.Background()
	w := suite.newWorker("Asha",
		worker.PhoneInput{PhoneNumber: "+91 98765 43210"},
		worker.PhoneInput{PhoneNumber: "+91 98765 43211", IsPrimary: true},
		worker.PhoneInput{PhoneNumber: "+91 98765 43212"},
	)

	suite.Require().NoError(suite.repository.Add(ctx, w))

	loaded, err := suite.repository.Get(ctx, w.ID())
	suite.Require().NoError(err)
	suite.True(w.IsEqual(loaded))
	suite.Equal("Asha", loaded.Name())
	suite.Require().Len(loaded.Phones(), 3)
	suite.Equal("+91 98765 43210", loaded.Phones()[0].Number().String())
	suite.Equal("919876543211", loaded.PrimaryPhone().Digits())
}

func (suite *WorkerRepositoryIntegrationTestSuite) TestAdd_PhoneOfAnotherWorker_ReturnsAlreadyRegistered() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx,
		suite.newWorker("Asha", worker.PhoneInput{PhoneNumber: "+91 98765 43210"})))

	err := suite.repository.Add(ctx,
		suite.newWorker("Bala", worker.PhoneInput{PhoneNumber: "919876543210"}))

	suite.Require().ErrorIs(err, ports.ErrPhoneAlreadyRegistered)

	var count int64
	suite.Require().NoError(suite.database.DB.Table("workers").Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *WorkerRepositoryIntegrationTestSuite) TestGetByPhone_MatchesByDigits() {
	ctx := context.Background()
	w := suite.newWorker("Asha",
		worker.PhoneInput{PhoneNumber: "+91 98765 43210"},
		worker.PhoneInput{PhoneNumber: "+91 98765 43211"},
	)
	suite.Require().NoError(suite.repository.Add(ctx, w))

	phone, err := kernel.NewPhoneNumber("(91) 98765-43211")
	suite.Require().NoError(err)

	loaded, err := suite.repository.GetByPhone(ctx, phone)
	suite.Require().NoError(err)
	suite.True(w.IsEqual(loaded))
	suite.Len(loaded.Phones(), 2)
}

func (suite *WorkerRepositoryIntegrationTestSuite) TestGetByPhone_Unknown_ReturnsNotFound() {
	phone, err := kernel.NewPhoneNumber("+1 555 000 0000")
	suite.Require().NoError(err)

	_, err = suite.repository.GetByPhone(context.Background(), phone)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *WorkerRepositoryIntegrationTestSuite) TestUpdate_ReplacesPhones() {
	ctx := context.Background()
	w := suite.newWorker("Asha", worker.PhoneInput{PhoneNumber: "+91 98765 43210"})
	suite.Require().NoError(suite.repository.Add(ctx, w))

	phones, err := worker.ParsePhones([]worker.PhoneInput{
		{PhoneNumber: "+91 91234 56789", IsPrimary: true},
		{PhoneNumber: "+91 98765 43210"},
	})
	suite.Require().NoError(err)
	suite.Require().NoError(w.ReplacePhones(phones))
	suite.Require().NoError(w.Rename("Asha K"))

	suite.Require().NoError(suite.repository.Update(ctx, w))

	loaded, err := suite.repository.Get(ctx, w.ID())
	suite.Require().NoError(err)
	suite.Equal("Asha K", loaded.Name())
	suite.Equal("919123456789", loaded.PrimaryPhone().Digits())
	suite.Len(loaded.Phones(), 2)
}

func (suite *WorkerRepositoryIntegrationTestSuite) TestUpdate_UnknownWorker_ReturnsNotFound() {
	w := suite.newWorker("Ghost", worker.PhoneInput{PhoneNumber: "+91 98765 43210"})

	err := suite.repository.Update(context.Background(), w)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *WorkerRepositoryIntegrationTestSuite) TestDelete_RemovesPhones() {
	ctx := context.Background()
	w := suite.newWorker("Asha", worker.PhoneInput{PhoneNumber: "+91 98765 43210"})
	suite.Require().NoError(suite.repository.Add(ctx, w))

	suite.Require().NoError(suite.repository.Delete(ctx, w.ID()))

	_, err := suite.repository.Get(ctx, w.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	var count int64
	suite.Require().NoError(suite.database.DB.Table("worker_phones").Count(&count).Error)
	suite.Zero(count)

	suite.Require().ErrorIs(suite.repository.Delete(ctx, w.ID()), errs.ErrObjectNotFound)
}

func TestWorkerRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(WorkerRepositoryIntegrationTestSuite))
}
