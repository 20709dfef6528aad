package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/message"
	"atelier/internal/core/domain/model/notification"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/worker"
	"atelier/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockWorkerRepository struct{ mock.Mock }

func (m *MockWorkerRepository) Add(ctx context.Context, w *worker.Worker) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockWorkerRepository) Update(ctx context.Context, w *worker.Worker) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockWorkerRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockWorkerRepository) Get(ctx context.Context, id kernel.UUID) (*worker.Worker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*worker.Worker), args.Error(1)
}

func (m *MockWorkerRepository) GetByPhone(ctx context.Context, phone kernel.PhoneNumber) (*worker.Worker, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*worker.Worker), args.Error(1)
}

type MockWorkerUoW struct{ mock.Mock }

func (m *MockWorkerUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWorkerUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWorkerUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWorkerUoW) WorkerRepository() ports.WorkerRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkerRepository)
}

type MockWorkerUoWFactory struct{ mock.Mock }

func (m *MockWorkerUoWFactory) Create() commands.WorkerUoW {
	args := m.Called()
	return args.Get(0).(commands.WorkerUoW)
}

type MockMessageRepository struct{ mock.Mock }

func (m *MockMessageRepository) Add(ctx context.Context, msg *message.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

type MockMessageUoW struct{ mock.Mock }

func (m *MockMessageUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMessageUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMessageUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMessageUoW) MessageRepository() ports.MessageRepository {
	args := m.Called()
	return args.Get(0).(ports.MessageRepository)
}

type MockMessageUoWFactory struct{ mock.Mock }

func (m *MockMessageUoWFactory) Create() commands.MessageUoW {
	args := m.Called()
	return args.Get(0).(commands.MessageUoW)
}

type MockWorkerResolver struct{ mock.Mock }

func (m *MockWorkerResolver) Resolve(ctx context.Context, identifier string) (*worker.Worker, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*worker.Worker), args.Error(1)
}

type MockNotificationDispatcher struct{ mock.Mock }

func (m *MockNotificationDispatcher) Dispatch(ctx context.Context, e notification.Event) (notification.DeliveryReport, error) {
	args := m.Called(ctx, e)
	return args.Get(0).(notification.DeliveryReport), args.Error(1)
}

func (m *MockNotificationDispatcher) DispatchAll(
	ctx context.Context,
	events []notification.Event,
) ([]notification.DeliveryReport, error) {
	args := m.Called(ctx, events)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	if fn, ok := args.Get(0).(func(context.Context, []notification.Event) []notification.DeliveryReport); ok {
		return fn(ctx, events), args.Error(1)
	}
	return args.Get(0).([]notification.DeliveryReport), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func phoneNumber(t *testing.T, raw string) kernel.PhoneNumber {
	t.Helper()
	p, err := kernel.NewPhoneNumber(raw)
	require.NoError(t, err)
	return p
}

func newWorker(t *testing.T, name string, numbers ...string) *worker.Worker {
	t.Helper()
	inputs := make([]worker.PhoneInput, 0, len(numbers))
	for _, n := range numbers {
		inputs = append(inputs, worker.PhoneInput{PhoneNumber: n})
	}
	phones, err := worker.ParsePhones(inputs)
	require.NoError(t, err)
	w, err := worker.NewWorker(kernel.NewUUID(), name, phones)
	require.NoError(t, err)
	return w
}

func newOrder(t *testing.T, id string, status order.Status, assigned string) *order.Order {
	t.Helper()
	var stored *kernel.PhoneNumber
	if assigned != "" {
		p := phoneNumber(t, assigned)
		stored = &p
	}
	now := time.Now().UTC()
	o, err := order.RestoreOrder(
		id,
		status,
		phoneNumber(t, clientPhone),
		stored,
		order.JewelleryDetails{Name: "Gold ring", Weight: "4.2g", Melting: "22k", Timeline: "3 days"},
		now,
		now,
	)
	require.NoError(t, err)
	return o
}

const clientPhone = "+91 90000 00001"

// delivered reports every target of every event as reached.
func delivered(events []notification.Event) []notification.DeliveryReport {
	reports := make([]notification.DeliveryReport, 0, len(events))
	for _, e := range events {
		report := notification.DeliveryReport{Kind: e.Kind(), OrderID: e.OrderID()}
		for _, p := range e.Targets() {
			report.Attempts = append(report.Attempts, notification.DeliveryAttempt{Phone: p, MessageID: "wamid." + p.Digits()})
		}
		reports = append(reports, report)
	}
	return reports
}

// eventSummary renders events as "kind:digits,digits" for compact assertions.
func eventSummary(events []notification.Event) []string {
	summary := make([]string, 0, len(events))
	for _, e := range events {
		s := e.Kind().String() + ":"
		for i, p := range e.Targets() {
			if i > 0 {
				s += ","
			}
			s += p.Digits()
		}
		summary = append(summary, s)
	}
	return summary
}

// workflowFixture wires an OrderWorkflow to mocks. The chat log side accepts
// any number of writes.
type workflowFixture struct {
	orderRepo  *MockOrderRepository
	uow        *MockOrderUoW
	factory    *MockOrderUoWFactory
	resolver   *MockWorkerResolver
	dispatcher *MockNotificationDispatcher
	messages   *MockMessageRepository
	messageUoW *MockMessageUoW
	workflow   commands.OrderWorkflow
}

func newWorkflowFixture() *workflowFixture {
	f := &workflowFixture{
		orderRepo:  new(MockOrderRepository),
		uow:        new(MockOrderUoW),
		factory:    new(MockOrderUoWFactory),
		resolver:   new(MockWorkerResolver),
		dispatcher: new(MockNotificationDispatcher),
		messages:   new(MockMessageRepository),
		messageUoW: new(MockMessageUoW),
	}

	messageFactory := new(MockMessageUoWFactory)
	messageFactory.On("Create").Return(f.messageUoW).Maybe()
	f.messageUoW.On("Begin", mock.Anything).Return(nil).Maybe()
	f.messageUoW.On("MessageRepository").Return(f.messages).Maybe()
	f.messageUoW.On("Commit", mock.Anything).Return(nil).Maybe()
	f.messageUoW.On("Rollback", mock.Anything).Return(nil).Maybe()

	f.workflow = commands.NewOrderWorkflow(f.factory, f.resolver, f.dispatcher, messageFactory, discardLogger())
	return f
}

// expectLoad sets up Create, Begin, OrderRepository and Get for o.
func (f *workflowFixture) expectLoad(ctx context.Context, o *order.Order) {
	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("OrderRepository").Return(f.orderRepo).Once()
	f.orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()
}

// expectSave sets up Update and Commit.
func (f *workflowFixture) expectSave(ctx context.Context) {
	f.orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
}

// expectDispatch answers DispatchAll with full delivery and stores the events.
func (f *workflowFixture) expectDispatch(ctx context.Context, captured *[]notification.Event) {
	f.dispatcher.On("DispatchAll", ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			*captured = args.Get(1).([]notification.Event)
		}).
		Return(func(_ context.Context, events []notification.Event) []notification.DeliveryReport {
			return delivered(events)
		}, nil).
		Once()
}

func (f *workflowFixture) assertExpectations(t *testing.T) {
	t.Helper()
	f.orderRepo.AssertExpectations(t)
	f.uow.AssertExpectations(t)
	f.factory.AssertExpectations(t)
	f.resolver.AssertExpectations(t)
	f.dispatcher.AssertExpectations(t)
}
