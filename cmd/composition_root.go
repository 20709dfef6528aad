package cmd

import (
	"log/slog"
	"net/http"

	httpadapter "atelier/internal/adapters/in/http"
	"atelier/internal/adapters/out/postgres"
	"atelier/internal/adapters/out/postgres/outboxrepo"
	"atelier/internal/adapters/out/postgres/workerrepo"
	"atelier/internal/adapters/out/whatsapp"
	"atelier/internal/core/application/services"
	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/ports"
	"atelier/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	sender     ports.NotificationSender
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewCompositionRoot wires the adapters shared by every handler. The WhatsApp
// client is built here so a missing credential fails at boot, not on the
// first notification.
func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) (CompositionRoot, error) {
	sender, err := whatsapp.NewClient(whatsapp.Config{
		APIRoot:     configs.WhatsAppAPIRoot,
		PhoneID:     configs.WhatsAppPhoneID,
		AccessToken: configs.WhatsAppAccessToken,
	}, &http.Client{})
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		sender:     sender,
		publisher:  publisher,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) workerUoWFactory() commands.WorkerUoWFactory {
	return FuncWorkerUoWFactory(func() commands.WorkerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) messageUoWFactory() commands.MessageUoWFactory {
	return FuncMessageUoWFactory(func() commands.MessageUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateWorkerResolver() services.WorkerResolver {
	return services.NewWorkerResolver(
		workerrepo.NewGormWorkerRepository(c.gormDB),
		c.configs.WorkerLookupTimeout,
		c.logger,
	)
}

func (c *CompositionRoot) CreateNotificationDispatcher() services.NotificationDispatcher {
	return services.NewNotificationDispatcher(c.sender, services.DispatcherConfig{
		SendTimeout:        c.configs.SendTimeout,
		MaxConcurrentSends: c.configs.MaxConcurrentSends,
	}, c.logger)
}

func (c *CompositionRoot) CreateOrderWorkflow() commands.OrderWorkflow {
	return commands.NewOrderWorkflow(
		c.orderUoWFactory(),
		c.CreateWorkerResolver(),
		c.CreateNotificationDispatcher(),
		c.messageUoWFactory(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreatePostMessageCommandHandler() commands.PostMessageCommandHandler {
	return commands.NewPostMessageCommandHandler(c.messageUoWFactory())
}

func (c *CompositionRoot) CreateRelayOutboxCommandHandler() commands.RelayOutboxCommandHandler {
	return commands.NewRelayOutboxCommandHandler(outboxrepo.NewGormOutboxRepository(c.gormDB), c.publisher)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateRelayOutboxCommandHandler(), c.configs.OutboxRelayBatchSize, c.logger)
}

// CreateHTTPHandlers builds every use case served over HTTP. The transition
// handlers share one workflow.
func (c *CompositionRoot) CreateHTTPHandlers() httpadapter.Handlers {
	workflow := c.CreateOrderWorkflow()
	workers := c.workerUoWFactory()

	return httpadapter.Handlers{
		CreateOrder:     c.CreateCreateOrderCommandHandler(),
		UpdateOrder:     commands.NewUpdateOrderCommandHandler(workflow),
		AcceptOrder:     commands.NewAcceptOrderCommandHandler(workflow),
		DeclineOrder:    commands.NewDeclineOrderCommandHandler(workflow),
		ReassignWorker:  commands.NewReassignWorkerCommandHandler(workflow),
		CompleteOrder:   commands.NewCompleteOrderCommandHandler(workflow),
		ReopenOrder:     commands.NewReopenOrderCommandHandler(workflow),
		SendOrderUpdate: commands.NewSendOrderUpdateCommandHandler(workflow),

		CreateWorker: commands.NewCreateWorkerCommandHandler(workers),
		UpdateWorker: commands.NewUpdateWorkerCommandHandler(workers),
		DeleteWorker: commands.NewDeleteWorkerCommandHandler(workers),

		PostMessage: c.CreatePostMessageCommandHandler(),

		GetOrders:        queries.NewGetOrdersQueryHandler(c.gormDB),
		GetOrder:         queries.NewGetOrderQueryHandler(c.gormDB),
		GetWorkers:       queries.NewGetWorkersQueryHandler(c.gormDB),
		GetWorker:        queries.NewGetWorkerQueryHandler(c.gormDB),
		GetOrderMessages: queries.NewGetOrderMessagesQueryHandler(c.gormDB),
	}
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncWorkerUoWFactory func() commands.WorkerUoW

func (f FuncWorkerUoWFactory) Create() commands.WorkerUoW {
	return f()
}

type FuncMessageUoWFactory func() commands.MessageUoW

func (f FuncMessageUoWFactory) Create() commands.MessageUoW {
	return f()
}
