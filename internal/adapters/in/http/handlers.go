package http

import (
	"context"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/domain/model/message"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/worker"
)

// Handler is satisfied by every command and query handler that returns a value.
type Handler[C any, R any] interface {
	Handle(ctx context.Context, cmd C) (R, error)
}

// CommandHandler is satisfied by command handlers that return only an error.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateOrder     Handler[commands.CreateOrderCommand, *order.Order]
	UpdateOrder     Handler[commands.UpdateOrderCommand, commands.TransitionResult]
	AcceptOrder     Handler[commands.AcceptOrderCommand, commands.TransitionResult]
	DeclineOrder    Handler[commands.DeclineOrderCommand, commands.TransitionResult]
	ReassignWorker  Handler[commands.ReassignWorkerCommand, commands.TransitionResult]
	CompleteOrder   Handler[commands.CompleteOrderCommand, commands.TransitionResult]
	ReopenOrder     Handler[commands.ReopenOrderCommand, commands.TransitionResult]
	SendOrderUpdate Handler[commands.SendOrderUpdateCommand, commands.TransitionResult]

	CreateWorker Handler[commands.CreateWorkerCommand, *worker.Worker]
	UpdateWorker Handler[commands.UpdateWorkerCommand, *worker.Worker]
	DeleteWorker CommandHandler[commands.DeleteWorkerCommand]

	PostMessage Handler[commands.PostMessageCommand, *message.Message]

	GetOrders        Handler[queries.GetOrdersQuery, []queries.OrderView]
	GetOrder         Handler[queries.GetOrderQuery, queries.OrderView]
	GetWorkers       Handler[queries.GetWorkersQuery, []queries.WorkerView]
	GetWorker        Handler[queries.GetWorkerQuery, queries.WorkerView]
	GetOrderMessages Handler[queries.GetOrderMessagesQuery, []queries.MessageView]
}
