package http

import (
	"log/slog"
	"net/http"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http"),
	}
}

// GetOrders handles GET /api/orders - lists orders, newest first.
func (s *Server) GetOrders(ctx echo.Context, params servers.GetOrdersParams) error {
	var status string
	if params.Status != nil {
		status = string(*params.Status)
	}

	query, err := queries.NewGetOrdersQuery(status)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve orders")
	}

	views, err := s.handlers.GetOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve orders")
	}

	response := servers.OrderList{Orders: make([]servers.Order, len(views))}
	for i, view := range views {
		response.Orders[i] = toOrderViewResponse(view)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/orders - registers a pending order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.NewOrder
	if err := s.bind(ctx, &body); err != nil {
		return s.fail(ctx, err, "Invalid request body")
	}

	cmd, err := commands.NewCreateOrderCommand(body.OrderId, body.ClientPhone, fromDetailsRequest(body.JewelleryDetails))
	if err != nil {
		return s.fail(ctx, err, "Failed to create order")
	}

	created, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, servers.OrderEnvelope{Order: toOrderResponse(created)})
}

// GetOrder handles GET /api/orders/{order_id}.
func (s *Server) GetOrder(ctx echo.Context, orderID servers.OrderID) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve order")
	}

	view, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve order")
	}

	return ctx.JSON(http.StatusOK, servers.OrderEnvelope{Order: toOrderViewResponse(view)})
}

// UpdateOrder handles PUT /api/orders/{order_id} - the dashboard's full update.
func (s *Server) UpdateOrder(ctx echo.Context, orderID servers.OrderID) error {
	var body servers.OrderUpdate
	if err := s.bind(ctx, &body); err != nil {
		return s.fail(ctx, err, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, normalizeOrderUpdate(body))
	if err != nil {
		return s.fail(ctx, err, "Failed to update order")
	}

	result, err := s.handlers.UpdateOrder.Handle(ctx.Request().Context(), cmd)
	return s.transition(ctx, result, err, "Failed to update order")
}

// AcceptOrder handles POST /api/orders/{order_id}/accept.
func (s *Server) AcceptOrder(ctx echo.Context, orderID servers.OrderID) error {
	var body servers.WorkerSelection
	if err := s.bind(ctx, &body); err != nil {
		return s.fail(ctx, err, "Invalid request body")
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, body.WorkerPhone)
	if err != nil {
		return s.fail(ctx, err, "Failed to accept order")
	}

	result, err := s.handlers.AcceptOrder.Handle(ctx.Request().Context(), cmd)
	return s.transition(ctx, result, err, "Failed to accept order")
}

// DeclineOrder handles POST /api/orders/{order_id}/decline.
func (s *Server) DeclineOrder(ctx echo.Context, orderID servers.OrderID) error {
	cmd, err := commands.NewDeclineOrderCommand(orderID)
	if err != nil {
		return s.fail(ctx, err, "Failed to decline order")
	}

	result, err := s.handlers.DeclineOrder.Handle(ctx.Request().Context(), cmd)
	return s.transition(ctx, result, err, "Failed to decline order")
}

// ReassignWorker handles PUT /api/orders/{order_id}/reassign. An empty
// worker_phone unassigns the order.
func (s *Server) ReassignWorker(ctx echo.Context, orderID servers.OrderID) error {
	var body servers.WorkerSelection
	if err := s.bind(ctx, &body); err != nil {
		return s.fail(ctx, err, "Invalid request body")
	}

	cmd, err := commands.NewReassignWorkerCommand(orderID, body.WorkerPhone)
	if err != nil {
		return s.fail(ctx, err, "Failed to reassign worker")
	}

	result, err := s.handlers.ReassignWorker.Handle(ctx.Request().Context(), cmd)
	return s.transition(ctx, result, err, "Failed to reassign worker")
}

// CompleteOrder handles POST /api/orders/{order_id}/complete.
func (s *Server) CompleteOrder(ctx echo.Context, orderID servers.OrderID) error {
	cmd, err := commands.NewCompleteOrderCommand(orderID)
	if err != nil {
		return s.fail(ctx, err, "Failed to complete order")
	}

	result, err := s.handlers.CompleteOrder.Handle(ctx.Request().Context(), cmd)
	return s.transition(ctx, result, err, "Failed to complete order")
}

// ReopenOrder handles POST /api/orders/{order_id}/reopen.
func (s *Server) ReopenOrder(ctx echo.Context, orderID servers.OrderID) error {
	cmd, err := commands.NewReopenOrderCommand(orderID)
	if err != nil {
		return s.fail(ctx, err, "Failed to reopen order")
	}

	result, err := s.handlers.ReopenOrder.Handle(ctx.Request().Context(), cmd)
	return s.transition(ctx, result, err, "Failed to reopen order")
}

// SendOrderUpdate handles POST /api/orders/{order_id}/updates.
func (s *Server) SendOrderUpdate(ctx echo.Context, orderID servers.OrderID) error {
	var body servers.OrderUpdateMessage
	if err := s.bind(ctx, &body); err != nil {
		return s.fail(ctx, err, "Invalid request body")
	}

	cmd, err := commands.NewSendOrderUpdateCommand(orderID, string(body.Recipient), body.Text)
	if err != nil {
		return s.fail(ctx, err, "Failed to send order update")
	}

	result, err := s.handlers.SendOrderUpdate.Handle(ctx.Request().Context(), cmd)
	return s.transition(ctx, result, err, "Failed to send order update")
}

// GetWorkers handles GET /api/workers.
func (s *Server) GetWorkers(ctx echo.Context) error {
	views, err := s.handlers.GetWorkers.Handle(ctx.Request().Context(), queries.NewGetWorkersQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve workers")
	}

	response := servers.WorkerList{Workers: make([]servers.Worker, len(views))}
	for i, view := range views {
		response.Workers[i] = toWorkerViewResponse(view)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateWorker handles POST /api/workers.
func (s *Server) CreateWorker(ctx echo.Context) error {
	var body servers.WorkerInput
	if err := s.bind(ctx, &body); err != nil {
		return s.fail(ctx, err, "Invalid request body")
	}

	name, phones := fromWorkerRequest(body)
	cmd, err := commands.NewCreateWorkerCommand(kernel.NewUUID(), name, phones)
	if err != nil {
		return s.fail(ctx, err, "Failed to create worker")
	}

	created, err := s.handlers.CreateWorker.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to create worker")
	}

	return ctx.JSON(http.StatusCreated, servers.WorkerEnvelope{Worker: toWorkerResponse(created)})
}

// GetWorker handles GET /api/workers/{phoneOrId}.
func (s *Server) GetWorker(ctx echo.Context, phoneOrID string) error {
	view, err := s.findWorker(ctx, phoneOrID)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve worker")
	}

	return ctx.JSON(http.StatusOK, servers.WorkerEnvelope{Worker: toWorkerViewResponse(view)})
}

// UpdateWorker handles PUT /api/workers/{phoneOrId}.
func (s *Server) UpdateWorker(ctx echo.Context, phoneOrID string) error {
	var body servers.WorkerInput
	if err := s.bind(ctx, &body); err != nil {
		return s.fail(ctx, err, "Invalid request body")
	}

	workerID, err := s.workerID(ctx, phoneOrID)
	if err != nil {
		return s.fail(ctx, err, "Failed to update worker")
	}

	name, phones := fromWorkerRequest(body)
	cmd, err := commands.NewUpdateWorkerCommand(workerID, name, phones)
	if err != nil {
		return s.fail(ctx, err, "Failed to update worker")
	}

	updated, err := s.handlers.UpdateWorker.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to update worker")
	}

	return ctx.JSON(http.StatusOK, servers.WorkerEnvelope{Worker: toWorkerResponse(updated)})
}

// DeleteWorker handles DELETE /api/workers/{phoneOrId}.
func (s *Server) DeleteWorker(ctx echo.Context, phoneOrID string) error {
	workerID, err := s.workerID(ctx, phoneOrID)
	if err != nil {
		return s.fail(ctx, err, "Failed to delete worker")
	}

	cmd, err := commands.NewDeleteWorkerCommand(workerID)
	if err != nil {
		return s.fail(ctx, err, "Failed to delete worker")
	}

	if err = s.handlers.DeleteWorker.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to delete worker")
	}

	return ctx.JSON(http.StatusOK, servers.Acknowledgement{Message: "Worker deleted"})
}

// PostMessage handles POST /api/messages.
func (s *Server) PostMessage(ctx echo.Context) error {
	var body servers.NewMessage
	if err := s.bind(ctx, &body); err != nil {
		return s.fail(ctx, err, "Invalid request body")
	}

	var recipients []string
	if body.Recipients != nil {
		recipients = *body.Recipients
	}

	cmd, err := commands.NewPostMessageCommand(
		body.OrderId,
		string(body.SenderType),
		deref(body.Content),
		recipients,
		deref(body.MediaId),
		deref(body.MediaType),
	)
	if err != nil {
		return s.fail(ctx, err, "Failed to save message")
	}

	saved, err := s.handlers.PostMessage.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to save message")
	}

	return ctx.JSON(http.StatusCreated, servers.MessageEnvelope{Message: toMessageResponse(saved)})
}

// GetOrderMessages handles GET /api/messages/order/{order_id}.
func (s *Server) GetOrderMessages(ctx echo.Context, orderID servers.OrderID) error {
	query, err := queries.NewGetOrderMessagesQuery(orderID)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve messages")
	}

	views, err := s.handlers.GetOrderMessages.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve messages")
	}

	response := servers.MessageList{Messages: make([]servers.Message, len(views))}
	for i, view := range views {
		response.Messages[i] = toMessageViewResponse(view)
	}

	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) bind(ctx echo.Context, body any) error {
	if err := ctx.Bind(body); err != nil {
		return errMalformedBody
	}
	return ctx.Validate(body)
}

// transition renders the outcome of an order transition. A persisted change
// answers 200 even when notifications failed; the failure is reported in the
// body instead.
func (s *Server) transition(ctx echo.Context, result commands.TransitionResult, err error, fallback string) error {
	if err != nil {
		return s.fail(ctx, err, fallback)
	}

	if !result.Delivered() {
		s.logger.WarnContext(ctx.Request().Context(), "order saved with undelivered notifications",
			"order_id", result.Order.ID(), "error", result.Err)
	}

	return ctx.JSON(http.StatusOK, toTransitionResponse(s.orderResponse(ctx, result.Order), result))
}

// orderResponse re-reads the order so the response carries the assigned
// worker's name, falling back to the aggregate when the read fails.
func (s *Server) orderResponse(ctx echo.Context, o *order.Order) servers.Order {
	query, err := queries.NewGetOrderQuery(o.ID())
	if err == nil {
		var view queries.OrderView
		if view, err = s.handlers.GetOrder.Handle(ctx.Request().Context(), query); err == nil {
			return toOrderViewResponse(view)
		}
	}

	s.logger.WarnContext(ctx.Request().Context(), "failed to reload order view", "order_id", o.ID(), "error", err)
	return toOrderResponse(o)
}

func (s *Server) findWorker(ctx echo.Context, phoneOrID string) (queries.WorkerView, error) {
	query, err := queries.NewGetWorkerQuery(phoneOrID)
	if err != nil {
		return queries.WorkerView{}, err
	}
	return s.handlers.GetWorker.Handle(ctx.Request().Context(), query)
}

// workerID accepts the worker id itself or any of the worker's phones.
func (s *Server) workerID(ctx echo.Context, phoneOrID string) (kernel.UUID, error) {
	if kernel.LooksLikeUUID(phoneOrID) {
		return kernel.UUIDFromString(phoneOrID)
	}

	view, err := s.findWorker(ctx, phoneOrID)
	if err != nil {
		return kernel.UUID{}, err
	}
	return view.ID, nil
}
