package commands_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/message"
	"atelier/internal/core/domain/model/notification"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// expectReadOnlyLoad sets up a load that never commits.
func (f *workflowFixture) expectReadOnlyLoad(ctx context.Context, o *order.Order) {
	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("OrderRepository").Return(f.orderRepo).Once()
	f.orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()
}

func TestSendOrderUpdateCommandHandler_Both(t *testing.T) {
	ctx := t.Context()
	f := newWorkflowFixture()
	o := newOrder(t, "S-1", order.Accepted, phoneA1)
	asha := newWorker(t, "Asha", phoneA1, phoneA2)

	f.expectReadOnlyLoad(ctx, o)
	f.resolver.On("Resolve", ctx, phoneA1).Return(asha, nil).Once()
	f.dispatcher.On("Dispatch", ctx, mock.MatchedBy(func(e notification.Event) bool {
		return e.Kind() == notification.Update &&
			eventSummary([]notification.Event{e})[0] == "update:"+digits(clientPhone, phoneA1, phoneA2) &&
			e.Params()[0] == "Gold ring-S-1" &&
			e.Params()[1] == "Stone set, polishing tomorrow"
	})).Return(notification.DeliveryReport{
		Kind:     notification.Update,
		OrderID:  "S-1",
		Attempts: []notification.DeliveryAttempt{{Phone: phoneNumber(t, clientPhone), MessageID: "wamid.1"}},
	}, nil).Once()
	f.messages.On("Add", mock.Anything, mock.MatchedBy(func(m *message.Message) bool {
		return m.SenderType() == message.SenderEnterprise &&
			m.Content() == "Stone set, polishing tomorrow" &&
			assert.ObjectsAreEqual([]string{message.RecipientClient, message.RecipientWorker}, m.Recipients())
	})).Return(nil).Once()

	cmd, err := commands.NewSendOrderUpdateCommand("S-1", "both", "Stone set, polishing tomorrow")
	require.NoError(t, err)

	result, err := commands.NewSendOrderUpdateCommandHandler(f.workflow).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, result.Delivered())
	assert.False(t, result.Changed)
	f.assertExpectations(t)
	f.messages.AssertExpectations(t)
	f.orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestSendOrderUpdateCommandHandler_WorkerWithoutAssignment(t *testing.T) {
	ctx := t.Context()
	f := newWorkflowFixture()
	o := newOrder(t, "S-2", order.Pending, "")
	f.expectReadOnlyLoad(ctx, o)

	cmd, err := commands.NewSendOrderUpdateCommand("S-2", "worker", "hello")
	require.NoError(t, err)

	_, err = commands.NewSendOrderUpdateCommandHandler(f.workflow).Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrNoWorkerAssigned)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	f.dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
}

func TestSendOrderUpdateCommandHandler_DeliveryFailure(t *testing.T) {
	ctx := t.Context()
	f := newWorkflowFixture()
	o := newOrder(t, "S-3", order.Pending, "")
	f.expectReadOnlyLoad(ctx, o)
	f.dispatcher.On("Dispatch", ctx, mock.Anything).Return(notification.DeliveryReport{
		Kind:     notification.Update,
		OrderID:  "S-3",
		Attempts: []notification.DeliveryAttempt{{Phone: phoneNumber(t, clientPhone), Err: errors.New("boom")}},
	}, fmt.Errorf("update: %w", notification.ErrAllDeliveriesFailed)).Once()

	cmd, err := commands.NewSendOrderUpdateCommand("S-3", "client", "hello")
	require.NoError(t, err)

	result, err := commands.NewSendOrderUpdateCommandHandler(f.workflow).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, result.Delivered())
	require.ErrorIs(t, result.Err, notification.ErrAllDeliveriesFailed)
	f.messages.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestNewSendOrderUpdateCommand_Validation(t *testing.T) {
	_, err := commands.NewSendOrderUpdateCommand("S-4", "everyone", " ")

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.ErrorIs(t, err, commands.ErrUpdateTextIsRequired)
}
