package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/ports"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.OutboxMessage), args.Error(1)
}

func (m *MockOutboxRepository) MarkPublished(ctx context.Context, id kernel.UUID, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, msg ports.OutboxMessage) error {
	return m.Called(ctx, msg).Error(0)
}

func outboxMessages(n int) []ports.OutboxMessage {
	msgs := make([]ports.OutboxMessage, 0, n)
	for i := range n {
		msgs = append(msgs, ports.OutboxMessage{
			ID:          kernel.NewUUID(),
			EventType:   ports.OrderChangedEvent,
			AggregateID: "ORD-1",
			Payload:     []byte(`{}`),
			OccurredAt:  time.Now().Add(time.Duration(i) * time.Second),
		})
	}
	return msgs
}

func TestNewRelayOutboxCommand_RejectsNonPositiveBatch(t *testing.T) {
	_, err := commands.NewRelayOutboxCommand(0)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	cmd, err := commands.NewRelayOutboxCommand(commands.DefaultRelayBatchSize)
	require.NoError(t, err)
	assert.Equal(t, 100, cmd.BatchSize())
}

func TestRelayOutboxCommandHandler_PublishesInOrderAndMarks(t *testing.T) {
	ctx := t.Context()
	msgs := outboxMessages(2)
	outbox := &MockOutboxRepository{}
	publisher := &MockEventPublisher{}

	outbox.On("GetUnpublished", ctx, 10).Return(msgs, nil)
	mock.InOrder(
		publisher.On("Publish", ctx, msgs[0]).Return(nil),
		outbox.On("MarkPublished", ctx, msgs[0].ID, mock.AnythingOfType("time.Time")).Return(nil),
		publisher.On("Publish", ctx, msgs[1]).Return(nil),
		outbox.On("MarkPublished", ctx, msgs[1].ID, mock.AnythingOfType("time.Time")).Return(nil),
	)

	cmd, err := commands.NewRelayOutboxCommand(10)
	require.NoError(t, err)

	published, err := commands.NewRelayOutboxCommandHandler(outbox, publisher).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, published)
	outbox.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestRelayOutboxCommandHandler_StopsAtFirstPublishFailure(t *testing.T) {
	ctx := t.Context()
	msgs := outboxMessages(3)
	outbox := &MockOutboxRepository{}
	publisher := &MockEventPublisher{}
	brokerErr := errors.New("broker down")

	outbox.On("GetUnpublished", ctx, 10).Return(msgs, nil)
	publisher.On("Publish", ctx, msgs[0]).Return(nil)
	outbox.On("MarkPublished", ctx, msgs[0].ID, mock.Anything).Return(nil)
	publisher.On("Publish", ctx, msgs[1]).Return(brokerErr)

	cmd, err := commands.NewRelayOutboxCommand(10)
	require.NoError(t, err)

	published, err := commands.NewRelayOutboxCommandHandler(outbox, publisher).Handle(ctx, cmd)

	require.ErrorIs(t, err, brokerErr)
	assert.Equal(t, 1, published)
	publisher.AssertNotCalled(t, "Publish", ctx, msgs[2])
	outbox.AssertNotCalled(t, "MarkPublished", ctx, msgs[1].ID, mock.Anything)
}

func TestRelayOutboxCommandHandler_DisabledPublisherLeavesRowsPending(t *testing.T) {
	ctx := t.Context()
	msgs := outboxMessages(1)
	outbox := &MockOutboxRepository{}
	publisher := &MockEventPublisher{}

	outbox.On("GetUnpublished", ctx, 5).Return(msgs, nil)
	publisher.On("Publish", ctx, msgs[0]).Return(ports.ErrPublisherDisabled)

	cmd, err := commands.NewRelayOutboxCommand(5)
	require.NoError(t, err)

	published, err := commands.NewRelayOutboxCommandHandler(outbox, publisher).Handle(ctx, cmd)

	require.ErrorIs(t, err, ports.ErrPublisherDisabled)
	assert.Zero(t, published)
	outbox.AssertNotCalled(t, "MarkPublished", mock.Anything, mock.Anything, mock.Anything)
}

func TestRelayOutboxCommandHandler_LoadError(t *testing.T) {
	ctx := t.Context()
	outbox := &MockOutboxRepository{}
	loadErr := errors.New("connection refused")
	outbox.On("GetUnpublished", ctx, 5).Return(nil, loadErr)

	cmd, err := commands.NewRelayOutboxCommand(5)
	require.NoError(t, err)

	_, err = commands.NewRelayOutboxCommandHandler(outbox, &MockEventPublisher{}).Handle(ctx, cmd)

	require.ErrorIs(t, err, loadErr)
}

func TestRelayOutboxCommandHandler_InvalidCommand(t *testing.T) {
	_, err := commands.NewRelayOutboxCommandHandler(&MockOutboxRepository{}, &MockEventPublisher{}).
		Handle(t.Context(), commands.RelayOutboxCommand{})

	require.ErrorIs(t, err, commands.ErrRelayOutboxCommandIsNotConstructed)
}
