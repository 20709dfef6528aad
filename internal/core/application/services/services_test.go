package services_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/notification"
	"atelier/internal/core/domain/model/worker"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockWorkerFinder struct{ mock.Mock }

func (m *MockWorkerFinder) Get(ctx context.Context, id kernel.UUID) (*worker.Worker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*worker.Worker), args.Error(1)
}

func (m *MockWorkerFinder) GetByPhone(ctx context.Context, phone kernel.PhoneNumber) (*worker.Worker, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*worker.Worker), args.Error(1)
}

type MockNotificationSender struct{ mock.Mock }

func (m *MockNotificationSender) Send(ctx context.Context, to kernel.PhoneNumber, tpl notification.Template) (string, error) {
	args := m.Called(ctx, to, tpl)
	return args.String(0), args.Error(1)
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

func digitsMatch(raw string) any {
	d := kernel.DigitsOnly(raw)
	return mock.MatchedBy(func(p kernel.PhoneNumber) bool { return p.Digits() == d })
}
