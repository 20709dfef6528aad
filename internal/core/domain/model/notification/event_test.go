package notification_test

import (
	"errors"
	"testing"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/notification"
	"atelier/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func phones(t *testing.T, raws ...string) []kernel.PhoneNumber {
	t.Helper()
	out := make([]kernel.PhoneNumber, 0, len(raws))
	for _, raw := range raws {
		p, err := kernel.NewPhoneNumber(raw)
		require.NoError(t, err)
		out = append(out, p)
	}
	return out
}

func newOrder(t *testing.T, details order.JewelleryDetails) *order.Order {
	t.Helper()
	o, err := order.NewOrder("ORD-1", phones(t, "+15550001111")[0], details)
	require.NoError(t, err)
	return o
}

func TestNewAssignmentEvent(t *testing.T) {
	t.Run("should carry six positional parameters", func(t *testing.T) {
		o := newOrder(t, order.JewelleryDetails{
			Name: "Gold ring", Weight: "4.2g", Melting: "22k", Timeline: "3 days", SpecialInstructions: "Resize to 7",
		})

		e := notification.NewAssignmentEvent(o, phones(t, "+15551110000", "+15551110001"))

		require.NoError(t, e.Validate())
		tpl := e.Template()
		assert.Equal(t, "worker_assignment", tpl.Name)
		assert.Equal(t, "en", tpl.Language)
		assert.Equal(t, []string{"ORD-1", "Gold ring", "4.2g", "22k", "3 days", "Resize to 7"}, tpl.Params)
		assert.Len(t, e.Targets(), 2)
	})

	t.Run("should fill defaults for empty details", func(t *testing.T) {
		e := notification.NewAssignmentEvent(newOrder(t, order.JewelleryDetails{}), phones(t, "+15551110000"))

		assert.Equal(t,
			[]string{"ORD-1", "Not specified", "Not specified", "Not specified", "Not specified", "No special instructions"},
			e.Params())
	})
}

func TestOtherEvents(t *testing.T) {
	o := newOrder(t, order.JewelleryDetails{Name: "Chain"})
	targets := phones(t, "+15551110000")

	removal := notification.NewRemovalEvent(o, targets)
	assert.Equal(t, notification.Removal, removal.Kind())
	assert.Equal(t, "worker_changed", removal.Template().Name)
	assert.Equal(t, []string{"ORD-1", "Chain"}, removal.Params())

	completion := notification.NewCompletionEvent(o, targets)
	assert.Equal(t, "order_completed", completion.Template().Name)
	assert.Equal(t, []string{"ORD-1", "Chain"}, completion.Params())

	update := notification.NewUpdateEvent(o, targets, "https://cdn.example.com/p.jpg")
	assert.Equal(t, "update_sending", update.Template().Name)
	assert.Equal(t, []string{"Chain-ORD-1", "https://cdn.example.com/p.jpg"}, update.Params())
	assert.Equal(t, "ORD-1", update.OrderID())
}

func TestEvent_Targets(t *testing.T) {
	t.Run("should drop duplicates by digits and keep order", func(t *testing.T) {
		o := newOrder(t, order.JewelleryDetails{})

		e := notification.NewCompletionEvent(o, phones(t, "+15550001111", "+15551110000", "1 555 000 1111"))

		targets := e.Targets()
		require.Len(t, targets, 2)
		assert.Equal(t, "15550001111", targets[0].Digits())
		assert.Equal(t, "15551110000", targets[1].Digits())
	})

	t.Run("should refuse events without recipients", func(t *testing.T) {
		e := notification.NewRemovalEvent(newOrder(t, order.JewelleryDetails{}), []kernel.PhoneNumber{{}})

		require.ErrorIs(t, e.Validate(), notification.ErrNoRecipients)
	})

	t.Run("zero event has no template", func(t *testing.T) {
		var e notification.Event

		require.Error(t, e.Validate())
		assert.Empty(t, notification.Unknown.TemplateName())
		assert.Equal(t, "unknown", notification.Kind(99).String())
	})
}

func TestDeliveryReport(t *testing.T) {
	p := phones(t, "+15551110000", "+15551110001")

	t.Run("one success out of two is delivered", func(t *testing.T) {
		r := notification.DeliveryReport{
			Kind: notification.Assignment,
			Attempts: []notification.DeliveryAttempt{
				{Phone: p[0], Err: errors.New("timeout")},
				{Phone: p[1], MessageID: "wamid.1"},
			},
		}

		assert.True(t, r.Succeeded())
		assert.Equal(t, 1, r.Delivered())
		assert.Equal(t, 1, r.Failed())
		assert.NoError(t, r.Err())
	})

	t.Run("all failures surface an error", func(t *testing.T) {
		r := notification.DeliveryReport{
			Attempts: []notification.DeliveryAttempt{
				{Phone: p[0], Err: errors.New("400")},
				{Phone: p[1], Err: errors.New("500")},
			},
		}

		assert.False(t, r.Succeeded())
		require.ErrorIs(t, r.Err(), notification.ErrAllDeliveriesFailed)
	})

	t.Run("empty report is not delivered", func(t *testing.T) {
		assert.False(t, notification.DeliveryReport{}.Succeeded())
	})
}
