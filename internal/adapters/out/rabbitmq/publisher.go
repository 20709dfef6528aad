package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"atelier/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

// DefaultExchange is the fanout exchange subscribers bind their queues to.
const DefaultExchange = "orders.live"

// OrderEventMessage is the body published for every outbox message.
type OrderEventMessage struct {
	EventType  string          `json:"event_type"`
	OrderID    string          `json:"order_id"`
	Order      json.RawMessage `json:"order"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// Publisher implements ports.EventPublisher. It opens a channel per publish
// and declares the exchange each time, so a broker restart needs no extra
// handling beyond a reconnect.
type Publisher struct {
	conn     Connection
	exchange string
}

func NewPublisher(conn Connection, exchange string) *Publisher {
	if exchange == "" {
		exchange = DefaultExchange
	}
	return &Publisher{conn: conn, exchange: exchange}
}

func (p *Publisher) Publish(ctx context.Context, msg ports.OutboxMessage) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	if err = ch.ExchangeDeclare(p.exchange, amqp.ExchangeFanout, true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	body, err := json.Marshal(OrderEventMessage{
		EventType:  msg.EventType,
		OrderID:    msg.AggregateID,
		Order:      json.RawMessage(msg.Payload),
		OccurredAt: msg.OccurredAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	err = ch.PublishWithContext(ctx, p.exchange, "", false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		MessageId:    msg.ID.String(),
		Type:         msg.EventType,
		Timestamp:    msg.OccurredAt,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}

// DisabledPublisher is used when no broker is configured.
type DisabledPublisher struct{}

func (DisabledPublisher) Publish(context.Context, ports.OutboxMessage) error {
	return ports.ErrPublisherDisabled
}
