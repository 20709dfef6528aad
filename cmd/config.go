package cmd

import (
	"fmt"
	"log/slog"
	"net/url"
	"time"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	LogLevel   string

	WhatsAppAPIRoot     string
	WhatsAppPhoneID     string
	WhatsAppAccessToken string
	SendTimeout         time.Duration
	MaxConcurrentSends  int
	WorkerLookupTimeout time.Duration

	RabbitMQURL          string
	RabbitMQExchange     string
	OutboxRelayBatchSize int
}

// DSN builds the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// BrokerEnabled is false when no RabbitMQ URL is configured.
func (c Config) BrokerEnabled() bool {
	return c.RabbitMQURL != ""
}

// LogValue implements slog.LogValuer. Credentials are never part of it.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("http_port", c.HTTPPort),
		slog.String("db_host", c.DBHost),
		slog.String("db_port", c.DBPort),
		slog.String("db_name", c.DBName),
		slog.String("whatsapp_api_root", c.WhatsAppAPIRoot),
		slog.String("whatsapp_phone_id", c.WhatsAppPhoneID),
		slog.Bool("whatsapp_token_set", c.WhatsAppAccessToken != ""),
		slog.Duration("send_timeout", c.SendTimeout),
		slog.Int("max_concurrent_sends", c.MaxConcurrentSends),
		slog.Duration("worker_lookup_timeout", c.WorkerLookupTimeout),
		slog.String("rabbitmq_host", brokerHost(c.RabbitMQURL)),
		slog.String("rabbitmq_exchange", c.RabbitMQExchange),
		slog.Int("outbox_relay_batch_size", c.OutboxRelayBatchSize),
	)
}

// brokerHost drops the user info from an AMQP URL.
func brokerHost(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "invalid"
	}
	return u.Host
}
