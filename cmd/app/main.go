package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"atelier/cmd"
	httpadapter "atelier/internal/adapters/in/http"
	"atelier/internal/adapters/out/postgres/migrations"
	"atelier/internal/adapters/out/rabbitmq"
	"atelier/internal/core/application/services"
	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/ports"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	configs := getConfigs()
	logger := newLogger(configs.LogLevel)
	logger.Info("starting", "config", configs)

	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("failed to get database handle: %v", err)
	}
	defer sqlDB.Close()

	if err = migrations.Up(sqlDB); err != nil {
		log.Fatalf("%v", err)
	}

	publisher, closeBroker := newPublisher(configs, logger)
	defer closeBroker()

	app, err := cmd.NewCompositionRoot(configs, gormDB, publisher, logger)
	if err != nil {
		log.Fatalf("failed to build application: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("%v", err)
	}
	defer jobManager.StopAll()

	if err = startWebServer(app, configs.HTTPPort, logger); err != nil {
		logger.Error("web server stopped", "error", err)
	}
}

func getConfigs() cmd.Config {
	// A missing .env is fine when the variables come from the environment.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:   envOrDefault("HTTP_PORT", "8080"),
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     envOrDefault("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSslMode:  envOrDefault("DB_SSLMODE", "disable"),
		LogLevel:   envOrDefault("LOG_LEVEL", "info"),

		WhatsAppAPIRoot:     os.Getenv("WHATSAPP_API_ROOT"),
		WhatsAppPhoneID:     os.Getenv("WHATSAPP_PHONE_ID"),
		WhatsAppAccessToken: os.Getenv("WHATSAPP_ACCESS_TOKEN"),
		SendTimeout:         durationVariable("WHATSAPP_SEND_TIMEOUT", services.DefaultSendTimeout),
		MaxConcurrentSends:  intVariable("WHATSAPP_MAX_CONCURRENT_SENDS", services.DefaultMaxConcurrentSends),
		WorkerLookupTimeout: durationVariable("WORKER_LOOKUP_TIMEOUT", services.DefaultLookupTimeout),

		RabbitMQURL:          os.Getenv("RABBITMQ_URL"),
		RabbitMQExchange:     envOrDefault("RABBITMQ_EXCHANGE", rabbitmq.DefaultExchange),
		OutboxRelayBatchSize: intVariable("OUTBOX_RELAY_BATCH_SIZE", commands.DefaultRelayBatchSize),
	}
}

func envOrDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func durationVariable(key string, def time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("invalid duration in %s: %v", key, err)
	}
	return d
}

func intVariable(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("invalid number in %s: %v", key, err)
	}
	return n
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

// newPublisher connects to RabbitMQ when configured. Without a broker the
// outbox keeps its rows until one is.
func newPublisher(configs cmd.Config, logger *slog.Logger) (ports.EventPublisher, func()) {
	if !configs.BrokerEnabled() {
		logger.Warn("RABBITMQ_URL is not set, live order feed is disabled")
		return rabbitmq.DisabledPublisher{}, func() {}
	}

	conn, err := rabbitmq.Dial(configs.RabbitMQURL)
	if err != nil {
		log.Fatalf("failed to connect to rabbitmq: %v", err)
	}

	return rabbitmq.NewPublisher(conn, configs.RabbitMQExchange), func() {
		if err := conn.Close(); err != nil {
			logger.Warn("failed to close rabbitmq connection", "error", err)
		}
	}
}

func startWebServer(app cmd.CompositionRoot, port string, logger *slog.Logger) error {
	server := httpadapter.NewServer(app.CreateHTTPHandlers(), logger)
	e, err := httpadapter.NewRouter(server, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "port", port)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return e.Shutdown(shutdownCtx)
}
