package jobs

import (
	"context"
	"errors"
	"log/slog"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// OutboxRelayJob publishes committed order changes to the live feed.
type OutboxRelayJob struct {
	handler   commands.RelayOutboxCommandHandler
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewOutboxRelayJob(handler commands.RelayOutboxCommandHandler, batchSize int, logger *slog.Logger) *OutboxRelayJob {
	if batchSize <= 0 {
		batchSize = commands.DefaultRelayBatchSize
	}

	return &OutboxRelayJob{
		handler:   handler,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With("component", "outbox_relay_job"),
	}
}

// Start schedules the relay every second. A run still in progress makes the
// next tick skip.
func (j *OutboxRelayJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started (running every second)")
	return nil
}

// Run performs one relay pass.
func (j *OutboxRelayJob) Run(ctx context.Context) {
	cmd, err := commands.NewRelayOutboxCommand(j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay job misconfigured", "error", err)
		return
	}

	published, err := j.handler.Handle(ctx, cmd)
	if published > 0 {
		j.logger.DebugContext(ctx, "Outbox messages published", "count", published)
	}
	if err == nil {
		return
	}

	// Without a broker the rows wait in the outbox.
	if errors.Is(err, ports.ErrPublisherDisabled) {
		j.logger.DebugContext(ctx, "Live feed disabled, outbox left pending")
		return
	}
	j.logger.ErrorContext(ctx, "Outbox relay job failed", "error", err)
}

// Stop waits for a running pass to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}
