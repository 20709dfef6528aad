// Package jobs runs the background work of the order service on a
// robfig/cron scheduler with second precision.
//
// OutboxRelayJob drains the outbox once per second and publishes committed
// order changes to the live order feed. A pass that is still publishing when
// the next tick fires causes that tick to be skipped. Messages that failed to
// publish stay pending and are sent again on a later pass, so subscribers
// must tolerate duplicates.
//
// JobManager owns the jobs of the process:
//
//	manager := jobs.NewJobManager(relayHandler, commands.DefaultRelayBatchSize, logger)
//	if err := manager.StartAll(); err != nil {
//		return err
//	}
//	defer manager.StopAll()
package jobs
