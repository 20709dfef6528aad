// Package services contains the application services shared by command
// handlers:
//
//   - WorkerResolver turns the identifier the dashboard sent (a phone number
//     or a worker id) into a full worker, falling back to a single-phone
//     worker when the lookup fails.
//   - NotificationDispatcher fans an event out to every target phone
//     concurrently and aggregates the outcome into a DeliveryReport.
package services
