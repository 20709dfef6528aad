// Package services holds domain services that span more than one aggregate.
//
//   - AssignmentPlanner applies a status transition to an Order and decides
//     which notifications the transition owes to workers and the client.
package services
