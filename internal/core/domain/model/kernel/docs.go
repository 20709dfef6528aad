// Package kernel holds the shared value objects of the atelier domain.
//
//   - UUID identifies workers and chat messages.
//   - PhoneNumber is the address every notification is sent to and the key
//     that links an order to its assigned worker.
//
// Both are immutable and compare by value.
package kernel
