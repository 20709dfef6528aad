// Package notification describes the WhatsApp template messages an order
// change produces.
//
// An Event is one logical notification (assignment, removal, completion or a
// free-text update) addressed to an ordered list of phones. Dispatching an
// event yields a DeliveryReport with one attempt per phone; the report counts
// as delivered when at least one attempt succeeded.
package notification
