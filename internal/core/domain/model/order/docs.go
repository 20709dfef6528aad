// Package order contains the Order aggregate of a jewellery-repair job and the
// status state machine that gates which notifications a change produces.
//
// Transitions:
//
//	pending  --decline-->  declined
//	pending  --accept--->  accepted  <--accept--  declined
//	accepted --reassign->  accepted
//	pending  --complete->  completed <--complete-- accepted
//	completed --reopen-->  accepted
//
// At most one worker is assigned at any time. The assignment is stored as the
// worker's phone number.
package order
