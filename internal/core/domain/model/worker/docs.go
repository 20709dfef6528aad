// Package worker models the craftspeople that orders are assigned to.
//
// A worker owns an ordered list of phone numbers with exactly one primary.
// The primary phone is what orders store and what the dashboard shows;
// notifications fan out to every phone.
//
// A synthetic worker stands in for a lookup that failed: it carries the bare
// identifier the caller knew as its only, non-primary phone and is never
// persisted.
package worker
