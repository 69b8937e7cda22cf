// Package repository implements the durable record store behind the
// booking ledger. The sentinel errors here let the ledger tell a
// key conflict apart from an unreachable store, because the two call
// for different recovery: a conflict rolls back one reservation, an
// unreachable store aborts the operation entirely.
package repository

import "errors"

// ErrDuplicateReference is returned when an insert collides with an
// existing booking reference in the store.
var ErrDuplicateReference = errors.New("duplicate booking reference")

// ErrStoreUnavailable is returned when the store cannot complete a
// read or write for any reason other than a key conflict.
var ErrStoreUnavailable = errors.New("booking store unavailable")
