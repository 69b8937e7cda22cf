// Package seatmap owns the authoritative status of every seat in the
// cabin. It defines the sentinel errors for the seat state machine so
// higher layers can distinguish failure reasons with errors.Is.
package seatmap

import "errors"

// ErrNotAvailable is returned when a reservation targets a seat that
// cannot be taken: already reserved, an aisle entry, or storage.
var ErrNotAvailable = errors.New("seat not available")

// ErrAlreadyFree is returned when a release targets a seat that is
// not reserved. State is unchanged; the request was redundant.
var ErrAlreadyFree = errors.New("seat already free")

// ErrNotModifiable is returned when a release targets an aisle or
// storage entry. Those entries never transition.
var ErrNotModifiable = errors.New("seat not modifiable")
