package usecase

import (
	"errors"
	"fmt"
	"strings"
)

// ErrOrphanedSeat signals an integrity breach: the seat map reports a
// seat as reserved but the ledger holds no booking for it. The seat
// is left untouched so the fault stays visible.
var ErrOrphanedSeat = errors.New("reserved seat has no booking record")

// ErrPersistenceFailure signals that the record store did not
// complete a write or delete. The operation that hit it has already
// been rolled back; nothing changed for the caller.
var ErrPersistenceFailure = errors.New("booking store write failed")

// SeatFault names one seat that failed group pre-validation and why.
type SeatFault struct {
	Seat string
	Err  error
}

// GroupBookingError reports every seat that kept a group booking from
// starting, not just the first. No seat was reserved.
type GroupBookingError struct {
	Faults []SeatFault
}

func (e *GroupBookingError) Error() string {
	parts := make([]string, 0, len(e.Faults))
	for _, f := range e.Faults {
		parts = append(parts, fmt.Sprintf("%s: %v", f.Seat, f.Err))
	}
	return "group booking rejected: " + strings.Join(parts, "; ")
}

// Seats lists the failing seat identifiers as given by the caller.
func (e *GroupBookingError) Seats() []string {
	seats := make([]string, 0, len(e.Faults))
	for _, f := range e.Faults {
		seats = append(seats, f.Seat)
	}
	return seats
}
