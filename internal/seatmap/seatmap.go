package seatmap

import (
	"fmt"
	"sync"

	"seat-booking/internal/data/entity"
)

// SeatMap holds the status of every seat identifier for the aircraft.
// It knows nothing about bookings or persistence; the ledger decides
// when transitions happen. The interior is mutex-guarded so the
// component stays safe if embedded in a concurrent host, even though
// the console front end is single-threaded.
type SeatMap struct {
	mu    sync.RWMutex
	seats map[entity.SeatID]entity.SeatStatus
}

// New builds the full 80-row map: six seat columns per row plus one
// aisle entry, with the storage block fixed at creation.
func New() *SeatMap {
	seats := make(map[entity.SeatID]entity.SeatStatus, (len(entity.SeatColumns)+1)*entity.MaxRow)

	for row := entity.MinRow; row <= entity.MaxRow; row++ {
		for _, col := range entity.SeatColumns {
			id := entity.SeatID{Row: row, Column: col}
			if id.IsStorage() {
				seats[id] = entity.SeatStatusStorage
			} else {
				seats[id] = entity.SeatStatusFree
			}
		}
		seats[entity.SeatID{Row: row, Column: entity.AisleColumn}] = entity.SeatStatusAisle
	}

	return &SeatMap{seats: seats}
}

// Status returns the current status of a seat.
func (m *SeatMap) Status(id entity.SeatID) (entity.SeatStatus, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	status, ok := m.seats[id]
	if !ok {
		return "", fmt.Errorf("%w: %s", entity.ErrInvalidSeat, id)
	}
	return status, nil
}

// Reserve transitions a free seat to reserved.
func (m *SeatMap) Reserve(id entity.SeatID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	status, ok := m.seats[id]
	if !ok {
		return fmt.Errorf("%w: %s", entity.ErrInvalidSeat, id)
	}

	switch status {
	case entity.SeatStatusFree:
		m.seats[id] = entity.SeatStatusReserved
		return nil
	case entity.SeatStatusReserved, entity.SeatStatusAisle, entity.SeatStatusStorage:
		return fmt.Errorf("%w: %s", ErrNotAvailable, id)
	default:
		return fmt.Errorf("%w: %s", ErrNotAvailable, id)
	}
}

// Release transitions a reserved seat back to free.
func (m *SeatMap) Release(id entity.SeatID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	status, ok := m.seats[id]
	if !ok {
		return fmt.Errorf("%w: %s", entity.ErrInvalidSeat, id)
	}

	switch status {
	case entity.SeatStatusReserved:
		m.seats[id] = entity.SeatStatusFree
		return nil
	case entity.SeatStatusFree:
		return fmt.Errorf("%w: %s", ErrAlreadyFree, id)
	case entity.SeatStatusAisle, entity.SeatStatusStorage:
		return fmt.Errorf("%w: %s", ErrNotModifiable, id)
	default:
		return fmt.Errorf("%w: %s", ErrNotModifiable, id)
	}
}

// Restore marks a seat reserved while rebuilding state from
// persistence at startup. The seat's true prior state is whatever the
// store says, so the only acceptable in-memory state is the freshly
// created Free. Anything else means the store is inconsistent: a
// second record claiming the same seat, or a record naming a
// structural entry.
func (m *SeatMap) Restore(id entity.SeatID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	status, ok := m.seats[id]
	if !ok {
		return fmt.Errorf("%w: %s", entity.ErrInvalidSeat, id)
	}

	switch status {
	case entity.SeatStatusFree:
		m.seats[id] = entity.SeatStatusReserved
		return nil
	case entity.SeatStatusReserved:
		return fmt.Errorf("%w: %s", ErrNotAvailable, id)
	default:
		return fmt.Errorf("%w: %s", ErrNotModifiable, id)
	}
}

// Snapshot returns a copy of the whole map for rendering. The copy
// protects the interior from mutation by callers.
func (m *SeatMap) Snapshot() map[entity.SeatID]entity.SeatStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[entity.SeatID]entity.SeatStatus, len(m.seats))
	for id, status := range m.seats {
		out[id] = status
	}
	return out
}
