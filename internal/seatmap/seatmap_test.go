package seatmap

import (
	"errors"
	"testing"

	"seat-booking/internal/data/entity"
)

func mustParse(t *testing.T, s string) entity.SeatID {
	t.Helper()
	id, err := entity.ParseSeatID(s)
	if err != nil {
		t.Fatalf("ParseSeatID(%q): %v", s, err)
	}
	return id
}

func TestNewBuildsFullMap(t *testing.T) {
	m := New()
	snapshot := m.Snapshot()

	if got := len(snapshot); got != 560 {
		t.Fatalf("expected 560 entries, got %d", got)
	}

	var free, aisle, storage int
	for _, status := range snapshot {
		switch status {
		case entity.SeatStatusFree:
			free++
		case entity.SeatStatusAisle:
			aisle++
		case entity.SeatStatusStorage:
			storage++
		default:
			t.Fatalf("unexpected status %q in fresh map", status)
		}
	}

	if free != 474 || aisle != 80 || storage != 6 {
		t.Fatalf("expected 474 free / 80 aisle / 6 storage, got %d/%d/%d", free, aisle, storage)
	}
}

func TestStatusUnknownSeat(t *testing.T) {
	m := New()
	if _, err := m.Status(entity.SeatID{Row: 99, Column: 'A'}); !errors.Is(err, entity.ErrInvalidSeat) {
		t.Fatalf("expected ErrInvalidSeat, got %v", err)
	}
}

func TestReserveAndRelease(t *testing.T) {
	m := New()
	id := mustParse(t, "15C")

	if err := m.Reserve(id); err != nil {
		t.Fatalf("reserve free seat: %v", err)
	}
	status, err := m.Status(id)
	if err != nil || status != entity.SeatStatusReserved {
		t.Fatalf("expected reserved, got %q (%v)", status, err)
	}

	if err := m.Reserve(id); !errors.Is(err, ErrNotAvailable) {
		t.Fatalf("expected ErrNotAvailable on double reserve, got %v", err)
	}

	if err := m.Release(id); err != nil {
		t.Fatalf("release reserved seat: %v", err)
	}
	status, _ = m.Status(id)
	if status != entity.SeatStatusFree {
		t.Fatalf("expected free after release, got %q", status)
	}

	if err := m.Release(id); !errors.Is(err, ErrAlreadyFree) {
		t.Fatalf("expected ErrAlreadyFree on double release, got %v", err)
	}
}

func TestStructuralSeatsNeverTransition(t *testing.T) {
	m := New()

	for _, seat := range []string{"77D", "77E", "77F", "78D", "78E", "78F"} {
		id := mustParse(t, seat)

		if err := m.Reserve(id); !errors.Is(err, ErrNotAvailable) {
			t.Fatalf("reserve %s = %v, expected ErrNotAvailable", seat, err)
		}
		if err := m.Release(id); !errors.Is(err, ErrNotModifiable) {
			t.Fatalf("release %s = %v, expected ErrNotModifiable", seat, err)
		}

		status, err := m.Status(id)
		if err != nil || status != entity.SeatStatusStorage {
			t.Fatalf("expected %s to stay storage, got %q (%v)", seat, status, err)
		}
	}

	aisle := mustParse(t, "30X")
	if err := m.Reserve(aisle); !errors.Is(err, ErrNotAvailable) {
		t.Fatalf("reserve aisle = %v, expected ErrNotAvailable", err)
	}
	if err := m.Release(aisle); !errors.Is(err, ErrNotModifiable) {
		t.Fatalf("release aisle = %v, expected ErrNotModifiable", err)
	}
	status, _ := m.Status(aisle)
	if status != entity.SeatStatusAisle {
		t.Fatalf("expected aisle to stay aisle, got %q", status)
	}
}

func TestMutatorsRejectUnknownSeat(t *testing.T) {
	m := New()
	unknown := entity.SeatID{Row: 81, Column: 'A'}

	if err := m.Reserve(unknown); !errors.Is(err, entity.ErrInvalidSeat) {
		t.Fatalf("reserve unknown = %v, expected ErrInvalidSeat", err)
	}
	if err := m.Release(unknown); !errors.Is(err, entity.ErrInvalidSeat) {
		t.Fatalf("release unknown = %v, expected ErrInvalidSeat", err)
	}
	if err := m.Restore(unknown); !errors.Is(err, entity.ErrInvalidSeat) {
		t.Fatalf("restore unknown = %v, expected ErrInvalidSeat", err)
	}
}

func TestRestore(t *testing.T) {
	m := New()
	id := mustParse(t, "10A")

	if err := m.Restore(id); err != nil {
		t.Fatalf("restore free seat: %v", err)
	}
	status, _ := m.Status(id)
	if status != entity.SeatStatusReserved {
		t.Fatalf("expected reserved after restore, got %q", status)
	}

	// A second record claiming the same seat is a store fault.
	if err := m.Restore(id); !errors.Is(err, ErrNotAvailable) {
		t.Fatalf("restore claimed seat = %v, expected ErrNotAvailable", err)
	}

	if err := m.Restore(mustParse(t, "77D")); !errors.Is(err, ErrNotModifiable) {
		t.Fatalf("restore storage = %v, expected ErrNotModifiable", err)
	}
}

func TestSnapshotReturnsCopy(t *testing.T) {
	m := New()
	id := mustParse(t, "5B")

	snapshot := m.Snapshot()
	snapshot[id] = entity.SeatStatusReserved

	status, _ := m.Status(id)
	if status != entity.SeatStatusFree {
		t.Fatalf("expected map to be unaffected by snapshot mutation, got %q", status)
	}
}
