package entity

import (
	"errors"
	"fmt"
	"strings"
)

// Aircraft geometry. One cabin, 80 rows, six seat columns plus a
// synthetic aisle column rendered between C and D.
const (
	MinRow = 1
	MaxRow = 80

	AisleColumn byte = 'X'
)

// SeatColumns are the bookable columns in cabin order.
var SeatColumns = []byte{'A', 'B', 'C', 'D', 'E', 'F'}

// ErrInvalidSeat is returned when a seat identifier does not name an
// entry in the seat map: row out of range, unknown column, or a
// malformed string. Every layer reports unknown identifiers through
// this sentinel so the front end can give one consistent message.
var ErrInvalidSeat = errors.New("invalid seat")

type SeatStatus string

const (
	SeatStatusFree     SeatStatus = "free"
	SeatStatusReserved SeatStatus = "reserved"
	SeatStatusAisle    SeatStatus = "aisle"
	SeatStatusStorage  SeatStatus = "storage"
)

// SeatID identifies one entry in the seat map. It is only constructed
// through ParseSeatID or the map itself, so a SeatID held by a caller
// always names a real row/column pair.
type SeatID struct {
	Row    int
	Column byte
}

// ParseSeatID validates and canonicalizes a seat identifier such as
// "15c" or "78F". Input is case-insensitive; the accepted form is
// ^[0-9]{1,2}[A-FX]$ with the row inside the cabin range.
func ParseSeatID(raw string) (SeatID, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if len(s) < 2 || len(s) > 3 {
		return SeatID{}, fmt.Errorf("%w: %q", ErrInvalidSeat, raw)
	}

	col := s[len(s)-1]
	if !validColumn(col) {
		return SeatID{}, fmt.Errorf("%w: %q", ErrInvalidSeat, raw)
	}

	row := 0
	for _, d := range s[:len(s)-1] {
		if d < '0' || d > '9' {
			return SeatID{}, fmt.Errorf("%w: %q", ErrInvalidSeat, raw)
		}
		row = row*10 + int(d-'0')
	}
	if row < MinRow || row > MaxRow {
		return SeatID{}, fmt.Errorf("%w: %q", ErrInvalidSeat, raw)
	}

	return SeatID{Row: row, Column: col}, nil
}

func validColumn(c byte) bool {
	if c == AisleColumn {
		return true
	}
	for _, sc := range SeatColumns {
		if c == sc {
			return true
		}
	}
	return false
}

// String returns the canonical upper-case form, e.g. "15C".
func (id SeatID) String() string {
	return fmt.Sprintf("%d%c", id.Row, id.Column)
}

// IsAisle reports whether the identifier names the aisle column.
func (id SeatID) IsAisle() bool {
	return id.Column == AisleColumn
}

// IsStorage reports whether the identifier falls inside the fixed
// storage area: columns D, E, F in rows 77 and 78.
func (id SeatID) IsStorage() bool {
	if id.Row != 77 && id.Row != 78 {
		return false
	}
	return id.Column == 'D' || id.Column == 'E' || id.Column == 'F'
}
