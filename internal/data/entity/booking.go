package entity

import (
	"fmt"
	"time"
)

// ReferenceLength is the fixed length of a booking reference.
const ReferenceLength = 8

// Passenger holds the identity fields stored with a booking. The
// passport number is an opaque string; no verification happens here.
type Passenger struct {
	Passport  string
	FirstName string
	LastName  string
}

// Booking is one persisted reservation record. Reference is the
// primary key; a record exists exactly as long as its seat is
// reserved.
type Booking struct {
	Reference  string    `db:"reference"`
	Passport   string    `db:"passport"`
	FirstName  string    `db:"first_name"`
	LastName   string    `db:"last_name"`
	SeatRow    int       `db:"seat_row"`
	SeatColumn string    `db:"seat_column"`
	CreatedAt  time.Time `db:"created_at"`
}

// Seat reconstructs and validates the seat identifier held by the
// record. Persisted rows are not trusted: a record naming a seat
// outside the map surfaces ErrInvalidSeat here.
func (b *Booking) Seat() (SeatID, error) {
	return ParseSeatID(fmt.Sprintf("%d%s", b.SeatRow, b.SeatColumn))
}
