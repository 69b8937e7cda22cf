package response

import (
	"time"

	"seat-booking/internal/data/entity"
)

type BookingResponse struct {
	Reference string    `json:"reference"`
	Seat      string    `json:"seat"`
	Passport  string    `json:"passport"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
}

type GroupBookingResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

type FreedSeatResponse struct {
	Seat      string `json:"seat"`
	Reference string `json:"reference"`
}

// Helper converters

func BookingToResponse(b *entity.Booking) BookingResponse {
	seat := ""
	if id, err := b.Seat(); err == nil {
		seat = id.String()
	}
	return BookingResponse{
		Reference: b.Reference,
		Seat:      seat,
		Passport:  b.Passport,
		FirstName: b.FirstName,
		LastName:  b.LastName,
		CreatedAt: b.CreatedAt,
	}
}
