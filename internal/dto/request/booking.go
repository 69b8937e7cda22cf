package request

// PassengerRequest carries the identity fields collected when a seat
// is booked. The passport number is stored as given.
type PassengerRequest struct {
	Passport  string `validate:"required,min=3,max=20,alphanum"`
	FirstName string `validate:"required,max=50"`
	LastName  string `validate:"required,max=50"`
}

type BookSeatRequest struct {
	SeatID    string           `validate:"required"`
	Passenger PassengerRequest `validate:"required"`
}

// BookGroupRequest books several seats as one transaction. Passengers
// either matches SeatIDs one-to-one or holds a single entry shared by
// the whole group.
type BookGroupRequest struct {
	SeatIDs    []string           `validate:"required,min=1,dive,required"`
	Passengers []PassengerRequest `validate:"required,min=1,dive"`
}
