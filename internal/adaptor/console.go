package adaptor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"seat-booking/internal/data/entity"
	"seat-booking/internal/dto/request"
	"seat-booking/internal/seatmap"
	"seat-booking/internal/usecase"

	"go.uber.org/zap"
)

// Console is the interactive front end. It owns prompts and printing
// only; every decision about seats and bookings happens in the
// ledger service.
type Console struct {
	service *usecase.Service
	in      *bufio.Scanner
	out     io.Writer
	log     *zap.Logger
}

func NewConsole(service *usecase.Service, log *zap.Logger) *Console {
	return &Console{
		service: service,
		in:      bufio.NewScanner(os.Stdin),
		out:     os.Stdout,
		log:     log.With(zap.String("adaptor", "console")),
	}
}

// NewConsoleWithIO builds a console over explicit streams, used by
// tests to script a session.
func NewConsoleWithIO(service *usecase.Service, in io.Reader, out io.Writer, log *zap.Logger) *Console {
	return &Console{
		service: service,
		in:      bufio.NewScanner(in),
		out:     out,
		log:     log.With(zap.String("adaptor", "console")),
	}
}

// Run drives the menu loop until the operator exits or input ends.
func (c *Console) Run(ctx context.Context) error {
	for {
		fmt.Fprintln(c.out, "=== Apache Airlines Seat Booking System ===")
		fmt.Fprintln(c.out, "1. Check availability of seat")
		fmt.Fprintln(c.out, "2. Book a seat")
		fmt.Fprintln(c.out, "3. Free a seat")
		fmt.Fprintln(c.out, "4. Show booking status")
		fmt.Fprintln(c.out, "5. Exit program")
		fmt.Fprintln(c.out, "6. Book multiple seats")

		choice, ok := c.prompt("Enter your choice (1-6): ")
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			c.checkAvailability()
		case "2":
			c.bookSeat(ctx)
		case "3":
			c.freeSeat(ctx)
		case "4":
			c.showChart()
		case "5":
			fmt.Fprintln(c.out, "Exiting program. Goodbye!")
			return nil
		case "6":
			c.bookMultipleSeats(ctx)
		default:
			fmt.Fprintln(c.out, "Invalid option. Please select 1-6.")
		}
	}
}

func (c *Console) checkAvailability() {
	seat, ok := c.prompt("Enter seat number to check (e.g., 12A): ")
	if !ok {
		return
	}

	status, err := c.service.Ledger.SeatStatus(seat)
	if err != nil {
		c.printError(err)
		return
	}

	seatLabel := strings.ToUpper(strings.TrimSpace(seat))
	switch status {
	case entity.SeatStatusFree:
		fmt.Fprintf(c.out, "Seat %s is available.\n", seatLabel)
	case entity.SeatStatusReserved:
		fmt.Fprintf(c.out, "Seat %s is already reserved.\n", seatLabel)
	case entity.SeatStatusAisle, entity.SeatStatusStorage:
		fmt.Fprintf(c.out, "Seat %s cannot be booked (Aisle or Storage).\n", seatLabel)
	}
}

func (c *Console) bookSeat(ctx context.Context) {
	seat, ok := c.prompt("Enter seat number to book (e.g., 15C): ")
	if !ok {
		return
	}

	passenger, ok := c.promptPassenger()
	if !ok {
		return
	}

	booking, err := c.service.Ledger.Book(ctx, &request.BookSeatRequest{
		SeatID:    seat,
		Passenger: passenger,
	})
	if err != nil {
		c.printError(err)
		return
	}

	fmt.Fprintf(c.out, "Seat %s booked successfully with reference %s.\n", booking.Seat, booking.Reference)
}

func (c *Console) freeSeat(ctx context.Context) {
	seat, ok := c.prompt("Enter seat number to free (e.g., 15C): ")
	if !ok {
		return
	}

	freed, err := c.service.Ledger.Free(ctx, seat)
	if err != nil {
		c.printError(err)
		return
	}

	fmt.Fprintf(c.out, "Seat %s has been freed.\n", freed.Seat)
}

func (c *Console) showChart() {
	fmt.Fprint(c.out, RenderChart(c.service.Ledger.Chart()))
}

func (c *Console) bookMultipleSeats(ctx context.Context) {
	line, ok := c.prompt("Enter seat numbers separated by commas (e.g., 12A, 12B, 12C): ")
	if !ok {
		return
	}

	var seats []string
	for _, part := range strings.Split(line, ",") {
		if part = strings.TrimSpace(part); part != "" {
			seats = append(seats, part)
		}
	}
	if len(seats) == 0 {
		fmt.Fprintln(c.out, "No seats given.")
		return
	}

	// One passenger shared across the whole group.
	passenger, ok := c.promptPassenger()
	if !ok {
		return
	}

	group, err := c.service.Ledger.BookGroup(ctx, &request.BookGroupRequest{
		SeatIDs:    seats,
		Passengers: []request.PassengerRequest{passenger},
	})
	if err != nil {
		var groupErr *usecase.GroupBookingError
		if errors.As(err, &groupErr) {
			for _, fault := range groupErr.Faults {
				fmt.Fprintf(c.out, "%s: %v\n", fault.Seat, fault.Err)
			}
			fmt.Fprintln(c.out, "Group booking failed. Please check seat availability and try again.")
			return
		}
		c.printError(err)
		return
	}

	fmt.Fprintln(c.out, "All seats booked successfully!")
	for _, booking := range group.Bookings {
		fmt.Fprintf(c.out, "Seat %s booked with reference %s.\n", booking.Seat, booking.Reference)
	}
}

func (c *Console) promptPassenger() (request.PassengerRequest, bool) {
	passport, ok := c.prompt("Enter passport number: ")
	if !ok {
		return request.PassengerRequest{}, false
	}
	firstName, ok := c.prompt("Enter first name: ")
	if !ok {
		return request.PassengerRequest{}, false
	}
	lastName, ok := c.prompt("Enter last name: ")
	if !ok {
		return request.PassengerRequest{}, false
	}

	return request.PassengerRequest{
		Passport:  passport,
		FirstName: firstName,
		LastName:  lastName,
	}, true
}

func (c *Console) prompt(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// printError translates core errors into operator messages. Every
// failure is recoverable; the loop keeps running.
func (c *Console) printError(err error) {
	switch {
	case errors.Is(err, entity.ErrInvalidSeat):
		fmt.Fprintln(c.out, "Invalid seat number.")
	case errors.Is(err, seatmap.ErrNotAvailable):
		fmt.Fprintln(c.out, "This seat is not available.")
	case errors.Is(err, seatmap.ErrAlreadyFree):
		fmt.Fprintln(c.out, "Seat is already free.")
	case errors.Is(err, seatmap.ErrNotModifiable):
		fmt.Fprintln(c.out, "This seat cannot be changed.")
	case errors.Is(err, usecase.ErrOrphanedSeat):
		fmt.Fprintln(c.out, "Booking records are inconsistent for this seat. Please contact support.")
	case errors.Is(err, usecase.ErrPersistenceFailure):
		fmt.Fprintln(c.out, "Could not save the change. Nothing was booked or freed.")
	default:
		fmt.Fprintf(c.out, "Operation failed: %v\n", err)
	}
}
