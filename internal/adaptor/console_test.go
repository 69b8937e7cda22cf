package adaptor

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"seat-booking/internal/data/repository"
	"seat-booking/internal/seatmap"
	"seat-booking/internal/usecase"

	"go.uber.org/zap"
)

func newTestConsole(t *testing.T, input string) (*Console, *bytes.Buffer) {
	t.Helper()

	seats := seatmap.New()
	repo := &repository.Repository{Booking: repository.NewMemoryBookingRepository(zap.NewNop())}
	service := &usecase.Service{Ledger: usecase.NewLedgerService(seats, repo, zap.NewNop())}

	var out bytes.Buffer
	return NewConsoleWithIO(service, strings.NewReader(input), &out, zap.NewNop()), &out
}

func TestConsoleBookCheckFree(t *testing.T) {
	input := strings.Join([]string{
		"2", "15C", "P1234567", "Ada", "Lovelace", // book
		"1", "15C", // check
		"3", "15C", // free
		"1", "15C", // check again
		"5", // exit
	}, "\n") + "\n"

	console, out := newTestConsole(t, input)
	if err := console.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	text := out.String()
	if !strings.Contains(text, "booked successfully with reference") {
		t.Fatalf("missing booking confirmation in output:\n%s", text)
	}
	if !strings.Contains(text, "Seat 15C is already reserved.") {
		t.Fatalf("missing reserved status in output:\n%s", text)
	}
	if !strings.Contains(text, "Seat 15C has been freed.") {
		t.Fatalf("missing freed message in output:\n%s", text)
	}
	if !strings.Contains(text, "Seat 15C is available.") {
		t.Fatalf("missing available status in output:\n%s", text)
	}
	if !strings.Contains(text, "Exiting program. Goodbye!") {
		t.Fatalf("missing exit message in output:\n%s", text)
	}
}

func TestConsoleRejectsInvalidSeat(t *testing.T) {
	input := "1\n99Z\n5\n"

	console, out := newTestConsole(t, input)
	if err := console.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	if !strings.Contains(out.String(), "Invalid seat number.") {
		t.Fatalf("missing invalid seat message in output:\n%s", out.String())
	}
}

func TestConsoleGroupBookingFailureListsSeats(t *testing.T) {
	input := strings.Join([]string{
		"6", "15A, 15B, INVALID", "P1234567", "Ada", "Lovelace",
		"1", "15A",
		"5",
	}, "\n") + "\n"

	console, out := newTestConsole(t, input)
	if err := console.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	text := out.String()
	if !strings.Contains(text, "INVALID:") {
		t.Fatalf("missing per-seat fault in output:\n%s", text)
	}
	if !strings.Contains(text, "Group booking failed.") {
		t.Fatalf("missing group failure message in output:\n%s", text)
	}
	if !strings.Contains(text, "Seat 15A is available.") {
		t.Fatalf("expected 15A to remain free:\n%s", text)
	}
}

func TestConsoleGroupBookingSuccess(t *testing.T) {
	input := strings.Join([]string{
		"6", "12A, 12B, 12C", "P1234567", "Ada", "Lovelace",
		"5",
	}, "\n") + "\n"

	console, out := newTestConsole(t, input)
	if err := console.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	text := out.String()
	if !strings.Contains(text, "All seats booked successfully!") {
		t.Fatalf("missing group success message in output:\n%s", text)
	}
	if strings.Count(text, "booked with reference") != 3 {
		t.Fatalf("expected 3 reference lines in output:\n%s", text)
	}
}

func TestConsoleEndOfInputStopsLoop(t *testing.T) {
	console, _ := newTestConsole(t, "")
	if err := console.Run(context.Background()); err != nil {
		t.Fatalf("run on empty input: %v", err)
	}
}
