package usecase

import (
	"context"
	"fmt"
	"time"

	"seat-booking/internal/data/entity"
	"seat-booking/internal/data/repository"
	"seat-booking/internal/dto/request"
	"seat-booking/internal/dto/response"
	"seat-booking/internal/seatmap"
	"seat-booking/pkg/utils"

	"go.uber.org/zap"
)

// LedgerService turns seat reservation requests into durable,
// uniquely-referenced passenger records and keeps the seat map, the
// in-memory booking collection, and the record store in lockstep.
//
// Book, BookGroup, and Free are critical sections with respect to
// each other: a host embedding this behind concurrent clients must
// serialize them to preserve the seat/booking invariant. The console
// front end is a single operator, so no lock is taken here.
type LedgerService interface {
	// Load rebuilds state from the record store. Called exactly once
	// at startup; returns the number of restored bookings.
	Load(ctx context.Context) (int, error)

	Book(ctx context.Context, req *request.BookSeatRequest) (*response.BookingResponse, error)
	BookGroup(ctx context.Context, req *request.BookGroupRequest) (*response.GroupBookingResponse, error)
	Free(ctx context.Context, seatID string) (*response.FreedSeatResponse, error)

	SeatStatus(seatID string) (entity.SeatStatus, error)
	Chart() *response.ChartResponse
	Booking(reference string) (*response.BookingResponse, bool)
	Count() int
}

type ledgerService struct {
	seats    *seatmap.SeatMap
	repo     *repository.Repository
	bookings map[string]*entity.Booking
	log      *zap.Logger
}

func NewLedgerService(seats *seatmap.SeatMap, repo *repository.Repository, log *zap.Logger) LedgerService {
	return &ledgerService{
		seats:    seats,
		repo:     repo,
		bookings: make(map[string]*entity.Booking),
		log:      log.With(zap.String("service", "ledger")),
	}
}

func (s *ledgerService) Load(ctx context.Context) (int, error) {
	records, err := s.repo.Booking.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("load bookings: %w", err)
	}

	for _, rec := range records {
		id, err := rec.Seat()
		if err != nil {
			return 0, fmt.Errorf("booking %s names seat %d%s outside the map: %w",
				rec.Reference, rec.SeatRow, rec.SeatColumn, err)
		}

		if _, exists := s.bookings[rec.Reference]; exists {
			return 0, fmt.Errorf("booking store holds reference %s twice", rec.Reference)
		}

		// Two records claiming one seat, or a record claiming a
		// structural entry, mean the store itself is inconsistent.
		// Report it; never guess which record wins.
		if err := s.seats.Restore(id); err != nil {
			return 0, fmt.Errorf("booking %s cannot claim seat %s: %w", rec.Reference, id, err)
		}

		s.bookings[rec.Reference] = rec
	}

	s.log.Info("Bookings restored from store", zap.Int("count", len(records)))

	return len(records), nil
}

// generateReference draws candidates until one is not a live
// reference. Loaded bookings are already in the live set by the time
// anything books, so collisions against them are covered too.
func (s *ledgerService) generateReference() string {
	for {
		reference := utils.GenerateBookingReference()
		if _, taken := s.bookings[reference]; !taken {
			return reference
		}
	}
}

func (s *ledgerService) Book(ctx context.Context, req *request.BookSeatRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Book validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := entity.ParseSeatID(req.SeatID)
	if err != nil {
		return nil, err
	}

	booking, err := s.bookOne(ctx, id, req.Passenger)
	if err != nil {
		return nil, err
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

// bookOne runs the single-seat mechanics: reserve, reference, persist,
// then insert into memory. The store write happens before the booking
// counts as durable-consistent; a failed write releases the seat so no
// reserved seat is ever left without a record.
func (s *ledgerService) bookOne(ctx context.Context, id entity.SeatID, p request.PassengerRequest) (*entity.Booking, error) {
	if err := s.seats.Reserve(id); err != nil {
		return nil, err
	}

	booking := &entity.Booking{
		Reference:  s.generateReference(),
		Passport:   p.Passport,
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		SeatRow:    id.Row,
		SeatColumn: string(id.Column),
		CreatedAt:  time.Now(),
	}

	if err := s.repo.Booking.Insert(ctx, booking); err != nil {
		if relErr := s.seats.Release(id); relErr != nil {
			s.log.Error("Rollback release failed after store error",
				zap.Error(relErr),
				zap.String("seat", id.String()),
			)
		}
		s.log.Error("Booking not persisted, seat released",
			zap.Error(err),
			zap.String("seat", id.String()),
			zap.String("reference", booking.Reference),
		)
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}

	s.bookings[booking.Reference] = booking

	s.log.Info("Seat booked",
		zap.String("seat", id.String()),
		zap.String("reference", booking.Reference),
	)

	return booking, nil
}

func (s *ledgerService) BookGroup(ctx context.Context, req *request.BookGroupRequest) (*response.GroupBookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Group booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if len(req.Passengers) != 1 && len(req.Passengers) != len(req.SeatIDs) {
		return nil, fmt.Errorf("passenger count %d does not match %d seats", len(req.Passengers), len(req.SeatIDs))
	}

	// All-or-nothing pre-check: every seat must be valid and free
	// before any seat is touched, and every failure is reported.
	ids := make([]entity.SeatID, 0, len(req.SeatIDs))
	seen := make(map[entity.SeatID]bool, len(req.SeatIDs))
	var faults []SeatFault

	for _, raw := range req.SeatIDs {
		id, err := entity.ParseSeatID(raw)
		if err != nil {
			faults = append(faults, SeatFault{Seat: raw, Err: entity.ErrInvalidSeat})
			continue
		}
		if seen[id] {
			faults = append(faults, SeatFault{Seat: raw, Err: fmt.Errorf("listed twice in request")})
			continue
		}
		seen[id] = true

		status, err := s.seats.Status(id)
		if err != nil {
			faults = append(faults, SeatFault{Seat: raw, Err: entity.ErrInvalidSeat})
			continue
		}
		if status != entity.SeatStatusFree {
			faults = append(faults, SeatFault{Seat: raw, Err: seatmap.ErrNotAvailable})
			continue
		}

		ids = append(ids, id)
	}

	if len(faults) > 0 {
		err := &GroupBookingError{Faults: faults}
		s.log.Warn("Group booking rejected", zap.Strings("seats", err.Seats()))
		return nil, err
	}

	booked := make([]*entity.Booking, 0, len(ids))
	for i, id := range ids {
		p := req.Passengers[0]
		if len(req.Passengers) > 1 {
			p = req.Passengers[i]
		}

		booking, err := s.bookOne(ctx, id, p)
		if err != nil {
			s.rollbackGroup(ctx, booked)
			return nil, fmt.Errorf("group booking failed at seat %s: %w", id, err)
		}
		booked = append(booked, booking)
	}

	resp := &response.GroupBookingResponse{
		Bookings: make([]response.BookingResponse, 0, len(booked)),
	}
	for _, b := range booked {
		resp.Bookings = append(resp.Bookings, response.BookingToResponse(b))
	}

	return resp, nil
}

// rollbackGroup undoes the seats already committed in a partially
// failed group call so the batch stays a single transaction at the
// seat-map level.
func (s *ledgerService) rollbackGroup(ctx context.Context, booked []*entity.Booking) {
	for i := len(booked) - 1; i >= 0; i-- {
		b := booked[i]
		id := entity.SeatID{Row: b.SeatRow, Column: b.SeatColumn[0]}

		if err := s.repo.Booking.Delete(ctx, b.Reference); err != nil {
			s.log.Error("Group rollback could not delete record",
				zap.Error(err),
				zap.String("reference", b.Reference),
			)
		}
		if err := s.seats.Release(id); err != nil {
			s.log.Error("Group rollback could not release seat",
				zap.Error(err),
				zap.String("seat", id.String()),
			)
		}
		delete(s.bookings, b.Reference)
	}
}

func (s *ledgerService) Free(ctx context.Context, seatID string) (*response.FreedSeatResponse, error) {
	id, err := entity.ParseSeatID(seatID)
	if err != nil {
		return nil, err
	}

	status, err := s.seats.Status(id)
	if err != nil {
		return nil, err
	}

	switch status {
	case entity.SeatStatusFree:
		return nil, fmt.Errorf("%w: %s", seatmap.ErrAlreadyFree, id)
	case entity.SeatStatusAisle, entity.SeatStatusStorage:
		return nil, fmt.Errorf("%w: %s", seatmap.ErrNotModifiable, id)
	}

	reference, booking := s.findBySeat(id)
	if booking == nil {
		s.log.Error("Integrity breach: reserved seat without booking record",
			zap.String("seat", id.String()),
		)
		return nil, fmt.Errorf("%w: %s", ErrOrphanedSeat, id)
	}

	if err := s.seats.Release(id); err != nil {
		return nil, err
	}

	if err := s.repo.Booking.Delete(ctx, reference); err != nil {
		// The store still holds the record, so memory must keep
		// claiming the seat too.
		if resErr := s.seats.Reserve(id); resErr != nil {
			s.log.Error("Rollback reserve failed after store error",
				zap.Error(resErr),
				zap.String("seat", id.String()),
			)
		}
		s.log.Error("Booking not deleted from store, seat kept reserved",
			zap.Error(err),
			zap.String("seat", id.String()),
			zap.String("reference", reference),
		)
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}

	delete(s.bookings, reference)

	s.log.Info("Seat freed",
		zap.String("seat", id.String()),
		zap.String("reference", reference),
	)

	return &response.FreedSeatResponse{Seat: id.String(), Reference: reference}, nil
}

// findBySeat scans the live bookings for the one holding this seat.
// Linear over at most 480 seats; a seat-to-reference index could
// replace it without changing behavior.
func (s *ledgerService) findBySeat(id entity.SeatID) (string, *entity.Booking) {
	for reference, booking := range s.bookings {
		if booking.SeatRow == id.Row && booking.SeatColumn == string(id.Column) {
			return reference, booking
		}
	}
	return "", nil
}

func (s *ledgerService) SeatStatus(seatID string) (entity.SeatStatus, error) {
	id, err := entity.ParseSeatID(seatID)
	if err != nil {
		return "", err
	}
	return s.seats.Status(id)
}

func (s *ledgerService) Chart() *response.ChartResponse {
	snapshot := s.seats.Snapshot()

	rows := make([]response.ChartRow, 0, entity.MaxRow)
	for row := entity.MinRow; row <= entity.MaxRow; row++ {
		cells := make([]string, 0, len(response.ChartColumns))
		for _, col := range response.ChartColumns {
			cells = append(cells, response.MarkerFor(snapshot[entity.SeatID{Row: row, Column: col}]))
		}
		rows = append(rows, response.ChartRow{Row: row, Cells: cells})
	}

	return &response.ChartResponse{Rows: rows}
}

func (s *ledgerService) Booking(reference string) (*response.BookingResponse, bool) {
	booking, ok := s.bookings[reference]
	if !ok {
		return nil, false
	}
	resp := response.BookingToResponse(booking)
	return &resp, true
}

func (s *ledgerService) Count() int {
	return len(s.bookings)
}
