package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"seat-booking/internal/data/entity"

	"go.uber.org/zap"
)

// memoryBookingRepository keeps booking records in a map. It backs the
// "memory" store setting for throwaway sessions and doubles as the
// store used by the ledger tests. Records are copied in and out so
// callers never share memory with the store.
type memoryBookingRepository struct {
	mu      sync.Mutex
	records map[string]entity.Booking
	log     *zap.Logger
}

func NewMemoryBookingRepository(log *zap.Logger) BookingRepository {
	return &memoryBookingRepository{
		records: make(map[string]entity.Booking),
		log:     log.With(zap.String("repository", "booking-memory")),
	}
}

func (r *memoryBookingRepository) ListAll(ctx context.Context) ([]*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bookings := make([]*entity.Booking, 0, len(r.records))
	for _, rec := range r.records {
		booking := rec
		bookings = append(bookings, &booking)
	}
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.Before(bookings[j].CreatedAt)
	})

	return bookings, nil
}

func (r *memoryBookingRepository) Insert(ctx context.Context, booking *entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[booking.Reference]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateReference, booking.Reference)
	}
	r.records[booking.Reference] = *booking

	return nil
}

func (r *memoryBookingRepository) Delete(ctx context.Context, reference string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[reference]; !exists {
		r.log.Warn("Delete matched no booking", zap.String("reference", reference))
	}
	delete(r.records, reference)

	return nil
}
