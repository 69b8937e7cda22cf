package repository

import (
	"seat-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Booking BookingRepository
}

// NewRepository wires the postgres-backed store.
func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Booking: NewPostgresBookingRepository(db, log),
	}
}

// NewMemoryRepository wires the in-memory store. State lives only for
// the session; nothing survives a restart.
func NewMemoryRepository(log *zap.Logger) *Repository {
	return &Repository{
		Booking: NewMemoryBookingRepository(log),
	}
}
