package repository

import (
	"context"
	"errors"
	"fmt"

	"seat-booking/internal/data/entity"
	"seat-booking/pkg/database"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// BookingRepository is the record store contract the ledger depends
// on: bulk load at startup, insert on book, delete on free.
type BookingRepository interface {
	ListAll(ctx context.Context) ([]*entity.Booking, error)
	Insert(ctx context.Context, booking *entity.Booking) error
	Delete(ctx context.Context, reference string) error
}

type postgresBookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPostgresBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &postgresBookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *postgresBookingRepository) ListAll(ctx context.Context) ([]*entity.Booking, error) {
	query := `
		SELECT reference, passport, first_name, last_name, seat_row, seat_column, created_at
		FROM bookings
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("%w: list bookings: %v", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		err := rows.Scan(
			&booking.Reference,
			&booking.Passport,
			&booking.FirstName,
			&booking.LastName,
			&booking.SeatRow,
			&booking.SeatColumn,
			&booking.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("%w: scan booking row: %v", ErrStoreUnavailable, err)
		}
		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: read booking rows: %v", ErrStoreUnavailable, err)
	}

	return bookings, nil
}

func (r *postgresBookingRepository) Insert(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (reference, passport, first_name, last_name, seat_row, seat_column, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		booking.Reference,
		booking.Passport,
		booking.FirstName,
		booking.LastName,
		booking.SeatRow,
		booking.SeatColumn,
		booking.CreatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			r.log.Warn("Booking reference collision in store",
				zap.String("reference", booking.Reference),
			)
			return fmt.Errorf("%w: %s", ErrDuplicateReference, booking.Reference)
		}

		r.log.Error("Failed to insert booking",
			zap.Error(err),
			zap.String("reference", booking.Reference),
		)
		return fmt.Errorf("%w: insert booking %s: %v", ErrStoreUnavailable, booking.Reference, err)
	}

	return nil
}

func (r *postgresBookingRepository) Delete(ctx context.Context, reference string) error {
	query := `DELETE FROM bookings WHERE reference = $1`

	tag, err := r.db.Exec(ctx, query, reference)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("reference", reference),
		)
		return fmt.Errorf("%w: delete booking %s: %v", ErrStoreUnavailable, reference, err)
	}

	if tag.RowsAffected() == 0 {
		// The ledger thought this reference was persisted. Nothing to
		// roll back, but it is worth an operational trace.
		r.log.Warn("Delete matched no booking", zap.String("reference", reference))
	}

	return nil
}
