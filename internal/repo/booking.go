package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// BookingRepo aggregates bookings per package.
type BookingRepo interface {
	// CountByPackages returns the number of bookings for each of ids.
	// Packages without bookings are absent from the map.
	CountByPackages(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]int, error)
}

// pgBookingRepo is the Postgres implementation of BookingRepo.
type pgBookingRepo struct {
	db db
}

// NewBookingRepo constructs a BookingRepo backed by the provided db connection.
func NewBookingRepo(db db) BookingRepo {
	return &pgBookingRepo{db: db}
}

// CountByPackages counts bookings in any status.
func (r *pgBookingRepo) CountByPackages(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]int, error) {
	counts := make(map[uuid.UUID]int, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}

	const q = `
		SELECT package_id, count(*)
		FROM bookings
		WHERE package_id = ANY(@ids::uuid[])
		GROUP BY package_id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"ids": ids})
	if err != nil {
		return nil, fmt.Errorf("repo.BookingRepo.CountByPackages: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id    pgtype.UUID
			count int64
		)
		if err := rows.Scan(&id, &count); err != nil {
			return nil, fmt.Errorf("repo.BookingRepo.CountByPackages: scan: %w", err)
		}
		counts[uuid.UUID(id.Bytes)] = int(count)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.BookingRepo.CountByPackages: rows: %w", err)
	}
	return counts, nil
}
