package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/bao-nguyen-khac/tour-website-sub000/internal/domain"
)

// RatingRepo aggregates rating reviews per package.
type RatingRepo interface {
	// StatsByPackages returns the live review aggregate for each of ids.
	// Packages without reviews are absent from the map.
	StatsByPackages(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.RatingStats, error)
}

// pgRatingRepo is the Postgres implementation of RatingRepo.
type pgRatingRepo struct {
	db db
}

// NewRatingRepo constructs a RatingRepo backed by the provided db connection.
func NewRatingRepo(db db) RatingRepo {
	return &pgRatingRepo{db: db}
}

// StatsByPackages computes average, count and the positive (>= 4) and
// negative (<= 2) rating counts in one grouped scan.
func (r *pgRatingRepo) StatsByPackages(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.RatingStats, error) {
	stats := make(map[uuid.UUID]domain.RatingStats, len(ids))
	if len(ids) == 0 {
		return stats, nil
	}

	const q = `
		SELECT package_id,
		       avg(rating)::float8,
		       count(*),
		       count(*) FILTER (WHERE rating >= 4),
		       count(*) FILTER (WHERE rating <= 2)
		FROM rating_reviews
		WHERE package_id = ANY(@ids::uuid[])
		GROUP BY package_id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"ids": ids})
	if err != nil {
		return nil, fmt.Errorf("repo.RatingRepo.StatsByPackages: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id                   pgtype.UUID
			avg                  float64
			count, positive, neg int64
		)
		if err := rows.Scan(&id, &avg, &count, &positive, &neg); err != nil {
			return nil, fmt.Errorf("repo.RatingRepo.StatsByPackages: scan: %w", err)
		}
		stats[uuid.UUID(id.Bytes)] = domain.RatingStats{
			AvgRating: avg,
			Count:     int(count),
			Positive:  int(positive),
			Negative:  int(neg),
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.RatingRepo.StatsByPackages: rows: %w", err)
	}
	return stats, nil
}
