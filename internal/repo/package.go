package repo

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/bao-nguyen-khac/tour-website-sub000/internal/domain"
)

// PackageRepo is the read side of the package store.
type PackageRepo interface {
	// FindByDestination returns every package whose destination equals
	// destination case-insensitively, ordered by created_at then id.
	// An empty slice (not an error) is returned when nothing matches.
	FindByDestination(ctx context.Context, destination string) ([]domain.Package, error)

	// ListDestinations returns one page of destinations with their package
	// counts, most packages first, plus the total number of destinations.
	// Destinations differing only in case are counted together.
	ListDestinations(ctx context.Context, p domain.PaginationParams) ([]domain.DestinationCount, int64, error)
}

// pgPackageRepo is the Postgres implementation of PackageRepo.
type pgPackageRepo struct {
	db db
}

// NewPackageRepo constructs a PackageRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewPackageRepo(db db) PackageRepo {
	return &pgPackageRepo{db: db}
}

const packageColumns = `
	id, name, destination, accommodation, transportation, activities, description,
	days, nights, price, discount_price, on_offer, rating, total_ratings, images,
	created_at, updated_at`

// FindByDestination matches with an anchored, case-insensitive regular
// expression built from the escaped input, so "Hội An" never matches
// "Hội An Ancient Town" and metacharacters in the input are literal.
func (r *pgPackageRepo) FindByDestination(ctx context.Context, destination string) ([]domain.Package, error) {
	const q = `
		SELECT` + packageColumns + `
		FROM packages
		WHERE destination ~* @pattern
		ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"pattern": destinationPattern(destination)})
	if err != nil {
		return nil, fmt.Errorf("repo.PackageRepo.FindByDestination: %w", err)
	}
	defer rows.Close()

	pkgs := []domain.Package{}
	for rows.Next() {
		p, err := scanPackage(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.PackageRepo.FindByDestination: scan: %w", err)
		}
		pkgs = append(pkgs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.PackageRepo.FindByDestination: rows: %w", err)
	}
	return pkgs, nil
}

// ListDestinations groups by lower(destination) and reports the
// alphabetically first spelling of each group.
func (r *pgPackageRepo) ListDestinations(ctx context.Context, p domain.PaginationParams) ([]domain.DestinationCount, int64, error) {
	const countQ = `SELECT count(DISTINCT lower(destination)) FROM packages`

	var total int64
	if err := r.db.QueryRow(ctx, countQ).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.PackageRepo.ListDestinations: count: %w", err)
	}

	const q = `
		SELECT min(destination), count(*)
		FROM packages
		GROUP BY lower(destination)
		ORDER BY count(*) DESC, min(destination)
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.PackageRepo.ListDestinations: %w", err)
	}
	defer rows.Close()

	out := []domain.DestinationCount{}
	for rows.Next() {
		var (
			d     domain.DestinationCount
			count int64
		)
		if err := rows.Scan(&d.Destination, &count); err != nil {
			return nil, 0, fmt.Errorf("repo.PackageRepo.ListDestinations: scan: %w", err)
		}
		d.PackageCount = int(count)
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.PackageRepo.ListDestinations: rows: %w", err)
	}
	return out, total, nil
}

// destinationPattern turns a literal destination into an anchored regular
// expression. RE2 escaping is a subset of what Postgres ARE accepts.
func destinationPattern(destination string) string {
	return "^" + regexp.QuoteMeta(destination) + "$"
}

// scanPackage maps a single row selected with packageColumns into a domain.Package.
func scanPackage(s scanner) (domain.Package, error) {
	var (
		p        domain.Package
		id       pgtype.UUID
		price    pgtype.Numeric
		discount pgtype.Numeric
		rating   pgtype.Numeric
	)

	err := s.Scan(
		&id, &p.Name, &p.Destination, &p.Accommodation, &p.Transportation, &p.Activities, &p.Description,
		&p.Days, &p.Nights, &price, &discount, &p.OnOffer, &rating, &p.TotalRatings, &p.Images,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Package{}, domain.ErrNotFound
		}
		return domain.Package{}, err
	}

	p.ID = uuid.UUID(id.Bytes)
	if p.Price, err = numericToFloat(price); err != nil {
		return domain.Package{}, fmt.Errorf("price: %w", err)
	}
	if p.Rating, err = numericToFloat(rating); err != nil {
		return domain.Package{}, fmt.Errorf("rating: %w", err)
	}
	if discount.Valid {
		d, err := numericToFloat(discount)
		if err != nil {
			return domain.Package{}, fmt.Errorf("discount_price: %w", err)
		}
		p.DiscountPrice = &d
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	return p, nil
}

// numericToFloat converts a NUMERIC column to float64; NULL becomes 0.
func numericToFloat(n pgtype.Numeric) (float64, error) {
	if !n.Valid {
		return 0, nil
	}
	f, err := n.Float64Value()
	if err != nil {
		return 0, err
	}
	return f.Float64, nil
}
