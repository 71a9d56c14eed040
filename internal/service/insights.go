// Package service contains the business logic of the tour insights service.
// Services validate inputs, orchestrate repo calls and derive reports.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/unicode/norm"

	"github.com/bao-nguyen-khac/tour-website-sub000/internal/domain"
	"github.com/bao-nguyen-khac/tour-website-sub000/internal/repo"
)

// InsightsService builds destination comparison reports.
// It is stateless; concurrent calls share nothing but the repos.
type InsightsService struct {
	packages repo.PackageRepo
	bookings repo.BookingRepo
	ratings  repo.RatingRepo
}

// NewInsightsService constructs an InsightsService backed by the provided repos.
func NewInsightsService(packages repo.PackageRepo, bookings repo.BookingRepo, ratings repo.RatingRepo) *InsightsService {
	return &InsightsService{packages: packages, bookings: bookings, ratings: ratings}
}

// DestinationReport returns the comparison report for every package offered
// for destination.
// Returns domain.ErrValidation if destination is blank, and domain.ErrNotFound
// if no package matches. Any repo failure fails the whole call; partial
// reports are never returned.
func (s *InsightsService) DestinationReport(ctx context.Context, destination string) (domain.DestinationReport, error) {
	destination = NormalizeDestination(destination)
	if destination == "" {
		return domain.DestinationReport{}, fmt.Errorf("%w: destination is required", domain.ErrValidation)
	}

	pkgs, err := s.packages.FindByDestination(ctx, destination)
	if err != nil {
		return domain.DestinationReport{}, fmt.Errorf("service.InsightsService.DestinationReport: %w", err)
	}
	if len(pkgs) == 0 {
		return domain.DestinationReport{}, fmt.Errorf("service.InsightsService.DestinationReport: %q: %w", destination, domain.ErrNotFound)
	}

	ids := make([]uuid.UUID, len(pkgs))
	for i, p := range pkgs {
		ids[i] = p.ID
	}

	// The two aggregations are independent; run them side by side and fail
	// together if either fails.
	var (
		bookings map[uuid.UUID]int
		ratings  map[uuid.UUID]domain.RatingStats
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		bookings, err = s.bookings.CountByPackages(gctx, ids)
		return err
	})
	g.Go(func() error {
		var err error
		ratings, err = s.ratings.StatsByPackages(gctx, ids)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.DestinationReport{}, fmt.Errorf("service.InsightsService.DestinationReport: %w", err)
	}

	return BuildReport(destination, pkgs, bookings, ratings), nil
}

// ListDestinations returns one page of destinations with package counts.
// Always returns a non-nil slice so callers can safely range over it.
func (s *InsightsService) ListDestinations(ctx context.Context, p domain.PaginationParams) ([]domain.DestinationCount, int64, error) {
	out, total, err := s.packages.ListDestinations(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.InsightsService.ListDestinations: %w", err)
	}
	if out == nil {
		out = []domain.DestinationCount{}
	}
	return out, total, nil
}

// NormalizeDestination trims surrounding whitespace and converts the input
// to Unicode NFC, so "Hội An" typed with combining marks matches the
// precomposed form stored in the database.
func NormalizeDestination(destination string) string {
	return norm.NFC.String(strings.TrimSpace(destination))
}
