package service_test

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bao-nguyen-khac/tour-website-sub000/internal/domain"
	"github.com/bao-nguyen-khac/tour-website-sub000/internal/service"
)

// ---- helpers ---------------------------------------------------------------

// fixtureRepos returns repos that serve the Hội An fixture for any destination.
func fixtureRepos() (*mockPackageRepo, *mockBookingRepo, *mockRatingRepo) {
	pkgs, bookings, ratings := hoiAnFixture()
	return &mockPackageRepo{
			findByDestination: func(_ context.Context, _ string) ([]domain.Package, error) {
				return pkgs, nil
			},
		},
		&mockBookingRepo{
			countByPackages: func(_ context.Context, _ []uuid.UUID) (map[uuid.UUID]int, error) {
				return bookings, nil
			},
		},
		&mockRatingRepo{
			statsByPackages: func(_ context.Context, _ []uuid.UUID) (map[uuid.UUID]domain.RatingStats, error) {
				return ratings, nil
			},
		}
}

// ---- DestinationReport -----------------------------------------------------

func TestInsightsService_DestinationReport_Found(t *testing.T) {
	pkgs, bookings, ratings := fixtureRepos()
	svc := service.NewInsightsService(pkgs, bookings, ratings)

	got, err := svc.DestinationReport(context.Background(), "  Hội An ")

	require.NoError(t, err)
	assert.Equal(t, "Hội An", got.Destination)
	assert.Equal(t, 2, got.TotalPackages)
	assert.Equal(t, 1_250_000.0, got.Summary.AveragePrice)
}

func TestInsightsService_DestinationReport_Blank(t *testing.T) {
	called := false
	svc := service.NewInsightsService(
		&mockPackageRepo{
			findByDestination: func(_ context.Context, _ string) ([]domain.Package, error) {
				called = true
				return nil, nil
			},
		},
		&mockBookingRepo{},
		&mockRatingRepo{},
	)

	for _, in := range []string{"", "   ", "\t\n"} {
		_, err := svc.DestinationReport(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrValidation, "input %q", in)
	}
	assert.False(t, called, "blank input must not reach the repo")
}

func TestInsightsService_DestinationReport_NormalizesToNFC(t *testing.T) {
	var got string
	_, bookings, ratings := fixtureRepos()
	svc := service.NewInsightsService(
		&mockPackageRepo{
			findByDestination: func(_ context.Context, d string) ([]domain.Package, error) {
				got = d
				return nil, nil
			},
		},
		bookings, ratings,
	)

	// "Hội" typed as o + combining dot below + combining circumflex.
	_, _ = svc.DestinationReport(context.Background(), "Ho\u0323\u0302i An")

	assert.Equal(t, "H\u1ed9i An", got)
}

func TestInsightsService_DestinationReport_NotFound(t *testing.T) {
	aggregated := false
	svc := service.NewInsightsService(
		&mockPackageRepo{
			findByDestination: func(_ context.Context, _ string) ([]domain.Package, error) {
				return []domain.Package{}, nil
			},
		},
		&mockBookingRepo{
			countByPackages: func(_ context.Context, _ []uuid.UUID) (map[uuid.UUID]int, error) {
				aggregated = true
				return nil, nil
			},
		},
		&mockRatingRepo{
			statsByPackages: func(_ context.Context, _ []uuid.UUID) (map[uuid.UUID]domain.RatingStats, error) {
				aggregated = true
				return nil, nil
			},
		},
	)

	_, err := svc.DestinationReport(context.Background(), "Atlantis")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.False(t, aggregated)
}

func TestInsightsService_DestinationReport_PackageRepoError(t *testing.T) {
	repoErr := errors.New("db exploded")
	_, bookings, ratings := fixtureRepos()
	svc := service.NewInsightsService(
		&mockPackageRepo{
			findByDestination: func(_ context.Context, _ string) ([]domain.Package, error) {
				return nil, repoErr
			},
		},
		bookings, ratings,
	)

	_, err := svc.DestinationReport(context.Background(), "Hội An")

	assert.ErrorIs(t, err, repoErr)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestInsightsService_DestinationReport_BookingRepoError(t *testing.T) {
	repoErr := errors.New("bookings unavailable")
	pkgs, _, ratings := fixtureRepos()
	svc := service.NewInsightsService(
		pkgs,
		&mockBookingRepo{
			countByPackages: func(_ context.Context, _ []uuid.UUID) (map[uuid.UUID]int, error) {
				return nil, repoErr
			},
		},
		ratings,
	)

	got, err := svc.DestinationReport(context.Background(), "Hội An")

	assert.ErrorIs(t, err, repoErr)
	assert.Zero(t, got.TotalPackages, "no partial report on failure")
}

func TestInsightsService_DestinationReport_RatingRepoError(t *testing.T) {
	repoErr := errors.New("ratings unavailable")
	pkgs, bookings, _ := fixtureRepos()
	svc := service.NewInsightsService(
		pkgs,
		bookings,
		&mockRatingRepo{
			statsByPackages: func(_ context.Context, _ []uuid.UUID) (map[uuid.UUID]domain.RatingStats, error) {
				return nil, repoErr
			},
		},
	)

	_, err := svc.DestinationReport(context.Background(), "Hội An")

	assert.ErrorIs(t, err, repoErr)
}

func TestInsightsService_DestinationReport_AggregatesSeeEveryPackageID(t *testing.T) {
	pkgs, _, _ := hoiAnFixture()
	want := []uuid.UUID{pkgs[0].ID, pkgs[1].ID}

	var (
		mu   sync.Mutex
		seen [][]uuid.UUID
	)
	record := func(ids []uuid.UUID) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, slices.Clone(ids))
	}

	svc := service.NewInsightsService(
		&mockPackageRepo{
			findByDestination: func(_ context.Context, _ string) ([]domain.Package, error) {
				return pkgs, nil
			},
		},
		&mockBookingRepo{
			countByPackages: func(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]int, error) {
				record(ids)
				return map[uuid.UUID]int{}, nil
			},
		},
		&mockRatingRepo{
			statsByPackages: func(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.RatingStats, error) {
				record(ids)
				return map[uuid.UUID]domain.RatingStats{}, nil
			},
		},
	)

	_, err := svc.DestinationReport(context.Background(), "Hội An")

	require.NoError(t, err)
	require.Len(t, seen, 2)
	assert.Equal(t, want, seen[0])
	assert.Equal(t, want, seen[1])
}

// ---- ListDestinations ------------------------------------------------------

func TestInsightsService_ListDestinations(t *testing.T) {
	want := []domain.DestinationCount{
		{Destination: "Hội An", PackageCount: 4},
		{Destination: "Đà Lạt", PackageCount: 2},
	}
	var gotParams domain.PaginationParams
	svc := service.NewInsightsService(
		&mockPackageRepo{
			listDestinations: func(_ context.Context, p domain.PaginationParams) ([]domain.DestinationCount, int64, error) {
				gotParams = p
				return want, 2, nil
			},
		},
		&mockBookingRepo{}, &mockRatingRepo{},
	)

	got, total, err := svc.ListDestinations(context.Background(), domain.PaginationParams{Page: 2, Limit: 5})

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, domain.PaginationParams{Page: 2, Limit: 5}, gotParams)
}

func TestInsightsService_ListDestinations_NilBecomesEmpty(t *testing.T) {
	svc := service.NewInsightsService(
		&mockPackageRepo{
			listDestinations: func(_ context.Context, _ domain.PaginationParams) ([]domain.DestinationCount, int64, error) {
				return nil, 0, nil
			},
		},
		&mockBookingRepo{}, &mockRatingRepo{},
	)

	got, total, err := svc.ListDestinations(context.Background(), domain.NewPaginationParams(nil, nil))

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Zero(t, total)
}

func TestInsightsService_ListDestinations_RepoError(t *testing.T) {
	repoErr := errors.New("db exploded")
	svc := service.NewInsightsService(
		&mockPackageRepo{
			listDestinations: func(_ context.Context, _ domain.PaginationParams) ([]domain.DestinationCount, int64, error) {
				return nil, 0, repoErr
			},
		},
		&mockBookingRepo{}, &mockRatingRepo{},
	)

	_, _, err := svc.ListDestinations(context.Background(), domain.NewPaginationParams(nil, nil))

	assert.ErrorIs(t, err, repoErr)
}

// ---- NormalizeDestination --------------------------------------------------

func TestNormalizeDestination(t *testing.T) {
	assert.Equal(t, "Đà Lạt", service.NormalizeDestination("  Đà Lạt\t"))
	assert.Equal(t, "H\u1ed9i An", service.NormalizeDestination("Ho\u0323\u0302i An"))
	assert.Equal(t, "", service.NormalizeDestination("   "))
}
