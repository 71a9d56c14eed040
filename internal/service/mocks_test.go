package service_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/bao-nguyen-khac/tour-website-sub000/internal/domain"
	"github.com/bao-nguyen-khac/tour-website-sub000/internal/repo"
)

// mockPackageRepo is a hand-written test double for repo.PackageRepo.
// Set only the method fields your test needs.
type mockPackageRepo struct {
	findByDestination func(ctx context.Context, destination string) ([]domain.Package, error)
	listDestinations  func(ctx context.Context, p domain.PaginationParams) ([]domain.DestinationCount, int64, error)
}

func (m *mockPackageRepo) FindByDestination(ctx context.Context, destination string) ([]domain.Package, error) {
	return m.findByDestination(ctx, destination)
}
func (m *mockPackageRepo) ListDestinations(ctx context.Context, p domain.PaginationParams) ([]domain.DestinationCount, int64, error) {
	return m.listDestinations(ctx, p)
}

type mockBookingRepo struct {
	countByPackages func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]int, error)
}

func (m *mockBookingRepo) CountByPackages(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]int, error) {
	return m.countByPackages(ctx, ids)
}

type mockRatingRepo struct {
	statsByPackages func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.RatingStats, error)
}

func (m *mockRatingRepo) StatsByPackages(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.RatingStats, error) {
	return m.statsByPackages(ctx, ids)
}

// compile-time checks: mocks must satisfy the repo interfaces.
var (
	_ repo.PackageRepo = (*mockPackageRepo)(nil)
	_ repo.BookingRepo = (*mockBookingRepo)(nil)
	_ repo.RatingRepo  = (*mockRatingRepo)(nil)
)
