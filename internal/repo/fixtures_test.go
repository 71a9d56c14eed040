package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/require"

	"github.com/bao-nguyen-khac/tour-website-sub000/internal/domain"
	"github.com/bao-nguyen-khac/tour-website-sub000/testutil"
)

// newTestTx opens a transaction against the test database that is rolled
// back when the test finishes.
func newTestTx(t *testing.T) pgx.Tx {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})
	return tx
}

// packageFixture returns a package with sensible defaults.
// created is used as created_at so tests control result ordering.
func packageFixture(name, destination string, created time.Time) domain.Package {
	return domain.Package{
		Name:           name,
		Destination:    destination,
		Accommodation:  "3-star hotel",
		Transportation: "Bus",
		Activities:     "Old town walk\nLantern making; River cruise",
		Description:    "A relaxed tour.",
		Days:           3,
		Nights:         2,
		Price:          1_000_000,
		Images:         []string{"a.jpg", "b.jpg"},
		CreatedAt:      created,
	}
}

func insertPackage(t *testing.T, tx pgx.Tx, p domain.Package) uuid.UUID {
	t.Helper()
	const q = `
		INSERT INTO packages (name, destination, accommodation, transportation, activities, description,
		                      days, nights, price, discount_price, on_offer, rating, total_ratings, images, created_at)
		VALUES (@name, @destination, @accommodation, @transportation, @activities, @description,
		        @days, @nights, @price, @discount_price, @on_offer, @rating, @total_ratings, @images, @created_at)
		RETURNING id`

	var id pgtype.UUID
	err := tx.QueryRow(context.Background(), q, pgx.NamedArgs{
		"name":           p.Name,
		"destination":    p.Destination,
		"accommodation":  p.Accommodation,
		"transportation": p.Transportation,
		"activities":     p.Activities,
		"description":    p.Description,
		"days":           p.Days,
		"nights":         p.Nights,
		"price":          p.Price,
		"discount_price": p.DiscountPrice,
		"on_offer":       p.OnOffer,
		"rating":         p.Rating,
		"total_ratings":  p.TotalRatings,
		"images":         p.Images,
		"created_at":     p.CreatedAt,
	}).Scan(&id)
	require.NoError(t, err, "insert package")
	return uuid.UUID(id.Bytes)
}

func insertBookings(t *testing.T, tx pgx.Tx, packageID uuid.UUID, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := tx.Exec(context.Background(), `
			INSERT INTO bookings (package_id, buyer_id, booked_for)
			VALUES (@package_id, @buyer_id, @booked_for)`,
			pgx.NamedArgs{"package_id": packageID, "buyer_id": uuid.New(), "booked_for": time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)})
		require.NoError(t, err, "insert booking")
	}
}

func insertRatings(t *testing.T, tx pgx.Tx, packageID uuid.UUID, ratings ...int) {
	t.Helper()
	for _, r := range ratings {
		_, err := tx.Exec(context.Background(), `
			INSERT INTO rating_reviews (package_id, user_id, rating)
			VALUES (@package_id, @user_id, @rating)`,
			pgx.NamedArgs{"package_id": packageID, "user_id": uuid.New(), "rating": r})
		require.NoError(t, err, "insert rating")
	}
}
