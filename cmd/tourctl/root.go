package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/bao-nguyen-khac/tour-website-sub000/internal/domain"
	"github.com/bao-nguyen-khac/tour-website-sub000/internal/repo"
	"github.com/bao-nguyen-khac/tour-website-sub000/internal/service"
)

var (
	// databaseURLFlag is the --database-url value; defaults to $DATABASE_URL.
	databaseURLFlag string
	logLevelFlag    string
)

var rootCmd = &cobra.Command{
	Use:   "tourctl",
	Short: "Operate the tour insights service",
	Long: `tourctl applies the database schema and prints destination insights
straight from Postgres, using the same code paths as the API server.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		var level slog.Level
		if err := level.UnmarshalText([]byte(logLevelFlag)); err != nil {
			return err
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&databaseURLFlag, "database-url", os.Getenv("DATABASE_URL"),
		"Postgres connection string (default: $DATABASE_URL)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "warn",
		"Log level: debug, info, warn, error")
}

var errNoDatabaseURL = errors.New("no database configured: pass --database-url or set DATABASE_URL")

// insightsReader is the part of service.InsightsService the report commands use.
type insightsReader interface {
	DestinationReport(ctx context.Context, destination string) (domain.DestinationReport, error)
	ListDestinations(ctx context.Context, p domain.PaginationParams) ([]domain.DestinationCount, int64, error)
}

// openInsights connects to Postgres and returns the insights service plus a
// func releasing the pool. Tests replace it with a fake.
var openInsights = func(ctx context.Context) (insightsReader, func(), error) {
	if databaseURLFlag == "" {
		return nil, nil, errNoDatabaseURL
	}
	pool, err := pgxpool.New(ctx, databaseURLFlag)
	if err != nil {
		return nil, nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}
	svc := service.NewInsightsService(
		repo.NewPackageRepo(pool),
		repo.NewBookingRepo(pool),
		repo.NewRatingRepo(pool),
	)
	return svc, pool.Close, nil
}

// writeJSON prints v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
