// Package migrations embeds the goose SQL migrations so the server tests and
// the tourctl migrate command run the same schema without a filesystem path.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

// FS holds every *.sql migration, embedded at compile time.
//
//go:embed *.sql
var FS embed.FS

// NewProvider returns a goose provider running the embedded migrations
// against a Postgres database opened with the "pgx" database/sql driver.
func NewProvider(db *sql.DB) (*goose.Provider, error) {
	p, err := goose.NewProvider(goose.DialectPostgres, db, FS)
	if err != nil {
		return nil, fmt.Errorf("migrations.NewProvider: %w", err)
	}
	return p, nil
}
