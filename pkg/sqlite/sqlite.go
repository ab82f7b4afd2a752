package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

// connParams are DSN parameters the driver applies to every connection it
// opens, so they hold for the whole pool. A parameter already present in
// the configured DSN is left as configured.
var connParams = []struct {
	marker string
	param  string
}{
	{marker: "foreign_keys", param: "_pragma=foreign_keys(1)"},
	{marker: "busy_timeout", param: "_pragma=busy_timeout(5000)"},
	// Write transactions take the database lock at BEGIN, so two of them
	// never both read and then fight over the upgrade.
	{marker: "_txlock", param: "_txlock=immediate"},
}

// Config holds connection settings for the SQLite database.
type Config struct {
	DSN          string
	MaxOpenConns int
}

// Connect opens the database and verifies it answers. SQLite serialises
// writers, so one open connection is the default.
func Connect(ctx context.Context, cfg Config) (*sqlx.DB, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("sqlite: dsn is required")
	}

	db, err := sqlx.ConnectContext(ctx, driverName, withConnParams(cfg.DSN))
	if err != nil {
		return nil, fmt.Errorf("sqlite: connect: %w", err)
	}

	maxOpen := cfg.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 1
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxOpen)
	db.SetConnMaxLifetime(0)

	return db, nil
}

func withConnParams(dsn string) string {
	var b strings.Builder
	b.WriteString(dsn)

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	for _, p := range connParams {
		if strings.Contains(dsn, p.marker) {
			continue
		}
		b.WriteString(sep)
		b.WriteString(p.param)
		sep = "&"
	}
	return b.String()
}
