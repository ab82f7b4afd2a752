package sqlite

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"clinic-backoffice/internal/stock/repository"
	"clinic-backoffice/pkg/log"
)

type implRepository struct {
	db *sqlx.DB
	l  log.Logger
}

// New creates a SQLite-backed Repository for the stock domain.
func New(db *sqlx.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("stock/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("stock/repository/sqlite.%s", method)
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
