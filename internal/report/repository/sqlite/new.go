package sqlite

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"clinic-backoffice/internal/report/repository"
	"clinic-backoffice/pkg/log"
)

type implRepository struct {
	db *sqlx.DB
	l  log.Logger
}

// New creates a SQLite-backed reporting Repository.
func New(db *sqlx.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("report/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("report/repository/sqlite.%s", method)
}
