package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"clinic-backoffice/internal/dispense/repository"
	"clinic-backoffice/pkg/log"
)

// queryer is satisfied by both *sqlx.DB and *sqlx.Tx.
type queryer interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
}

type implRepository struct {
	db *sqlx.DB
	q  queryer
	l  log.Logger
}

// New creates a SQLite-backed Repository for the dispense engine.
func New(db *sqlx.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("dispense/repository/sqlite: db is required")
	}
	return &implRepository{db: db, q: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("dispense/repository/sqlite.%s", method)
}

// InTx runs fn inside one transaction and commits when it returns nil.
func (r *implRepository) InTx(ctx context.Context, fn func(ctx context.Context, tx repository.Repository) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s BeginTxx: %v", r.dsn("InTx"), err)
		return repository.ErrFailedToBegin
	}

	if err := fn(ctx, &implRepository{db: r.db, q: tx, l: r.l}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			r.l.Errorf(ctx, "%s Rollback: %v", r.dsn("InTx"), rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s Commit: %v", r.dsn("InTx"), err)
		return repository.ErrFailedToCommit
	}
	return nil
}
