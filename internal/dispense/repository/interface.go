package repository

import (
	"context"

	"clinic-backoffice/internal/dispense"
	"clinic-backoffice/internal/stock"
)

// Repository is the data store of the dispense engine.
type Repository interface {
	// InTx runs fn against a Repository bound to a single transaction. The
	// transaction commits only if fn returns nil.
	InTx(ctx context.Context, fn func(ctx context.Context, tx Repository) error) error

	// GetTreatment returns a zero-value treatment (ID == "") when not found.
	GetTreatment(ctx context.Context, id string) (dispense.Treatment, error)
	// GetStockItems returns the known items keyed by id.
	GetStockItems(ctx context.Context, ids []string) (map[string]stock.StockItem, error)
	// DecrementStock returns ErrVersionConflict when the item changed since
	// it was read or would go below zero.
	DecrementStock(ctx context.Context, opt DecrementStockOptions) error
	// SaveDispensedLines returns ErrVersionConflict when the treatment
	// changed since it was read.
	SaveDispensedLines(ctx context.Context, opt SaveDispensedLinesOptions) error
}
