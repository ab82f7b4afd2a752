package sqlite

import (
	"context"

	"github.com/jmoiron/sqlx"

	"clinic-backoffice/internal/dispense/repository"
	"clinic-backoffice/internal/stock"
	"clinic-backoffice/pkg/sqlite"
)

type stockRow struct {
	ID         string `db:"id"`
	Name       string `db:"name"`
	ExpiryDate string `db:"expiry_date"`
	Quantity   int    `db:"quantity"`
	Status     string `db:"status"`
	Version    int    `db:"version"`
}

// GetStockItems loads the items a treatment draws on. Unknown ids are
// absent from the result.
func (r *implRepository) GetStockItems(ctx context.Context, ids []string) (map[string]stock.StockItem, error) {
	items := make(map[string]stock.StockItem, len(ids))
	if len(ids) == 0 {
		return items, nil
	}

	query, args, err := sqlx.In(
		`SELECT id, name, expiry_date, quantity, status, version FROM stock_items WHERE id IN (?)`, ids)
	if err != nil {
		r.l.Errorf(ctx, "%s In: %v", r.dsn("GetStockItems"), err)
		return nil, repository.ErrFailedToGet
	}

	var rows []stockRow
	if err := r.q.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetStockItems"), err)
		return nil, repository.ErrFailedToGet
	}

	for _, row := range rows {
		expiry, err := sqlite.ParseTime(row.ExpiryDate)
		if err != nil {
			r.l.Errorf(ctx, "%s ParseTime: %v", r.dsn("GetStockItems"), err)
			return nil, repository.ErrFailedToGet
		}
		items[row.ID] = stock.StockItem{
			ID:         row.ID,
			Name:       row.Name,
			ExpiryDate: expiry,
			Quantity:   row.Quantity,
			Status:     stock.Status(row.Status),
			Version:    row.Version,
		}
	}
	return items, nil
}

// DecrementStock is a compare-and-swap on the item version. The quantity
// guard keeps the ledger non-negative even if a caller skipped validation.
func (r *implRepository) DecrementStock(ctx context.Context, opt repository.DecrementStockOptions) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE stock_items
		SET quantity = quantity - ?, status = ?, version = version + 1, updated_at = ?
		WHERE id = ? AND version = ? AND quantity >= ?`,
		opt.Quantity, string(opt.Status), sqlite.FormatTime(opt.UpdatedAt),
		opt.ItemID, opt.ExpectedVersion, opt.Quantity)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DecrementStock"), err)
		return repository.ErrFailedToUpdate
	}
	return r.expectOneRow(ctx, res, "DecrementStock")
}
