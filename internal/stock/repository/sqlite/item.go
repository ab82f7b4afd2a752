package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"clinic-backoffice/internal/stock"
	repo "clinic-backoffice/internal/stock/repository"
	"clinic-backoffice/pkg/sqlite"
)

// CreateItem inserts a new stock item and returns it as stored.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (stock.StockItem, error) {
	const query = `
		INSERT INTO stock_items (id, name, name_key, search_key, dosage_form, unit, manufacturer, distributor,
			category, expiry_date, quantity, min_quantity, status, version, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 1, ?, ?)`

	item := opt.Item
	_, err := r.db.ExecContext(ctx, query,
		item.ID, item.Name, stock.NameKey(item.Name), searchKey(item), item.DosageForm, item.Unit,
		item.Manufacturer, item.Distributor, item.Category, sqlite.FormatTime(item.ExpiryDate),
		item.Quantity, item.MinQuantity, string(item.Status),
		sqlite.FormatTime(item.CreatedAt), sqlite.FormatTime(item.UpdatedAt),
	)
	if isUniqueViolation(err) {
		return stock.StockItem{}, repo.ErrDuplicate
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return stock.StockItem{}, repo.ErrFailedToInsert
	}

	item.Version = 1
	return item, nil
}

// GetOneItem retrieves a single item by the provided filters (AND condition).
// Returns zero-value item when not found.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (stock.StockItem, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM stock_items WHERE %s LIMIT 1", ItemColumns, mods)

	var row ItemRow
	err := r.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return stock.StockItem{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneItem"), err)
		return stock.StockItem{}, repo.ErrFailedToGet
	}

	item, err := row.ToDomain()
	if err != nil {
		r.l.Errorf(ctx, "%s ToDomain: %v", r.dsn("GetOneItem"), err)
		return stock.StockItem{}, repo.ErrFailedToGet
	}
	return item, nil
}

// ListItems returns a page of items ordered by name and the total count.
func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]stock.StockItem, int, error) {
	where, args := r.buildListFilter(opt)

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM stock_items WHERE "+where, args...); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}

	query := fmt.Sprintf("SELECT %s FROM stock_items WHERE %s ORDER BY name_key ASC, id ASC LIMIT ? OFFSET ?", ItemColumns, where)
	var rows []ItemRow
	if err := r.db.SelectContext(ctx, &rows, query, append(args, opt.Limit, opt.Offset)...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}

	items, err := ToItems(rows)
	if err != nil {
		r.l.Errorf(ctx, "%s ToItems: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return items, total, nil
}

// ListCategories returns the distinct non-empty categories in name order.
func (r *implRepository) ListCategories(ctx context.Context) ([]string, error) {
	const query = `SELECT DISTINCT category FROM stock_items WHERE category <> '' ORDER BY category ASC`

	categories := []string{}
	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListCategories"), err)
		return nil, repo.ErrFailedToList
	}
	return categories, nil
}

// UpdateItem writes the full item state guarded by its version.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (stock.StockItem, error) {
	const query = `
		UPDATE stock_items
		SET name = ?, name_key = ?, search_key = ?, dosage_form = ?, unit = ?, manufacturer = ?,
			distributor = ?, category = ?, expiry_date = ?, quantity = ?, min_quantity = ?,
			status = ?, version = version + 1, updated_at = ?
		WHERE id = ? AND version = ?`

	item := opt.Item
	res, err := r.db.ExecContext(ctx, query,
		item.Name, stock.NameKey(item.Name), searchKey(item), item.DosageForm, item.Unit, item.Manufacturer,
		item.Distributor, item.Category, sqlite.FormatTime(item.ExpiryDate), item.Quantity, item.MinQuantity,
		string(item.Status), sqlite.FormatTime(item.UpdatedAt),
		item.ID, opt.ExpectedVersion,
	)
	if isUniqueViolation(err) {
		return stock.StockItem{}, repo.ErrDuplicate
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return stock.StockItem{}, repo.ErrFailedToUpdate
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s RowsAffected: %v", r.dsn("UpdateItem"), err)
		return stock.StockItem{}, repo.ErrFailedToUpdate
	}
	if affected == 0 {
		return stock.StockItem{}, repo.ErrVersionConflict
	}

	item.Version = opt.ExpectedVersion + 1
	return item, nil
}

func searchKey(item stock.StockItem) string {
	return stock.NameKey(item.Name) + "\n" + stock.NameKey(item.Manufacturer)
}
