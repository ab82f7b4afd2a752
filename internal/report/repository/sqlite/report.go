package sqlite

import (
	"context"

	"clinic-backoffice/internal/report"
	"clinic-backoffice/internal/report/repository"
	"clinic-backoffice/internal/stock"
	stockSqlite "clinic-backoffice/internal/stock/repository/sqlite"
	"clinic-backoffice/pkg/sqlite"
)

// GetDashboard computes every dashboard figure in one round trip.
func (r *implRepository) GetDashboard(ctx context.Context, opt repository.DashboardOptions) (report.DashboardStats, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM stock_items WHERE quantity > 0 AND expiry_date >= ?) AS total_available,
			(SELECT COALESCE(SUM(quantity), 0) FROM stock_items) AS total_quantity,
			(SELECT COUNT(DISTINCT treatment_id) FROM treatment_medicines WHERE dispensed = 0) AS pending_dispense,
			(SELECT COUNT(*) FROM stock_items WHERE ` + lowStockPredicate + `) AS low_stock_count,
			(SELECT COUNT(*) FROM stock_items WHERE ` + urgentStockPredicate + `) AS urgent_stock_count`

	var row struct {
		TotalAvailable   int `db:"total_available"`
		TotalQuantity    int `db:"total_quantity"`
		PendingDispense  int `db:"pending_dispense"`
		LowStockCount    int `db:"low_stock_count"`
		UrgentStockCount int `db:"urgent_stock_count"`
	}
	err := r.db.GetContext(ctx, &row, query,
		sqlite.FormatTime(opt.Now), opt.LowStock, opt.LowStock, opt.UrgentRatio)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetDashboard"), err)
		return report.DashboardStats{}, repository.ErrFailedToGet
	}

	return report.DashboardStats{
		TotalAvailable:   row.TotalAvailable,
		TotalQuantity:    row.TotalQuantity,
		PendingDispense:  row.PendingDispense,
		LowStockCount:    row.LowStockCount,
		UrgentStockCount: row.UrgentStockCount,
	}, nil
}

// ListLowStock returns low items in ascending quantity.
func (r *implRepository) ListLowStock(ctx context.Context, opt repository.ThresholdListOptions) ([]stock.StockItem, error) {
	query := `SELECT ` + stockSqlite.ItemColumns + ` FROM stock_items WHERE ` + lowStockPredicate + `
		ORDER BY quantity ASC, name_key ASC LIMIT ?`
	return r.listItems(ctx, "ListLowStock", query, opt.LowStock, opt.Limit)
}

// ListUrgentStock returns urgent items in ascending quantity.
func (r *implRepository) ListUrgentStock(ctx context.Context, opt repository.ThresholdListOptions) ([]stock.StockItem, error) {
	query := `SELECT ` + stockSqlite.ItemColumns + ` FROM stock_items WHERE ` + urgentStockPredicate + `
		ORDER BY quantity ASC, name_key ASC LIMIT ?`
	return r.listItems(ctx, "ListUrgentStock", query, opt.LowStock, opt.UrgentRatio, opt.Limit)
}

// ListNearExpiry returns items expiring inside the window, soonest first.
func (r *implRepository) ListNearExpiry(ctx context.Context, opt repository.NearExpiryOptions) ([]stock.StockItem, error) {
	query := `SELECT ` + stockSqlite.ItemColumns + ` FROM stock_items
		WHERE expiry_date >= ? AND expiry_date <= ?
		ORDER BY expiry_date ASC, name_key ASC`
	return r.listItems(ctx, "ListNearExpiry", query, sqlite.FormatTime(opt.From), sqlite.FormatTime(opt.To))
}

// ListTracking returns a page of items ordered by name and the total count.
func (r *implRepository) ListTracking(ctx context.Context, opt repository.TrackingOptions) ([]stock.StockItem, int, error) {
	where := "1=1"
	var args []any
	if opt.Search != "" {
		where = "search_key LIKE ? " + sqlite.LikeEscape
		args = append(args, sqlite.LikePattern(opt.Search))
	}

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM stock_items WHERE `+where, args...); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTracking"), err)
		return nil, 0, repository.ErrFailedToList
	}

	query := `SELECT ` + stockSqlite.ItemColumns + ` FROM stock_items WHERE ` + where + `
		ORDER BY name_key ASC, id ASC LIMIT ? OFFSET ?`
	items, err := r.listItems(ctx, "ListTracking", query, append(args, opt.Limit, opt.Offset)...)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// SumQuantity totals the quantity of every item.
func (r *implRepository) SumQuantity(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COALESCE(SUM(quantity), 0) FROM stock_items`); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SumQuantity"), err)
		return 0, repository.ErrFailedToGet
	}
	return total, nil
}

func (r *implRepository) listItems(ctx context.Context, method, query string, args ...any) ([]stock.StockItem, error) {
	var rows []stockSqlite.ItemRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn(method), err)
		return nil, repository.ErrFailedToList
	}
	items, err := stockSqlite.ToItems(rows)
	if err != nil {
		r.l.Errorf(ctx, "%s ToItems: %v", r.dsn(method), err)
		return nil, repository.ErrFailedToList
	}
	return items, nil
}
