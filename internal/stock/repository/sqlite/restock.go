package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"clinic-backoffice/internal/stock"
	repo "clinic-backoffice/internal/stock/repository"
	"clinic-backoffice/pkg/sqlite"
)

// CreateRestockRequest inserts a request under its item and returns it
// joined with the item's current name and quantity.
func (r *implRepository) CreateRestockRequest(ctx context.Context, opt repo.CreateRestockRequestOptions) (stock.RestockRequest, error) {
	const query = `
		INSERT INTO restock_requests (id, item_id, requested_by, quantity, priority, reason, note, status,
			version, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, 1, ?, ?)`

	req := opt.Request
	_, err := r.db.ExecContext(ctx, query,
		req.ID, req.ItemID, req.RequestedBy, req.Quantity, string(req.Priority), req.Reason, req.Note,
		string(req.Status), sqlite.FormatTime(req.CreatedAt), sqlite.FormatTime(req.UpdatedAt),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateRestockRequest"), err)
		return stock.RestockRequest{}, repo.ErrFailedToInsert
	}

	return r.GetOneRestockRequest(ctx, repo.GetOneRestockRequestOptions{ID: req.ID, ItemID: req.ItemID})
}

// GetOneRestockRequest returns a zero-value request when not found.
func (r *implRepository) GetOneRestockRequest(ctx context.Context, opt repo.GetOneRestockRequestOptions) (stock.RestockRequest, error) {
	const query = `
		SELECT ` + requestColumns + `
		FROM restock_requests rr
		JOIN stock_items si ON si.id = rr.item_id
		WHERE rr.id = ? AND rr.item_id = ?
		LIMIT 1`

	var row requestRow
	err := r.db.GetContext(ctx, &row, query, opt.ID, opt.ItemID)
	if errors.Is(err, sql.ErrNoRows) {
		return stock.RestockRequest{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneRestockRequest"), err)
		return stock.RestockRequest{}, repo.ErrFailedToGet
	}

	req, err := row.toDomain()
	if err != nil {
		r.l.Errorf(ctx, "%s toDomain: %v", r.dsn("GetOneRestockRequest"), err)
		return stock.RestockRequest{}, repo.ErrFailedToGet
	}
	return req, nil
}

// ListRestockRequests flattens requests across every item, newest first.
func (r *implRepository) ListRestockRequests(ctx context.Context, opt repo.ListRestockRequestsOptions) ([]stock.RestockRequest, int, error) {
	where := "1=1"
	var args []any
	if opt.Status != "" {
		where = "rr.status = ?"
		args = append(args, opt.Status)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM restock_requests rr WHERE "+where, args...); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListRestockRequests"), err)
		return nil, 0, repo.ErrFailedToList
	}

	query := `
		SELECT ` + requestColumns + `
		FROM restock_requests rr
		JOIN stock_items si ON si.id = rr.item_id
		WHERE ` + where + `
		ORDER BY rr.created_at DESC, rr.id DESC
		LIMIT ? OFFSET ?`

	var rows []requestRow
	if err := r.db.SelectContext(ctx, &rows, query, append(args, opt.Limit, opt.Offset)...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListRestockRequests"), err)
		return nil, 0, repo.ErrFailedToList
	}

	requests := make([]stock.RestockRequest, 0, len(rows))
	for _, row := range rows {
		req, err := row.toDomain()
		if err != nil {
			r.l.Errorf(ctx, "%s toDomain: %v", r.dsn("ListRestockRequests"), err)
			return nil, 0, repo.ErrFailedToList
		}
		requests = append(requests, req)
	}
	return requests, total, nil
}

// UpdateRestockRequestStatus changes the status in place, guarded by version.
func (r *implRepository) UpdateRestockRequestStatus(ctx context.Context, opt repo.UpdateRestockRequestStatusOptions) (stock.RestockRequest, error) {
	const query = `
		UPDATE restock_requests
		SET status = ?, version = version + 1, updated_at = ?
		WHERE id = ? AND item_id = ? AND version = ?`

	res, err := r.db.ExecContext(ctx, query,
		string(opt.Status), sqlite.FormatTime(opt.UpdatedAt), opt.ID, opt.ItemID, opt.ExpectedVersion,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateRestockRequestStatus"), err)
		return stock.RestockRequest{}, repo.ErrFailedToUpdate
	}
	affected, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s RowsAffected: %v", r.dsn("UpdateRestockRequestStatus"), err)
		return stock.RestockRequest{}, repo.ErrFailedToUpdate
	}
	if affected == 0 {
		return stock.RestockRequest{}, repo.ErrVersionConflict
	}

	return r.GetOneRestockRequest(ctx, repo.GetOneRestockRequestOptions{ID: opt.ID, ItemID: opt.ItemID})
}
