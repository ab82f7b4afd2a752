package sqlite

import (
	"context"

	"github.com/jmoiron/sqlx"

	repo "clinic-backoffice/internal/stock/repository"
)

// GetStaffNames maps each known staff id to its full name. Unknown ids are
// simply absent from the result.
func (r *implRepository) GetStaffNames(ctx context.Context, ids []string) (map[string]string, error) {
	names := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	query, args, err := sqlx.In(`SELECT id, full_name FROM staff WHERE id IN (?)`, ids)
	if err != nil {
		r.l.Errorf(ctx, "%s In: %v", r.dsn("GetStaffNames"), err)
		return nil, repo.ErrFailedToList
	}

	var rows []struct {
		ID       string `db:"id"`
		FullName string `db:"full_name"`
	}
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetStaffNames"), err)
		return nil, repo.ErrFailedToList
	}

	for _, row := range rows {
		names[row.ID] = row.FullName
	}
	return names, nil
}
