package sqlite

import (
	"strings"

	repo "clinic-backoffice/internal/stock/repository"
	"clinic-backoffice/pkg/sqlite"
)

// buildGetOneQuery builds WHERE clause + args for GetOneItem.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneItemOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.ID != "" {
		conditions = append(conditions, "id = ?")
		args = append(args, opt.ID)
	}
	if opt.NameKey != "" {
		conditions = append(conditions, "name_key = ?")
		args = append(args, opt.NameKey)
	}
	if opt.ExcludeID != "" {
		conditions = append(conditions, "id <> ?")
		args = append(args, opt.ExcludeID)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListFilter builds the WHERE clause shared by the count and page
// queries of ListItems.
func (r *implRepository) buildListFilter(opt repo.ListItemsOptions) (string, []any) {
	var conditions []string
	var args []any

	if strings.TrimSpace(opt.Search) != "" {
		conditions = append(conditions, "search_key LIKE ? "+sqlite.LikeEscape)
		args = append(args, sqlite.LikePattern(opt.Search))
	}
	if opt.Category != "" {
		conditions = append(conditions, "category = ?")
		args = append(args, opt.Category)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}
