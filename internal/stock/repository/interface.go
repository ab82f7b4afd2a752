package repository

import (
	"context"

	"clinic-backoffice/internal/stock"
)

// Repository is the composed interface for the stock domain data store.
type Repository interface {
	ItemRepository
	RestockRepository
	StaffRepository
}

// ItemRepository defines data access for stock items.
type ItemRepository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (stock.StockItem, error)
	// GetOneItem returns a zero-value item (ID == "") when nothing matches.
	GetOneItem(ctx context.Context, opt GetOneItemOptions) (stock.StockItem, error)
	ListItems(ctx context.Context, opt ListItemsOptions) ([]stock.StockItem, int, error)
	ListCategories(ctx context.Context) ([]string, error)
	// UpdateItem returns ErrVersionConflict when the stored version is not
	// opt.ExpectedVersion.
	UpdateItem(ctx context.Context, opt UpdateItemOptions) (stock.StockItem, error)
}

// RestockRepository defines data access for restock requests.
type RestockRepository interface {
	CreateRestockRequest(ctx context.Context, opt CreateRestockRequestOptions) (stock.RestockRequest, error)
	// GetOneRestockRequest returns a zero-value request when nothing matches.
	GetOneRestockRequest(ctx context.Context, opt GetOneRestockRequestOptions) (stock.RestockRequest, error)
	ListRestockRequests(ctx context.Context, opt ListRestockRequestsOptions) ([]stock.RestockRequest, int, error)
	UpdateRestockRequestStatus(ctx context.Context, opt UpdateRestockRequestStatusOptions) (stock.RestockRequest, error)
}

// StaffRepository resolves requester ids to display names.
type StaffRepository interface {
	GetStaffNames(ctx context.Context, ids []string) (map[string]string, error)
}
