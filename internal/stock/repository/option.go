package repository

import (
	"time"

	"clinic-backoffice/internal/stock"
)

// CreateItemOptions holds a fully validated item ready for insertion.
type CreateItemOptions struct {
	Item stock.StockItem
}

// GetOneItemOptions holds filter parameters for fetching a single item.
// All non-empty fields are applied as AND conditions.
type GetOneItemOptions struct {
	ID        string
	NameKey   string
	ExcludeID string
}

// ListItemsOptions holds filter and pagination parameters for listing items.
type ListItemsOptions struct {
	Search   string
	Category string
	Limit    int
	Offset   int
}

// UpdateItemOptions carries the full new state of an item.
type UpdateItemOptions struct {
	Item            stock.StockItem
	ExpectedVersion int
}

// CreateRestockRequestOptions holds a validated request ready for insertion.
type CreateRestockRequestOptions struct {
	Request stock.RestockRequest
}

// GetOneRestockRequestOptions selects a request inside one item.
type GetOneRestockRequestOptions struct {
	ID     string
	ItemID string
}

// ListRestockRequestsOptions filters the cross-item request view.
type ListRestockRequestsOptions struct {
	Status string
	Limit  int
	Offset int
}

// UpdateRestockRequestStatusOptions moves a request to Status if its stored
// version still equals ExpectedVersion.
type UpdateRestockRequestStatusOptions struct {
	ID              string
	ItemID          string
	Status          stock.RequestStatus
	ExpectedVersion int
	UpdatedAt       time.Time
}
