package report

import (
	"clinic-backoffice/internal/stock"
	"clinic-backoffice/pkg/paginator"
)

// DashboardStats is the one-screen summary of the store.
type DashboardStats struct {
	TotalAvailable   int
	TotalQuantity    int
	PendingDispense  int
	LowStockCount    int
	UrgentStockCount int
}

// TrackedItem is an item annotated with its stock level.
type TrackedItem struct {
	Item             stock.StockItem
	Level            stock.Level
	EffectiveMinimum int
}

// --- UseCase Inputs ---

type StockTrackingInput struct {
	Search   string
	Paginate paginator.PaginateQuery
}

// --- UseCase Outputs ---

type StockTrackingOutput struct {
	Items     []TrackedItem
	Paginator paginator.Paginator
}
