package report

import (
	"context"

	"clinic-backoffice/internal/stock"
)

// UseCase is the read-only reporting surface over the stock ledger.
//
//go:generate mockery --name UseCase
type UseCase interface {
	Dashboard(ctx context.Context) (DashboardStats, error)
	// LowStock lists items with 0 < quantity <= minimum, emptiest first.
	// A zero limit uses the configured default.
	LowStock(ctx context.Context, limit int) ([]stock.StockItem, error)
	// UrgentStock lists items that are empty or within the urgent ratio of
	// their minimum, emptiest first.
	UrgentStock(ctx context.Context, limit int) ([]stock.StockItem, error)
	// NearExpiry lists items expiring within days, soonest first. Zero days
	// uses the configured default window.
	NearExpiry(ctx context.Context, days int) ([]stock.StockItem, error)
	StockTracking(ctx context.Context, input StockTrackingInput) (StockTrackingOutput, error)
	TotalQuantity(ctx context.Context) (int, error)
}
