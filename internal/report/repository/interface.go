package repository

import (
	"context"

	"clinic-backoffice/internal/report"
	"clinic-backoffice/internal/stock"
)

// Repository answers aggregate queries. Availability is derived from
// quantity and expiry at query time rather than read from the stored status.
type Repository interface {
	GetDashboard(ctx context.Context, opt DashboardOptions) (report.DashboardStats, error)
	ListLowStock(ctx context.Context, opt ThresholdListOptions) ([]stock.StockItem, error)
	ListUrgentStock(ctx context.Context, opt ThresholdListOptions) ([]stock.StockItem, error)
	ListNearExpiry(ctx context.Context, opt NearExpiryOptions) ([]stock.StockItem, error)
	ListTracking(ctx context.Context, opt TrackingOptions) ([]stock.StockItem, int, error)
	SumQuantity(ctx context.Context) (int, error)
}
