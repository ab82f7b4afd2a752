package usecase

import (
	"context"
	"strings"

	"clinic-backoffice/internal/model"
	"clinic-backoffice/internal/report"
	"clinic-backoffice/internal/report/repository"
	"clinic-backoffice/internal/stock"
	"clinic-backoffice/pkg/paginator"
)

// Dashboard returns the store summary.
func (uc *implUseCase) Dashboard(ctx context.Context) (report.DashboardStats, error) {
	stats, err := uc.repo.GetDashboard(ctx, repository.DashboardOptions{
		Now:         uc.now(),
		LowStock:    uc.cfg.Thresholds.LowStock,
		UrgentRatio: uc.cfg.Thresholds.UrgentRatio,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Dashboard GetDashboard: %v", err)
		return report.DashboardStats{}, err
	}
	return stats, nil
}

// LowStock lists items at or under their minimum but not empty.
func (uc *implUseCase) LowStock(ctx context.Context, limit int) ([]stock.StockItem, error) {
	limit, err := uc.resolveLimit(limit)
	if err != nil {
		return nil, err
	}
	items, err := uc.repo.ListLowStock(ctx, repository.ThresholdListOptions{
		LowStock: uc.cfg.Thresholds.LowStock,
		Limit:    limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.LowStock ListLowStock: %v", err)
		return nil, err
	}
	return uc.refresh(items), nil
}

// UrgentStock lists empty items and items within the urgent ratio.
func (uc *implUseCase) UrgentStock(ctx context.Context, limit int) ([]stock.StockItem, error) {
	limit, err := uc.resolveLimit(limit)
	if err != nil {
		return nil, err
	}
	items, err := uc.repo.ListUrgentStock(ctx, repository.ThresholdListOptions{
		LowStock:    uc.cfg.Thresholds.LowStock,
		UrgentRatio: uc.cfg.Thresholds.UrgentRatio,
		Limit:       limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UrgentStock ListUrgentStock: %v", err)
		return nil, err
	}
	return uc.refresh(items), nil
}

// NearExpiry lists items whose expiry falls between now and now+days.
func (uc *implUseCase) NearExpiry(ctx context.Context, days int) ([]stock.StockItem, error) {
	if days < 0 {
		return nil, model.NewValidationError([]string{"days"})
	}
	if days == 0 {
		days = uc.cfg.NearExpiryDays
	}

	now := uc.now()
	items, err := uc.repo.ListNearExpiry(ctx, repository.NearExpiryOptions{
		From: now,
		To:   now.AddDate(0, 0, days),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.NearExpiry ListNearExpiry: %v", err)
		return nil, err
	}
	return uc.refresh(items), nil
}

// StockTracking pages through items with their out/low/sufficient level.
func (uc *implUseCase) StockTracking(ctx context.Context, input report.StockTrackingInput) (report.StockTrackingOutput, error) {
	input.Paginate.Adjust()

	items, total, err := uc.repo.ListTracking(ctx, repository.TrackingOptions{
		Search: strings.TrimSpace(input.Search),
		Limit:  input.Paginate.Limit,
		Offset: input.Paginate.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.StockTracking ListTracking: %v", err)
		return report.StockTrackingOutput{}, err
	}

	th := uc.cfg.Thresholds
	tracked := make([]report.TrackedItem, len(items))
	for i, item := range uc.refresh(items) {
		tracked[i] = report.TrackedItem{
			Item:             item,
			Level:            th.Level(item),
			EffectiveMinimum: th.EffectiveMinimum(item.MinQuantity),
		}
	}

	return report.StockTrackingOutput{
		Items:     tracked,
		Paginator: paginator.New(input.Paginate, total, len(tracked)),
	}, nil
}

// TotalQuantity sums the quantity of every item.
func (uc *implUseCase) TotalQuantity(ctx context.Context) (int, error) {
	total, err := uc.repo.SumQuantity(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.TotalQuantity SumQuantity: %v", err)
		return 0, err
	}
	return total, nil
}

func (uc *implUseCase) resolveLimit(limit int) (int, error) {
	switch {
	case limit < 0:
		return 0, model.NewValidationError([]string{"limit"})
	case limit == 0:
		return uc.cfg.LowStockLimit, nil
	case limit > maxListLimit:
		return maxListLimit, nil
	default:
		return limit, nil
	}
}

// refresh re-derives the status of each item for the current clock.
func (uc *implUseCase) refresh(items []stock.StockItem) []stock.StockItem {
	now := uc.now()
	for i := range items {
		items[i].Refresh(now)
	}
	return items
}
