package usecase

import (
	"time"

	"clinic-backoffice/internal/report/repository"
	"clinic-backoffice/internal/stock"
	"clinic-backoffice/pkg/log"
)

const (
	defaultNearExpiryDays = 30
	defaultListLimit      = 10
	maxListLimit          = 100
)

// Config tunes thresholds and default windows of the reports.
type Config struct {
	Thresholds     stock.Thresholds
	NearExpiryDays int
	LowStockLimit  int
}

// implUseCase is the private implementation of report.UseCase.
type implUseCase struct {
	l    log.Logger
	repo repository.Repository
	cfg  Config
	now  func() time.Time
}

// New creates a report UseCase. Zero config values fall back to defaults.
func New(l log.Logger, repo repository.Repository, cfg Config) *implUseCase {
	if cfg.Thresholds.LowStock <= 0 {
		cfg.Thresholds.LowStock = stock.DefaultThresholds.LowStock
	}
	if cfg.Thresholds.UrgentRatio <= 0 {
		cfg.Thresholds.UrgentRatio = stock.DefaultThresholds.UrgentRatio
	}
	if cfg.NearExpiryDays <= 0 {
		cfg.NearExpiryDays = defaultNearExpiryDays
	}
	if cfg.LowStockLimit <= 0 {
		cfg.LowStockLimit = defaultListLimit
	}
	return &implUseCase{
		l:    l,
		repo: repo,
		cfg:  cfg,
		now:  func() time.Time { return time.Now().UTC() },
	}
}
