package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"clinic-backoffice/internal/stock/repository"
	"clinic-backoffice/pkg/log"
)

const (
	defaultStaffNameCacheSize = 256
	defaultStaffNameTTL       = 10 * time.Minute
)

// Config tunes the stock usecase.
type Config struct {
	StaffNameCacheSize int
	StaffNameTTL       time.Duration
}

// implUseCase is the private implementation of stock.UseCase.
type implUseCase struct {
	l         log.Logger
	repo      repository.Repository
	staffName *expirable.LRU[string, string]
	now       func() time.Time
}

// New creates a new stock UseCase implementation.
func New(l log.Logger, repo repository.Repository, cfg Config) *implUseCase {
	size := cfg.StaffNameCacheSize
	if size <= 0 {
		size = defaultStaffNameCacheSize
	}
	ttl := cfg.StaffNameTTL
	if ttl <= 0 {
		ttl = defaultStaffNameTTL
	}

	return &implUseCase{
		l:         l,
		repo:      repo,
		staffName: expirable.NewLRU[string, string](size, nil, ttl),
		now:       func() time.Time { return time.Now().UTC() },
	}
}
