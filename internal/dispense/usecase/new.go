package usecase

import (
	"time"

	"clinic-backoffice/internal/dispense/repository"
	"clinic-backoffice/pkg/log"
)

const defaultMaxRetries = 3

// implUseCase is the private implementation of dispense.UseCase.
type implUseCase struct {
	l          log.Logger
	repo       repository.Repository
	maxRetries int
	now        func() time.Time
}

// New creates a dispense UseCase. maxRetries bounds how often a dispense is
// replayed after losing an optimistic-concurrency race.
func New(l log.Logger, repo repository.Repository, maxRetries int) *implUseCase {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	return &implUseCase{
		l:          l,
		repo:       repo,
		maxRetries: maxRetries,
		now:        func() time.Time { return time.Now().UTC() },
	}
}
