package http

import (
	"clinic-backoffice/internal/stock"
	pkgErrors "clinic-backoffice/pkg/errors"
	"clinic-backoffice/pkg/log"
)

type handler struct {
	l  log.Logger
	uc stock.UseCase
}

// New creates a new HTTP handler for the stock domain.
func New(l log.Logger, uc stock.UseCase) *handler {
	pkgErrors.UseRequestFieldNames()
	return &handler{
		l:  l,
		uc: uc,
	}
}
