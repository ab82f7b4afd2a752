package http

import (
	"clinic-backoffice/internal/report"
	"clinic-backoffice/pkg/log"
)

type handler struct {
	l  log.Logger
	uc report.UseCase
}

// New creates a new HTTP handler for the reporting layer.
func New(l log.Logger, uc report.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
