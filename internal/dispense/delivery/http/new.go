package http

import (
	"clinic-backoffice/internal/dispense"
	"clinic-backoffice/pkg/log"
)

type handler struct {
	l  log.Logger
	uc dispense.UseCase
}

// New creates a new HTTP handler for the dispense engine.
func New(l log.Logger, uc dispense.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
