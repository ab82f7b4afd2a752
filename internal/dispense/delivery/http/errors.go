package http

import (
	"errors"
	"net/http"

	"clinic-backoffice/internal/dispense"
	"clinic-backoffice/internal/model"
	pkgErrors "clinic-backoffice/pkg/errors"
)

var (
	errTreatmentNotFound = pkgErrors.NewHTTPError(http.StatusNotFound, pkgErrors.KindNotFound, "treatment not found")
	errAlreadyDispensed  = pkgErrors.NewHTTPError(http.StatusConflict, pkgErrors.KindAlreadyDispensed, "every medicine of the treatment is already dispensed")
	errConcurrentUpdate  = pkgErrors.NewHTTPError(http.StatusConflict, pkgErrors.KindConflict, "stock changed concurrently, retry the dispense")
	errInsufficientStock = pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, pkgErrors.KindInsufficientStock, "insufficient stock")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	var vErr *model.ValidationError
	var stockErr *dispense.InsufficientStockError
	switch {
	case errors.As(err, &vErr):
		return pkgErrors.NewValidationError(vErr.Error(), vErr.Fields)
	case errors.As(err, &stockErr):
		return errInsufficientStock.WithDetails(newShortfallsResp(stockErr.Shortfalls))
	case errors.Is(err, dispense.ErrTreatmentNotFound):
		return errTreatmentNotFound
	case errors.Is(err, dispense.ErrAlreadyDispensed):
		return errAlreadyDispensed
	case errors.Is(err, dispense.ErrConcurrentUpdate):
		return errConcurrentUpdate
	default:
		return pkgErrors.ErrInternalServerError
	}
}
