package http

import (
	"errors"
	"net/http"

	"clinic-backoffice/internal/model"
	"clinic-backoffice/internal/stock"
	pkgErrors "clinic-backoffice/pkg/errors"
)

var (
	errItemNotFound      = pkgErrors.NewHTTPError(http.StatusNotFound, pkgErrors.KindNotFound, "stock item not found")
	errRequestNotFound   = pkgErrors.NewHTTPError(http.StatusNotFound, pkgErrors.KindNotFound, "restock request not found")
	errDuplicateName     = pkgErrors.NewHTTPError(http.StatusConflict, pkgErrors.KindConflict, "stock item name already exists")
	errConcurrentUpdate  = pkgErrors.NewHTTPError(http.StatusConflict, pkgErrors.KindConflict, "stock record was modified concurrently, retry the operation")
	errInvalidTransition = pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, pkgErrors.KindInvalidTransition, "restock request status transition not allowed")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	var vErr *model.ValidationError
	switch {
	case errors.As(err, &vErr):
		return pkgErrors.NewValidationError(vErr.Error(), vErr.Fields)
	case errors.Is(err, stock.ErrItemNotFound):
		return errItemNotFound
	case errors.Is(err, stock.ErrRequestNotFound):
		return errRequestNotFound
	case errors.Is(err, stock.ErrDuplicateName):
		return errDuplicateName
	case errors.Is(err, stock.ErrConcurrentUpdate):
		return errConcurrentUpdate
	case errors.Is(err, stock.ErrInvalidTransition):
		return errInvalidTransition
	default:
		return pkgErrors.ErrInternalServerError
	}
}
