package http

import (
	"errors"

	"clinic-backoffice/internal/model"
	pkgErrors "clinic-backoffice/pkg/errors"
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	var vErr *model.ValidationError
	if errors.As(err, &vErr) {
		return pkgErrors.NewValidationError(vErr.Error(), vErr.Fields)
	}
	return pkgErrors.ErrInternalServerError
}
