package repository

import "errors"

var (
	ErrFailedToGet  = errors.New("failed to get report")
	ErrFailedToList = errors.New("failed to list report rows")
)
