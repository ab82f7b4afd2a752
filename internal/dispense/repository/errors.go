package repository

import "errors"

var (
	ErrFailedToGet     = errors.New("failed to get record")
	ErrFailedToUpdate  = errors.New("failed to update record")
	ErrFailedToBegin   = errors.New("failed to begin transaction")
	ErrFailedToCommit  = errors.New("failed to commit transaction")
	ErrVersionConflict = errors.New("record version conflict")
)
