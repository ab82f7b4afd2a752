package stock

import "errors"

var (
	ErrItemNotFound      = errors.New("stock item not found")
	ErrDuplicateName     = errors.New("stock item name already exists")
	ErrRequestNotFound   = errors.New("restock request not found")
	ErrInvalidTransition = errors.New("restock request status transition not allowed")
	ErrConcurrentUpdate  = errors.New("stock record was modified concurrently, retry the operation")
)
