package stock

// CheckTransition enforces the restock lifecycle: completed is terminal and
// a rejected request can only be reopened. Any other move is allowed.
func CheckTransition(from, to RequestStatus) error {
	switch from {
	case RequestCompleted:
		return ErrInvalidTransition
	case RequestRejected:
		if to != RequestPending {
			return ErrInvalidTransition
		}
	}
	return nil
}
