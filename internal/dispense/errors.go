package dispense

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrTreatmentNotFound = errors.New("treatment not found")
	ErrAlreadyDispensed  = errors.New("every medicine of the treatment is already dispensed")
	ErrConcurrentUpdate  = errors.New("stock changed concurrently too many times, retry the dispense")
)

// InsufficientStockError lists every stock item that cannot cover the
// treatment. Nothing is changed when it is returned.
type InsufficientStockError struct {
	Shortfalls []Shortfall
}

func (e *InsufficientStockError) Error() string {
	parts := make([]string, len(e.Shortfalls))
	for i, s := range e.Shortfalls {
		parts[i] = fmt.Sprintf("%s (required %d, available %d)", s.Name, s.Required, s.Available)
	}
	return "insufficient stock: " + strings.Join(parts, "; ")
}
