package model

import (
	"fmt"
	"strings"
)

// ValidationError reports every missing or invalid input field at once.
type ValidationError struct {
	Fields []string
}

// NewValidationError returns nil when fields is empty.
func NewValidationError(fields []string) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing or invalid fields: %s", strings.Join(e.Fields, ", "))
}
