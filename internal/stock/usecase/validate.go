package usecase

import (
	"strings"
	"time"

	"clinic-backoffice/internal/model"
	"clinic-backoffice/internal/stock"
)

// Request shape (required fields, numeric ranges, enums) is enforced by the
// binding tags on the HTTP request DTOs. What is left here is whitespace-only
// text and the expiry date format.

const dateLayout = "2006-01-02"

// parseExpiry accepts a calendar date or a full RFC 3339 timestamp.
func parseExpiry(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), true
	}
	return time.Time{}, false
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// validateCreate collects every offending field of a new item.
func validateCreate(input stock.CreateItemInput) (time.Time, error) {
	var fields []string
	if blank(input.Name) {
		fields = append(fields, "name")
	}
	if blank(input.DosageForm) {
		fields = append(fields, "dosage_form")
	}
	if blank(input.Unit) {
		fields = append(fields, "unit")
	}
	if blank(input.Manufacturer) {
		fields = append(fields, "manufacturer")
	}
	expiry, ok := parseExpiry(input.ExpiryDate)
	if !ok {
		fields = append(fields, "expiry_date")
	}
	return expiry, model.NewValidationError(fields)
}

// validateUpdate checks only the fields present in the patch. The parsed
// expiry is zero when the patch leaves it untouched.
func validateUpdate(input stock.UpdateItemInput) (time.Time, error) {
	var fields []string
	if input.Name != nil && blank(*input.Name) {
		fields = append(fields, "name")
	}
	if input.DosageForm != nil && blank(*input.DosageForm) {
		fields = append(fields, "dosage_form")
	}
	if input.Unit != nil && blank(*input.Unit) {
		fields = append(fields, "unit")
	}
	if input.Manufacturer != nil && blank(*input.Manufacturer) {
		fields = append(fields, "manufacturer")
	}
	var expiry time.Time
	if input.ExpiryDate != nil {
		var ok bool
		if expiry, ok = parseExpiry(*input.ExpiryDate); !ok {
			fields = append(fields, "expiry_date")
		}
	}
	return expiry, model.NewValidationError(fields)
}

// validateRestock collects every offending field of a new restock request
// and returns the resolved priority.
func validateRestock(input stock.CreateRestockRequestInput) (stock.Priority, error) {
	var fields []string
	if blank(input.RequestedBy) {
		fields = append(fields, "requested_by")
	}
	if blank(input.Reason) {
		fields = append(fields, "reason")
	}
	priority := stock.Priority(strings.TrimSpace(input.Priority))
	if priority == "" {
		priority = stock.PriorityMedium
	}
	return priority, model.NewValidationError(fields)
}
