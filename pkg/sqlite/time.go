package sqlite

import "time"

// TimeLayout is the fixed-width UTC layout every timestamp column uses, so
// that string comparison in SQL orders the same way time.Time does.
const TimeLayout = "2006-01-02T15:04:05.000Z"

// FormatTime renders t for storage.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// ParseTime reads a value written by FormatTime.
func ParseTime(s string) (time.Time, error) {
	return time.Parse(TimeLayout, s)
}

// FormatNullTime renders t for storage, or nil for the zero time.
func FormatNullTime(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := FormatTime(t)
	return &s
}
