package repository

import "time"

// DashboardOptions carries the clock and thresholds the summary depends on.
type DashboardOptions struct {
	Now         time.Time
	LowStock    int
	UrgentRatio float64
}

// ThresholdListOptions selects items against the effective minimum
// max(min_quantity, LowStock).
type ThresholdListOptions struct {
	LowStock    int
	UrgentRatio float64
	Limit       int
}

// NearExpiryOptions selects items with From <= expiry_date <= To.
type NearExpiryOptions struct {
	From time.Time
	To   time.Time
}

type TrackingOptions struct {
	Search string
	Limit  int
	Offset int
}
