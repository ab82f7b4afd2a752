package repository

import (
	"time"

	"clinic-backoffice/internal/stock"
)

// DecrementStockOptions removes Quantity units from an item read at
// ExpectedVersion and stores the recomputed Status.
type DecrementStockOptions struct {
	ItemID          string
	Quantity        int
	ExpectedVersion int
	Status          stock.Status
	UpdatedAt       time.Time
}

// SaveDispensedLinesOptions marks LineNos of a treatment dispensed at
// DispensedAt in one write of the treatment.
type SaveDispensedLinesOptions struct {
	TreatmentID     string
	LineNos         []int
	ExpectedVersion int
	DispensedAt     time.Time
}
