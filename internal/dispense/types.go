package dispense

import "time"

// Line is one prescribed medicine of a treatment.
type Line struct {
	LineNo      int
	MedicineID  string
	Quantity    int
	Usage       string
	Dispensed   bool
	DispensedAt time.Time
	// MedicineName is resolved from the stock item when reading status.
	MedicineName string
}

// Treatment is the slice of a clinical treatment record the engine works
// on. The record itself is owned by the treatment-management service.
type Treatment struct {
	ID          string
	PatientName string
	Lines       []Line
	Version     int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PendingLines returns the lines not yet dispensed.
func (t Treatment) PendingLines() []Line {
	var pending []Line
	for _, l := range t.Lines {
		if !l.Dispensed {
			pending = append(pending, l)
		}
	}
	return pending
}

// Shortfall is the gap between what a treatment needs from one stock item
// and what the item holds.
type Shortfall struct {
	MedicineID string
	Name       string
	Required   int
	Available  int
}

// --- UseCase Outputs ---

type DispenseOutput struct {
	TreatmentID    string
	DispensedCount int
}

type StatusOutput struct {
	Treatment    Treatment
	PendingCount int
}
