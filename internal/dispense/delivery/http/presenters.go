package http

import (
	"time"

	"clinic-backoffice/internal/dispense"
)

type dispenseResp struct {
	TreatmentID    string `json:"treatment_id"`
	DispensedCount int    `json:"dispensed_count"`
}

func (h *handler) newDispenseResp(out dispense.DispenseOutput) dispenseResp {
	return dispenseResp{TreatmentID: out.TreatmentID, DispensedCount: out.DispensedCount}
}

type shortfallResp struct {
	MedicineID string `json:"medicine_id"`
	Name       string `json:"name"`
	Required   int    `json:"required"`
	Available  int    `json:"available"`
}

func newShortfallsResp(shortfalls []dispense.Shortfall) []shortfallResp {
	out := make([]shortfallResp, len(shortfalls))
	for i, s := range shortfalls {
		out[i] = shortfallResp{MedicineID: s.MedicineID, Name: s.Name, Required: s.Required, Available: s.Available}
	}
	return out
}

type lineResp struct {
	LineNo       int        `json:"line_no"`
	MedicineID   string     `json:"medicine_id"`
	MedicineName string     `json:"medicine_name,omitempty"`
	Quantity     int        `json:"quantity"`
	Usage        string     `json:"usage,omitempty"`
	Dispensed    bool       `json:"dispensed"`
	DispensedAt  *time.Time `json:"dispensed_at,omitempty"`
}

type statusResp struct {
	TreatmentID  string     `json:"treatment_id"`
	PatientName  string     `json:"patient_name,omitempty"`
	PendingCount int        `json:"pending_count"`
	Lines        []lineResp `json:"lines"`
}

func (h *handler) newStatusResp(out dispense.StatusOutput) statusResp {
	lines := make([]lineResp, len(out.Treatment.Lines))
	for i, l := range out.Treatment.Lines {
		lines[i] = lineResp{
			LineNo:       l.LineNo,
			MedicineID:   l.MedicineID,
			MedicineName: l.MedicineName,
			Quantity:     l.Quantity,
			Usage:        l.Usage,
			Dispensed:    l.Dispensed,
		}
		if !l.DispensedAt.IsZero() {
			at := l.DispensedAt
			lines[i].DispensedAt = &at
		}
	}
	return statusResp{
		TreatmentID:  out.Treatment.ID,
		PatientName:  out.Treatment.PatientName,
		PendingCount: out.PendingCount,
		Lines:        lines,
	}
}
