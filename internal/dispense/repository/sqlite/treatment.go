package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"clinic-backoffice/internal/dispense"
	"clinic-backoffice/internal/dispense/repository"
	"clinic-backoffice/pkg/sqlite"
)

type treatmentRow struct {
	ID          string `db:"id"`
	PatientName string `db:"patient_name"`
	Version     int    `db:"version"`
	CreatedAt   string `db:"created_at"`
	UpdatedAt   string `db:"updated_at"`
}

type lineRow struct {
	LineNo      int            `db:"line_no"`
	MedicineID  string         `db:"medicine_id"`
	Quantity    int            `db:"quantity"`
	Usage       string         `db:"usage"`
	Dispensed   bool           `db:"dispensed"`
	DispensedAt sql.NullString `db:"dispensed_at"`
}

// GetTreatment loads a treatment with its medicine lines in line order.
func (r *implRepository) GetTreatment(ctx context.Context, id string) (dispense.Treatment, error) {
	var row treatmentRow
	err := r.q.GetContext(ctx, &row,
		`SELECT id, patient_name, version, created_at, updated_at FROM treatments WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return dispense.Treatment{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetTreatment"), err)
		return dispense.Treatment{}, repository.ErrFailedToGet
	}

	var lines []lineRow
	err = r.q.SelectContext(ctx, &lines, `
		SELECT line_no, medicine_id, quantity, usage, dispensed, dispensed_at
		FROM treatment_medicines
		WHERE treatment_id = ?
		ORDER BY line_no ASC`, id)
	if err != nil {
		r.l.Errorf(ctx, "%s lines: %v", r.dsn("GetTreatment"), err)
		return dispense.Treatment{}, repository.ErrFailedToGet
	}

	t, err := toTreatment(row, lines)
	if err != nil {
		r.l.Errorf(ctx, "%s toTreatment: %v", r.dsn("GetTreatment"), err)
		return dispense.Treatment{}, repository.ErrFailedToGet
	}
	return t, nil
}

func toTreatment(row treatmentRow, lines []lineRow) (dispense.Treatment, error) {
	createdAt, err := sqlite.ParseTime(row.CreatedAt)
	if err != nil {
		return dispense.Treatment{}, err
	}
	updatedAt, err := sqlite.ParseTime(row.UpdatedAt)
	if err != nil {
		return dispense.Treatment{}, err
	}

	t := dispense.Treatment{
		ID:          row.ID,
		PatientName: row.PatientName,
		Version:     row.Version,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
		Lines:       make([]dispense.Line, 0, len(lines)),
	}
	for _, l := range lines {
		line := dispense.Line{
			LineNo:     l.LineNo,
			MedicineID: l.MedicineID,
			Quantity:   l.Quantity,
			Usage:      l.Usage,
			Dispensed:  l.Dispensed,
		}
		if l.DispensedAt.Valid {
			if line.DispensedAt, err = sqlite.ParseTime(l.DispensedAt.String); err != nil {
				return dispense.Treatment{}, err
			}
		}
		t.Lines = append(t.Lines, line)
	}
	return t, nil
}

// SaveDispensedLines bumps the treatment version, then flags the lines.
func (r *implRepository) SaveDispensedLines(ctx context.Context, opt repository.SaveDispensedLinesOptions) error {
	at := sqlite.FormatTime(opt.DispensedAt)

	res, err := r.q.ExecContext(ctx,
		`UPDATE treatments SET version = version + 1, updated_at = ? WHERE id = ? AND version = ?`,
		at, opt.TreatmentID, opt.ExpectedVersion)
	if err != nil {
		r.l.Errorf(ctx, "%s treatment: %v", r.dsn("SaveDispensedLines"), err)
		return repository.ErrFailedToUpdate
	}
	if err := r.expectOneRow(ctx, res, "SaveDispensedLines"); err != nil {
		return err
	}

	for _, lineNo := range opt.LineNos {
		res, err := r.q.ExecContext(ctx, `
			UPDATE treatment_medicines SET dispensed = 1, dispensed_at = ?
			WHERE treatment_id = ? AND line_no = ? AND dispensed = 0`,
			at, opt.TreatmentID, lineNo)
		if err != nil {
			r.l.Errorf(ctx, "%s line %d: %v", r.dsn("SaveDispensedLines"), lineNo, err)
			return repository.ErrFailedToUpdate
		}
		if err := r.expectOneRow(ctx, res, "SaveDispensedLines"); err != nil {
			return err
		}
	}
	return nil
}

// expectOneRow turns a zero-row write into ErrVersionConflict.
func (r *implRepository) expectOneRow(ctx context.Context, res sql.Result, method string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s RowsAffected: %v", r.dsn(method), err)
		return repository.ErrFailedToUpdate
	}
	if affected == 0 {
		return repository.ErrVersionConflict
	}
	return nil
}
