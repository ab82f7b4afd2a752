package usecase

import (
	"context"
	"errors"

	"clinic-backoffice/internal/dispense"
	"clinic-backoffice/internal/dispense/repository"
	"clinic-backoffice/internal/model"
	"clinic-backoffice/internal/stock"
)

// Dispense validates and commits a treatment in one transaction, replaying
// the whole unit when a stock item or the treatment changed underneath it.
func (uc *implUseCase) Dispense(ctx context.Context, treatmentID string) (dispense.DispenseOutput, error) {
	for attempt := 1; ; attempt++ {
		out, err := uc.dispenseOnce(ctx, treatmentID)
		if !errors.Is(err, repository.ErrVersionConflict) {
			return out, err
		}
		if attempt >= uc.maxRetries {
			uc.l.Warnf(ctx, "uc.Dispense: treatment %s still conflicting after %d attempts", treatmentID, attempt)
			return dispense.DispenseOutput{}, dispense.ErrConcurrentUpdate
		}
		uc.l.Infof(ctx, "uc.Dispense: version conflict on treatment %s, retrying (attempt %d)", treatmentID, attempt)
	}
}

func (uc *implUseCase) dispenseOnce(ctx context.Context, treatmentID string) (dispense.DispenseOutput, error) {
	var out dispense.DispenseOutput

	err := uc.repo.InTx(ctx, func(ctx context.Context, tx repository.Repository) error {
		t, err := tx.GetTreatment(ctx, treatmentID)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Dispense GetTreatment: %v", err)
			return err
		}
		if t.ID == "" {
			return dispense.ErrTreatmentNotFound
		}
		if len(t.Lines) == 0 {
			return model.NewValidationError([]string{"medicines"})
		}

		pending := t.PendingLines()
		if len(pending) == 0 {
			return dispense.ErrAlreadyDispensed
		}

		demands := aggregateDemand(pending)
		items, err := tx.GetStockItems(ctx, demandIDs(demands))
		if err != nil {
			uc.l.Errorf(ctx, "uc.Dispense GetStockItems: %v", err)
			return err
		}

		// Validation phase: collect every shortfall before touching anything.
		if shortfalls := findShortfalls(demands, items); len(shortfalls) > 0 {
			return &dispense.InsufficientStockError{Shortfalls: shortfalls}
		}

		// Commit phase.
		now := uc.now()
		for _, d := range demands {
			item := items[d.medicineID]
			remaining := item.Quantity - d.quantity
			err := tx.DecrementStock(ctx, repository.DecrementStockOptions{
				ItemID:          item.ID,
				Quantity:        d.quantity,
				ExpectedVersion: item.Version,
				Status:          stock.DeriveStatus(remaining, item.ExpiryDate, now),
				UpdatedAt:       now,
			})
			if err != nil {
				if !errors.Is(err, repository.ErrVersionConflict) {
					uc.l.Errorf(ctx, "uc.Dispense DecrementStock: %v", err)
				}
				return err
			}
		}

		lineNos := make([]int, len(pending))
		for i, l := range pending {
			lineNos[i] = l.LineNo
		}
		err = tx.SaveDispensedLines(ctx, repository.SaveDispensedLinesOptions{
			TreatmentID:     t.ID,
			LineNos:         lineNos,
			ExpectedVersion: t.Version,
			DispensedAt:     now,
		})
		if err != nil {
			if !errors.Is(err, repository.ErrVersionConflict) {
				uc.l.Errorf(ctx, "uc.Dispense SaveDispensedLines: %v", err)
			}
			return err
		}

		out = dispense.DispenseOutput{TreatmentID: t.ID, DispensedCount: len(pending)}
		return nil
	})
	if err != nil {
		return dispense.DispenseOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Dispense: treatment %s dispensed %d lines", out.TreatmentID, out.DispensedCount)
	return out, nil
}

// Status reports each line of a treatment with its dispensed flag.
func (uc *implUseCase) Status(ctx context.Context, treatmentID string) (dispense.StatusOutput, error) {
	t, err := uc.repo.GetTreatment(ctx, treatmentID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Status GetTreatment: %v", err)
		return dispense.StatusOutput{}, err
	}
	if t.ID == "" {
		return dispense.StatusOutput{}, dispense.ErrTreatmentNotFound
	}

	ids := make([]string, 0, len(t.Lines))
	for _, l := range t.Lines {
		ids = append(ids, l.MedicineID)
	}
	items, err := uc.repo.GetStockItems(ctx, ids)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Status GetStockItems: %v", err)
		return dispense.StatusOutput{}, err
	}
	for i := range t.Lines {
		t.Lines[i].MedicineName = items[t.Lines[i].MedicineID].Name
	}

	return dispense.StatusOutput{Treatment: t, PendingCount: len(t.PendingLines())}, nil
}
