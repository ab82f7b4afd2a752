package usecase

import (
	"context"
	"errors"
	"strings"

	"clinic-backoffice/internal/stock"
	repo "clinic-backoffice/internal/stock/repository"
)

// applyPatch overlays the present fields of input on item.
func applyPatch(item stock.StockItem, input stock.UpdateItemInput) stock.StockItem {
	if input.Name != nil {
		item.Name = strings.TrimSpace(*input.Name)
	}
	if input.DosageForm != nil {
		item.DosageForm = strings.TrimSpace(*input.DosageForm)
	}
	if input.Unit != nil {
		item.Unit = strings.TrimSpace(*input.Unit)
	}
	if input.Manufacturer != nil {
		item.Manufacturer = strings.TrimSpace(*input.Manufacturer)
	}
	if input.Distributor != nil {
		item.Distributor = strings.TrimSpace(*input.Distributor)
	}
	if input.Category != nil {
		item.Category = strings.TrimSpace(*input.Category)
	}
	if input.Quantity != nil {
		item.Quantity = *input.Quantity
	}
	if input.MinQuantity != nil {
		item.MinQuantity = *input.MinQuantity
	}
	return item
}

// translateRepoErr maps storage sentinels that carry domain meaning.
func translateRepoErr(err error) error {
	switch {
	case errors.Is(err, repo.ErrDuplicate):
		return stock.ErrDuplicateName
	case errors.Is(err, repo.ErrVersionConflict):
		return stock.ErrConcurrentUpdate
	default:
		return err
	}
}

// attachRequesterNames fills RequesterName from the staff directory, going
// to storage only for ids missing from the cache.
func (uc *implUseCase) attachRequesterNames(ctx context.Context, requests []stock.RestockRequest) {
	var missing []string
	seen := make(map[string]bool)
	for _, r := range requests {
		if r.RequestedBy == "" || seen[r.RequestedBy] {
			continue
		}
		seen[r.RequestedBy] = true
		if _, ok := uc.staffName.Get(r.RequestedBy); !ok {
			missing = append(missing, r.RequestedBy)
		}
	}

	if len(missing) > 0 {
		names, err := uc.repo.GetStaffNames(ctx, missing)
		if err != nil {
			// Names are decoration; the listing still succeeds without them.
			uc.l.Warnf(ctx, "uc.attachRequesterNames GetStaffNames: %v", err)
		}
		for id, name := range names {
			uc.staffName.Add(id, name)
		}
	}

	for i := range requests {
		if name, ok := uc.staffName.Get(requests[i].RequestedBy); ok {
			requests[i].RequesterName = name
		}
	}
}
