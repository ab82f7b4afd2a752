package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"clinic-backoffice/internal/stock"
	repo "clinic-backoffice/internal/stock/repository"
)

// Create registers a new stock item after checking name uniqueness.
func (uc *implUseCase) Create(ctx context.Context, input stock.CreateItemInput) (stock.CreateItemOutput, error) {
	expiry, err := validateCreate(input)
	if err != nil {
		return stock.CreateItemOutput{}, err
	}

	name := strings.TrimSpace(input.Name)
	existing, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{NameKey: stock.NameKey(name)})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create GetOneItem: %v", err)
		return stock.CreateItemOutput{}, err
	}
	if existing.ID != "" {
		return stock.CreateItemOutput{}, stock.ErrDuplicateName
	}

	now := uc.now()
	item := stock.StockItem{
		ID:           uuid.NewString(),
		Name:         name,
		DosageForm:   strings.TrimSpace(input.DosageForm),
		Unit:         strings.TrimSpace(input.Unit),
		Manufacturer: strings.TrimSpace(input.Manufacturer),
		Distributor:  strings.TrimSpace(input.Distributor),
		Category:     strings.TrimSpace(input.Category),
		ExpiryDate:   expiry,
		Quantity:     input.Quantity,
		MinQuantity:  input.MinQuantity,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	item.Refresh(now)

	item, err = uc.repo.CreateItem(ctx, repo.CreateItemOptions{Item: item})
	if err != nil {
		err = translateRepoErr(err)
		if err != stock.ErrDuplicateName {
			uc.l.Errorf(ctx, "uc.Create CreateItem: %v", err)
		}
		return stock.CreateItemOutput{}, err
	}

	return stock.CreateItemOutput{Item: item}, nil
}
