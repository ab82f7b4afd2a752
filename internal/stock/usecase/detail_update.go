package usecase

import (
	"context"

	"clinic-backoffice/internal/stock"
	repo "clinic-backoffice/internal/stock/repository"
)

// Detail retrieves a single item by ID. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (stock.DetailItemOutput, error) {
	item, err := uc.getItem(ctx, id)
	if err != nil {
		return stock.DetailItemOutput{}, err
	}
	item.Refresh(uc.now())
	return stock.DetailItemOutput{Item: item}, nil
}

// Update patches an existing item and recomputes its status.
func (uc *implUseCase) Update(ctx context.Context, input stock.UpdateItemInput) (stock.UpdateItemOutput, error) {
	expiry, err := validateUpdate(input)
	if err != nil {
		return stock.UpdateItemOutput{}, err
	}

	existing, err := uc.getItem(ctx, input.ID)
	if err != nil {
		return stock.UpdateItemOutput{}, err
	}

	item := applyPatch(existing, input)
	if input.ExpiryDate != nil {
		item.ExpiryDate = expiry
	}

	if stock.NameKey(item.Name) != stock.NameKey(existing.Name) {
		clash, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{
			NameKey:   stock.NameKey(item.Name),
			ExcludeID: item.ID,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Update GetOneItem: %v", err)
			return stock.UpdateItemOutput{}, err
		}
		if clash.ID != "" {
			return stock.UpdateItemOutput{}, stock.ErrDuplicateName
		}
	}

	now := uc.now()
	item.UpdatedAt = now
	item.Refresh(now)

	item, err = uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{Item: item, ExpectedVersion: existing.Version})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateItem: %v", err)
		return stock.UpdateItemOutput{}, translateRepoErr(err)
	}
	return stock.UpdateItemOutput{Item: item}, nil
}

func (uc *implUseCase) getItem(ctx context.Context, id string) (stock.StockItem, error) {
	if id == "" {
		return stock.StockItem{}, stock.ErrItemNotFound
	}
	item, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.getItem GetOneItem: %v", err)
		return stock.StockItem{}, err
	}
	if item.ID == "" {
		return stock.StockItem{}, stock.ErrItemNotFound
	}
	return item, nil
}
