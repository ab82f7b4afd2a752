package usecase

import (
	"context"
	"strings"

	"clinic-backoffice/internal/stock"
	repo "clinic-backoffice/internal/stock/repository"
	"clinic-backoffice/pkg/paginator"
)

// List returns a page of items, optionally filtered by search text and category.
func (uc *implUseCase) List(ctx context.Context, input stock.ListItemsInput) (stock.ListItemsOutput, error) {
	input.Paginate.Adjust()

	items, total, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{
		Search:   strings.TrimSpace(input.Search),
		Category: strings.TrimSpace(input.Category),
		Limit:    input.Paginate.Limit,
		Offset:   input.Paginate.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListItems: %v", err)
		return stock.ListItemsOutput{}, err
	}

	now := uc.now()
	for i := range items {
		items[i].Refresh(now)
	}

	return stock.ListItemsOutput{
		Items:     items,
		Paginator: paginator.New(input.Paginate, total, len(items)),
	}, nil
}

// ListCategories returns the distinct item categories.
func (uc *implUseCase) ListCategories(ctx context.Context) ([]string, error) {
	categories, err := uc.repo.ListCategories(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListCategories ListCategories: %v", err)
		return nil, err
	}
	return categories, nil
}
