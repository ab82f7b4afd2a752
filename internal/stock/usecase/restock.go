package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"clinic-backoffice/internal/stock"
	repo "clinic-backoffice/internal/stock/repository"
	"clinic-backoffice/pkg/paginator"
)

// CreateRestockRequest appends a pending request to an item. The item's
// quantity is left untouched.
func (uc *implUseCase) CreateRestockRequest(ctx context.Context, input stock.CreateRestockRequestInput) (stock.RestockRequestOutput, error) {
	if _, err := uc.getItem(ctx, input.ItemID); err != nil {
		return stock.RestockRequestOutput{}, err
	}

	priority, err := validateRestock(input)
	if err != nil {
		return stock.RestockRequestOutput{}, err
	}

	now := uc.now()
	req, err := uc.repo.CreateRestockRequest(ctx, repo.CreateRestockRequestOptions{
		Request: stock.RestockRequest{
			ID:          uuid.NewString(),
			ItemID:      input.ItemID,
			RequestedBy: strings.TrimSpace(input.RequestedBy),
			Quantity:    input.Quantity,
			Priority:    priority,
			Reason:      strings.TrimSpace(input.Reason),
			Note:        strings.TrimSpace(input.Note),
			Status:      stock.RequestPending,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateRestockRequest CreateRestockRequest: %v", err)
		return stock.RestockRequestOutput{}, err
	}

	reqs := []stock.RestockRequest{req}
	uc.attachRequesterNames(ctx, reqs)
	return stock.RestockRequestOutput{Request: reqs[0]}, nil
}

// ListRestockRequests returns requests across all items, newest first.
func (uc *implUseCase) ListRestockRequests(ctx context.Context, input stock.ListRestockRequestsInput) (stock.ListRestockRequestsOutput, error) {
	status := stock.RequestStatus(strings.TrimSpace(input.Status))
	input.Paginate.Adjust()

	requests, total, err := uc.repo.ListRestockRequests(ctx, repo.ListRestockRequestsOptions{
		Status: string(status),
		Limit:  input.Paginate.Limit,
		Offset: input.Paginate.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListRestockRequests ListRestockRequests: %v", err)
		return stock.ListRestockRequestsOutput{}, err
	}

	uc.attachRequesterNames(ctx, requests)
	return stock.ListRestockRequestsOutput{
		Requests:  requests,
		Paginator: paginator.New(input.Paginate, total, len(requests)),
	}, nil
}

// UpdateRestockRequestStatus moves a request through its lifecycle.
func (uc *implUseCase) UpdateRestockRequestStatus(ctx context.Context, input stock.UpdateRestockRequestStatusInput) (stock.RestockRequestOutput, error) {
	status := stock.RequestStatus(strings.TrimSpace(input.Status))

	if _, err := uc.getItem(ctx, input.ItemID); err != nil {
		return stock.RestockRequestOutput{}, err
	}

	current, err := uc.repo.GetOneRestockRequest(ctx, repo.GetOneRestockRequestOptions{
		ID:     input.RequestID,
		ItemID: input.ItemID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateRestockRequestStatus GetOneRestockRequest: %v", err)
		return stock.RestockRequestOutput{}, err
	}
	if current.ID == "" {
		return stock.RestockRequestOutput{}, stock.ErrRequestNotFound
	}

	if err := stock.CheckTransition(current.Status, status); err != nil {
		return stock.RestockRequestOutput{}, err
	}

	req, err := uc.repo.UpdateRestockRequestStatus(ctx, repo.UpdateRestockRequestStatusOptions{
		ID:              current.ID,
		ItemID:          current.ItemID,
		Status:          status,
		ExpectedVersion: current.Version,
		UpdatedAt:       uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateRestockRequestStatus UpdateRestockRequestStatus: %v", err)
		return stock.RestockRequestOutput{}, translateRepoErr(err)
	}

	reqs := []stock.RestockRequest{req}
	uc.attachRequesterNames(ctx, reqs)
	return stock.RestockRequestOutput{Request: reqs[0]}, nil
}
