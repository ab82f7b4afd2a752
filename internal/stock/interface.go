package stock

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Stock items
	Create(ctx context.Context, input CreateItemInput) (CreateItemOutput, error)
	Update(ctx context.Context, input UpdateItemInput) (UpdateItemOutput, error)
	Detail(ctx context.Context, id string) (DetailItemOutput, error)
	List(ctx context.Context, input ListItemsInput) (ListItemsOutput, error)
	ListCategories(ctx context.Context) ([]string, error)

	// Restock requests
	CreateRestockRequest(ctx context.Context, input CreateRestockRequestInput) (RestockRequestOutput, error)
	ListRestockRequests(ctx context.Context, input ListRestockRequestsInput) (ListRestockRequestsOutput, error)
	UpdateRestockRequestStatus(ctx context.Context, input UpdateRestockRequestStatusInput) (RestockRequestOutput, error)
}
