package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-backoffice/internal/model"
	"clinic-backoffice/internal/stock"
)

func TestCreateRestockRequest(t *testing.T) {
	ctx := context.Background()
	r := newMemRepo()
	r.staff["staff-1"] = "Nguyễn Văn An"
	uc := newTestUseCase(r)
	item, err := uc.Create(ctx, validCreateInput("Paracetamol"))
	require.NoError(t, err)

	t.Run("unknown item", func(t *testing.T) {
		_, err := uc.CreateRestockRequest(ctx, stock.CreateRestockRequestInput{ItemID: "nope", RequestedBy: "staff-1", Quantity: 1, Reason: "low"})
		assert.ErrorIs(t, err, stock.ErrItemNotFound)
	})

	t.Run("defaults to medium priority and pending", func(t *testing.T) {
		out, err := uc.CreateRestockRequest(ctx, stock.CreateRestockRequestInput{
			ItemID:      item.Item.ID,
			RequestedBy: "staff-1",
			Quantity:    100,
			Reason:      " running low ",
		})
		require.NoError(t, err)
		assert.Equal(t, stock.PriorityMedium, out.Request.Priority)
		assert.Equal(t, stock.RequestPending, out.Request.Status)
		assert.Equal(t, "running low", out.Request.Reason)
		assert.Equal(t, "Paracetamol", out.Request.ItemName)
		assert.Equal(t, 40, out.Request.ItemQuantity)
		assert.Equal(t, "Nguyễn Văn An", out.Request.RequesterName)

		detail, err := uc.Detail(ctx, item.Item.ID)
		require.NoError(t, err)
		assert.Equal(t, 40, detail.Item.Quantity)
	})

	t.Run("blank requester and reason", func(t *testing.T) {
		_, err := uc.CreateRestockRequest(ctx, stock.CreateRestockRequestInput{
			ItemID:   item.Item.ID,
			Quantity: 3,
			Reason:   "   ",
		})
		var vErr *model.ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, []string{"requested_by", "reason"}, vErr.Fields)
	})
}

func TestListRestockRequests(t *testing.T) {
	ctx := context.Background()
	r := newMemRepo()
	r.staff["staff-1"] = "Trần Thị Bình"
	uc := newTestUseCase(r)
	item, err := uc.Create(ctx, validCreateInput("Paracetamol"))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		uc.now = func() time.Time { return testNow.Add(time.Duration(i) * time.Minute) }
		_, err := uc.CreateRestockRequest(ctx, stock.CreateRestockRequestInput{
			ItemID: item.Item.ID, RequestedBy: "staff-1", Quantity: i + 1, Reason: "low",
		})
		require.NoError(t, err)
	}
	callsAfterCreate := r.staffCalls

	out, err := uc.ListRestockRequests(ctx, stock.ListRestockRequestsInput{Status: "pending"})
	require.NoError(t, err)
	require.Len(t, out.Requests, 3)
	assert.Equal(t, 3, out.Requests[0].Quantity, "newest first")
	assert.Equal(t, "Trần Thị Bình", out.Requests[2].RequesterName)
	assert.Equal(t, callsAfterCreate, r.staffCalls, "names served from cache")

	out, err = uc.ListRestockRequests(ctx, stock.ListRestockRequestsInput{Status: "completed"})
	require.NoError(t, err)
	assert.Empty(t, out.Requests)
}

func TestUpdateRestockRequestStatus(t *testing.T) {
	ctx := context.Background()
	r := newMemRepo()
	uc := newTestUseCase(r)
	item, err := uc.Create(ctx, validCreateInput("Paracetamol"))
	require.NoError(t, err)

	newRequest := func(t *testing.T) stock.RestockRequest {
		out, err := uc.CreateRestockRequest(ctx, stock.CreateRestockRequestInput{
			ItemID: item.Item.ID, RequestedBy: "staff-1", Quantity: 10, Reason: "low",
		})
		require.NoError(t, err)
		return out.Request
	}
	set := func(req stock.RestockRequest, status string) (stock.RestockRequestOutput, error) {
		return uc.UpdateRestockRequestStatus(ctx, stock.UpdateRestockRequestStatusInput{
			ItemID: req.ItemID, RequestID: req.ID, Status: status,
		})
	}

	t.Run("reject then only pending", func(t *testing.T) {
		req := newRequest(t)
		_, err := set(req, "reject")
		require.NoError(t, err)
		_, err = set(req, "accept")
		assert.ErrorIs(t, err, stock.ErrInvalidTransition)
		out, err := set(req, "pending")
		require.NoError(t, err)
		assert.Equal(t, stock.RequestPending, out.Request.Status)
	})

	t.Run("completed is terminal", func(t *testing.T) {
		req := newRequest(t)
		_, err := set(req, "accept")
		require.NoError(t, err)
		_, err = set(req, "completed")
		require.NoError(t, err)
		_, err = set(req, "pending")
		assert.ErrorIs(t, err, stock.ErrInvalidTransition)
	})

	t.Run("unknown request", func(t *testing.T) {
		_, err := set(stock.RestockRequest{ItemID: item.Item.ID, ID: "nope"}, "accept")
		assert.ErrorIs(t, err, stock.ErrRequestNotFound)
	})

	t.Run("unknown item", func(t *testing.T) {
		_, err := set(stock.RestockRequest{ItemID: "nope", ID: "nope"}, "accept")
		assert.ErrorIs(t, err, stock.ErrItemNotFound)
	})

	t.Run("does not touch item quantity", func(t *testing.T) {
		req := newRequest(t)
		_, err := set(req, "accept")
		require.NoError(t, err)
		_, err = set(req, "completed")
		require.NoError(t, err)
		detail, err := uc.Detail(ctx, item.Item.ID)
		require.NoError(t, err)
		assert.Equal(t, 40, detail.Item.Quantity)
	})
}
