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
	"clinic-backoffice/pkg/paginator"
)

func validCreateInput(name string) stock.CreateItemInput {
	return stock.CreateItemInput{
		Name:         name,
		DosageForm:   "tablet",
		Unit:         "box",
		Manufacturer: "DHG Pharma",
		ExpiryDate:   "2027-06-30",
		Quantity:     40,
		Category:     "analgesic",
	}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("computes status and id", func(t *testing.T) {
		uc := newTestUseCase(newMemRepo())
		out, err := uc.Create(ctx, validCreateInput("Paracetamol 500mg"))
		require.NoError(t, err)
		assert.NotEmpty(t, out.Item.ID)
		assert.Equal(t, stock.StatusAvailable, out.Item.Status)
		assert.Equal(t, time.Date(2027, 6, 30, 0, 0, 0, 0, time.UTC), out.Item.ExpiryDate)
		assert.Equal(t, 1, out.Item.Version)
	})

	t.Run("zero quantity is out of stock", func(t *testing.T) {
		uc := newTestUseCase(newMemRepo())
		in := validCreateInput("Amoxicillin")
		in.Quantity = 0
		out, err := uc.Create(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, stock.StatusOutOfStock, out.Item.Status)
	})

	t.Run("past expiry is expired", func(t *testing.T) {
		uc := newTestUseCase(newMemRepo())
		in := validCreateInput("Vitamin C")
		in.ExpiryDate = "2025-01-01T00:00:00Z"
		out, err := uc.Create(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, stock.StatusExpired, out.Item.Status)
	})

	t.Run("lists every blank field and a bad expiry", func(t *testing.T) {
		uc := newTestUseCase(newMemRepo())
		_, err := uc.Create(ctx, stock.CreateItemInput{
			Name:       "  ",
			Unit:       "\t",
			ExpiryDate: "next year",
		})
		var vErr *model.ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, []string{"name", "dosage_form", "unit", "manufacturer", "expiry_date"}, vErr.Fields)
	})

	t.Run("min quantity is stored", func(t *testing.T) {
		uc := newTestUseCase(newMemRepo())
		in := validCreateInput("Ibuprofen")
		in.MinQuantity = 25
		out, err := uc.Create(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, 25, out.Item.MinQuantity)
	})

	t.Run("duplicate name ignores case", func(t *testing.T) {
		uc := newTestUseCase(newMemRepo())
		_, err := uc.Create(ctx, validCreateInput("Paracetamol"))
		require.NoError(t, err)
		_, err = uc.Create(ctx, validCreateInput("PARACETAMOL"))
		assert.ErrorIs(t, err, stock.ErrDuplicateName)
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, r *memRepo, name string) stock.StockItem {
		out, err := newTestUseCase(r).Create(ctx, validCreateInput(name))
		require.NoError(t, err)
		return out.Item
	}

	t.Run("not found", func(t *testing.T) {
		uc := newTestUseCase(newMemRepo())
		_, err := uc.Update(ctx, stock.UpdateItemInput{ID: "missing", Quantity: intPtr(1)})
		assert.ErrorIs(t, err, stock.ErrItemNotFound)
	})

	t.Run("quantity to zero recomputes status", func(t *testing.T) {
		r := newMemRepo()
		item := seed(t, r, "Paracetamol")
		out, err := newTestUseCase(r).Update(ctx, stock.UpdateItemInput{ID: item.ID, Quantity: intPtr(0)})
		require.NoError(t, err)
		assert.Equal(t, stock.StatusOutOfStock, out.Item.Status)
		assert.Equal(t, "Paracetamol", out.Item.Name)
		assert.Equal(t, 2, out.Item.Version)
	})

	t.Run("only present fields are validated", func(t *testing.T) {
		r := newMemRepo()
		item := seed(t, r, "Paracetamol")
		_, err := newTestUseCase(r).Update(ctx, stock.UpdateItemInput{
			ID:         item.ID,
			Name:       strPtr(" "),
			ExpiryDate: strPtr("31/12/2027"),
		})
		var vErr *model.ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, []string{"name", "expiry_date"}, vErr.Fields)
	})

	t.Run("rename onto another item conflicts", func(t *testing.T) {
		r := newMemRepo()
		seed(t, r, "Paracetamol")
		other := seed(t, r, "Ibuprofen")
		_, err := newTestUseCase(r).Update(ctx, stock.UpdateItemInput{ID: other.ID, Name: strPtr("paracetamol")})
		assert.ErrorIs(t, err, stock.ErrDuplicateName)
	})

	t.Run("renaming to own name with new case is allowed", func(t *testing.T) {
		r := newMemRepo()
		item := seed(t, r, "Paracetamol")
		out, err := newTestUseCase(r).Update(ctx, stock.UpdateItemInput{ID: item.ID, Name: strPtr("PARACETAMOL")})
		require.NoError(t, err)
		assert.Equal(t, "PARACETAMOL", out.Item.Name)
	})

	t.Run("lost race surfaces as concurrent update", func(t *testing.T) {
		r := newMemRepo()
		item := seed(t, r, "Paracetamol")
		r.bumpOnGet = true
		_, err := newTestUseCase(r).Update(ctx, stock.UpdateItemInput{ID: item.ID, Quantity: intPtr(3)})
		assert.ErrorIs(t, err, stock.ErrConcurrentUpdate)
	})
}

func TestDetailAndList(t *testing.T) {
	ctx := context.Background()
	r := newMemRepo()
	uc := newTestUseCase(r)

	for _, name := range []string{"Paracetamol", "Amoxicillin", "Ibuprofen"} {
		_, err := uc.Create(ctx, validCreateInput(name))
		require.NoError(t, err)
	}
	in := validCreateInput("Oresol")
	in.Manufacturer = "Pymepharco"
	in.Category = "electrolyte"
	created, err := uc.Create(ctx, in)
	require.NoError(t, err)

	t.Run("detail", func(t *testing.T) {
		out, err := uc.Detail(ctx, created.Item.ID)
		require.NoError(t, err)
		assert.Equal(t, "Oresol", out.Item.Name)

		_, err = uc.Detail(ctx, "nope")
		assert.ErrorIs(t, err, stock.ErrItemNotFound)
	})

	t.Run("detail re-derives status at read time", func(t *testing.T) {
		uc.now = func() time.Time { return time.Date(2028, 1, 1, 0, 0, 0, 0, time.UTC) }
		defer func() { uc.now = func() time.Time { return testNow } }()
		out, err := uc.Detail(ctx, created.Item.ID)
		require.NoError(t, err)
		assert.Equal(t, stock.StatusExpired, out.Item.Status)
	})

	t.Run("paginates ordered by name", func(t *testing.T) {
		out, err := uc.List(ctx, stock.ListItemsInput{Paginate: paginator.PaginateQuery{Page: 1, Limit: 2}})
		require.NoError(t, err)
		require.Len(t, out.Items, 2)
		assert.Equal(t, "Amoxicillin", out.Items[0].Name)
		assert.Equal(t, 4, out.Paginator.Total)
		assert.Equal(t, 2, out.Paginator.TotalPages)
	})

	t.Run("search matches manufacturer", func(t *testing.T) {
		out, err := uc.List(ctx, stock.ListItemsInput{Search: "pymepharco"})
		require.NoError(t, err)
		require.Len(t, out.Items, 1)
		assert.Equal(t, "Oresol", out.Items[0].Name)
		assert.Equal(t, paginator.DefaultLimit, out.Paginator.PerPage)
	})

	t.Run("categories", func(t *testing.T) {
		cats, err := uc.ListCategories(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"analgesic", "electrolyte"}, cats)
	})
}
