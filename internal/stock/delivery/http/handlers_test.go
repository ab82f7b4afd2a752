package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"clinic-backoffice/internal/model"
	"clinic-backoffice/internal/stock"
	"clinic-backoffice/pkg/log"
	"clinic-backoffice/pkg/response"
)

// fakeUseCase records inputs and returns canned results.
type fakeUseCase struct {
	stock.UseCase

	createIn  stock.CreateItemInput
	createErr error

	restockIn stock.CreateRestockRequestInput

	statusErr error

	listRestockIn stock.ListRestockRequestsInput
}

func (f *fakeUseCase) Create(_ context.Context, in stock.CreateItemInput) (stock.CreateItemOutput, error) {
	f.createIn = in
	if f.createErr != nil {
		return stock.CreateItemOutput{}, f.createErr
	}
	return stock.CreateItemOutput{Item: stock.StockItem{ID: "i1", Name: in.Name, Status: stock.StatusAvailable}}, nil
}

func (f *fakeUseCase) Detail(_ context.Context, id string) (stock.DetailItemOutput, error) {
	return stock.DetailItemOutput{}, stock.ErrItemNotFound
}

func (f *fakeUseCase) CreateRestockRequest(_ context.Context, in stock.CreateRestockRequestInput) (stock.RestockRequestOutput, error) {
	f.restockIn = in
	return stock.RestockRequestOutput{Request: stock.RestockRequest{ID: "r1", ItemID: in.ItemID, Status: stock.RequestPending}}, nil
}

func (f *fakeUseCase) ListRestockRequests(_ context.Context, in stock.ListRestockRequestsInput) (stock.ListRestockRequestsOutput, error) {
	f.listRestockIn = in
	return stock.ListRestockRequestsOutput{}, nil
}

func (f *fakeUseCase) UpdateRestockRequestStatus(_ context.Context, in stock.UpdateRestockRequestStatusInput) (stock.RestockRequestOutput, error) {
	return stock.RestockRequestOutput{}, f.statusErr
}

func newTestRouter(uc stock.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(log.NewNop(), uc)
	r.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(model.SetScopeToContext(c.Request.Context(), model.Scope{UserID: "staff-9"}))
	})
	r.POST("/items", h.Create)
	r.GET("/items/:id", h.Detail)
	r.POST("/items/:id/restock-requests", h.CreateRestockRequest)
	r.PATCH("/items/:id/restock-requests/:requestId/status", h.UpdateRestockRequestStatus)
	r.GET("/restock-requests", h.ListRestockRequests)
	return r
}

func serve(r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, response.Resp) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var resp response.Resp
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

const validItemBody = `{"name":"Paracetamol","dosage_form":"tablet","unit":"box",` +
	`"manufacturer":"DHG Pharma","expiry_date":"2027-06-30","quantity":0}`

func TestCreateHandler(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		uc := &fakeUseCase{}
		w, _ := serve(newTestRouter(uc), http.MethodPost, "/items", validItemBody)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "Paracetamol", uc.createIn.Name)
		assert.Equal(t, 0, uc.createIn.Quantity)
		assert.Equal(t, 0, uc.createIn.MinQuantity)
	})

	t.Run("binding lists every missing or out of range field", func(t *testing.T) {
		uc := &fakeUseCase{}
		w, resp := serve(newTestRouter(uc), http.MethodPost, "/items", `{"name":"x","quantity":-1,"min_quantity":-2}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "VALIDATION_ERROR", resp.Kind)
		assert.Equal(t, []any{"dosage_form", "unit", "manufacturer", "expiry_date", "quantity", "min_quantity"}, resp.Errors)
		assert.Empty(t, uc.createIn.Name, "usecase must not be reached")
	})

	t.Run("missing quantity", func(t *testing.T) {
		body := strings.Replace(validItemBody, `,"quantity":0`, "", 1)
		w, resp := serve(newTestRouter(&fakeUseCase{}), http.MethodPost, "/items", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, []any{"quantity"}, resp.Errors)
	})

	t.Run("wrong json type names the field", func(t *testing.T) {
		body := strings.Replace(validItemBody, `"quantity":0`, `"quantity":"ten"`, 1)
		w, resp := serve(newTestRouter(&fakeUseCase{}), http.MethodPost, "/items", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, []any{"quantity"}, resp.Errors)
	})

	t.Run("usecase validation fields are returned", func(t *testing.T) {
		uc := &fakeUseCase{createErr: model.NewValidationError([]string{"unit", "expiry_date"})}
		w, resp := serve(newTestRouter(uc), http.MethodPost, "/items", validItemBody)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "VALIDATION_ERROR", resp.Kind)
		assert.Equal(t, []any{"unit", "expiry_date"}, resp.Errors)
	})

	t.Run("duplicate name", func(t *testing.T) {
		uc := &fakeUseCase{createErr: stock.ErrDuplicateName}
		w, resp := serve(newTestRouter(uc), http.MethodPost, "/items", validItemBody)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "CONFLICT", resp.Kind)
	})

	t.Run("malformed body", func(t *testing.T) {
		w, resp := serve(newTestRouter(&fakeUseCase{}), http.MethodPost, "/items", `{"name":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "VALIDATION_ERROR", resp.Kind)
		assert.Equal(t, []any{"body"}, resp.Errors)
	})

	t.Run("storage failure is internal", func(t *testing.T) {
		uc := &fakeUseCase{createErr: assert.AnError}
		w, resp := serve(newTestRouter(uc), http.MethodPost, "/items", validItemBody)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "INTERNAL_ERROR", resp.Kind)
	})
}

func TestDetailHandlerNotFound(t *testing.T) {
	w, resp := serve(newTestRouter(&fakeUseCase{}), http.MethodGet, "/items/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", resp.Kind)
}

func TestCreateRestockHandler(t *testing.T) {
	t.Run("requester defaults to caller", func(t *testing.T) {
		uc := &fakeUseCase{}
		w, _ := serve(newTestRouter(uc), http.MethodPost, "/items/i1/restock-requests", `{"quantity":5,"reason":"low"}`)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "i1", uc.restockIn.ItemID)
		assert.Equal(t, "staff-9", uc.restockIn.RequestedBy)
	})

	t.Run("explicit requester wins", func(t *testing.T) {
		uc := &fakeUseCase{}
		serve(newTestRouter(uc), http.MethodPost, "/items/i1/restock-requests", `{"requested_by":"staff-1","quantity":5,"reason":"low"}`)
		assert.Equal(t, "staff-1", uc.restockIn.RequestedBy)
	})

	t.Run("quantity reason and priority are bound", func(t *testing.T) {
		uc := &fakeUseCase{}
		w, resp := serve(newTestRouter(uc), http.MethodPost, "/items/i1/restock-requests", `{"quantity":0,"priority":"urgent"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "VALIDATION_ERROR", resp.Kind)
		assert.Equal(t, []any{"quantity", "priority", "reason"}, resp.Errors)
		assert.Empty(t, uc.restockIn.ItemID, "usecase must not be reached")
	})

	t.Run("known priority passes", func(t *testing.T) {
		uc := &fakeUseCase{}
		w, _ := serve(newTestRouter(uc), http.MethodPost, "/items/i1/restock-requests", `{"quantity":1,"priority":"high","reason":"low"}`)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "high", uc.restockIn.Priority)
	})
}

func TestListRestockHandlerStatusFilter(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		w, resp := serve(newTestRouter(&fakeUseCase{}), http.MethodGet, "/restock-requests?status=approved", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, []any{"status"}, resp.Errors)
	})

	t.Run("known status", func(t *testing.T) {
		uc := &fakeUseCase{}
		w, _ := serve(newTestRouter(uc), http.MethodGet, "/restock-requests?status=reject&page=2", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "reject", uc.listRestockIn.Status)
		assert.Equal(t, 2, uc.listRestockIn.Paginate.Page)
	})
}

func TestUpdateRestockStatusHandler(t *testing.T) {
	for _, body := range []string{`{}`, `{"status":"approved"}`} {
		w, resp := serve(newTestRouter(&fakeUseCase{}), http.MethodPatch, "/items/i1/restock-requests/r1/status", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Equal(t, []any{"status"}, resp.Errors, body)
	}

	tests := []struct {
		name   string
		err    error
		status int
		kind   string
	}{
		{"invalid transition", stock.ErrInvalidTransition, http.StatusUnprocessableEntity, "INVALID_TRANSITION"},
		{"request not found", stock.ErrRequestNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"concurrent update", stock.ErrConcurrentUpdate, http.StatusConflict, "CONFLICT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := serve(newTestRouter(&fakeUseCase{statusErr: tt.err}), http.MethodPatch,
				"/items/i1/restock-requests/r1/status", `{"status":"accept"}`)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.kind, resp.Kind)
		})
	}
}
