package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-backoffice/internal/dispense"
	"clinic-backoffice/pkg/log"
	"clinic-backoffice/pkg/response"
)

type fakeUseCase struct {
	out dispense.DispenseOutput
	err error
}

func (f *fakeUseCase) Dispense(context.Context, string) (dispense.DispenseOutput, error) {
	return f.out, f.err
}

func (f *fakeUseCase) Status(context.Context, string) (dispense.StatusOutput, error) {
	return dispense.StatusOutput{}, f.err
}

func call(uc dispense.UseCase) (*httptest.ResponseRecorder, response.Resp) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(log.NewNop(), uc)
	r.POST("/treatments/:id", h.Dispense)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/treatments/t1", nil))
	var resp response.Resp
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestDispenseHandler(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		w, resp := call(&fakeUseCase{out: dispense.DispenseOutput{TreatmentID: "t1", DispensedCount: 2}})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, map[string]any{"treatment_id": "t1", "dispensed_count": float64(2)}, resp.Data)
	})

	t.Run("insufficient stock carries shortfalls", func(t *testing.T) {
		w, resp := call(&fakeUseCase{err: &dispense.InsufficientStockError{Shortfalls: []dispense.Shortfall{
			{MedicineID: "A", Name: "Paracetamol", Required: 10, Available: 4},
		}}})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "INSUFFICIENT_STOCK", resp.Kind)
		details, ok := resp.Errors.([]any)
		require.True(t, ok)
		require.Len(t, details, 1)
		assert.Equal(t, map[string]any{"medicine_id": "A", "name": "Paracetamol", "required": float64(10), "available": float64(4)}, details[0])
	})

	tests := []struct {
		name   string
		err    error
		status int
		kind   string
	}{
		{"not found", dispense.ErrTreatmentNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"already dispensed", dispense.ErrAlreadyDispensed, http.StatusConflict, "ALREADY_DISPENSED"},
		{"concurrent", dispense.ErrConcurrentUpdate, http.StatusConflict, "CONFLICT"},
		{"storage", assert.AnError, http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := call(&fakeUseCase{err: tt.err})
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.kind, resp.Kind)
		})
	}
}
