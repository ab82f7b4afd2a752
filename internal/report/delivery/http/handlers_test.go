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

	"clinic-backoffice/internal/model"
	"clinic-backoffice/internal/report"
	"clinic-backoffice/internal/stock"
	"clinic-backoffice/pkg/log"
	"clinic-backoffice/pkg/response"
)

type fakeUseCase struct {
	report.UseCase
	gotLimit int
	tracking report.StockTrackingOutput
}

func (f *fakeUseCase) LowStock(_ context.Context, limit int) ([]stock.StockItem, error) {
	f.gotLimit = limit
	if limit < 0 {
		return nil, model.NewValidationError([]string{"limit"})
	}
	return []stock.StockItem{{ID: "a", Name: "Paracetamol", Quantity: 3}}, nil
}

func (f *fakeUseCase) StockTracking(context.Context, report.StockTrackingInput) (report.StockTrackingOutput, error) {
	return f.tracking, nil
}

func newRouter(uc report.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(log.NewNop(), uc)
	r.GET("/low-stock", h.LowStock)
	r.GET("/stock-tracking", h.StockTracking)
	return r
}

func get(r *gin.Engine, path string) (*httptest.ResponseRecorder, response.Resp) {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	var resp response.Resp
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestLowStockHandler(t *testing.T) {
	uc := &fakeUseCase{}
	w, _ := get(newRouter(uc), "/low-stock?limit=5")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, uc.gotLimit)

	w, resp := get(newRouter(uc), "/low-stock?limit=-1")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", resp.Kind)

	w, _ = get(newRouter(uc), "/low-stock?limit=abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStockTrackingHandlerLabels(t *testing.T) {
	uc := &fakeUseCase{tracking: report.StockTrackingOutput{Items: []report.TrackedItem{
		{Item: stock.StockItem{ID: "a"}, Level: stock.LevelLow, EffectiveMinimum: 10},
	}}}
	w, resp := get(newRouter(uc), "/stock-tracking")
	require.Equal(t, http.StatusOK, w.Code)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	items := data["items"].([]any)
	require.Len(t, items, 1)
	first := items[0].(map[string]any)
	assert.Equal(t, "low", first["level"])
	assert.Equal(t, "Thấp", first["level_label"])
	assert.Equal(t, "a", first["id"])
}
