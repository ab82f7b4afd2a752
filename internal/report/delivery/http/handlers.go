package http

import (
	"github.com/gin-gonic/gin"

	"clinic-backoffice/internal/report"
	"clinic-backoffice/pkg/paginator"
	"clinic-backoffice/pkg/response"
)

// Dashboard godoc
// @Summary     Stock dashboard
// @Tags        Reports
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} dashboardResp
// @Router      /api/v1/reports/dashboard [GET]
func (h *handler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	stats, err := h.uc.Dashboard(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Dashboard: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDashboardResp(stats))
}

// LowStock godoc
// @Summary     Low-stock items
// @Description Items with 0 < quantity <= minimum, emptiest first.
// @Tags        Reports
// @Produce     json
// @Security    BearerAuth
// @Param       limit query int false "Max items (default from config, max 100)"
// @Success     200 {object} itemsResp
// @Failure     400 {object} response.Resp "Negative limit"
// @Router      /api/v1/reports/low-stock [GET]
func (h *handler) LowStock(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := bindQuery[limitReq](c, "limit")
	if err != nil {
		response.Error(c, err)
		return
	}

	items, err := h.uc.LowStock(ctx, req.Limit)
	if err != nil {
		h.l.Errorf(ctx, "uc.LowStock: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newItemsResp(items))
}

// UrgentStock godoc
// @Summary     Urgent-stock items
// @Description Empty items and items at or below the urgent share of their minimum.
// @Tags        Reports
// @Produce     json
// @Security    BearerAuth
// @Param       limit query int false "Max items (default from config, max 100)"
// @Success     200 {object} itemsResp
// @Router      /api/v1/reports/urgent-stock [GET]
func (h *handler) UrgentStock(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := bindQuery[limitReq](c, "limit")
	if err != nil {
		response.Error(c, err)
		return
	}

	items, err := h.uc.UrgentStock(ctx, req.Limit)
	if err != nil {
		h.l.Errorf(ctx, "uc.UrgentStock: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newItemsResp(items))
}

// NearExpiry godoc
// @Summary     Items expiring soon
// @Tags        Reports
// @Produce     json
// @Security    BearerAuth
// @Param       days query int false "Window in days (default from config)"
// @Success     200 {object} itemsResp
// @Router      /api/v1/reports/near-expiry [GET]
func (h *handler) NearExpiry(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := bindQuery[nearExpiryReq](c, "days")
	if err != nil {
		response.Error(c, err)
		return
	}

	items, err := h.uc.NearExpiry(ctx, req.Days)
	if err != nil {
		h.l.Errorf(ctx, "uc.NearExpiry: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newItemsResp(items))
}

// StockTracking godoc
// @Summary     Stock tracking list
// @Description Paginated items annotated with out_of_stock, low or sufficient.
// @Tags        Reports
// @Produce     json
// @Security    BearerAuth
// @Param       page   query int    false "Page (default 1)"
// @Param       limit  query int    false "Page size (default 10, max 100)"
// @Param       search query string false "Name or manufacturer substring"
// @Success     200 {object} trackingResp
// @Router      /api/v1/reports/stock-tracking [GET]
func (h *handler) StockTracking(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := bindQuery[trackingReq](c, "query")
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.StockTracking(ctx, report.StockTrackingInput{
		Search:   req.Search,
		Paginate: paginator.PaginateQuery{Page: req.Page, Limit: req.Limit},
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.StockTracking: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTrackingResp(out))
}

// TotalQuantity godoc
// @Summary     Total quantity across all items
// @Tags        Reports
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} totalQuantityResp
// @Router      /api/v1/reports/total-quantity [GET]
func (h *handler) TotalQuantity(c *gin.Context) {
	ctx := c.Request.Context()

	total, err := h.uc.TotalQuantity(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.TotalQuantity: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, totalQuantityResp{TotalQuantity: total})
}
