package http

import (
	"github.com/gin-gonic/gin"

	"clinic-backoffice/pkg/response"
)

// Create godoc
// @Summary     Create a stock item
// @Description Registers a medicine in the clinic store. Status is derived from quantity and expiry.
// @Tags        Stock
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body createReq true "Stock item"
// @Success     201  {object} itemEnvelope
// @Failure     400  {object} response.Resp "Validation error with the offending fields"
// @Failure     409  {object} response.Resp "Name already exists"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/stock/items [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newItemEnvelope(output.Item))
}

// List godoc
// @Summary     List stock items
// @Description Paginated item list ordered by name. Search matches name or manufacturer.
// @Tags        Stock
// @Produce     json
// @Security    BearerAuth
// @Param       page     query int    false "Page (default 1)"
// @Param       limit    query int    false "Page size (default 10, max 100)"
// @Param       search   query string false "Name or manufacturer substring"
// @Param       category query string false "Exact category"
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/stock/items [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get a stock item
// @Tags        Stock
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Item ID"
// @Success     200 {object} itemEnvelope
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/stock/items/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newItemEnvelope(output.Item))
}

// Update godoc
// @Summary     Update a stock item
// @Description Partial update. Only present fields are validated; status is recomputed.
// @Tags        Stock
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string    true "Item ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} itemEnvelope
// @Failure     400 {object} response.Resp "Validation error"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Name already exists or concurrent update"
// @Router      /api/v1/stock/items/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newItemEnvelope(output.Item))
}

// ListCategories godoc
// @Summary     List item categories
// @Tags        Stock
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} categoriesResp
// @Router      /api/v1/stock/categories [GET]
func (h *handler) ListCategories(c *gin.Context) {
	ctx := c.Request.Context()

	categories, err := h.uc.ListCategories(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListCategories: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, categoriesResp{Categories: categories})
}

// CreateRestockRequest godoc
// @Summary     Request a restock
// @Description Appends a pending request to the item. The item's quantity is not changed.
// @Tags        Restock
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string           true "Item ID"
// @Param       body body createRestockReq true "Restock request"
// @Success     201 {object} restockEnvelope
// @Failure     400 {object} response.Resp "Validation error"
// @Failure     404 {object} response.Resp "Item not found"
// @Router      /api/v1/stock/items/{id}/restock-requests [POST]
func (h *handler) CreateRestockRequest(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processCreateRestockReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CreateRestockRequest(ctx, req.toInput(sc))
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateRestockRequest: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newRestockEnvelope(output))
}

// ListRestockRequests godoc
// @Summary     List restock requests
// @Description Requests across all items, newest first, with requester names.
// @Tags        Restock
// @Produce     json
// @Security    BearerAuth
// @Param       status query string false "pending, accept, reject or completed"
// @Param       page   query int    false "Page (default 1)"
// @Param       limit  query int    false "Page size (default 10, max 100)"
// @Success     200 {object} listRestockResp
// @Failure     400 {object} response.Resp "Unknown status"
// @Router      /api/v1/stock/restock-requests [GET]
func (h *handler) ListRestockRequests(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListRestockReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListRestockRequests(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListRestockRequests: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListRestockResp(output))
}

// UpdateRestockRequestStatus godoc
// @Summary     Change a restock request status
// @Description completed is terminal and a rejected request may only return to pending.
// @Tags        Restock
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id        path string                 true "Item ID"
// @Param       requestId path string                 true "Request ID"
// @Param       body      body updateRestockStatusReq true "New status"
// @Success     200 {object} restockEnvelope
// @Failure     400 {object} response.Resp "Unknown status"
// @Failure     404 {object} response.Resp "Item or request not found"
// @Failure     409 {object} response.Resp "Concurrent update"
// @Failure     422 {object} response.Resp "Transition not allowed"
// @Router      /api/v1/stock/items/{id}/restock-requests/{requestId}/status [PATCH]
func (h *handler) UpdateRestockRequestStatus(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateRestockStatusReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.UpdateRestockRequestStatus(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateRestockRequestStatus: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newRestockEnvelope(output))
}
