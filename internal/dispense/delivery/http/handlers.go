package http

import (
	"github.com/gin-gonic/gin"

	"clinic-backoffice/pkg/response"
)

// Dispense godoc
// @Summary     Dispense a treatment
// @Description Validates every pending medicine line against stock, then decrements stock and marks the lines dispensed. All or nothing.
// @Tags        Dispense
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Treatment ID"
// @Success     200 {object} dispenseResp
// @Failure     400 {object} response.Resp "Treatment has no medicines"
// @Failure     404 {object} response.Resp "Treatment not found"
// @Failure     409 {object} response.Resp "Already dispensed or concurrent update"
// @Failure     422 {object} response.Resp "Insufficient stock, errors lists every shortfall"
// @Router      /api/v1/dispense/treatments/{id} [POST]
func (h *handler) Dispense(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Dispense(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Dispense: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDispenseResp(output))
}

// Status godoc
// @Summary     Treatment dispense status
// @Tags        Dispense
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Treatment ID"
// @Success     200 {object} statusResp
// @Failure     404 {object} response.Resp "Treatment not found"
// @Router      /api/v1/dispense/treatments/{id} [GET]
func (h *handler) Status(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Status(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Status: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newStatusResp(output))
}
