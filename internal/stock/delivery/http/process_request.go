package http

import (
	"github.com/gin-gonic/gin"

	"clinic-backoffice/internal/model"
	pkgErrors "clinic-backoffice/pkg/errors"
)

const (
	sourceBody  = "body"
	sourceQuery = "query"
)

// processCreateReq binds the create item request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewBindingError(err, sourceBody)
	}
	return req, nil
}

// processListReq binds the list items query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewBindingError(err, sourceQuery)
	}
	return req, nil
}

// processUpdateReq binds the update body and the item id.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewBindingError(err, sourceBody)
	}
	req.ID = c.Param("id")
	return req, nil
}

// processCreateRestockReq binds the restock body and the item id.
func (h *handler) processCreateRestockReq(c *gin.Context) (createRestockReq, model.Scope, error) {
	var req createRestockReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, pkgErrors.NewBindingError(err, sourceBody)
	}
	req.ItemID = c.Param("id")
	sc, _ := model.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

// processListRestockReq binds the cross-item restock query.
func (h *handler) processListRestockReq(c *gin.Context) (listRestockReq, error) {
	var req listRestockReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewBindingError(err, sourceQuery)
	}
	return req, nil
}

// processUpdateRestockStatusReq binds the new status and both path ids.
func (h *handler) processUpdateRestockStatusReq(c *gin.Context) (updateRestockStatusReq, error) {
	var req updateRestockStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewBindingError(err, sourceBody)
	}
	req.ItemID = c.Param("id")
	req.RequestID = c.Param("requestId")
	return req, nil
}
