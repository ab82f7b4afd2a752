package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "clinic-backoffice/pkg/errors"
)

type limitReq struct {
	Limit int `form:"limit"`
}

type nearExpiryReq struct {
	Days int `form:"days"`
}

type trackingReq struct {
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
	Search string `form:"search"`
}

func bindQuery[T any](c *gin.Context, field string) (T, error) {
	var req T
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewValidationError(err.Error(), []string{field})
	}
	return req, nil
}
