package http

import (
	"github.com/gin-gonic/gin"

	"clinic-backoffice/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Every route requires an authenticated caller and is rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	stockGroup := rg.Group("/stock", mw.Auth(), mw.RateLimit())

	items := stockGroup.Group("/items")
	{
		items.POST("", h.Create)
		items.GET("", h.List)
		items.GET("/:id", h.Detail)
		items.PUT("/:id", h.Update)
		items.POST("/:id/restock-requests", h.CreateRestockRequest)
		items.PATCH("/:id/restock-requests/:requestId/status", h.UpdateRestockRequestStatus)
	}

	stockGroup.GET("/categories", h.ListCategories)
	stockGroup.GET("/restock-requests", h.ListRestockRequests)
}
