package http

import (
	"github.com/gin-gonic/gin"

	"clinic-backoffice/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	treatments := rg.Group("/dispense/treatments", mw.Auth(), mw.RateLimit())
	{
		treatments.POST("/:id", h.Dispense)
		treatments.GET("/:id", h.Status)
	}
}
