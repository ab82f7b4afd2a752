package http

import (
	"github.com/gin-gonic/gin"

	"clinic-backoffice/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	reports := rg.Group("/reports", mw.Auth(), mw.RateLimit())
	{
		reports.GET("/dashboard", h.Dashboard)
		reports.GET("/low-stock", h.LowStock)
		reports.GET("/urgent-stock", h.UrgentStock)
		reports.GET("/near-expiry", h.NearExpiry)
		reports.GET("/stock-tracking", h.StockTracking)
		reports.GET("/total-quantity", h.TotalQuantity)
	}
}
