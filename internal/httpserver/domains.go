package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	dispenseHTTP "clinic-backoffice/internal/dispense/delivery/http"
	dispenseRepo "clinic-backoffice/internal/dispense/repository/sqlite"
	dispenseUC "clinic-backoffice/internal/dispense/usecase"
	"clinic-backoffice/internal/middleware"
	reportHTTP "clinic-backoffice/internal/report/delivery/http"
	reportRepo "clinic-backoffice/internal/report/repository/sqlite"
	reportUC "clinic-backoffice/internal/report/usecase"
	stockHTTP "clinic-backoffice/internal/stock/delivery/http"
	stockRepo "clinic-backoffice/internal/stock/repository/sqlite"
	stockUC "clinic-backoffice/internal/stock/usecase"
)

// Each domain is wired the same way:
//  1. Repository on the shared database
//  2. UseCase
//  3. HTTP handler
//  4. Routes under /api/v1

// setupStockDomain registers /api/v1/stock.
func (srv HTTPServer) setupStockDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	repo := stockRepo.New(srv.db, srv.l)
	uc := stockUC.New(srv.l, repo, srv.stock)
	h := stockHTTP.New(srv.l, uc)
	stockHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Stock domain registered")
}

// setupDispenseDomain registers /api/v1/dispense.
func (srv HTTPServer) setupDispenseDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	repo := dispenseRepo.New(srv.db, srv.l)
	uc := dispenseUC.New(srv.l, repo, srv.dispenseMaxRetries)
	h := dispenseHTTP.New(srv.l, uc)
	dispenseHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Dispense domain registered")
}

// setupReportDomain registers /api/v1/reports.
func (srv HTTPServer) setupReportDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	repo := reportRepo.New(srv.db, srv.l)
	uc := reportUC.New(srv.l, repo, srv.report)
	h := reportHTTP.New(srv.l, uc)
	reportHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Report domain registered")
}
