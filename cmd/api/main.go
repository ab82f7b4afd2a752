package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"clinic-backoffice/config"
	_ "clinic-backoffice/docs" // Swagger docs
	"clinic-backoffice/internal/httpserver"
	"clinic-backoffice/internal/middleware"
	"clinic-backoffice/internal/migrations"
	reportUC "clinic-backoffice/internal/report/usecase"
	"clinic-backoffice/internal/stock"
	stockUC "clinic-backoffice/internal/stock/usecase"
	"clinic-backoffice/pkg/log"
	"clinic-backoffice/pkg/sqlite"
)

// @title       Clinic Backoffice API
// @description Medicine stock ledger: stock items, restock requests, dispensing and reports.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Clinic Backoffice...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Database
	db, err := sqlite.Connect(ctx, sqlite.Config{
		DSN:          cfg.Database.DSN,
		MaxOpenConns: cfg.Database.MaxOpenConns,
	})
	if err != nil {
		logger.Error(ctx, "Failed to connect database: ", err)
		return
	}
	defer db.Close()

	if err := migrations.Up(db.DB); err != nil {
		logger.Error(ctx, "Failed to apply migrations: ", err)
		return
	}
	if v, dirty, err := migrations.Version(db.DB); err == nil {
		logger.Infof(ctx, "Schema version %d (dirty=%t)", v, dirty)
	}

	// 4. HTTP Server
	thresholds := stock.Thresholds{
		LowStock:    cfg.Stock.LowStockThreshold,
		UrgentRatio: cfg.Stock.UrgentRatio,
	}
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		DB:          db,
		Middleware: middleware.Config{
			JWTSecretKey:     cfg.JWT.SecretKey,
			RateLimitPerMin:  cfg.RateLimit.RequestsPerMin,
			RateLimitEnabled: cfg.RateLimit.Enabled,
		},
		Stock: stockUC.Config{
			StaffNameCacheSize: cfg.Cache.StaffNameSize,
			StaffNameTTL:       cfg.Cache.StaffNameTTL,
		},
		Report: reportUC.Config{
			Thresholds:     thresholds,
			NearExpiryDays: cfg.Stock.NearExpiryDays,
			LowStockLimit:  cfg.Stock.LowStockLimit,
		},
		DispenseMaxRetries: cfg.Stock.DispenseMaxRetries,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
