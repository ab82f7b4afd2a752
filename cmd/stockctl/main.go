package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"clinic-backoffice/config"
	"clinic-backoffice/internal/dispense"
	dispenseRepo "clinic-backoffice/internal/dispense/repository/sqlite"
	dispenseUC "clinic-backoffice/internal/dispense/usecase"
	"clinic-backoffice/internal/migrations"
	"clinic-backoffice/internal/report"
	reportRepo "clinic-backoffice/internal/report/repository/sqlite"
	reportUC "clinic-backoffice/internal/report/usecase"
	"clinic-backoffice/internal/stock"
	"clinic-backoffice/pkg/log"
	"clinic-backoffice/pkg/sqlite"
)

// stockctl is the operator CLI for the stock ledger. It shares config.yaml
// with the API and talks to the database directly.
func main() {
	rootCmd := newRootCmd()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "stockctl",
		Short:        "Clinic stock ledger operations",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(dashboardCmd())
	rootCmd.AddCommand(lowStockCmd())
	rootCmd.AddCommand(urgentStockCmd())
	rootCmd.AddCommand(nearExpiryCmd())
	rootCmd.AddCommand(dispenseCmd())
	rootCmd.AddCommand(statusCmd())
	return rootCmd
}

type app struct {
	cfg *config.Config
	l   log.Logger
	db  *sqlx.DB
}

func bootstrap(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	l := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	db, err := sqlite.Connect(ctx, sqlite.Config{
		DSN:          cfg.Database.DSN,
		MaxOpenConns: cfg.Database.MaxOpenConns,
	})
	if err != nil {
		return nil, err
	}
	if err := migrations.Up(db.DB); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &app{cfg: cfg, l: l, db: db}, nil
}

func (a *app) close() {
	_ = a.db.Close()
}

func (a *app) reports() report.UseCase {
	return reportUC.New(a.l, reportRepo.New(a.db, a.l), reportUC.Config{
		Thresholds: stock.Thresholds{
			LowStock:    a.cfg.Stock.LowStockThreshold,
			UrgentRatio: a.cfg.Stock.UrgentRatio,
		},
		NearExpiryDays: a.cfg.Stock.NearExpiryDays,
		LowStockLimit:  a.cfg.Stock.LowStockLimit,
	})
}

func (a *app) dispense() dispense.UseCase {
	return dispenseUC.New(a.l, dispenseRepo.New(a.db, a.l), a.cfg.Stock.DispenseMaxRetries)
}

// withApp runs fn against a bootstrapped app and prints its result as JSON.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app) (any, error)) error {
	ctx := cmd.Context()
	a, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	out, err := fn(ctx, a)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), out)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending migrations and print the schema version",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) (any, error) {
				v, dirty, err := migrations.Version(a.db.DB)
				if err != nil {
					return nil, err
				}
				return map[string]any{"version": v, "dirty": dirty}, nil
			})
		},
	}
}

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Print dashboard counters",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) (any, error) {
				return a.reports().Dashboard(ctx)
			})
		},
	}
}

func lowStockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "low-stock",
		Short: "List items at or below their minimum",
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			return withApp(cmd, func(ctx context.Context, a *app) (any, error) {
				return a.reports().LowStock(ctx, limit)
			})
		},
	}
	cmd.Flags().Int("limit", 0, "Maximum items to list (0 uses the configured default)")
	return cmd
}

func urgentStockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "urgent-stock",
		Short: "List empty or nearly empty items",
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			return withApp(cmd, func(ctx context.Context, a *app) (any, error) {
				return a.reports().UrgentStock(ctx, limit)
			})
		},
	}
	cmd.Flags().Int("limit", 0, "Maximum items to list (0 uses the configured default)")
	return cmd
}

func nearExpiryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "near-expiry",
		Short: "List items expiring soon",
		RunE: func(cmd *cobra.Command, args []string) error {
			days, _ := cmd.Flags().GetInt("days")
			return withApp(cmd, func(ctx context.Context, a *app) (any, error) {
				return a.reports().NearExpiry(ctx, days)
			})
		},
	}
	cmd.Flags().Int("days", 0, "Window in days (0 uses the configured default)")
	return cmd
}

func dispenseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dispense <treatment-id>",
		Short: "Dispense every pending medicine of a treatment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) (any, error) {
				return a.dispense().Dispense(ctx, args[0])
			})
		},
	}
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <treatment-id>",
		Short: "Show the dispense status of a treatment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) (any, error) {
				return a.dispense().Status(ctx, args[0])
			})
		},
	}
}
