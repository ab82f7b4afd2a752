package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"clinic-backoffice/internal/middleware"
	reportUC "clinic-backoffice/internal/report/usecase"
	stockUC "clinic-backoffice/internal/stock/usecase"
	"clinic-backoffice/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Storage
	db *sqlx.DB

	// Domains
	middleware         middleware.Config
	stock              stockUC.Config
	report             reportUC.Config
	dispenseMaxRetries int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	DB *sqlx.DB

	Middleware         middleware.Config
	Stock              stockUC.Config
	Report             reportUC.Config
	DispenseMaxRetries int
}

// New creates a new HTTPServer instance and maps every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                  logger,
		gin:                gin.New(),
		port:               cfg.Port,
		mode:               cfg.Mode,
		environment:        cfg.Environment,
		db:                 cfg.DB,
		middleware:         cfg.Middleware,
		stock:              cfg.Stock,
		report:             cfg.Report,
		dispenseMaxRetries: cfg.DispenseMaxRetries,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("db is required")
	}
	return nil
}

// Handler exposes the gin engine, mostly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
