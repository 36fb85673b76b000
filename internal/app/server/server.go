package server

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ipcr/internal/domain/ipcr"
	"ipcr/internal/domain/templates"
	"ipcr/internal/platform/config"
	"ipcr/internal/platform/email"
	"ipcr/internal/platform/metrics"
	"ipcr/internal/transport/http/api"
	ipcrhandler "ipcr/internal/transport/http/handlers/ipcr"
	reportshandler "ipcr/internal/transport/http/handlers/reports"
	"ipcr/internal/transport/http/middleware"
)

type App struct {
	Config  config.Config
	Service *ipcr.Service
	Router  http.Handler
}

// New wires the engine: catalog, record store, mailer, assembler, and the
// HTTP surface. Catalog construction fails fast on bad seed weights.
func New(cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	catalog, err := templates.NewCatalog()
	if err != nil {
		return nil, fmt.Errorf("template catalog: %w", err)
	}

	store := ipcr.NewMemoryStore()
	mailer := email.New(cfg)
	service := ipcr.NewService(catalog, store, mailer, ipcr.Options{
		EmailFrom:       cfg.EmailFrom,
		SupervisorEmail: cfg.SupervisorEmail,
		SubmitSaveDelay: cfg.SubmitSaveDelay,
	})

	collector := metrics.New()

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(collector))
	router.Use(middleware.Recoverer)
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		ipcrhandler.NewHandler(service, catalog, collector).RegisterRoutes(r)
		reportshandler.NewHandler(service).RegisterRoutes(r)

		if cfg.MetricsEnabled {
			r.Get("/metrics", func(w http.ResponseWriter, req *http.Request) {
				api.Success(w, collector.Snapshot(), middleware.GetRequestID(req.Context()))
			})
		}
	})

	return &App{Config: cfg, Service: service, Router: router}, nil
}

func (a *App) Run() error {
	log.Printf("IPCR server listening on %s", a.Config.Addr)
	return http.ListenAndServe(a.Config.Addr, a.Router)
}
