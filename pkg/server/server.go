package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	directoryhandlers "github.com/fin-tools/ledger-lens/pkg/handlers/directory"
	pnlhandlers "github.com/fin-tools/ledger-lens/pkg/handlers/pnl"
	"github.com/fin-tools/ledger-lens/pkg/services/directory"
	"github.com/fin-tools/ledger-lens/pkg/store/reports"

	ledgerlensmiddleware "github.com/fin-tools/ledger-lens/pkg/server/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type WebAPI struct {
	router          *chi.Mux
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

type Dependencies struct {
	Reports   reports.Source
	Directory directory.Service
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	pnlHandler := pnlhandlers.NewHandler(config.Dependencies.Reports)
	dirHandler := directoryhandlers.NewHandler(config.Dependencies.Directory)

	router := chi.NewRouter()

	router.Use(ledgerlensmiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/businesses", dirHandler.ListBusinesses)
		r.Route("/businesses/{businessID}/pnl", func(r chi.Router) {
			r.Get("/summary", pnlHandler.GetSummary)
			r.Get("/monthly", pnlHandler.GetMonthly)
			r.Get("/monthly/export", pnlHandler.ExportMonthly)
			r.Get("/quarterly", pnlHandler.GetQuarterly)
			r.Get("/annual", pnlHandler.GetAnnual)
			r.Get("/financial-year", pnlHandler.GetFinancialYear)
		})
	})

	timeout := config.ShutdownTimeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
		shutdownTimeout: timeout,
	}
}

// Handler exposes the configured router, mainly for tests.
func (w *WebAPI) Handler() http.Handler {
	return w.router
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
