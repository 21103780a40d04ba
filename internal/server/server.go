package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/finsight-app/finsight/domain"
	finsightmiddleware "github.com/finsight-app/finsight/internal/server/middleware"
	"github.com/finsight-app/finsight/service"
)

// WebAPI is the public share viewer. It serves rendered analyses at
// /share/{id} using the backend's token-less endpoint, so anyone holding a
// share link can read the report without an account.
type WebAPI struct {
	router *chi.Mux
	logger *zerolog.Logger
	server *http.Server
}

// Dependencies carries the services the viewer needs
type Dependencies struct {
	Analyses domain.AnalysisService
	Share    domain.ShareBuilder
}

// Config configures the web API
type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

// NewWebAPI builds the router and its handlers
func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	h := &shareHandler{
		analyses:  config.Dependencies.Analyses,
		share:     config.Dependencies.Share,
		formatter: service.NewHTMLFormatter(),
	}

	router := chi.NewRouter()
	router.Use(finsightmiddleware.Logger(&logger))
	router.Use(chimiddleware.Recoverer)

	router.Get("/healthz", h.Health)
	router.Get("/share/{id}", h.ViewShared)

	if config.ShutdownTimeout <= 0 {
		config.ShutdownTimeout = 10 * time.Second
	}

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:              config.Addr,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Router exposes the handler for tests
func (w *WebAPI) Router() http.Handler {
	return w.router
}

// Start runs the server until it fails or a shutdown signal arrives
func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting share viewer")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
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
