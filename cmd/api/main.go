// Package main implements the read-only configuration API for the equipment dashboard.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	apihttp "github.com/dsjohal14/equipdash/internal/http"
	"github.com/dsjohal14/equipdash/internal/libs/config"
	"github.com/dsjohal14/equipdash/internal/libs/obs"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func main() {
	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Init logger
	obs.InitFromConfig(cfg)
	logger := obs.Logger("api")

	// Problems are reported, not fatal; consumers decide.
	obs.LogValidation(logger, cfg)

	addr, err := listenAddr(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid dev server address")
	}

	handler := apihttp.NewHandler(cfg, logger)
	metrics := obs.NewConfigCollector(cfg, nil)

	r := setupRouter(handler, metrics.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info().Str("addr", addr).Str("mode", string(cfg.Mode)).Msg("starting API server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("shutdown failed")
	}
	logger.Info().Msg("server stopped")
}

func setupRouter(h *apihttp.Handler, metrics http.Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)

	// Routes
	r.Get("/health", h.HandleHealth)
	r.Route("/config", func(r chi.Router) {
		r.Get("/", h.HandleConfig)
		r.Get("/status", h.HandleStatus)
		r.Get("/data-source", h.HandleDataSource)
		r.Get("/validate", h.HandleValidate)
		r.Get("/vars", h.HandleVars)
	})
	r.Method(http.MethodGet, "/metrics", metrics)

	return r
}

// listenAddr joins the dev server host and port. A NaN or out of range
// port cannot be listened on.
func listenAddr(cfg *config.Config) (string, error) {
	port := cfg.DevServer.Port
	if port.IsNaN() {
		return "", fmt.Errorf("%s is not a number", config.EnvDevServerPort)
	}
	if port.Value < 1 || port.Value > 65535 {
		return "", fmt.Errorf("%s out of range: %d", config.EnvDevServerPort, port.Value)
	}
	return net.JoinHostPort(cfg.DevServer.Host, strconv.Itoa(port.Value)), nil
}
