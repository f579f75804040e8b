package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"readingsoundtrack/internal/app"
	"readingsoundtrack/internal/config"
	"readingsoundtrack/internal/logging"
)

func main() {
	cfg := config.Load()

	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	if err := checkConfig(cfg); err != nil {
		logging.Fatal().Err(err).Msg("invalid configuration")
	}

	logging.Info().
		Str("model", cfg.GeminiModel).
		Str("book_api", cfg.BookAPIBaseURL).
		Str("music_api", cfg.MusicAPIBaseURL).
		Msg("configuration loaded")

	httpServer := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      app.New(cfg).Handler(cfg),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logging.Info().Str("addr", httpServer.Addr).Msg("starting server")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	logging.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// checkConfig fails on missing required variables, except in hosted
// environments where the process starts anyway and logs a warning.
func checkConfig(cfg config.Config) error {
	err := cfg.MissingError()
	if err == nil {
		return nil
	}
	if cfg.Hosted() {
		logging.Warn().Err(err).Msg("starting with incomplete configuration")
		return nil
	}
	return err
}
