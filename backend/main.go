package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := LoadConfigFromEnv(DefaultConfig())
	setupLogging(cfg)
	configStore.Update(cfg)
	logger := componentLogger("backend")

	settings, err := LoadGameSettingsFromEnv(DefaultGameSettings())
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid game settings")
	}
	catalog := DefaultCatalog()
	if cfg.PatternsFile != "" {
		catalog, err = LoadCatalogFile(cfg.PatternsFile)
		if err != nil {
			logger.Fatal().Err(err).Str("file", cfg.PatternsFile).Msg("pattern catalog rejected")
		}
	}
	logger.Info().Int("patterns", catalog.Len()).Int("depth", cfg.SearchDepth).Bool("debug", cfg.Debug).Msg("engine ready")

	controller := NewGameController(settings, catalog)
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx.Done())

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newRouter(controller, hub),
		ReadHeaderTimeout: 5 * time.Second,
	}
	serverErrCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
		}
		close(serverErrCh)
	}()

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	logger.Info().Str("addr", cfg.Addr).Msg("backend listening")
	var runErr error
	select {
	case <-sigCtx.Done():
		logger.Info().Err(sigCtx.Err()).Msg("shutdown signal received")
	case err, ok := <-serverErrCh:
		if ok {
			runErr = err
			logger.Error().Err(err).Msg("server error")
		}
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error().Err(err).Msg("graceful shutdown failed")
		if closeErr := server.Close(); closeErr != nil && !errors.Is(closeErr, http.ErrServerClosed) {
			log.Error().Err(closeErr).Msg("forced close failed")
		}
	}

	cancel()
	if runErr != nil {
		logger.Error().Err(runErr).Msg("exiting after server error")
		os.Exit(1)
	}
}
