package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/stemstr/quotes/internal/clock"
	"github.com/stemstr/quotes/internal/quotestore"
	"github.com/stemstr/quotes/internal/service"
)

var (
	commit    string
	buildDate string
)

func main() {
	configPath := flag.String("config", "", "location of config file. If none is specified config will be loaded from the environment")
	envFile := flag.String("env-file", ".env", "dotenv file loaded into the environment before reading config, if it exists")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *configPath, *envFile); err != nil {
		log.Error().Err(err).Msg("quotes api exited")
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath, envFile string) error {
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var (
		cfg Config
		err error
	)
	if configPath != "" {
		err = cfg.Load(configPath)
	} else {
		err = cfg.LoadFromEnv()
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := newLogger(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	logger.Info().
		Str("commit", commit).
		Str("build_date", buildDate).
		Str("config", configPath).
		Msg("build info")

	// DB setup
	store, err := quotestore.New(ctx, cfg.storeOptions())
	if err != nil {
		return fmt.Errorf("quotestore: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error().Err(err).Msg("close quote store")
		}
	}()
	logger.Info().Str("driver", cfg.DBDriver).Msg("connected to quote store")

	// Service setup
	svc, err := service.New(store, clock.System{})
	if err != nil {
		return fmt.Errorf("service: %w", err)
	}

	h := newHandlers(svc, logger)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: newRouter(h, cfg, logger),
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("api listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
