package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/Johnmustcode/FinancialTools/config"
	c "github.com/Johnmustcode/FinancialTools/core"
	"github.com/Johnmustcode/FinancialTools/logger"
)

func main() {
	// initialize context and signal handler, listen for interrupt and term signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	envErr := config.LoadEnvFile()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	l := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
	logger.SetGlobalLogger(l)

	if envErr != nil {
		l.Warn().Err(envErr).Msg(".env not loaded")
	}

	sc := c.ServiceContext{
		Context: ctx,
		Config:  cfg,
		Log:     l.With().Str("component", "server").Logger(),
	}

	s := c.GetHttpServer(sc)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		l.Info().Str("addr", s.Addr).Msg("starting metrics server")
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// waits for a shutdown signal or for the server to fail
	g.Go(func() error {
		<-gctx.Done()
		l.Info().Msg("shutting down gracefully")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		l.Error().Err(err).Msg("server stopped with error")
		os.Exit(1)
	}

	l.Info().Msg("server stopped successfully")
}
