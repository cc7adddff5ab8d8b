package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"clipshare/internal/config"
	"clipshare/internal/http/server"
	"clipshare/internal/logger"
	"clipshare/internal/repository"
	"clipshare/internal/services/clipboard"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log := logger.NewLogger(cfg.LogLevel, cfg.LogFormat)

	if err := run(cfg, log); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		os.Exit(1)
	}
	log.Info().Msg("server stopped")
}

func run(cfg *config.Config, log *zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storage, err := repository.Open(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer func() {
		if err := storage.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close storage")
		}
	}()

	svc := clipboard.NewServiceClipboard(storage,
		clipboard.WithLogger(log),
		clipboard.WithDefaultEditTTL(cfg.DefaultEditTTL),
		clipboard.WithMaxCreateAttempts(cfg.MaxCreateAttempts),
	)
	sweeper := clipboard.NewSweeper(svc, cfg.SweepInterval, log)

	srv, err := server.NewServer(log, *cfg, svc)
	if err != nil {
		return fmt.Errorf("build server: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return srv.Start()
	})

	g.Go(func() error {
		return sweeper.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown server: %w", err)
		}
		return nil
	})

	return g.Wait()
}
