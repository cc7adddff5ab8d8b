// Command cleanup removes expired clipboards from the configured storage once
// and exits. It reads the same configuration as the server and suits a cron
// job when the in-process sweeper is not enough.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"clipshare/internal/config"
	"clipshare/internal/logger"
	"clipshare/internal/repository"
	"clipshare/internal/services/clipboard"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log := logger.NewLogger(cfg.LogLevel, cfg.LogFormat)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	storage, err := repository.Open(ctx, cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("open storage")
		os.Exit(1)
	}

	svc := clipboard.NewServiceClipboard(storage, clipboard.WithLogger(log))

	removed, err := svc.SweepExpired(ctx)
	closeErr := storage.Close()
	if err != nil {
		log.Error().Err(err).Msg("sweep failed")
		os.Exit(1)
	}
	if closeErr != nil {
		log.Error().Err(closeErr).Msg("close storage")
		os.Exit(1)
	}

	log.Info().Int64("removed", removed).Msg("expired clipboards removed")
	fmt.Printf("Deleted %d expired clipboards.\n", removed)
}
