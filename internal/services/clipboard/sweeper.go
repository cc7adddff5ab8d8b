package clipboard

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

const DefaultSweepInterval = 5 * time.Minute

type expirySweeper interface {
	SweepExpired(ctx context.Context) (int64, error)
}

// Sweeper periodically removes expired clipboards. Reads and updates reject
// expired records on their own, so a late sweep only costs disk space.
type Sweeper struct {
	service  expirySweeper
	interval time.Duration
	log      *zerolog.Logger
}

func NewSweeper(service expirySweeper, interval time.Duration, log *zerolog.Logger) *Sweeper {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	if log == nil {
		nop := zerolog.Nop()
		log = &nop
	}
	return &Sweeper{
		service:  service,
		interval: interval,
		log:      log,
	}
}

// Run sweeps once immediately and then on every tick until ctx is done.
func (s *Sweeper) Run(ctx context.Context) error {
	s.log.Info().Dur("interval", s.interval).Msg("expiry sweeper started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("expiry sweeper stopped")
			return nil
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	start := time.Now()
	removed, err := s.service.SweepExpired(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		s.log.Error().Err(err).Msg("expiry sweep failed")
		return
	}

	ev := s.log.Debug()
	if removed > 0 {
		ev = s.log.Info()
	}
	ev.Int64("removed", removed).
		Dur("took", time.Since(start)).
		Msg("expiry sweep finished")
}
