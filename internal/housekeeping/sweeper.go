// Package housekeeping runs periodic maintenance against the room manager.
package housekeeping

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// Sweeper removes rooms that have been empty for longer than retention.
type Sweeper interface {
	Sweep(now time.Time, retention time.Duration) int
}

// Run sweeps every interval until ctx is cancelled.
func Run(ctx context.Context, s Sweeper, interval, retention time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Info().Dur("interval", interval).Dur("retention", retention).Msg("room sweeper started")
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("room sweeper stopped")
			return
		case now := <-ticker.C:
			if n := s.Sweep(now, retention); n > 0 {
				log.Info().Int("removed", n).Msg("swept idle rooms")
			}
		}
	}
}
