package question

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// DirectoryWarmer re-primes the category cache on an interval so the first
// listing after a cold start or a TTL expiry does not pay the DB round trip.
type DirectoryWarmer struct {
	directory CategoryDirectory
	interval  time.Duration
	logger    zerolog.Logger
}

// NewDirectoryWarmer builds a warmer over the given directory. A
// non-positive interval defaults to half the cache TTL.
func NewDirectoryWarmer(directory CategoryDirectory, interval time.Duration, logger zerolog.Logger) *DirectoryWarmer {
	if interval <= 0 {
		interval = defaultDirectoryTTL / 2
	}
	return &DirectoryWarmer{
		directory: directory,
		interval:  interval,
		logger:    logger.With().Str("component", "directory_warmer").Logger(),
	}
}

// Run loads the category table immediately and then on every tick until the
// context is canceled.
func (w *DirectoryWarmer) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		if _, err := w.directory.All(ctx); err != nil {
			w.logger.Warn().Err(err).Msg("category warm-up failed")
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
