package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/bayaz-archive/bayaz/internal/remote"
	"github.com/bayaz-archive/bayaz/internal/state"
)

const (
	defaultPollInterval = 60 * time.Second
	maxBackoff          = 10 * time.Minute
)

// TrendingFetcher is the part of the catalog service the poller needs.
type TrendingFetcher interface {
	FetchTrending(ctx context.Context) (remote.Trending, error)
}

// StartPoller launches a background goroutine that refreshes trending data
// into store. Failures back off exponentially up to maxBackoff. The returned
// channel closes when the goroutine exits.
func StartPoller(ctx context.Context, store *state.Store, fetcher TrendingFetcher, interval time.Duration, logger *zap.Logger) <-chan struct{} {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		timer := time.NewTimer(0)
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}
			refresh(ctx, store, fetcher, logger)
			timer.Reset(calculateBackoff(store.Snapshot().ConsecutiveFailures, interval))
		}
	}()
	return done
}

func refresh(ctx context.Context, store *state.Store, fetcher TrendingFetcher, logger *zap.Logger) {
	trending, err := fetcher.FetchTrending(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		store.Update(nil, err)
		logger.Warn("trending poll failed", zap.Error(err))
		return
	}
	store.Update(&trending, nil)
	logger.Debug("trending refreshed",
		zap.Int("songs", len(trending.Songs)),
		zap.Int("writers", len(trending.Writers)),
	)
}

// calculateBackoff doubles the interval per consecutive failure, capped at
// maxBackoff.
func calculateBackoff(failures int, interval time.Duration) time.Duration {
	if failures <= 0 {
		return interval
	}
	backoff := interval
	for i := 0; i < failures; i++ {
		backoff *= 2
		if backoff >= maxBackoff {
			return maxBackoff
		}
	}
	return backoff
}
