// Package syncer orchestrates one pass of the WordPress to Appwrite sync:
// fetch per timeframe, idempotent upsert per article, failure isolation at
// both loop levels.
package syncer

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mnovakovic/wp-appwrite-sync/internal/store"
	"github.com/mnovakovic/wp-appwrite-sync/internal/wordpress"
)

// Fetcher pulls the raw posts for one timeframe window.
type Fetcher interface {
	FetchPosts(ctx context.Context, tf wordpress.Timeframe) ([]wordpress.Post, error)
}

type Syncer struct {
	fetcher    Fetcher
	upserter   *Upserter
	timeframes []wordpress.Timeframe
}

type Option func(*Syncer)

// WithTimeframes overrides the default day, week, month order.
func WithTimeframes(tfs ...wordpress.Timeframe) Option {
	return func(s *Syncer) {
		if len(tfs) > 0 {
			s.timeframes = tfs
		}
	}
}

func New(fetcher Fetcher, docs store.DocumentStore, opts ...Option) *Syncer {
	s := &Syncer{
		fetcher:    fetcher,
		upserter:   NewUpserter(docs),
		timeframes: wordpress.Timeframes(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Run processes every configured timeframe in order, always all of them. A
// failed fetch fails only its timeframe; a failed article fails only itself.
// Articles appearing in overlapping windows are stored once, guarded by the
// run-scoped seen set.
func (s *Syncer) Run(ctx context.Context) *RunResult {
	start := time.Now()
	log := slog.With("run_id", uuid.NewString())

	log.Info("🛫 starting sync run", "timeframes", s.timeframes)

	seen := NewSeenSet()
	result := &RunResult{
		Success: true,
		Results: make(map[wordpress.Timeframe]TimeframeResult, len(s.timeframes)),
	}

	for _, tf := range s.timeframes {
		posts, err := s.fetcher.FetchPosts(ctx, tf)
		if err != nil {
			log.Error("fetch failed, skipping timeframe", "timeframe", tf, "error", err)
			result.Results[tf] = TimeframeResult{Err: err.Error()}
			continue
		}

		stored := 0
		for _, post := range posts {
			article, err := s.upserter.Upsert(ctx, post, seen)
			if err != nil {
				log.Error("skipping article", "wp_id", post.ID, "timeframe", tf, "error", err)
				continue
			}
			if article != nil {
				stored++
			}
		}

		result.Results[tf] = TimeframeResult{Fetched: len(posts), Stored: stored}
		result.TotalStored += stored

		log.Info("timeframe completed", "timeframe", tf, "fetched", len(posts), "stored", stored)
	}

	log.Info("sync run completed",
		"total_stored", result.TotalStored,
		"unique_articles", seen.Len(),
		"duration", time.Since(start),
	)

	return result
}
