// Package app wires configuration into a runnable pipeline. Shared by
// the one-shot commands and the API server.
package app

import (
	"fmt"
	"log"
	"time"

	"github.com/adeyemio/NaijaPulse/internal/analytics"
	"github.com/adeyemio/NaijaPulse/internal/collector"
	"github.com/adeyemio/NaijaPulse/internal/config"
	"github.com/adeyemio/NaijaPulse/internal/processor"
	"github.com/adeyemio/NaijaPulse/internal/report"
	"github.com/adeyemio/NaijaPulse/internal/scheduler"
	"github.com/adeyemio/NaijaPulse/internal/sources"
	"github.com/adeyemio/NaijaPulse/internal/storage"
)

// Build constructs the pipeline and its snapshot store from config.
func Build(cfg *config.Config) (*scheduler.Pipeline, *storage.Store, error) {
	srcs := sources.Default()
	keywords := sources.Keywords()

	if cfg.SourcesFile != "" {
		loaded, kws, err := sources.LoadFile(cfg.SourcesFile)
		if err != nil {
			return nil, nil, fmt.Errorf("load sources file: %w", err)
		}
		srcs, keywords = loaded, kws
		log.Printf("loaded %d sources from %s", len(srcs), cfg.SourcesFile)
	}

	fetchers := make([]collector.Fetcher, 0, len(srcs))
	for _, src := range srcs {
		fetchers = append(fetchers, collector.ForSource(src, cfg.FetchTimeoutSec))
	}

	store, err := storage.NewStore(cfg.DataDir, cfg.RedisAddr)
	if err != nil {
		return nil, nil, err
	}

	reports, err := report.NewGenerator(store, cfg.ReportsDir)
	if err != nil {
		return nil, nil, err
	}

	now := func() time.Time { return time.Now().UTC() }

	pipeline := &scheduler.Pipeline{
		Fetchers: fetchers,
		Normalizer: processor.NewNormalizer(keywords, processor.Options{
			FreshnessRewrite: cfg.FreshnessRewrite,
			Now:              now,
		}),
		Aggregator: processor.NewAggregator(processor.AggOptions{
			MaxArticles:      cfg.MaxArticles,
			FreshnessRewrite: cfg.FreshnessRewrite,
			Now:              now,
		}),
		Engine:      analytics.NewEngine(analytics.DefaultRegistry()),
		Store:       store,
		Reports:     reports,
		Concurrency: cfg.FetchConcurrency,
		Now:         now,
	}
	return pipeline, store, nil
}
