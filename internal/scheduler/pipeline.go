package scheduler

import (
	"context"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/adeyemio/NaijaPulse/internal/analytics"
	"github.com/adeyemio/NaijaPulse/internal/collector"
	"github.com/adeyemio/NaijaPulse/internal/processor"
	"github.com/adeyemio/NaijaPulse/internal/report"
	"github.com/adeyemio/NaijaPulse/internal/storage"
)

// Pipeline wires the full collect -> process -> report run. Each
// stage reads and writes snapshots only, so the stages can also run
// as separate one-shot commands.
type Pipeline struct {
	Fetchers    []collector.Fetcher
	Normalizer  *processor.Normalizer
	Aggregator  *processor.Aggregator
	Engine      *analytics.Engine
	Store       *storage.Store
	Reports     *report.Generator
	Concurrency int
	Now         func() time.Time
}

func (p *Pipeline) now() time.Time {
	if p.Now != nil {
		return p.Now().UTC()
	}
	return time.Now().UTC()
}

// Collect fetches every source, normalizes and aggregates the result
// and overwrites the news snapshot. A failing source contributes zero
// articles and never aborts the run.
func (p *Pipeline) Collect(ctx context.Context) error {
	runID := uuid.NewString()
	now := p.now().Truncate(time.Second)
	log.Printf("start collect job %s...", runID)

	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = 3
	}

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		sem      = make(chan struct{}, concurrency)
		articles []processor.Article
	)

	for _, f := range p.Fetchers {
		fetcher := f
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			entries, err := fetcher.Fetch(ctx)
			if err != nil {
				log.Printf("fetch %s error: %v", fetcher.Name(), err)
				return
			}

			src := fetcher.Source()
			kept := make([]processor.Article, 0, len(entries))
			for _, e := range entries {
				if a, ok := p.Normalizer.Normalize(e, src); ok {
					kept = append(kept, a)
				}
			}
			if len(kept) == 0 {
				log.Printf("fetch %s kept 0 articles", fetcher.Name())
				return
			}

			mu.Lock()
			articles = append(articles, kept...)
			mu.Unlock()
		}()
	}
	wg.Wait()

	final := p.Aggregator.Aggregate(articles)

	feed := processor.Feed{
		Status:        "success",
		LastUpdated:   now,
		TotalArticles: len(final),
		SourcesUsed:   sourceNames(p.Fetchers),
		Articles:      final,
	}
	if err := p.Store.WriteJSON(storage.FileNews, feed); err != nil {
		return err
	}

	summary := storage.UpdateSummary{
		UpdateTime:   now,
		RunID:        runID,
		ArticleCount: len(final),
		Sources:      usedSources(final),
	}
	if len(final) > 0 {
		summary.NewestArticle = final[0].PublishedAt
		summary.OldestArticle = final[len(final)-1].PublishedAt
	}
	if err := p.Store.WriteJSON(storage.FileUpdateSummary, summary); err != nil {
		return err
	}

	log.Printf("collect job done: %d articles from %d sources", len(final), len(p.Fetchers))
	return nil
}

// Process derives analytics from the current news snapshot and
// overwrites the processed documents. A missing snapshot degrades to
// empty placeholder documents.
func (p *Pipeline) Process() error {
	now := p.now().Truncate(time.Second)
	log.Println("start processing job...")

	feed, err := p.Store.ReadNews()
	if err != nil {
		if !storage.IsMissing(err) {
			return err
		}
		log.Printf("process: %v, emitting empty analytics", err)
	}
	articles := feed.Articles

	enhanced := p.Engine.EnhanceAll(articles)
	if err := p.Store.WriteJSON(storage.FileEnhanced, storage.EnhancedDoc{
		ProcessedAt: now,
		Articles:    enhanced,
	}); err != nil {
		return err
	}

	summary := p.Engine.Summarize(articles)
	if err := p.Store.WriteJSON(storage.FileAnalytics, storage.AnalyticsDoc{
		GeneratedAt: now,
		Analytics:   summary,
	}); err != nil {
		return err
	}

	trends := p.Engine.DetectTrends(articles, now)
	if err := p.Store.WriteJSON(storage.FileTrending, storage.TrendingDoc{
		GeneratedAt: now,
		Trends:      trends,
	}); err != nil {
		return err
	}

	if err := p.Store.WriteJSON(storage.FileSourceStats, storage.SourceStatsDoc{
		GeneratedAt: now,
		Sources:     p.Engine.SourceStats(articles, now),
	}); err != nil {
		return err
	}

	rollup := storage.AnalyticsRollup{
		AvgSentiment: summary.AvgSentiment,
		TopSources:   summary.TopSources,
	}
	if kws := trends.TrendingKeywords; len(kws) > 3 {
		rollup.TrendingKeywords = kws[:3]
	} else {
		rollup.TrendingKeywords = kws
	}
	if err := p.Store.WriteJSON(storage.FileSummary, storage.SummaryDoc{
		ProcessingCompleted:    now,
		TotalArticlesProcessed: len(enhanced),
		AnalyticsSummary:       rollup,
	}); err != nil {
		return err
	}

	log.Printf("processing job done: %d articles", len(articles))
	return nil
}

// Report renders the markdown outputs from the latest snapshots.
func (p *Pipeline) Report() error {
	now := p.now()
	if err := p.Reports.WeeklyReport(now); err != nil {
		return err
	}
	return p.Reports.DailyDigest(now)
}

// RunOnce executes the whole pipeline. Stage errors are logged; a
// failed collect still lets processing run over the previous snapshot.
func (p *Pipeline) RunOnce(ctx context.Context) {
	if err := p.Collect(ctx); err != nil {
		log.Printf("collect error: %v", err)
	}
	if err := p.Process(); err != nil {
		log.Printf("process error: %v", err)
	}
	if err := p.Report(); err != nil {
		log.Printf("report error: %v", err)
	}
}

func sourceNames(fetchers []collector.Fetcher) []string {
	names := make([]string, 0, len(fetchers))
	for _, f := range fetchers {
		names = append(names, f.Name())
	}
	return names
}

// usedSources lists the distinct sources that actually contributed.
func usedSources(articles []processor.Article) []string {
	seen := make(map[string]struct{})
	for _, a := range articles {
		seen[a.Source] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
