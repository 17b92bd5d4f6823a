package scheduler

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adeyemio/NaijaPulse/internal/analytics"
	"github.com/adeyemio/NaijaPulse/internal/collector"
	"github.com/adeyemio/NaijaPulse/internal/processor"
	"github.com/adeyemio/NaijaPulse/internal/report"
	"github.com/adeyemio/NaijaPulse/internal/sources"
	"github.com/adeyemio/NaijaPulse/internal/storage"
)

var pipeNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

type fakeFetcher struct {
	src     sources.Source
	entries []collector.RawEntry
	err     error
}

func (f *fakeFetcher) Name() string           { return f.src.Name }
func (f *fakeFetcher) Source() sources.Source { return f.src }
func (f *fakeFetcher) Fetch(ctx context.Context) ([]collector.RawEntry, error) {
	return f.entries, f.err
}

func fakeEntries(n int) []collector.RawEntry {
	out := make([]collector.RawEntry, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, collector.RawEntry{
			Title:     fmt.Sprintf("Story %d covers sector %d news", i, i+100),
			Link:      fmt.Sprintf("https://example.ng/%d", i),
			Summary:   "Market update",
			Published: pipeNow.Add(-time.Duration(i) * time.Hour).Format(time.RFC3339),
		})
	}
	return out
}

func testPipeline(t *testing.T, fetchers []collector.Fetcher) (*Pipeline, *storage.Store, string) {
	t.Helper()

	store, err := storage.NewStore(t.TempDir(), "")
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	reportsDir := t.TempDir()
	gen, err := report.NewGenerator(store, reportsDir)
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}

	clock := func() time.Time { return pipeNow }
	p := &Pipeline{
		Fetchers:   fetchers,
		Normalizer: processor.NewNormalizer(sources.Keywords(), processor.Options{Now: clock}),
		Aggregator: processor.NewAggregator(processor.AggOptions{Now: clock}),
		Engine:     analytics.NewEngine(analytics.DefaultRegistry()),
		Store:      store,
		Reports:    gen,
		Now:        clock,
	}
	return p, store, reportsDir
}

func TestCollectWritesFeedAndSummary(t *testing.T) {
	src := sources.Source{Name: "Test Feed", Kind: sources.KindFeed, Category: "business", Type: sources.TypeRSS}
	p, store, _ := testPipeline(t, []collector.Fetcher{
		&fakeFetcher{src: src, entries: fakeEntries(6)},
	})

	if err := p.Collect(context.Background()); err != nil {
		t.Fatalf("Collect: %v", err)
	}

	feed, err := store.ReadNews()
	if err != nil {
		t.Fatalf("ReadNews: %v", err)
	}
	if feed.Status != "success" {
		t.Fatalf("status = %q", feed.Status)
	}
	if feed.TotalArticles != 6 || len(feed.Articles) != 6 {
		t.Fatalf("article counts = %d / %d, want 6", feed.TotalArticles, len(feed.Articles))
	}
	for i := 1; i < len(feed.Articles); i++ {
		if feed.Articles[i].PublishedAt.After(feed.Articles[i-1].PublishedAt) {
			t.Fatalf("feed not newest-first at %d", i)
		}
	}

	var summary storage.UpdateSummary
	if err := store.ReadJSON(storage.FileUpdateSummary, &summary); err != nil {
		t.Fatalf("read update summary: %v", err)
	}
	if summary.RunID == "" {
		t.Fatalf("run id missing")
	}
	if summary.ArticleCount != 6 {
		t.Fatalf("article_count = %d", summary.ArticleCount)
	}
	if summary.NewestArticle.Before(summary.OldestArticle) {
		t.Fatalf("newest %v before oldest %v", summary.NewestArticle, summary.OldestArticle)
	}
	if len(summary.Sources) != 1 || summary.Sources[0] != "Test Feed" {
		t.Fatalf("sources = %v", summary.Sources)
	}
}

func TestCollectSurvivesFailingSource(t *testing.T) {
	good := sources.Source{Name: "Good Feed", Kind: sources.KindFeed, Category: "business"}
	bad := sources.Source{Name: "Bad Feed", Kind: sources.KindFeed, Category: "business"}
	p, store, _ := testPipeline(t, []collector.Fetcher{
		&fakeFetcher{src: good, entries: fakeEntries(6)},
		&fakeFetcher{src: bad, err: errors.New("connection refused")},
	})

	if err := p.Collect(context.Background()); err != nil {
		t.Fatalf("Collect should not fail on one bad source: %v", err)
	}

	feed, err := store.ReadNews()
	if err != nil {
		t.Fatalf("ReadNews: %v", err)
	}
	if len(feed.Articles) != 6 {
		t.Fatalf("got %d articles, want the good source's 6", len(feed.Articles))
	}
}

func TestCollectFallsBackToSamples(t *testing.T) {
	src := sources.Source{Name: "Quiet Feed", Kind: sources.KindFeed}
	p, store, _ := testPipeline(t, []collector.Fetcher{
		&fakeFetcher{src: src, entries: nil},
	})

	if err := p.Collect(context.Background()); err != nil {
		t.Fatalf("Collect: %v", err)
	}

	feed, err := store.ReadNews()
	if err != nil {
		t.Fatalf("ReadNews: %v", err)
	}
	if len(feed.Articles) != 5 {
		t.Fatalf("got %d articles, want 5 samples", len(feed.Articles))
	}
	for _, a := range feed.Articles {
		if a.Type != sources.TypeSample {
			t.Fatalf("expected sample article, got type %q", a.Type)
		}
	}
}

func TestProcessWritesAllDocuments(t *testing.T) {
	src := sources.Source{Name: "Test Feed", Kind: sources.KindFeed, Category: "business"}
	p, store, _ := testPipeline(t, []collector.Fetcher{
		&fakeFetcher{src: src, entries: fakeEntries(6)},
	})

	if err := p.Collect(context.Background()); err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if err := p.Process(); err != nil {
		t.Fatalf("Process: %v", err)
	}

	for _, name := range []string{
		storage.FileEnhanced, storage.FileAnalytics, storage.FileTrending,
		storage.FileSourceStats, storage.FileSummary,
	} {
		if _, err := store.ReadRaw(name); err != nil {
			t.Fatalf("snapshot %s missing after process: %v", name, err)
		}
	}

	var doc storage.SummaryDoc
	if err := store.ReadJSON(storage.FileSummary, &doc); err != nil {
		t.Fatalf("read summary doc: %v", err)
	}
	if doc.TotalArticlesProcessed != 6 {
		t.Fatalf("total_articles_processed = %d", doc.TotalArticlesProcessed)
	}
	if len(doc.AnalyticsSummary.TrendingKeywords) > 3 {
		t.Fatalf("rollup keywords capped at 3, got %d", len(doc.AnalyticsSummary.TrendingKeywords))
	}
}

func TestProcessDegradesWhenNewsMissing(t *testing.T) {
	p, store, _ := testPipeline(t, nil)

	if err := p.Process(); err != nil {
		t.Fatalf("Process should degrade on missing news: %v", err)
	}

	var doc storage.AnalyticsDoc
	if err := store.ReadJSON(storage.FileAnalytics, &doc); err != nil {
		t.Fatalf("read analytics doc: %v", err)
	}
	if doc.Analytics.TotalArticles != 0 {
		t.Fatalf("empty run should yield zero analytics: %+v", doc.Analytics)
	}
}

func TestRunOnceProducesReports(t *testing.T) {
	src := sources.Source{Name: "Test Feed", Kind: sources.KindFeed, Category: "business"}
	p, _, reportsDir := testPipeline(t, []collector.Fetcher{
		&fakeFetcher{src: src, entries: fakeEntries(6)},
	})

	p.RunOnce(context.Background())

	for _, name := range []string{
		"weekly-report-2025-06-15.md",
		"weekly-report.json",
		"daily-digest-2025-06-15.md",
	} {
		if _, err := os.Stat(filepath.Join(reportsDir, name)); err != nil {
			t.Fatalf("report %s missing: %v", name, err)
		}
	}
}

func TestUsedSourcesDistinctSorted(t *testing.T) {
	articles := []processor.Article{
		{Source: "B"}, {Source: "A"}, {Source: "B"},
	}
	got := usedSources(articles)
	if len(got) != 2 || got[0] != "A" || got[1] != "B" {
		t.Fatalf("usedSources = %v", got)
	}
}
