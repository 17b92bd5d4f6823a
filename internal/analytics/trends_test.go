package analytics

import (
	"testing"
	"time"

	"github.com/adeyemio/NaijaPulse/internal/processor"
)

func trendNow() time.Time {
	return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
}

func trendArticle(title string, age time.Duration) processor.Article {
	return processor.Article{
		Title:       title,
		Source:      "Nairametrics",
		Category:    "business",
		PublishedAt: trendNow().Add(-age),
	}
}

func TestDetectTrendsWindowMembership(t *testing.T) {
	articles := []processor.Article{
		trendArticle("Naira slides against dollar", 2*time.Hour),
		trendArticle("Inflation outlook for the year", 30*time.Hour),
	}

	snap := testEngine().DetectTrends(articles, trendNow())
	if snap.TotalRecentArticles != 1 {
		t.Fatalf("recent count = %d, want 1", snap.TotalRecentArticles)
	}
	for _, kw := range snap.TrendingKeywords {
		if kw.Keyword == "inflation" {
			t.Fatalf("stale article leaked into the trend window")
		}
	}
}

func TestDetectTrendsCountsScoresWeights(t *testing.T) {
	articles := []processor.Article{
		trendArticle("Naira slides against dollar", 1*time.Hour),
		trendArticle("Naira under pressure after CBN move", 3*time.Hour),
	}

	snap := testEngine().DetectTrends(articles, trendNow())
	if snap.TotalRecentArticles != 2 {
		t.Fatalf("recent count = %d, want 2", snap.TotalRecentArticles)
	}

	byName := make(map[string]TrendingKeyword)
	for _, kw := range snap.TrendingKeywords {
		byName[kw.Keyword] = kw
	}

	naira, ok := byName["naira"]
	if !ok {
		t.Fatalf("naira missing from trends: %+v", snap.TrendingKeywords)
	}
	if naira.Count != 2 || naira.Score != 1.0 || naira.Weight != 9 {
		t.Fatalf("naira = %+v, want count 2 score 1.0 weight 9", naira)
	}

	dollar := byName["dollar"]
	if dollar.Count != 1 || dollar.Score != 0.5 {
		t.Fatalf("dollar = %+v, want count 1 score 0.5", dollar)
	}

	// CBN is both an indicator and an entity.
	if len(snap.TrendingEntities) == 0 || snap.TrendingEntities[0].Entity != "CBN" {
		t.Fatalf("entities = %+v, want CBN first", snap.TrendingEntities)
	}
}

func TestDetectTrendsOrderingDeterministic(t *testing.T) {
	articles := []processor.Article{
		trendArticle("Budget debate on oil revenue", 1*time.Hour),
	}

	first := testEngine().DetectTrends(articles, trendNow())
	second := testEngine().DetectTrends(articles, trendNow())
	if len(first.TrendingKeywords) != len(second.TrendingKeywords) {
		t.Fatalf("keyword counts differ across runs")
	}
	for i := range first.TrendingKeywords {
		if first.TrendingKeywords[i] != second.TrendingKeywords[i] {
			t.Fatalf("ordering differs at %d: %+v vs %+v",
				i, first.TrendingKeywords[i], second.TrendingKeywords[i])
		}
	}
	// Equal counts break ties alphabetically.
	for i := 1; i < len(first.TrendingKeywords); i++ {
		a, b := first.TrendingKeywords[i-1], first.TrendingKeywords[i]
		if a.Count == b.Count && a.Keyword > b.Keyword {
			t.Fatalf("tie not broken alphabetically: %q before %q", a.Keyword, b.Keyword)
		}
	}
}

func TestWiderWindowNeverShrinksCounts(t *testing.T) {
	articles := []processor.Article{
		trendArticle("Naira slides against dollar", 6*time.Hour),
		trendArticle("Naira steadies as CBN intervenes", 18*time.Hour),
		trendArticle("Naira outlook and oil receipts", 36*time.Hour),
	}

	e := testEngine()
	windows := []time.Duration{12 * time.Hour, 24 * time.Hour, 48 * time.Hour}

	prevTotal := -1
	prevNaira := -1
	for _, w := range windows {
		snap := e.detectTrendsWindow(articles, trendNow(), w)
		if snap.TotalRecentArticles < prevTotal {
			t.Fatalf("window %v shrank total from %d to %d", w, prevTotal, snap.TotalRecentArticles)
		}
		naira := 0
		for _, kw := range snap.TrendingKeywords {
			if kw.Keyword == "naira" {
				naira = kw.Count
			}
		}
		if naira < prevNaira {
			t.Fatalf("window %v shrank naira count from %d to %d", w, prevNaira, naira)
		}
		prevTotal = snap.TotalRecentArticles
		prevNaira = naira
	}
	if prevTotal != 3 || prevNaira != 3 {
		t.Fatalf("48h window should see all 3 articles, got total %d naira %d", prevTotal, prevNaira)
	}
}
