package processor

import (
	"strings"
	"testing"
	"time"

	"github.com/adeyemio/NaijaPulse/internal/collector"
	"github.com/adeyemio/NaijaPulse/internal/sources"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func testNormalizer(freshness bool) *Normalizer {
	return NewNormalizer(sources.Keywords(), Options{
		FreshnessRewrite: freshness,
		Now:              func() time.Time { return testNow },
	})
}

func feedSource() sources.Source {
	return sources.Source{
		Name:     "BusinessDay Nigeria",
		Category: "business",
		Type:     sources.TypeRSS,
		Filter:   true,
	}
}

func TestCleanTextStripsTagsAndEntities(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"<p>Naira <b>gains</b></p>", "Naira gains"},
		{"Inflation&nbsp;rises&amp;falls", "Inflation rises falls"},
		{"  spaced    out \n text ", "spaced out text"},
		{"", ""},
	}
	for _, c := range cases {
		if got := CleanText(c.in); got != c.want {
			t.Fatalf("CleanText(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeRejectsMissingTitleOrURL(t *testing.T) {
	n := testNormalizer(true)
	src := feedSource()

	entries := []collector.RawEntry{
		{Title: "", Link: "https://example.com/a", Summary: "naira news"},
		{Title: "Naira gains against dollar", Link: "", Summary: "naira news"},
		{Title: "<b></b>", Link: "https://example.com/b", Summary: "naira news"},
	}
	for i, e := range entries {
		if _, ok := n.Normalize(e, src); ok {
			t.Fatalf("entry %d should be rejected", i)
		}
	}
}

func TestNormalizeRelevanceFilterPerSource(t *testing.T) {
	n := testNormalizer(true)

	irrelevant := collector.RawEntry{
		Title: "Local football results roundup",
		Link:  "https://example.com/sports",
	}

	if _, ok := n.Normalize(irrelevant, feedSource()); ok {
		t.Fatalf("irrelevant entry should be dropped for a filtered source")
	}

	social := sources.Source{Name: "Twitter Nigeria Economy", Category: "social", Type: sources.TypeTwitter, Filter: false}
	if _, ok := n.Normalize(irrelevant, social); !ok {
		t.Fatalf("unfiltered source should keep the entry")
	}
}

func TestNormalizeParsesCommonDateFormats(t *testing.T) {
	n := testNormalizer(false)
	src := feedSource()

	cases := []struct {
		raw  string
		want time.Time
	}{
		{"Sun, 15 Jun 2025 08:30:00 +0100", time.Date(2025, 6, 15, 7, 30, 0, 0, time.UTC)},
		{"2025-06-14T22:00:00Z", time.Date(2025, 6, 14, 22, 0, 0, 0, time.UTC)},
		{"2025-06-14 09:15:00", time.Date(2025, 6, 14, 9, 15, 0, 0, time.UTC)},
		{"Jun 14, 2025", time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)},
	}
	for _, c := range cases {
		a, ok := n.Normalize(collector.RawEntry{
			Title:     "Naira gains against dollar",
			Link:      "https://example.com/x",
			Published: c.raw,
		}, src)
		if !ok {
			t.Fatalf("entry with date %q should survive", c.raw)
		}
		if !a.PublishedAt.Equal(c.want) {
			t.Fatalf("parse %q = %v, want %v", c.raw, a.PublishedAt, c.want)
		}
	}
}

func TestNormalizeFallsBackToNowOnUnparseableDate(t *testing.T) {
	n := testNormalizer(false)

	a, ok := n.Normalize(collector.RawEntry{
		Title:     "CBN announces new policy",
		Link:      "https://example.com/y",
		Published: "sometime last Tuesday",
	}, feedSource())
	if !ok {
		t.Fatalf("entry should survive")
	}
	if !a.PublishedAt.Equal(testNow) {
		t.Fatalf("unparseable date should fall back to now, got %v", a.PublishedAt)
	}
}

// The stale-year rewrite is lossy and must stay behind its flag.
func TestFreshnessRewriteIsGatedAndLossy(t *testing.T) {
	raw := collector.RawEntry{
		Title:     "GDP growth beats forecast",
		Link:      "https://example.com/z",
		Published: "Sat, 15 Jun 2024 10:00:00 +0000",
	}

	a, ok := testNormalizer(true).Normalize(raw, feedSource())
	if !ok {
		t.Fatalf("entry should survive")
	}
	if a.PublishedAt.Year() != 2025 {
		t.Fatalf("rewrite on: year = %d, want 2025", a.PublishedAt.Year())
	}

	a, ok = testNormalizer(false).Normalize(raw, feedSource())
	if !ok {
		t.Fatalf("entry should survive")
	}
	if a.PublishedAt.Year() != 2024 {
		t.Fatalf("rewrite off: year = %d, want 2024", a.PublishedAt.Year())
	}
}

func TestNormalizeClampsFutureDates(t *testing.T) {
	n := testNormalizer(false)

	a, ok := n.Normalize(collector.RawEntry{
		Title:     "Naira outlook for next quarter",
		Link:      "https://example.com/future",
		Published: "2025-06-16T09:00:00Z",
	}, feedSource())
	if !ok {
		t.Fatalf("entry should survive")
	}
	want := testNow.Add(-time.Hour)
	if !a.PublishedAt.Equal(want) {
		t.Fatalf("future date should clamp to now-1h, got %v", a.PublishedAt)
	}
	if a.PublishedAt.After(testNow) {
		t.Fatalf("published_at must never be after the run clock")
	}
}

func TestNormalizeTruncatesSummary(t *testing.T) {
	n := testNormalizer(true)

	long := strings.Repeat("naira ", 60) // well past 200 runes
	a, ok := n.Normalize(collector.RawEntry{
		Title:   "Naira watch",
		Link:    "https://example.com/long",
		Summary: long,
	}, feedSource())
	if !ok {
		t.Fatalf("entry should survive")
	}
	if got := len([]rune(a.Summary)); got != summaryMaxRunes+3 {
		t.Fatalf("summary length = %d runes, want %d + ellipsis", got, summaryMaxRunes)
	}
	if !strings.HasSuffix(a.Summary, "...") {
		t.Fatalf("truncated summary should end with ellipsis marker: %q", a.Summary)
	}
}

func TestArticleIDDeterministicWithinRun(t *testing.T) {
	id1 := articleID("Nairametrics", "Naira gains against dollar")
	id2 := articleID("Nairametrics", "Naira gains against dollar")
	id3 := articleID("Punch Nigeria", "Naira gains against dollar")

	if id1 != id2 {
		t.Fatalf("articleID not deterministic: %q vs %q", id1, id2)
	}
	if id1 == id3 {
		t.Fatalf("articleID should differ across sources: %q", id1)
	}
	if !strings.HasPrefix(id1, "Nairametrics_") {
		t.Fatalf("articleID should carry the source name: %q", id1)
	}
}
