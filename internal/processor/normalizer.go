package processor

import (
	"fmt"
	"hash/fnv"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/adeyemio/NaijaPulse/internal/collector"
	"github.com/adeyemio/NaijaPulse/internal/sources"
)

const summaryMaxRunes = 200

var (
	htmlTagRe    = regexp.MustCompile(`<[^>]+>`)
	htmlEntityRe = regexp.MustCompile(`&#?[a-zA-Z0-9]+;`)
	yearTokenRe  = regexp.MustCompile(`\b(20\d{2})\b`)
)

// Ordered timestamp parse ladder; first successful parse wins.
var dateLayouts = []string{
	"Mon, 02 Jan 2006 15:04:05 -0700",
	"Mon, 02 Jan 2006 15:04:05 MST",
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	time.RFC3339,
	"2006-01-02T15:04:05Z",
	"2006-01-02 15:04:05",
	"02 Jan 2006 15:04:05",
	"Jan 2, 2006",
}

// Options tunes the normalization policy.
type Options struct {
	// FreshnessRewrite replaces year tokens one or two years old with
	// the current year before parsing. Lossy; inherited from the
	// original pipeline where stale cached feeds kept resurfacing.
	FreshnessRewrite bool
	Now              func() time.Time
}

// Normalizer converts raw adapter entries into canonical Articles.
type Normalizer struct {
	keywords []string
	opts     Options
}

func NewNormalizer(keywords []string, opts Options) *Normalizer {
	if opts.Now == nil {
		opts.Now = func() time.Time { return time.Now().UTC() }
	}
	return &Normalizer{keywords: keywords, opts: opts}
}

// Normalize produces zero or one Article from a raw entry. The second
// return value reports whether the entry survived.
func (n *Normalizer) Normalize(e collector.RawEntry, src sources.Source) (Article, bool) {
	now := n.opts.Now().UTC().Truncate(time.Second)

	title := CleanText(e.Title)
	summary := CleanText(e.Summary)
	if summary == "" {
		summary = CleanText(e.Description)
	}

	url := strings.TrimSpace(e.Link)
	if title == "" || url == "" {
		return Article{}, false
	}

	if src.Filter && !n.IsRelevant(title+" "+summary) {
		return Article{}, false
	}

	rawDate := e.Published
	if rawDate == "" {
		rawDate = e.Updated
	}
	published := n.parseDate(rawDate, now)

	return Article{
		ID:          articleID(src.Name, title),
		Title:       title,
		URL:         url,
		Summary:     truncateRunes(summary, summaryMaxRunes),
		Source:      src.Name,
		Category:    src.Category,
		PublishedAt: published,
		Timestamp:   now,
		Type:        src.Type,
	}, true
}

// CleanText strips HTML tags, collapses entity markers to spaces and
// squeezes whitespace runs.
func CleanText(s string) string {
	if s == "" {
		return ""
	}
	s = htmlTagRe.ReplaceAllString(s, "")
	s = htmlEntityRe.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// IsRelevant reports whether text contains at least one registry
// keyword (case-insensitive substring match).
func (n *Normalizer) IsRelevant(text string) bool {
	if text == "" {
		return false
	}
	lower := strings.ToLower(text)
	for _, kw := range n.keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// parseDate walks the layout ladder; total failure falls back to now.
// The result is clamped so no article ever post-dates the run clock.
func (n *Normalizer) parseDate(raw string, now time.Time) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return now
	}
	if n.opts.FreshnessRewrite {
		raw = rewriteStaleYears(raw, now.Year())
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return clampFuture(t.UTC().Truncate(time.Second), now)
		}
	}
	return now
}

// rewriteStaleYears rewrites year tokens equal to year-1 or year-2 to
// the current year.
func rewriteStaleYears(s string, year int) string {
	return yearTokenRe.ReplaceAllStringFunc(s, func(tok string) string {
		y, err := strconv.Atoi(tok)
		if err != nil {
			return tok
		}
		if y == year-1 || y == year-2 {
			return strconv.Itoa(year)
		}
		return tok
	})
}

// clampFuture resets timestamps after now to one hour before it.
func clampFuture(t, now time.Time) time.Time {
	if t.After(now) {
		return now.Add(-time.Hour)
	}
	return t
}

func truncateRunes(s string, limit int) string {
	rs := []rune(s)
	if len(rs) <= limit {
		return s
	}
	return string(rs[:limit]) + "..."
}

// articleID derives a per-run identifier from the source name and a
// digest of the cleaned title. Deterministic within a run only; IDs
// are not stable across runs and nothing may rely on them being so.
func articleID(source, title string) string {
	h := fnv.New64a()
	h.Write([]byte(source))
	h.Write([]byte{0})
	h.Write([]byte(title))
	return fmt.Sprintf("%s_%016x", source, h.Sum64())
}
