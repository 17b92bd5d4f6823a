package collector

import (
	"context"

	"github.com/adeyemio/NaijaPulse/internal/sources"
)

// RawEntry is one loosely structured item as returned by a fetch
// adapter. Every field may be empty; the normalizer owns all parsing.
type RawEntry struct {
	Title       string
	Summary     string
	Description string
	Link        string
	Published   string
	Updated     string
}

// Fetcher abstracts one upstream source.
type Fetcher interface {
	Name() string
	Source() sources.Source
	Fetch(ctx context.Context) ([]RawEntry, error)
}

// ForSource returns the fetch adapter matching the source kind.
func ForSource(src sources.Source, timeout int) Fetcher {
	if src.Kind == sources.KindScrape {
		return NewScrapeFetcher(src, timeout)
	}
	return NewRSSFetcher(src, timeout)
}
