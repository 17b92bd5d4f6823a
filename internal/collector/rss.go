package collector

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/adeyemio/NaijaPulse/internal/sources"
)

const (
	// Per-feed cap: only the latest items matter for a snapshot feed.
	rssMaxEntries      = 15
	rssMaxResponseBytes = 4 << 20 // 4MB
	rssUserAgent       = "NaijaPulseBot/1.0"
)

// RSSFetcher pulls one RSS/Atom feed. When a direct fetch fails or
// yields zero entries it retries once through a CORS proxy.
type RSSFetcher struct {
	src    sources.Source
	client *http.Client
	parser *gofeed.Parser
}

func NewRSSFetcher(src sources.Source, timeoutSec int) *RSSFetcher {
	if timeoutSec <= 0 {
		timeoutSec = 10
	}
	return &RSSFetcher{
		src:    src,
		client: &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
		parser: gofeed.NewParser(),
	}
}

func (r *RSSFetcher) Name() string {
	return r.src.Name
}

func (r *RSSFetcher) Source() sources.Source {
	return r.src
}

func (r *RSSFetcher) Fetch(ctx context.Context) ([]RawEntry, error) {
	log.Printf("fetch %s...", r.src.Name)

	feed, err := r.parse(ctx, r.src.URL)
	if err != nil || feed == nil || len(feed.Items) == 0 {
		// Proxy fallback: some Nigerian hosts block datacenter IPs.
		proxied := sources.ProxyURL(r.src.URL)
		feed, err = r.parse(ctx, proxied)
		if err != nil {
			return nil, fmt.Errorf("rss %s: %w", r.src.Name, err)
		}
	}
	if feed == nil || len(feed.Items) == 0 {
		log.Printf("fetch %s got 0 items", r.src.Name)
		return nil, nil
	}

	items := feed.Items
	if len(items) > rssMaxEntries {
		items = items[:rssMaxEntries]
	}

	entries := make([]RawEntry, 0, len(items))
	for _, it := range items {
		entries = append(entries, mapItem(it))
	}
	log.Printf("fetch %s got %d items", r.src.Name, len(entries))
	return entries, nil
}

func (r *RSSFetcher) parse(ctx context.Context, feedURL string) (*gofeed.Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", rssUserAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return r.parser.Parse(io.LimitReader(resp.Body, rssMaxResponseBytes))
}

// mapItem lowers a gofeed item to the adapter-neutral RawEntry.
// Published/Updated stay raw strings so the normalizer owns parsing
// (including the freshness rewrite on the raw year token).
func mapItem(it *gofeed.Item) RawEntry {
	e := RawEntry{
		Title:       it.Title,
		Summary:     it.Description,
		Description: it.Description,
		Link:        it.Link,
		Published:   it.Published,
		Updated:     it.Updated,
	}
	if e.Summary == "" {
		e.Summary = it.Content
	}
	if e.Link == "" && len(it.Links) > 0 {
		e.Link = it.Links[0]
	}
	return e
}
