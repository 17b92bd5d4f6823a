package collector

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"

	"github.com/adeyemio/NaijaPulse/internal/sources"
)

const (
	// Headline candidates per scrape target; institutional landing
	// pages surface at most a handful of fresh items anyway.
	scrapeMaxEntries = 5
	scrapeMinText    = 20
)

// ScrapeFetcher extracts headline links from sources without a feed
// (CBN, NBS landing pages). Best-effort parsing: the page structures
// change and a miss just means zero entries.
type ScrapeFetcher struct {
	src     sources.Source
	timeout time.Duration
}

func NewScrapeFetcher(src sources.Source, timeoutSec int) *ScrapeFetcher {
	if timeoutSec <= 0 {
		timeoutSec = 10
	}
	return &ScrapeFetcher{src: src, timeout: time.Duration(timeoutSec) * time.Second}
}

func (s *ScrapeFetcher) Name() string {
	return s.src.Name
}

func (s *ScrapeFetcher) Source() sources.Source {
	return s.src
}

func (s *ScrapeFetcher) Fetch(ctx context.Context) ([]RawEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log.Printf("scrape %s...", s.src.Name)

	c := colly.NewCollector(
		colly.UserAgent(rssUserAgent),
	)
	c.SetRequestTimeout(s.timeout)

	entries := make([]RawEntry, 0, scrapeMaxEntries)

	c.OnHTML("body", func(e *colly.HTMLElement) {
		e.DOM.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
			if len(entries) >= scrapeMaxEntries {
				return false
			}
			text := strings.TrimSpace(a.Text())
			if len(text) < scrapeMinText {
				return true
			}
			href, _ := a.Attr("href")
			href = strings.TrimSpace(href)
			if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "javascript:") {
				return true
			}
			if !strings.HasPrefix(href, "http") {
				href = strings.TrimRight(s.src.URL, "/") + "/" + strings.TrimLeft(href, "/")
			}
			entries = append(entries, RawEntry{
				Title:   text,
				Link:    href,
				Summary: "Latest update from " + s.src.Name,
			})
			return true
		})
	})

	if err := c.Visit(s.src.URL); err != nil {
		log.Printf("scrape %s failed: %v", s.src.Name, err)
		return nil, err
	}

	if len(entries) == 0 {
		log.Printf("scrape %s got 0 items", s.src.Name)
	}
	return entries, nil
}
