package analytics

import (
	"time"

	"github.com/adeyemio/NaijaPulse/internal/processor"
)

// Update frequency classes, by hours since a source's latest article.
const (
	FreqVeryFrequent = "very_frequent" // < 2h
	FreqFrequent     = "frequent"      // < 6h
	FreqDaily        = "daily"         // < 24h
	FreqInfrequent   = "infrequent"
	FreqUnknown      = "unknown"
)

// SourceStats is the per-source rollup.
type SourceStats struct {
	ArticleCount         int            `json:"article_count"`
	DominantCategory     string         `json:"dominant_category"`
	CategoryDistribution map[string]int `json:"category_distribution"`
	AvgSentiment         float64        `json:"avg_sentiment"`
	SentimentLabel       string         `json:"sentiment_label"`
	AvgArticleLength     float64        `json:"avg_article_length"`
	LatestArticle        time.Time      `json:"latest_article"`
	UpdateFrequency      string         `json:"update_frequency"`
}

// SourceStats builds the per-source statistics map.
func (e *Engine) SourceStats(articles []processor.Article, now time.Time) map[string]SourceStats {
	type acc struct {
		count        int
		categories   map[string]int
		sentimentSum float64
		lengthSum    float64
		latest       time.Time
	}

	accs := make(map[string]*acc)
	for _, art := range articles {
		source := art.Source
		if source == "" {
			source = "Unknown"
		}
		a, ok := accs[source]
		if !ok {
			a = &acc{categories: make(map[string]int)}
			accs[source] = a
		}

		a.count++
		category := art.Category
		if category == "" {
			category = "general"
		}
		a.categories[category]++

		text := art.Title + " " + art.Summary
		a.sentimentSum += e.Sentiment(text).Score
		a.lengthSum += float64(len(text))

		if art.PublishedAt.After(a.latest) {
			a.latest = art.PublishedAt
		}
	}

	stats := make(map[string]SourceStats, len(accs))
	for source, a := range accs {
		n := float64(a.count)
		avgSentiment := a.sentimentSum / n

		dominant := "general"
		best := 0
		for category, count := range a.categories {
			if count > best || (count == best && category < dominant) {
				dominant = category
				best = count
			}
		}

		stats[source] = SourceStats{
			ArticleCount:         a.count,
			DominantCategory:     dominant,
			CategoryDistribution: a.categories,
			AvgSentiment:         avgSentiment,
			SentimentLabel:       SentimentLabel(avgSentiment),
			AvgArticleLength:     a.lengthSum / n,
			LatestArticle:        a.latest,
			UpdateFrequency:      updateFrequency(a.latest, a.count, now),
		}
	}
	return stats
}

// updateFrequency classifies a source's cadence by how long ago its
// latest article landed. Below two articles there is nothing to
// classify.
func updateFrequency(latest time.Time, count int, now time.Time) string {
	if latest.IsZero() || count < 2 {
		return FreqUnknown
	}
	switch since := now.Sub(latest); {
	case since < 2*time.Hour:
		return FreqVeryFrequent
	case since < 6*time.Hour:
		return FreqFrequent
	case since < 24*time.Hour:
		return FreqDaily
	default:
		return FreqInfrequent
	}
}
