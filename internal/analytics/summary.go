package analytics

import (
	"sort"
	"time"

	"github.com/adeyemio/NaijaPulse/internal/processor"
)

// NameCount is a ranked (name, count) pair.
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// HourCount is one publication-hour histogram bucket.
type HourCount struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

// Distribution is the 3-bucket sentiment split. Buckets use the same
// thresholds as per-article labeling.
type Distribution struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

// Period bounds the published_at range of the analyzed feed.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Summary is the global analytics rollup for one feed.
type Summary struct {
	TotalArticles         int          `json:"total_articles"`
	AvgSentiment          float64      `json:"avg_sentiment"`
	AvgArticleLength      float64      `json:"avg_article_length"`
	TopSources            []NameCount  `json:"top_sources"`
	TopCategories         []NameCount  `json:"top_categories"`
	PeakHours             []HourCount  `json:"peak_hours"`
	SentimentDistribution Distribution `json:"sentiment_distribution"`
	SourcesCount          int          `json:"sources_count"`
	CategoriesCount       int          `json:"categories_count"`
	AnalysisPeriod        Period       `json:"analysis_period"`
}

// Summarize computes the global analytics for a feed. Articles with a
// zero timestamp skip the hour histogram and period bounds only; they
// still contribute everywhere else.
func (e *Engine) Summarize(articles []processor.Article) Summary {
	if len(articles) == 0 {
		return Summary{}
	}

	byHour := make(map[int]int)
	bySource := make(map[string]int)
	byCategory := make(map[string]int)

	var sentimentSum, lengthSum float64
	var dist Distribution
	var start, end time.Time

	for _, a := range articles {
		if !a.PublishedAt.IsZero() {
			byHour[a.PublishedAt.UTC().Hour()]++
			if start.IsZero() || a.PublishedAt.Before(start) {
				start = a.PublishedAt
			}
			if a.PublishedAt.After(end) {
				end = a.PublishedAt
			}
		}

		source := a.Source
		if source == "" {
			source = "Unknown"
		}
		bySource[source]++

		category := a.Category
		if category == "" {
			category = "general"
		}
		byCategory[category]++

		text := a.Title + " " + a.Summary
		s := e.Sentiment(text)
		sentimentSum += s.Score
		lengthSum += float64(len(text))

		switch SentimentLabel(s.Score) {
		case LabelPositive:
			dist.Positive++
		case LabelNegative:
			dist.Negative++
		default:
			dist.Neutral++
		}
	}

	n := float64(len(articles))

	return Summary{
		TotalArticles:         len(articles),
		AvgSentiment:          sentimentSum / n,
		AvgArticleLength:      lengthSum / n,
		TopSources:            topCounts(bySource, 5),
		TopCategories:         topCounts(byCategory, 5),
		PeakHours:             peakHours(byHour, 3),
		SentimentDistribution: dist,
		SourcesCount:          len(bySource),
		CategoriesCount:       len(byCategory),
		AnalysisPeriod:        Period{Start: start, End: end},
	}
}

func topCounts(counts map[string]int, n int) []NameCount {
	out := make([]NameCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, NameCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func peakHours(byHour map[int]int, n int) []HourCount {
	out := make([]HourCount, 0, len(byHour))
	for hour, count := range byHour {
		out = append(out, HourCount{Hour: hour, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Hour < out[j].Hour
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
