package storage

import (
	"time"

	"github.com/adeyemio/NaijaPulse/internal/analytics"
	"github.com/adeyemio/NaijaPulse/internal/processor"
)

// UpdateSummary is the fetch-stage rollup written next to news.json.
type UpdateSummary struct {
	UpdateTime    time.Time `json:"update_time"`
	RunID         string    `json:"run_id"`
	ArticleCount  int       `json:"article_count"`
	OldestArticle time.Time `json:"oldest_article,omitempty"`
	NewestArticle time.Time `json:"newest_article,omitempty"`
	Sources       []string  `json:"sources"`
}

// EnhancedDoc wraps the annotated article list.
type EnhancedDoc struct {
	ProcessedAt time.Time                   `json:"processed_at"`
	Articles    []analytics.EnhancedArticle `json:"articles"`
}

// AnalyticsDoc wraps the global analytics summary.
type AnalyticsDoc struct {
	GeneratedAt time.Time         `json:"generated_at"`
	Analytics   analytics.Summary `json:"analytics"`
}

// TrendingDoc wraps the trend snapshot.
type TrendingDoc struct {
	GeneratedAt time.Time               `json:"generated_at"`
	Trends      analytics.TrendSnapshot `json:"trends"`
}

// SourceStatsDoc wraps the per-source statistics map.
type SourceStatsDoc struct {
	GeneratedAt time.Time                          `json:"generated_at"`
	Sources     map[string]analytics.SourceStats   `json:"sources"`
}

// SummaryDoc is the quick-consumption rollup of a processing run.
type SummaryDoc struct {
	ProcessingCompleted    time.Time        `json:"processing_completed"`
	TotalArticlesProcessed int              `json:"total_articles_processed"`
	AnalyticsSummary       AnalyticsRollup  `json:"analytics_summary"`
}

// AnalyticsRollup carries the headline numbers only.
type AnalyticsRollup struct {
	AvgSentiment     float64                     `json:"avg_sentiment"`
	TopSources       []analytics.NameCount       `json:"top_sources"`
	TrendingKeywords []analytics.TrendingKeyword `json:"trending_keywords"`
}

// ReadNews loads the raw article snapshot produced by the fetch stage.
func (s *Store) ReadNews() (processor.Feed, error) {
	var feed processor.Feed
	err := s.ReadJSON(FileNews, &feed)
	return feed, err
}
