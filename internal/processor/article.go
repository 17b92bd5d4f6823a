package processor

import "time"

// Article is the canonical record downstream of normalization.
// Title and URL are non-empty for any article that survives the
// normalizer; PublishedAt is always valid UTC and never after the
// run clock.
type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Summary     string    `json:"summary"`
	Source      string    `json:"source"`
	Category    string    `json:"category"`
	PublishedAt time.Time `json:"published_at"`
	Timestamp   time.Time `json:"timestamp"`
	Type        string    `json:"type"`
}

// Feed is the full news snapshot written to news.json.
type Feed struct {
	Status        string    `json:"status"`
	LastUpdated   time.Time `json:"last_updated"`
	TotalArticles int       `json:"total_articles"`
	SourcesUsed   []string  `json:"sources_used,omitempty"`
	Articles      []Article `json:"articles"`
}
