package analytics

import (
	"sort"
	"strings"
	"time"

	"github.com/adeyemio/NaijaPulse/internal/processor"
)

const (
	trendWindow = 24 * time.Hour
	trendTopN   = 10
)

// TrendingKeyword is one ranked economic keyword in the trend window.
type TrendingKeyword struct {
	Keyword string  `json:"keyword"`
	Count   int     `json:"count"`
	Score   float64 `json:"score"`
	Weight  int     `json:"weight"`
}

// TrendingEntity is one ranked government entity in the trend window.
type TrendingEntity struct {
	Entity string  `json:"entity"`
	Count  int     `json:"count"`
	Score  float64 `json:"score"`
}

// TrendSnapshot holds the trend counts over the trailing 24 hours.
type TrendSnapshot struct {
	TrendingKeywords    []TrendingKeyword `json:"trending_keywords"`
	TrendingEntities    []TrendingEntity  `json:"trending_entities"`
	TotalRecentArticles int               `json:"total_recent_articles"`
	AnalysisTime        time.Time         `json:"analysis_time"`
}

// DetectTrends counts keyword and entity mentions across articles
// published within the trailing 24 hours of now. Scores are counts
// normalized by the recent article total; weights come from the
// indicator registry.
func (e *Engine) DetectTrends(articles []processor.Article, now time.Time) TrendSnapshot {
	return e.detectTrendsWindow(articles, now, trendWindow)
}

func (e *Engine) detectTrendsWindow(articles []processor.Article, now time.Time, window time.Duration) TrendSnapshot {
	now = now.UTC()

	var recent []processor.Article
	for _, a := range articles {
		if now.Sub(a.PublishedAt) < window {
			recent = append(recent, a)
		}
	}

	keywordCounts := make(map[string]int)
	entityCounts := make(map[string]int)
	for _, a := range recent {
		lower := strings.ToLower(a.Title + " " + a.Summary)
		for _, kw := range e.keywords {
			if containsFold(lower, kw) {
				keywordCounts[kw]++
			}
		}
		for _, ent := range e.reg.Entities {
			if containsFold(lower, ent) {
				entityCounts[ent]++
			}
		}
	}

	total := len(recent)
	norm := float64(max(total, 1))

	keywords := make([]TrendingKeyword, 0, len(keywordCounts))
	for kw, count := range keywordCounts {
		keywords = append(keywords, TrendingKeyword{
			Keyword: kw,
			Count:   count,
			Score:   float64(count) / norm,
			Weight:  e.reg.Indicators[kw].Weight,
		})
	}
	sort.Slice(keywords, func(i, j int) bool {
		if keywords[i].Count != keywords[j].Count {
			return keywords[i].Count > keywords[j].Count
		}
		return keywords[i].Keyword < keywords[j].Keyword
	})
	if len(keywords) > trendTopN {
		keywords = keywords[:trendTopN]
	}

	entities := make([]TrendingEntity, 0, len(entityCounts))
	for ent, count := range entityCounts {
		entities = append(entities, TrendingEntity{
			Entity: ent,
			Count:  count,
			Score:  float64(count) / norm,
		})
	}
	sort.Slice(entities, func(i, j int) bool {
		if entities[i].Count != entities[j].Count {
			return entities[i].Count > entities[j].Count
		}
		return entities[i].Entity < entities[j].Entity
	})
	if len(entities) > trendTopN {
		entities = entities[:trendTopN]
	}

	return TrendSnapshot{
		TrendingKeywords:    keywords,
		TrendingEntities:    entities,
		TotalRecentArticles: total,
		AnalysisTime:        now.Truncate(time.Second),
	}
}
