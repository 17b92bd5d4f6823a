package analytics

import (
	"strings"

	"github.com/adeyemio/NaijaPulse/internal/processor"
)

// EnhancedArticle is an article annotated with its derived analytics.
type EnhancedArticle struct {
	processor.Article
	SentimentAnalysis Sentiment      `json:"sentiment_analysis"`
	ExtractedData     map[string]any `json:"extracted_data"`
	MatchedKeywords   []string       `json:"matched_keywords"`
	MatchedEntities   []string       `json:"matched_entities"`
	RelevanceScore    float64        `json:"relevance_score"`
}

// Enhance annotates one article with sentiment, extracted metrics and
// keyword/entity matches. Relevance is a weighted match count capped
// at 1.0.
func (e *Engine) Enhance(article processor.Article) EnhancedArticle {
	text := article.Title + " " + article.Summary
	lower := strings.ToLower(text)

	matchedKeywords := make([]string, 0, 4)
	for _, kw := range e.keywords {
		if containsFold(lower, kw) {
			matchedKeywords = append(matchedKeywords, kw)
		}
	}

	matchedEntities := make([]string, 0, 4)
	for _, ent := range e.reg.Entities {
		if containsFold(lower, ent) {
			matchedEntities = append(matchedEntities, ent)
		}
	}

	relevance := float64(len(matchedKeywords))*0.3 + float64(len(matchedEntities))*0.2
	if relevance > 1.0 {
		relevance = 1.0
	}

	return EnhancedArticle{
		Article:           article,
		SentimentAnalysis: e.Sentiment(text),
		ExtractedData:     e.ExtractEconomicData(text),
		MatchedKeywords:   matchedKeywords,
		MatchedEntities:   matchedEntities,
		RelevanceScore:    relevance,
	}
}

// EnhanceAll annotates a whole feed in order.
func (e *Engine) EnhanceAll(articles []processor.Article) []EnhancedArticle {
	out := make([]EnhancedArticle, 0, len(articles))
	for _, a := range articles {
		out = append(out, e.Enhance(a))
	}
	return out
}
