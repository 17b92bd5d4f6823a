package analytics

import "strings"

// Sentiment labels. Thresholds are shared between per-article labeling
// and the aggregate distribution buckets.
const (
	LabelPositive = "positive"
	LabelNeutral  = "neutral"
	LabelNegative = "negative"

	positiveThreshold = 0.2
	negativeThreshold = -0.2
	maxConfidence     = 0.8
)

// Sentiment is the per-article result of the lexicon heuristic.
type Sentiment struct {
	Score      float64 `json:"score"`
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// Sentiment scores text with a bag-of-words ratio over two fixed
// economic lexicons: score = (pos - neg) / (pos + neg), one hit per
// lexicon word present. This is a keyword heuristic, not a trained
// model, and is documented as such.
func (e *Engine) Sentiment(text string) Sentiment {
	lower := strings.ToLower(text)

	pos := 0
	for _, w := range e.reg.Positive {
		if strings.Contains(lower, w) {
			pos++
		}
	}
	neg := 0
	for _, w := range e.reg.Negative {
		if strings.Contains(lower, w) {
			neg++
		}
	}

	total := pos + neg
	if total == 0 {
		return Sentiment{Score: 0, Label: LabelNeutral, Confidence: 0.5}
	}

	score := float64(pos-neg) / float64(total)
	label := SentimentLabel(score)
	conf := 0.5
	if label != LabelNeutral {
		conf = abs(score)
		if conf > maxConfidence {
			conf = maxConfidence
		}
	}
	return Sentiment{Score: score, Label: label, Confidence: conf}
}

// SentimentLabel maps a score in [-1,1] to its bucket.
func SentimentLabel(score float64) string {
	switch {
	case score > positiveThreshold:
		return LabelPositive
	case score < negativeThreshold:
		return LabelNegative
	default:
		return LabelNeutral
	}
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
