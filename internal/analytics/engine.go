// Package analytics derives sentiment, economic metrics, trend counts
// and per-source statistics from an aggregated feed. Pure functions of
// their input: no I/O, and a bad article never aborts a batch.
package analytics

import (
	"regexp"
	"sort"
	"strings"
)

// Engine computes all derived analytics for one feed.
type Engine struct {
	reg      Registry
	keywords []string // indicator keys, sorted for determinism
	patterns []metricPattern
}

func NewEngine(reg Registry) *Engine {
	keywords := make([]string, 0, len(reg.Indicators))
	for kw := range reg.Indicators {
		keywords = append(keywords, kw)
	}
	sort.Strings(keywords)

	return &Engine{
		reg:      reg,
		keywords: keywords,
		patterns: compileMetricPatterns(),
	}
}

type metricPattern struct {
	name string
	re   *regexp.Regexp
}

// containsFold reports case-insensitive substring containment against
// an already-lowercased haystack.
func containsFold(lowerText, needle string) bool {
	return strings.Contains(lowerText, strings.ToLower(needle))
}
