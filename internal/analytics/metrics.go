package analytics

import (
	"regexp"
	"strconv"
	"strings"
)

// The fixed extraction patterns, keyed by metric name. Each yields at
// most one value per text: the first non-empty capture group across
// all matches.
func compileMetricPatterns() []metricPattern {
	raw := []struct{ name, expr string }{
		{"inflation_rate", `(?i)inflation.*?(\d+\.?\d*)\s*%`},
		{"policy_rate", `(?i)MPR.*?(\d+\.?\d*)\s*%|policy rate.*?(\d+\.?\d*)\s*%`},
		{"exchange_rate", `(?i)(\d+\.?\d*)\s*(?:naira|NGN)\s*(?:per|to)\s*(?:dollar|USD)`},
		{"gdp_growth", `(?i)GDP.*?growth.*?(\d+\.?\d*)\s*%`},
		{"budget_amount", `(?i)budget.*?₦\s*(\d+(?:,\d+)*(?:\.\d+)?)\s*(?:trillion|billion|million)?`},
		{"oil_price", `(?i)oil.*?\$(\d+\.?\d*)|crude.*?\$(\d+\.?\d*)`},
		{"unemployment_rate", `(?i)unemployment.*?(\d+\.?\d*)\s*%`},
		{"debt_amount", `(?i)debt.*?(\d+(?:,\d+)*(?:\.\d+)?)\s*(?:trillion|billion|million)`},
	}

	patterns := make([]metricPattern, 0, len(raw))
	for _, p := range raw {
		patterns = append(patterns, metricPattern{name: p.name, re: regexp.MustCompile(p.expr)})
	}
	return patterns
}

// ExtractEconomicData pulls numeric indicators out of free text.
// Values parse to float64 where possible, otherwise the raw string is
// kept (ParseFailure recovery: the metric is omitted, never an error).
func (e *Engine) ExtractEconomicData(text string) map[string]any {
	extracted := make(map[string]any)

	for _, p := range e.patterns {
		matches := p.re.FindAllStringSubmatch(text, -1)
		if len(matches) == 0 {
			continue
		}

		value := ""
		for _, m := range matches {
			for _, group := range m[1:] {
				if group != "" {
					value = group
					break
				}
			}
			if value != "" {
				break
			}
		}
		if value == "" {
			continue
		}

		clean := strings.ReplaceAll(value, ",", "")
		if f, err := strconv.ParseFloat(clean, 64); err == nil {
			extracted[p.name] = f
		} else {
			extracted[p.name] = value
		}
	}
	return extracted
}
