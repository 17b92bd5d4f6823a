package processor

import (
	"time"

	"github.com/adeyemio/NaijaPulse/internal/sources"
)

// SampleArticles returns the fixed synthetic set injected when too
// few real articles survive a run. Dated relative to now by small
// hour offsets and tagged type "sample" so consumers can tell them
// apart from fetched stories.
func SampleArticles(now time.Time) []Article {
	now = now.UTC().Truncate(time.Second)

	samples := []struct {
		id       string
		title    string
		url      string
		summary  string
		source   string
		category string
		ageHours int
	}{
		{
			id:       "sample_1",
			title:    "Nigerian Economy Shows Strong Growth in Q1",
			url:      "https://businessday.ng/nigeria-economy-growth/",
			summary:  "Latest economic indicators show Nigeria's economy growing at 3.2% in the first quarter, exceeding expectations.",
			source:   "BusinessDay Nigeria",
			category: "business",
			ageHours: 0,
		},
		{
			id:       "sample_2",
			title:    "CBN Maintains Interest Rate at 18.75% to Fight Inflation",
			url:      "https://www.cbn.gov.ng/monetary-policy/",
			summary:  "The Central Bank of Nigeria has decided to maintain the Monetary Policy Rate at 18.75% in its latest MPC meeting.",
			source:   "Central Bank of Nigeria",
			category: "monetary_policy",
			ageHours: 2,
		},
		{
			id:       "sample_3",
			title:    "Naira Stabilizes at ₦890/$ in Parallel Market",
			url:      "https://nairametrics.com/naira-exchange-rate/",
			summary:  "The Nigerian naira has stabilized around ₦890 to the US dollar following recent CBN interventions in the forex market.",
			source:   "Nairametrics",
			category: "economic_analysis",
			ageHours: 4,
		},
		{
			id:       "sample_4",
			title:    "NNPC Reports $2.8 Billion Oil Revenue for January",
			url:      "https://www.thecable.ng/nnpc-oil-revenue/",
			summary:  "The Nigerian National Petroleum Corporation has announced $2.8 billion in oil revenue for January, a 12% increase from December.",
			source:   "The Cable",
			category: "politics_economy",
			ageHours: 6,
		},
		{
			id:       "sample_5",
			title:    "Inflation Drops to 20.5% in January - NBS",
			url:      "https://www.premiumtimesng.com/inflation-january/",
			summary:  "The National Bureau of Statistics reports that inflation fell to 20.5% in January, down from 21.3% in December.",
			source:   "Premium Times",
			category: "general",
			ageHours: 8,
		},
	}

	out := make([]Article, 0, len(samples))
	for _, s := range samples {
		out = append(out, Article{
			ID:          s.id,
			Title:       s.title,
			URL:         s.url,
			Summary:     s.summary,
			Source:      s.source,
			Category:    s.category,
			PublishedAt: now.Add(-time.Duration(s.ageHours) * time.Hour),
			Timestamp:   now,
			Type:        sources.TypeSample,
		})
	}
	return out
}
