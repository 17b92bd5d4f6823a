package sources

import (
	"fmt"
	"math/rand"
	"net/url"
)

// Source kinds decide which fetch adapter handles the source.
const (
	KindFeed   = "feed"
	KindScrape = "scrape"
)

// Article type tags carried through to the snapshot output.
const (
	TypeRSS        = "rss"
	TypeGoogleNews = "google_news"
	TypeTwitter    = "twitter"
	TypeWebScrape  = "web_scrape"
	TypeSample     = "sample"
)

// Source describes one upstream news source. Immutable after load.
type Source struct {
	Name     string `yaml:"name"`
	URL      string `yaml:"url"`
	Kind     string `yaml:"kind"`
	Category string `yaml:"category"`
	Type     string `yaml:"type"`
	// Filter enables the relevance keyword gate for this source.
	// Social feeds skip it: a nitter search is already topic-scoped.
	Filter bool `yaml:"filter"`
}

// Default returns the built-in Nigerian economic news source list.
func Default() []Source {
	return []Source{
		{Name: "BusinessDay Nigeria", URL: "https://businessday.ng/feed/", Kind: KindFeed, Category: "business", Type: TypeRSS, Filter: true},
		{Name: "Nairametrics", URL: "https://nairametrics.com/feed/", Kind: KindFeed, Category: "economic_analysis", Type: TypeRSS, Filter: true},
		{Name: "Premium Times", URL: "https://www.premiumtimesng.com/feed/", Kind: KindFeed, Category: "general", Type: TypeRSS, Filter: true},
		{Name: "The Cable", URL: "https://www.thecable.ng/feed", Kind: KindFeed, Category: "politics_economy", Type: TypeRSS, Filter: true},
		{Name: "Punch Nigeria", URL: "https://punchng.com/feed/", Kind: KindFeed, Category: "general", Type: TypeRSS, Filter: true},
		{Name: "Guardian Nigeria", URL: "https://guardian.ng/feed/", Kind: KindFeed, Category: "business", Type: TypeRSS, Filter: true},
		{Name: "Google News Nigeria", URL: "https://rss.app/feeds/v6hV9JCnF3q3pWwR.xml", Kind: KindFeed, Category: "aggregated", Type: TypeGoogleNews, Filter: true},
		{Name: "Google News CBN", URL: "https://rss.app/feeds/d8ZfvKj7JDMTC6zN.xml", Kind: KindFeed, Category: "monetary_policy", Type: TypeGoogleNews, Filter: true},
		{Name: "Twitter Nigeria Economy", URL: "https://nitter.net/search/rss?f=tweets&q=nigeria+economy", Kind: KindFeed, Category: "social", Type: TypeTwitter, Filter: false},
		{Name: "BBC News Nigeria", URL: "https://feeds.bbci.co.uk/news/world/africa/rss.xml", Kind: KindFeed, Category: "international", Type: TypeRSS, Filter: true},
		{Name: "Reuters Africa Business", URL: "https://www.reutersagency.com/feed/?best-topics=business-finance&post_type=best", Kind: KindFeed, Category: "international", Type: TypeRSS, Filter: true},
		{Name: "Central Bank of Nigeria", URL: "https://www.cbn.gov.ng", Kind: KindScrape, Category: "monetary_policy", Type: TypeWebScrape, Filter: true},
		{Name: "National Bureau of Statistics", URL: "https://nigerianstat.gov.ng", Kind: KindScrape, Category: "economic_data", Type: TypeWebScrape, Filter: true},
	}
}

// Keywords returns the relevance keyword list. Matching is
// case-insensitive substring containment.
func Keywords() []string {
	return []string{
		"nigeria", "nigerian", "naira", "cbn", "central bank", "inflation",
		"gdp", "economy", "nnpc", "crude oil", "petroleum", "budget",
		"debt", "interest rate", "mpc", "monetary policy", "exchange rate",
		"lagos", "abuja", "fg", "federal government", "revenue",
		"export", "import", "trade", "manufacturing", "agriculture",
	}
}

// Proxies are free CORS proxy prefixes used as a retrieval fallback
// when a direct feed fetch returns nothing.
var Proxies = []string{
	"https://api.allorigins.win/raw?url=",
	"https://corsproxy.io/?",
	"https://api.codetabs.com/v1/proxy?quest=",
}

// ProxyURL wraps raw in a randomly chosen CORS proxy.
func ProxyURL(raw string) string {
	proxy := Proxies[rand.Intn(len(Proxies))]
	return fmt.Sprintf("%s%s", proxy, url.QueryEscape(raw))
}
