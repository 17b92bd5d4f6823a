package analytics

// Indicator is one tracked economic keyword with its trend weight and
// inherent sentiment leaning (-1, 0, 1).
type Indicator struct {
	Weight    int
	Sentiment int
}

// Registry holds the static keyword/entity/lexicon tables the engine
// works from. Immutable after construction; injected, never global.
type Registry struct {
	Indicators map[string]Indicator
	Entities   []string
	Positive   []string
	Negative   []string
}

// DefaultRegistry returns the built-in Nigerian economy tables.
func DefaultRegistry() Registry {
	return Registry{
		Indicators: map[string]Indicator{
			"inflation":     {Weight: 10, Sentiment: -1},
			"growth":        {Weight: 8, Sentiment: 1},
			"naira":         {Weight: 9, Sentiment: 0},
			"dollar":        {Weight: 9, Sentiment: 0},
			"CBN":           {Weight: 8, Sentiment: 0},
			"interest rate": {Weight: 7, Sentiment: -1},
			"GDP":           {Weight: 9, Sentiment: 0},
			"unemployment":  {Weight: 7, Sentiment: -1},
			"budget":        {Weight: 6, Sentiment: 0},
			"debt":          {Weight: 6, Sentiment: -1},
			"oil":           {Weight: 8, Sentiment: 0},
			"crude":         {Weight: 8, Sentiment: 0},
			"export":        {Weight: 6, Sentiment: 1},
			"import":        {Weight: 6, Sentiment: -1},
			"trade":         {Weight: 6, Sentiment: 0},
		},
		Entities: []string{
			"CBN", "Central Bank", "NNPC", "NDIC", "NBS", "DMO",
			"Finance Ministry", "Budget Office", "FIRS", "Customs",
		},
		Positive: []string{
			"growth", "increase", "rise", "gain", "profit", "surplus",
			"recovery", "improve", "strong", "bullish", "optimistic",
			"positive", "outperform", "beat", "exceed", "record",
			"achievement", "success", "boom", "expansion",
		},
		Negative: []string{
			"decline", "fall", "drop", "loss", "deficit", "recession",
			"worsen", "weak", "bearish", "pessimistic", "negative",
			"underperform", "miss", "below", "crisis", "slump",
			"inflation", "debt", "default", "corruption",
		},
	}
}
