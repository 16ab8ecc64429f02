package intent

// Intents is the result of classifying one prompt.
type Intents struct {
	Market  bool
	Weather bool
	// Product is the narrowed product name for a market query, or "" when
	// no specific product matched.
	Product string
}

// Classifier detects provider intents in a prompt. The default
// implementation is substring matching; it can be swapped for a real
// classifier without touching the composer or the providers.
type Classifier interface {
	Classify(prompt string) Intents
	// IsFarmingQuery reports whether the prompt contains any farming
	// vocabulary. Informational only; the backend never refuses on it.
	IsFarmingQuery(prompt string) bool
}

// KeywordClassifier is the default substring-based Classifier.
type KeywordClassifier struct{}

// NewKeywordClassifier creates the default classifier.
func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{}
}

var _ Classifier = (*KeywordClassifier)(nil)

// Classify evaluates the market, weather and product keyword sets.
func (k *KeywordClassifier) Classify(prompt string) Intents {
	var in Intents

	if Matches(prompt, MarketKeywords) {
		in.Market = true
		for _, p := range Products {
			if Matches(prompt, p.Keywords) {
				in.Product = p.Name
				break
			}
		}
	}

	in.Weather = Matches(prompt, WeatherKeywords)

	return in
}

// IsFarmingQuery checks the prompt against the broad farming vocabulary.
func (k *KeywordClassifier) IsFarmingQuery(prompt string) bool {
	return Matches(prompt, FarmingKeywords)
}
