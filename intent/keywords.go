// Package intent decides which auxiliary data providers should fire for a
// prompt. Detection is literal case-insensitive substring matching over
// fixed keyword sets spanning English, Hindi, Tamil, Telugu and Marathi.
package intent

import "strings"

// MarketKeywords trigger the market price lookup.
var MarketKeywords = []string{
	"market", "price", "rate", "சந்தை", "விலை", "தாமம்", "மண்டி",
	"भाव", "commodities", "आज का भाव", "current rate", "कीमत",
}

// WeatherKeywords trigger the weather lookup.
var WeatherKeywords = []string{
	"weather", "climate", "வானிலை", "கிளைமேட்", "मौसम", "हवामान", "तापमान",
	"மழை", "வெப்பநிலை", "humidity", "temperature", "conditions", "rain",
	"sunny", "cloudy", "cold", "hot", "बारिश", "धूप", "ठंड", "गर्म",
}

// Product is one entry of the product table. The table is a slice so that
// product resolution iterates in a fixed order; the first match wins.
type Product struct {
	Name     string
	Keywords []string
}

// Products is the per-product keyword table used to narrow a market query.
var Products = []Product{
	{Name: "tomato", Keywords: []string{"tomato", "தக்காளி", "टमाटर", "టమాటా", "टोमॅटो"}},
	{Name: "onion", Keywords: []string{"onion", "வெங்காயம்", "प्याज", "ఉల్లిపాయ", "कांदा"}},
}

// FarmingKeywords is the broad farming vocabulary. The backend no longer
// refuses non-farming prompts itself (topic enforcement is delegated to the
// model), but the check is still logged per request.
var FarmingKeywords = []string{
	"market", "price", "rate", "sell", "buy", "cost", "value", "demand", "supply",
	"tomato", "onion", "potato", "rice", "wheat", "corn", "maize", "beans", "lentils", "pulses", "vegetable", "fruit", "crop",
	"weather", "climate", "soil", "fertilizer", "pest", "disease", "farm", "agriculture",
	"seed", "harvest", "yield", "irrigation", "tractor", "cultivation", "farming", "farmer",
	"equipment", "maintenance", "machine", "tools", "ploughing", "sowing", "harvester",
	"grapes", "bad smell", "rot", "spoiled", "smelly", "दुर्गन्धी", "अंगुर", "अंगूर",
	"சந்தை", "விலை", "தாமம்", "மண்டி", "பசார்", "பாவ்", "பொருள்", "பொருள் விலை", "தேவை", "அளவு",
	"தக்காளி", "வெங்காயம்", "உருளைக்கிழங்கு", "அரிசி", "கோதுமை", "மக்காச்சோளம்", "பீன்ஸ்", "பயறு", "காய்கறி", "பழம்", "பயிர்",
	"வானிலை", "கிளைமேட்", "மழை", "சூழ்நிலை", "நிலம்", "உரம்", "பூச்சி", "நோய்", "நீர்", "களையெடுப்பு", "கடன்",
	"விவசாயி", "பண்ணை", "உற்பத்தி", "நடவு", "சாகுபடி", "வறட்சி", "வெப்பநிலை", "ஈரப்பதம்", "ஈரத்தன்மை",
	"मौसम", "फसल", "कृषि", "बाजार", "दाम", "मंडी", "खाद", "मिट्टी", "बीज", "सिंचाई",
	"कीट", "रोग", "खेती", "लागत", "उत्पादन", "किसान", "खेत", "बुवाई", "कटाई", "सूखा", "तापमान", "आर्द्रता",
	"टमाटर", "प्याज", "आलू", "चावल", "गेहूं", "मक्का", "सेम", "दालें", "सब्जी", "फल",
	"వాతావరణం", "పంట", "రైతు", "వ్యవసాయం", "ధర", "మార్కెట్", "విత్తనం", "నేల", "తెగులు",
	"నీటిపారుదల", "ఎరువు", "దిగుబడి", "సేద్యం", "కొనుగోలు", "అమ్మకం", "వర్షం", "ఎండ",
	"టమాటా", "ఉల్లిపాయ", "బంగాళాదుంప", "వరి", "గోధుమ", "మొక్కజొన్న", "చిక్కుడు", "పప్పుధాన్యాలు", "కూరగాయలు", "పండ్లు",
	"हवामान", "पिक", "शेती", "खते", "बाजारभाव", "माती", "बियाणे", "कीटकनाशके", "सिंचन",
	"पीकपाणी", "रोगराई", "शेतकरी", "मशागत", "पेरणी", "काढणी", "पाऊस", "ऊन",
	"टोमॅटो", "कांदा", "बटाटा", "तांदूळ", "गहू", "मका", "शेंगा", "डाळी", "भाजी", "फळ",
}

// Matches reports whether any keyword in the set is a substring of the
// lowercased, trimmed text. No tokenization or word-boundary checks:
// substring collisions over-trigger rather than under-trigger.
func Matches(text string, keywords []string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
