// Package market provides canned, localized market price sentences. Prices
// are static placeholder strings, not live data; see the weather package for
// the live lookup counterpart.
package market

import "strings"

const fallbackLang = "en"

var generalPrices = map[string]string{
	"en": "Current market prices are dynamic. Generally, wheat is around ₹2100/quintal, rice ₹2600/quintal, and common vegetables like tomatoes ₹30/kg. Prices vary daily and by location. Please check local mandi for exact rates.",
	"hi": "वर्तमान बाजार भाव अस्थिर हैं। सामान्यतः, गेहूं ₹2100/क्विंटल, चावल ₹2600/क्विंटल और टमाटर जैसे आम सब्जियां ₹30/किलोग्राम के आसपास हैं। दरें दैनिक और स्थान के अनुसार बदलती रहती हैं। सटीक दरों के लिए स्थानीय मंडी में जांच करें।",
	"ta": "தற்போதைய சந்தை விலைகள் மாறும் தன்மை கொண்டவை. பொதுவாக, கோதுமை ₹2100/குவின்டால், அரிசி ₹2600/குவின்டால் மற்றும் தக்காளி போன்ற பொதுவான காய்கறிகள் ₹30/கிலோ அளவில் உள்ளன. விலைகள் தினசரி மற்றும் இடத்திற்கு ஏற்ப மாறுபடும். துல்லியமான கட்டணங்களுக்கு உள்ளூர் சந்தையை சரிபார்க்கவும்.",
	"te": "ప్రస్తుత మార్కెట్ ధరలు మారుతూ ఉంటాయి. సాధారణంగా, గోధుమ క్వింటాల్‌కు ₹2100, బియ్యం క్వింటాల్‌కు ₹2600, మరియు టమాటాలు వంటి సాధారణ కూరగాయలు కిలోకు ₹30 చుట్టూ ఉన్నాయి. ధరలు రోజువారీ మరియు ప్రాంతాన్ని బట్టి మారుతూ ఉంటాయి. ఖచ్చితమైన రేట్ల కోసం స్థానిక మార్కెట్‌ను తనిఖీ చేయండి.",
	"mr": "सध्याचे बाजारभाव अस्थिर आहेत. साधारणपणे, गहू ₹2100/क्विंटल, तांदूळ ₹2600/क्विंटल, आणि टोमॅटोसारख्या सामान्य भाज्या ₹30/किलोग्रामच्या आसपास आहेत. दर दररोज आणि ठिकाणानुसार बदलतात. अचूक दरांसाठी स्थानिक मंडईत तपासणी करा.",
}

var specificPrices = map[string]map[string]string{
	"tomato": {
		"en": "Tomato price is currently around ₹30-35 per kilogram. Prices can vary.",
		"hi": "टमाटर का भाव अभी ₹30-35 प्रति किलोग्राम है। कीमतें बदल सकती हैं।",
		"ta": "தக்காளி விலை தற்போது ஒரு கிலோவுக்கு ₹30-35 ஆக உள்ளது. விலைகள் மாறுபடலாம்.",
		"te": "టమాటా ధర ప్రస్తుతం కిలోకు ₹30-35 మధ్య ఉంది. ధరలు మారవచ్చు.",
		"mr": "टोमॅटोचा भाव सध्या ₹30-35 प्रति किलो आहे. किमती बदलू शकतात.",
	},
	"onion": {
		"en": "Onion price is typically around ₹25-30 per kilogram today.",
		"hi": "प्याज का भाव आमतौर पर आज ₹25-30 प्रति किलोग्राम के आसपास है।",
		"ta": "வெங்காயத்தின் விலை இன்று பொதுவாக ஒரு கிலோவுக்கு ₹25-30 ஆக இருக்கும்.",
		"te": "ఉల్లిపాయ ధర సాధారణంగా ఈరోజు కిలోకు ₹25-30 మధ్య ఉంటుంది.",
		"mr": "कांद्याचा भाव आज साधारणपणे ₹25-30 प्रति किलो आहे.",
	},
}

// Lookup returns the localized price sentence for a product, or the general
// multi-commodity sentence when product is empty or unknown. Unsupported
// languages fall back to English. Lookup cannot fail.
func Lookup(lang, product string) string {
	if product != "" {
		if table, ok := specificPrices[strings.ToLower(product)]; ok {
			if s, ok := table[lang]; ok {
				return s
			}
			return table[fallbackLang]
		}
	}
	if s, ok := generalPrices[lang]; ok {
		return s
	}
	return generalPrices[fallbackLang]
}
