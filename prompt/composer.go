// Package prompt builds the ordered message list sent to the model: the
// instruction contract, then ephemeral context messages, then the full
// session history. Topic enforcement is delegated entirely to the model via
// the refusal sentence embedded in the contract; the backend never refuses
// a prompt itself.
package prompt

import (
	"fmt"

	"github.com/xiaot623/farmchat/domain"
	"github.com/xiaot623/farmchat/llm"
)

const fallbackLang = "en"

var refusalMessages = map[string]string{
	"ta": "நான் விவசாயம் தொடர்பான கேள்விகளுக்கு மட்டுமே பதிலளிக்க முடியும்.",
	"hi": "मैं केवल कृषि से संबंधित प्रश्नों के उत्तर दे सकता हूँ।",
	"te": "నేను వ్యవసాయ సంబంధిత ప్రశ్నలకు మాత్రమే సమాధానం ఇవ్వగలను.",
	"mr": "मी फक्त शेतीसंबंधित प्रश्नांची उत्तरे देऊ शकतो。",
	"en": "I can only answer farming-related questions.",
}

// weather-condition example categories, in the order they appear in the
// instruction contract.
const (
	conditionClear = "Sunny/Clear"
	conditionRainy = "Rainy/Drizzle"
	conditionHot   = "Hot"
	conditionCold  = "Cold"
)

var weatherExamples = map[string]map[string]string{
	conditionClear: {
		"ta": "தெளிவான வானிலை. அறுவடைக்கு நல்லது. நீர்ப்பாசனத்திற்கு திட்டமிடுங்கள்.",
		"hi": "साफ मौसम है। कटाई के लिए अच्छा है। सिंचाई की योजना बनाएं।",
		"en": "Clear weather. Good for harvesting. Plan for irrigation.",
	},
	conditionRainy: {
		"ta": "மழை தூறல் உள்ளது. நீர் வடிகால் சரிபார்த்து, அறுவடையை ஒத்திவைக்கலாம்.",
		"hi": "बारिश की बूंदाबांदी है। जल निकासी जांचें, कटाई स्थगित कर सकते हैं।",
		"en": "There is a drizzle. Check drainage; you might postpone harvest.",
	},
	conditionHot: {
		"ta": "வெப்பநிலை அதிகம். நீர்ப்பாசனம் செய்யவும், நிழல் வலைகளை பயன்படுத்தவும்.",
		"hi": "तापमान अधिक है। सिंचाई करें, शेड नेट का प्रयोग करें।",
		"en": "High temperature. Irrigate, use shade nets.",
	},
	conditionCold: {
		"ta": "குளிர்ச்சியான வானிலை. பயிர்களை பாதுகாக்கவும்.",
		"hi": "ठंडा मौसम है। फसलों को सुरक्षित रखें।",
		"en": "Cold weather. Protect crops.",
	},
}

// RefusalMessage returns the localized off-topic refusal sentence embedded
// in the instruction contract, falling back to English.
func RefusalMessage(lang string) string {
	if msg, ok := refusalMessages[lang]; ok {
		return msg
	}
	return refusalMessages[fallbackLang]
}

// weatherExample returns the localized example advice for a condition
// category, falling back to English.
func weatherExample(lang, condition string) string {
	table, ok := weatherExamples[condition]
	if !ok {
		return ""
	}
	if s, ok := table[lang]; ok {
		return s
	}
	return table[fallbackLang]
}

// instruction builds the system instruction contract for a target language.
// It is built fresh per request because the language code and the localized
// examples are interpolated directly into the text.
func instruction(lang string) string {
	return fmt.Sprintf(
		"You are an AI assistant providing **ONLY concise, direct, and actionable agricultural advice** "+
			"to farmers in India. Your responses MUST adhere to these strict rules: "+
			"1.  **Language:** Respond **ENTIRELY in %s.** NEVER mix languages or provide translations. "+
			"    If the user asks in a different language than %s, translate it internally and respond ENTIRELY in %s."+
			"2.  **Length:** Keep responses to a **maximum of 3 sentences**. Be as brief and direct as possible. "+
			"    Ensure the advice is easy to understand and complete within the length constraint. "+
			"    Do NOT add extra greetings, intros, or outros. Get straight to the point."+
			"3.  **Content:** ONLY discuss agriculture, farming, crops, weather impacting farming, or market prices. "+
			"    **ABSOLUTELY NO philosophical, religious, personal opinions, or irrelevant remarks.** "+
			"    If the question is not about farming, respond briefly: '%s'"+
			"4.  **Actionable Advice:** Use any provided 'WEATHER_INFO' or 'MARKET_INFO' to give practical farming advice directly related to the user's query."+
			"    **If 'MARKET_INFO' is present, prioritize answering the market query first and concisely.**"+
			"    **Always consider the previous conversation history to maintain context and continuity.**"+
			"    **Example Weather Advice (translate to %s internally, keep it ultra-short):**\n"+
			"    - **Sunny/Clear:** %s\n"+
			"    - **Rainy/Drizzle:** %s\n"+
			"    - **Hot:** %s\n"+
			"    - **Cold:** %s\n"+
			"Focus ONLY on the current query and relevant past context. Do not add preamble or postamble. Be very brief.",
		lang, lang, lang,
		RefusalMessage(lang),
		lang,
		weatherExample(lang, conditionClear),
		weatherExample(lang, conditionRainy),
		weatherExample(lang, conditionHot),
		weatherExample(lang, conditionCold),
	)
}

// Compose produces the outbound message list: instruction contract first,
// then the ephemeral context messages in the caller's order, then the
// persisted history oldest-first (the current user turn included).
func Compose(lang string, extra []llm.Message, history []domain.Turn) []llm.Message {
	messages := make([]llm.Message, 0, 1+len(extra)+len(history))
	messages = append(messages, llm.Message{Role: string(domain.RoleSystem), Content: instruction(lang)})
	messages = append(messages, extra...)
	for _, turn := range history {
		messages = append(messages, llm.Message{Role: string(turn.Role), Content: turn.Content})
	}
	return messages
}
