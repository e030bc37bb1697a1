package constant

// DomainKeywords restricts the assistant to Aadhaar/DBT topics. A query
// containing any of these (case-insensitive substring) is admitted without
// consulting retrieval scores.
var DomainKeywords = []string{
	"dbt", "direct benefit transfer", "benefit transfer", "subsidy",
	"aadhaar", "aadhar", "uid", "uidai", "bank seeding", "npci mapper",
	"nsp", "national scholarship portal", "scholarship", "kyc", "aeps",
	"mgnrega", "pension", "lpg", "bank linking", "seeding",
}

const RefusalEN = "I can only help with Aadhaar and DBT related questions. " +
	"Please ask about topics like DBT, Aadhaar linking, NSP scholarships, or bank seeding."

const RefusalHI = "मैं केवल Aadhaar और DBT संबंधी प्रश्नों में मदद कर सकता हूं। " +
	"कृपया DBT, Aadhaar linking, NSP scholarships, या bank seeding के बारे में पूछें।"

// Fallback sentences substituted whenever generation fails or yields nothing
const NoAnswerFallbackEN = "Sorry, I couldn't generate a proper answer from the available context. " +
	"Please check official government portals for more information."

const NoAnswerFallbackHI = "माफ़ कीजिए, उपलब्ध संदर्भ से उचित उत्तर नहीं दे पाया। कृपया अधिक जानकारी के लिए सरकारी पोर्टल देखें।"

const FAQAnswerMiss = "Sorry, I couldn't find the answer to that question. Please contact support for assistance."

// Greetings reopen the menu (or the language prompt when no language is set)
var Greetings = []string{"hi", "hello", "menu", "start", "नमस्ते", "मेनू"}

// Interactive reply IDs used by the WhatsApp conversation flow
const (
	ReplyLangHindi   = "lang_hi"
	ReplyLangEnglish = "lang_en"

	ReplyMenuCheckStatus = "menu_check_status"
	ReplyMenuFAQ         = "menu_faq"
	ReplyMenuHelpSupport = "menu_help_support"
	ReplyMenuAskQuestion = "menu_ask_question"

	ReplyContinueFAQ      = "continue_faq"
	ReplyExitFAQ          = "exit_faq"
	ReplyBackToCategories = "back_to_categories"

	ReplyFAQCategoryPrefix = "faq_cat_"
	ReplyFAQQuestionPrefix = "faq_q_"
)

const LogoImageURL = "https://i.postimg.cc/J0wCNPRN/ad.jpg"
