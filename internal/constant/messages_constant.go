package constant

// BotMessages holds the static conversational texts for one language
type BotMessages struct {
	MenuBody        string
	MenuCheckStatus string
	MenuFAQ         string
	MenuHelpSupport string
	MenuAskQuestion string
	CheckStatusMsg  string
	SupportMsg      string
	AskQuestionMsg  string
	InvalidInput    string
	ContinuePrompt  string
	ContinueButton  string
	ExitButton      string
}

var messagesEN = BotMessages{
	MenuBody:        "Welcome to the DBT Dost Helpdesk. This service provides clear information about government schemes. Please select an option to begin.",
	MenuCheckStatus: "Check Status",
	MenuFAQ:         "FAQ",
	MenuHelpSupport: "Help and Support",
	MenuAskQuestion: "Ask a Question",
	CheckStatusMsg:  "To check your status, please visit the official Aadhaar website:\nhttps://tathya.uidai.gov.in/access/login?role=resident",
	SupportMsg:      "For help and support, please visit the official UIDAI FAQ page:\nhttps://uidai.gov.in/en/contact-support/have-any-question/308-english-uk/faqs/direct-benefit-transfer-dbt.html",
	AskQuestionMsg:  "Please type your question about Aadhaar, DBT, NSP scholarships or bank seeding.",
	InvalidInput:    "Invalid input. Please send 'Hi' to see the main menu.",
	ContinuePrompt:  "Would you like to ask another question?",
	ContinueButton:  "Continue Asking",
	ExitButton:      "Exit to Main Menu",
}

var messagesHI = BotMessages{
	MenuBody:        "डीबीटी दोस्त हेल्पडेस्क में आपका स्वागत है। यह सेवा सरकारी योजनाओं के बारे में स्पष्ट और सरल जानकारी प्रदान करने के लिए बनाई गई है। कृपया आरंभ करने के लिए एक विकल्प चुनें।",
	MenuCheckStatus: "स्थिति जांचें",
	MenuFAQ:         "FAQ",
	MenuHelpSupport: "सहायता और समर्थन",
	MenuAskQuestion: "प्रश्न पूछें",
	CheckStatusMsg:  "अपनी स्थिति की जांच करने के लिए, कृपया आधिकारिक आधार वेबसाइट पर जाएं:\nhttps://tathya.uidai.gov.in/access/login?role=resident",
	SupportMsg:      "सहायता और समर्थन के लिए, कृपया आधिकारिक यूआईडीएआई FAQ पृष्ठ पर जाएं:\nhttps://uidai.gov.in/en/contact-support/have-any-question/308-english-uk/faqs/direct-benefit-transfer-dbt.html",
	AskQuestionMsg:  "कृपया Aadhaar, DBT, NSP स्कॉलरशिप या बैंक सीडिंग के बारे में अपना प्रश्न लिखें।",
	InvalidInput:    "अमान्य इनपुट। कृपया मुख्य मेनू देखने के लिए 'Hi' भेजें।",
	ContinuePrompt:  "क्या आप एक और प्रश्न पूछना चाहेंगे?",
	ContinueButton:  "प्रश्न पूछें",
	ExitButton:      "मुख्य मेनू पर जाएं",
}

// MessagesFor returns the static texts for a language, falling back to English
// for anything unrecognized.
func MessagesFor(lang string) BotMessages {
	if lang == "hi" {
		return messagesHI
	}
	return messagesEN
}

const LanguageSelectionBody = "Welcome to DBT Dost!\n\nकृपया अपनी भाषा चुनें / Please select your language:"

const (
	LanguageButtonHindi   = "हिंदी (Hindi)"
	LanguageButtonEnglish = "English"
)

// List menu chrome
const (
	MainMenuButtonLabel     = "Select Option"
	CategoryMenuBody        = "Please select a topic:"
	CategoryMenuButtonLabel = "Select Topic"
	CategorySectionTitle    = "Available Topics"
	QuestionMenuBodyFmt     = "Please select a question from %s:"
	QuestionMenuButtonLabel = "Select Question"
	BackToCategoriesTitle   = "← Back to Categories"
	BackToCategoriesDesc    = "Return to topic selection"
	CategoryMissMsg         = "Sorry, I couldn't find that category."
)
