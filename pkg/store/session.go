package store

// Session represents the active per-user conversation state in memory
type Session struct {
	UserID   string `json:"user_id"`
	Language string `json:"language"` // "en" | "hi", empty until the user picks one
	State    string `json:"state"`

	// The FAQ topic the user is currently browsing, empty outside the FAQ flow
	CurrentCategory string `json:"current_category"`
}

const (
	StateAwaitingLanguage       = "AWAITING_LANGUAGE"
	StateMainMenu               = "MAIN_MENU"
	StateAwaitingFAQCategory    = "AWAITING_FAQ_CATEGORY"
	StateAwaitingFAQQuestion    = "AWAITING_FAQ_QUESTION"
	StateAwaitingContinueOrExit = "AWAITING_CONTINUE_OR_EXIT"
	StateAwaitingAIQuery        = "AWAITING_AI_QUERY"
)

const (
	LanguageEnglish = "en"
	LanguageHindi   = "hi"
)

// ResolveLanguage is the single source of truth for the outbound language of a
// session. Hindi is the default until the user explicitly chooses English.
func (s *Session) ResolveLanguage() string {
	if s != nil && s.Language == LanguageEnglish {
		return LanguageEnglish
	}
	return LanguageHindi
}

// HasLanguage reports whether the user has explicitly chosen a language.
func (s *Session) HasLanguage() bool {
	return s != nil && (s.Language == LanguageEnglish || s.Language == LanguageHindi)
}
