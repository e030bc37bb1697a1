package faq

import "strings"

// Entry is one curated FAQ topic: keyword phrases and a canned answer
type Entry struct {
	Topic    string
	Keywords []string
	Answer   string
}

// Resolver answers common questions from a small bilingual table without
// touching any external collaborator. It is consulted before the generative
// pipeline; a miss signals the caller to fall through.
type Resolver struct {
	tables map[string][]Entry
}

func NewResolver(tables map[string][]Entry) *Resolver {
	return &Resolver{tables: tables}
}

// Resolve returns the canned answer of the first topic (table insertion
// order) with a keyword phrase appearing case-insensitively in the message.
// Unrecognized languages fall back to the English table.
func (r *Resolver) Resolve(message, lang string) (string, bool) {
	entries, ok := r.tables[lang]
	if !ok {
		entries = r.tables["en"]
	}

	lm := strings.ToLower(message)
	for _, entry := range entries {
		for _, kw := range entry.Keywords {
			if strings.Contains(lm, strings.ToLower(kw)) {
				return entry.Answer, true
			}
		}
	}
	return "", false
}
