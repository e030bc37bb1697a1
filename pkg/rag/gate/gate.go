package gate

import "strings"

// Gate decides whether a free-text query is in-scope before any generation
// happens. Two deliberately redundant signals admit a query: a domain keyword
// substring match, or a retrieval score clearing the threshold. Pure
// similarity fails on short keyword-heavy queries; pure keywords fail on
// paraphrases that still retrieve well.
type Gate struct {
	keywords  []string
	threshold float32
}

func New(keywords []string, threshold float32) *Gate {
	lowered := make([]string, len(keywords))
	for i, kw := range keywords {
		lowered[i] = strings.ToLower(kw)
	}
	return &Gate{
		keywords:  lowered,
		threshold: threshold,
	}
}

// KeywordMatch reports whether any domain term is a case-insensitive
// substring of the query.
func (g *Gate) KeywordMatch(query string) bool {
	lq := strings.ToLower(query)
	for _, kw := range g.keywords {
		if strings.Contains(lq, kw) {
			return true
		}
	}
	return false
}

// Admit applies the OR-based admission rule against the best retrieval score
func (g *Gate) Admit(query string, bestScore float32) bool {
	return g.KeywordMatch(query) || bestScore >= g.threshold
}

// Threshold exposes the configured similarity cutoff
func (g *Gate) Threshold() float32 {
	return g.threshold
}
