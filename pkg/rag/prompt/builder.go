package prompt

import (
	"fmt"
	"strings"

	"dbt-dost-be/internal/constant"
	"dbt-dost-be/pkg/rag/index"
	"dbt-dost-be/pkg/store"
)

// Builder assembles the grounded prompt handed to the generative model:
// language-specific system rules, the retrieved context block, the user
// question, then the answer instructions.
type Builder struct {
	threshold float32
	topK      int
}

func NewBuilder(threshold float32, topK int) *Builder {
	return &Builder{
		threshold: threshold,
		topK:      topK,
	}
}

// Build composes the full prompt for a query and its retrieval results
func (b *Builder) Build(query string, results []index.Result, lang string) string {
	systemRules := constant.SystemRulesHI
	instructions := constant.InstructionsHI
	if lang == store.LanguageEnglish {
		systemRules = constant.SystemRulesEN
		instructions = constant.InstructionsEN
	}

	var prompt strings.Builder
	prompt.WriteString(systemRules)
	prompt.WriteString("\n\n")
	prompt.WriteString("Context (authoritative legal/policy text snippets):\n")
	prompt.WriteString(b.BuildContext(results))
	prompt.WriteString("\n\n")
	prompt.WriteString("User question:\n")
	prompt.WriteString(query)
	prompt.WriteString("\n\n")
	prompt.WriteString("Instructions:\n")
	prompt.WriteString(instructions)

	return prompt.String()
}

// BuildContext renders the retrieved snippets that clear the threshold, each
// prefixed with its score, best first. When nothing survives it substitutes a
// literal marker instead of an empty block.
func (b *Builder) BuildContext(results []index.Result) string {
	blocks := make([]string, 0, len(results))
	for _, r := range results {
		if r.Score < b.threshold {
			continue
		}
		blocks = append(blocks, fmt.Sprintf("[Context score=%.2f]\n%s", r.Score, r.Snippet))
	}

	if len(blocks) == 0 {
		return constant.NoContextMarker
	}
	if len(blocks) > b.topK {
		blocks = blocks[:b.topK]
	}
	return strings.Join(blocks, "\n\n---\n\n")
}

// Fallback returns the fixed language-correct sentence substituted when the
// model reply is empty or the generation call fails.
func Fallback(lang string) string {
	if lang == store.LanguageEnglish {
		return constant.NoAnswerFallbackEN
	}
	return constant.NoAnswerFallbackHI
}

// Refusal returns the fixed out-of-domain refusal for a language
func Refusal(lang string) string {
	if lang == store.LanguageEnglish {
		return constant.RefusalEN
	}
	return constant.RefusalHI
}
