package pipeline

import (
	"context"
	"strings"

	"dbt-dost-be/internal/pkg/logger"
	"dbt-dost-be/pkg/llm"
	"dbt-dost-be/pkg/rag/faq"
	"dbt-dost-be/pkg/rag/gate"
	"dbt-dost-be/pkg/rag/index"
	"dbt-dost-be/pkg/rag/prompt"
	"dbt-dost-be/pkg/store"
)

// Searcher is the retrieval dependency of the pipeline
type Searcher interface {
	Search(ctx context.Context, query string, k int) ([]index.Result, error)
}

// Pipeline is the single parameterized question-answering flow shared by the
// REST query path and the WhatsApp AI-query path: FAQ table first, then domain
// gate, then grounded generation. It never returns an error; every failure
// degrades to a fixed language-correct sentence.
type Pipeline struct {
	searcher    Searcher
	domainGate  *gate.Gate
	prompts     *prompt.Builder
	faqResolver *faq.Resolver
	llmProvider llm.LLMProvider
	logger      logger.ILogger
	topK        int
}

func New(
	searcher Searcher,
	domainGate *gate.Gate,
	prompts *prompt.Builder,
	faqResolver *faq.Resolver,
	llmProvider llm.LLMProvider,
	sysLogger logger.ILogger,
	topK int,
) *Pipeline {
	return &Pipeline{
		searcher:    searcher,
		domainGate:  domainGate,
		prompts:     prompts,
		faqResolver: faqResolver,
		llmProvider: llmProvider,
		logger:      sysLogger,
		topK:        topK,
	}
}

// Answer produces the reply for one free-text question in the requested
// language ("en" or "hi"; anything else resolves to Hindi).
func (p *Pipeline) Answer(ctx context.Context, message, lang string) string {
	if lang = strings.ToLower(lang); lang != store.LanguageEnglish {
		lang = store.LanguageHindi
	}

	// Zero-latency path: curated FAQ table
	if answer, ok := p.faqResolver.Resolve(message, lang); ok {
		p.logger.Info("pipeline", "Answered from FAQ table", map[string]interface{}{"language": lang})
		return answer
	}

	results, err := p.searcher.Search(ctx, message, p.topK)
	if err != nil {
		p.logger.Error("pipeline", "Retrieval failed", map[string]interface{}{"error": err.Error()})
		return prompt.Fallback(lang)
	}

	var bestScore float32
	if len(results) > 0 {
		bestScore = results[0].Score
	}

	if !p.domainGate.Admit(message, bestScore) {
		p.logger.Info("pipeline", "Query rejected by domain gate", map[string]interface{}{
			"best_score": bestScore,
			"language":   lang,
		})
		return prompt.Refusal(lang)
	}

	promptText := p.prompts.Build(message, results, lang)
	reply, err := p.llmProvider.Generate(ctx, promptText)
	if err != nil {
		p.logger.Error("pipeline", "Generation failed", map[string]interface{}{"error": err.Error()})
		return prompt.Fallback(lang)
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		// Emptiness is an expected model outcome, not an error
		return prompt.Fallback(lang)
	}
	return reply
}
