package pipeline

import (
	"context"
	"fmt"
	"testing"

	"dbt-dost-be/internal/constant"
	"dbt-dost-be/internal/pkg/logger"
	"dbt-dost-be/pkg/llm"
	"dbt-dost-be/pkg/rag/faq"
	"dbt-dost-be/pkg/rag/gate"
	"dbt-dost-be/pkg/rag/index"
	"dbt-dost-be/pkg/rag/prompt"

	"github.com/stretchr/testify/assert"
)

type fakeSearcher struct {
	results []index.Result
	err     error
	calls   int
}

func (f *fakeSearcher) Search(ctx context.Context, query string, k int) ([]index.Result, error) {
	f.calls++
	return f.results, f.err
}

type fakeLLM struct {
	reply      string
	err        error
	calls      int
	lastPrompt string
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return f.reply, f.err
}

func (f *fakeLLM) Generate(ctx context.Context, p string, options ...llm.Option) (string, error) {
	f.calls++
	f.lastPrompt = p
	return f.reply, f.err
}

func newTestPipeline(searcher *fakeSearcher, model *fakeLLM, faqTables map[string][]faq.Entry) *Pipeline {
	return New(
		searcher,
		gate.New([]string{"aadhaar", "dbt"}, 0.25),
		prompt.NewBuilder(0.25, 5),
		faq.NewResolver(faqTables),
		model,
		logger.NewNop(),
		5,
	)
}

func TestAnswerFAQShortCircuit(t *testing.T) {
	searcher := &fakeSearcher{}
	model := &fakeLLM{reply: "should not be used"}
	p := newTestPipeline(searcher, model, map[string][]faq.Entry{
		"en": {{Topic: "seeding", Keywords: []string{"seeding"}, Answer: "canned seeding answer"}},
	})

	got := p.Answer(context.Background(), "what is seeding?", "en")

	assert.Equal(t, "canned seeding answer", got)
	assert.Zero(t, searcher.calls, "FAQ hit must not trigger retrieval")
	assert.Zero(t, model.calls, "FAQ hit must not trigger generation")
}

func TestAnswerGroundedGeneration(t *testing.T) {
	searcher := &fakeSearcher{results: []index.Result{{Snippet: "seeding context", Score: 0.8}}}
	model := &fakeLLM{reply: "  Seeding routes your benefit to the linked account.  "}
	p := newTestPipeline(searcher, model, nil)

	got := p.Answer(context.Background(), "how does aadhaar seeding work", "en")

	assert.Equal(t, "Seeding routes your benefit to the linked account.", got)
	assert.Equal(t, 1, model.calls)
	assert.Contains(t, model.lastPrompt, "seeding context")
	assert.Contains(t, model.lastPrompt, "how does aadhaar seeding work")
}

func TestAnswerRefusesOutOfDomain(t *testing.T) {
	searcher := &fakeSearcher{results: []index.Result{{Snippet: "weak", Score: 0.1}}}
	model := &fakeLLM{reply: "ignored"}
	p := newTestPipeline(searcher, model, nil)

	assert.Equal(t, constant.RefusalEN, p.Answer(context.Background(), "best pizza recipe", "en"))
	assert.Equal(t, constant.RefusalHI, p.Answer(context.Background(), "best pizza recipe", "hi"))
	assert.Zero(t, model.calls, "refused queries must not reach the model")
}

func TestAnswerAdmitsBySimilarityAlone(t *testing.T) {
	searcher := &fakeSearcher{results: []index.Result{{Snippet: "payment context", Score: 0.4}}}
	model := &fakeLLM{reply: "grounded answer"}
	p := newTestPipeline(searcher, model, nil)

	got := p.Answer(context.Background(), "why has my money not arrived", "en")
	assert.Equal(t, "grounded answer", got)
}

func TestAnswerFallbacks(t *testing.T) {
	tests := []struct {
		name     string
		searcher *fakeSearcher
		model    *fakeLLM
		lang     string
		want     string
	}{
		{
			name:     "retrieval failure",
			searcher: &fakeSearcher{err: fmt.Errorf("provider down")},
			model:    &fakeLLM{reply: "ignored"},
			lang:     "en",
			want:     constant.NoAnswerFallbackEN,
		},
		{
			name:     "generation failure",
			searcher: &fakeSearcher{results: []index.Result{{Snippet: "ctx", Score: 0.5}}},
			model:    &fakeLLM{err: fmt.Errorf("model down")},
			lang:     "hi",
			want:     constant.NoAnswerFallbackHI,
		},
		{
			name:     "empty model reply",
			searcher: &fakeSearcher{results: []index.Result{{Snippet: "ctx", Score: 0.5}}},
			model:    &fakeLLM{reply: "   "},
			lang:     "en",
			want:     constant.NoAnswerFallbackEN,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPipeline(tt.searcher, tt.model, nil)
			got := p.Answer(context.Background(), "question about dbt payments", tt.lang)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAnswerLanguageNormalization(t *testing.T) {
	searcher := &fakeSearcher{results: []index.Result{{Snippet: "weak", Score: 0.0}}}
	model := &fakeLLM{}
	p := newTestPipeline(searcher, model, nil)

	// Unknown language codes resolve to Hindi
	got := p.Answer(context.Background(), "pizza recipe", "de")
	assert.Equal(t, constant.RefusalHI, got)
}
