package index

import (
	"context"
	"fmt"
	"math"
	"testing"
)

// fakeEmbedder maps known texts to fixed vectors
type fakeEmbedder struct {
	vectors map[string][]float32
	err     error
	calls   int
}

func (f *fakeEmbedder) EmbedBatch(ctx context.Context, texts []string, taskType string) ([][]float32, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make([][]float32, 0, len(texts))
	for _, text := range texts {
		v, ok := f.vectors[text]
		if !ok {
			return nil, fmt.Errorf("no vector for %q", text)
		}
		out = append(out, v)
	}
	return out, nil
}

// shortEmbedder returns fewer vectors than requested
type shortEmbedder struct{}

func (shortEmbedder) EmbedBatch(ctx context.Context, texts []string, taskType string) ([][]float32, error) {
	return [][]float32{{1, 0}}, nil
}

func TestBuildEmptyCorpus(t *testing.T) {
	ix := New(&fakeEmbedder{})
	if err := ix.Build(context.Background(), nil); err == nil {
		t.Error("Build() error = nil, want error for empty corpus")
	}
}

func TestBuildVectorCountMismatch(t *testing.T) {
	ix := New(shortEmbedder{})
	if err := ix.Build(context.Background(), []string{"a", "b"}); err == nil {
		t.Error("Build() error = nil, want error for vector count mismatch")
	}
}

func TestBuildProviderError(t *testing.T) {
	ix := New(&fakeEmbedder{err: fmt.Errorf("quota exceeded")})
	if err := ix.Build(context.Background(), []string{"a"}); err == nil {
		t.Error("Build() error = nil, want wrapped provider error")
	}
}

func TestSearchRanking(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"aadhaar seeding":  {1, 0, 0},
		"scholarship":      {0, 1, 0},
		"unrelated recipe": {0, 0, 1},
		// Query vector leans toward the seeding snippet
		"how to seed my account": {2, 1, 0}, // normalized before scoring
	}}

	ix := New(embedder)
	if err := ix.Build(context.Background(), []string{"aadhaar seeding", "scholarship", "unrelated recipe"}); err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if ix.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", ix.Size())
	}

	results, err := ix.Search(context.Background(), "how to seed my account", 2)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Search() returned %d results, want 2", len(results))
	}
	if results[0].Snippet != "aadhaar seeding" {
		t.Errorf("top result = %q, want aadhaar seeding", results[0].Snippet)
	}
	if results[1].Snippet != "scholarship" {
		t.Errorf("second result = %q, want scholarship", results[1].Snippet)
	}
	if results[0].Score <= results[1].Score {
		t.Errorf("scores not descending: %v", results)
	}

	// cos(query, seeding) = 2/sqrt(5)
	want := float32(2.0 / math.Sqrt(5))
	if diff := math.Abs(float64(results[0].Score - want)); diff > 1e-5 {
		t.Errorf("top score = %v, want %v", results[0].Score, want)
	}
}

func TestSearchKLargerThanCorpus(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"only snippet": {1, 0},
		"query":        {1, 0},
	}}
	ix := New(embedder)
	if err := ix.Build(context.Background(), []string{"only snippet"}); err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	results, err := ix.Search(context.Background(), "query", 5)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 1 {
		t.Errorf("Search() returned %d results, want 1", len(results))
	}
}

func TestSearchEmptyIndex(t *testing.T) {
	embedder := &fakeEmbedder{}
	ix := New(embedder)

	results, err := ix.Search(context.Background(), "anything", 5)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Search() on empty index = %v, want empty", results)
	}
	if embedder.calls != 0 {
		t.Errorf("empty index still embedded the query %d times", embedder.calls)
	}
}

func TestSearchZeroNormSnippet(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"degenerate": {0, 0},
		"normal":     {1, 0},
		"query":      {1, 0},
	}}
	ix := New(embedder)
	if err := ix.Build(context.Background(), []string{"degenerate", "normal"}); err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	results, err := ix.Search(context.Background(), "query", 2)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if results[0].Snippet != "normal" {
		t.Errorf("top result = %q, want normal snippet to outrank zero vector", results[0].Snippet)
	}
	if results[1].Score != 0 {
		t.Errorf("zero vector score = %v, want 0", results[1].Score)
	}
}
