package index

import (
	"context"
	"fmt"
	"math"
	"sort"

	"dbt-dost-be/pkg/embedding"
)

// Result is one retrieved snippet with its cosine similarity to the query
type Result struct {
	Snippet string
	Score   float32
}

// Index holds the snippet corpus and its embeddings as parallel slices.
// It is built once at startup and read-only afterwards, so concurrent
// searches need no locking.
type Index struct {
	provider embedding.EmbeddingProvider
	snippets []string
	vectors  [][]float32
}

func New(provider embedding.EmbeddingProvider) *Index {
	return &Index{provider: provider}
}

// Build embeds all snippets in one batched call and stores unit-normalized
// vectors. An empty corpus or a provider failure is a build error; the caller
// treats that as fatal at startup.
func (ix *Index) Build(ctx context.Context, snippets []string) error {
	if len(snippets) == 0 {
		return fmt.Errorf("cannot build index from an empty corpus")
	}

	vectors, err := ix.provider.EmbedBatch(ctx, snippets, embedding.TaskTypeDocument)
	if err != nil {
		return fmt.Errorf("embed corpus: %w", err)
	}
	if len(vectors) != len(snippets) {
		return fmt.Errorf("provider returned %d vectors for %d snippets", len(vectors), len(snippets))
	}

	for i, v := range vectors {
		vectors[i] = normalize(v)
	}

	ix.snippets = snippets
	ix.vectors = vectors
	return nil
}

// Size returns the number of indexed snippets
func (ix *Index) Size() int {
	return len(ix.snippets)
}

// Search embeds the query and returns the k most similar snippets, best
// first. Ties keep corpus order. An empty index yields an empty result list,
// not an error.
func (ix *Index) Search(ctx context.Context, query string, k int) ([]Result, error) {
	if len(ix.snippets) == 0 {
		return []Result{}, nil
	}

	queryVectors, err := ix.provider.EmbedBatch(ctx, []string{query}, embedding.TaskTypeQuery)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	if len(queryVectors) != 1 {
		return nil, fmt.Errorf("provider returned %d vectors for one query", len(queryVectors))
	}
	qv := normalize(queryVectors[0])

	results := make([]Result, len(ix.snippets))
	for i, dv := range ix.vectors {
		results[i] = Result{
			Snippet: ix.snippets[i],
			Score:   dot(qv, dv),
		}
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Score > results[b].Score
	})

	if k > len(results) {
		k = len(results)
	}
	return results[:k], nil
}

// normalize scales a vector to unit length. Degenerate zero-norm vectors are
// returned unchanged; they can never outrank anything above zero similarity.
func normalize(v []float32) []float32 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	norm := math.Sqrt(sum)
	if norm == 0 {
		return v
	}
	scaled := make([]float32, len(v))
	for i, x := range v {
		scaled[i] = float32(float64(x) / norm)
	}
	return scaled
}

// dot computes the dot product; with unit vectors this is cosine similarity.
// Mismatched dimensions score zero against the extra components.
func dot(a, b []float32) float32 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sum float32
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}
