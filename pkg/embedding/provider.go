package embedding

import "context"

// Task types understood by the embedding backends. Documents are embedded once
// at startup, queries per request.
const (
	TaskTypeDocument = "RETRIEVAL_DOCUMENT"
	TaskTypeQuery    = "RETRIEVAL_QUERY"
)

// EmbeddingProvider defines the interface for generating text embeddings.
// Implementations must return exactly one vector per input text, in input order.
type EmbeddingProvider interface {
	EmbedBatch(ctx context.Context, texts []string, taskType string) ([][]float32, error)
}
