package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"dbt-dost-be/internal/config"
	"dbt-dost-be/internal/constant"
	"dbt-dost-be/pkg/embedding"
	"dbt-dost-be/pkg/rag/corpus"
	"dbt-dost-be/pkg/rag/gate"
	"dbt-dost-be/pkg/rag/index"

	"github.com/fatih/color"
)

// Retrieval diagnostic: embeds the corpus, runs a set of queries against the
// index and prints per-snippet scores plus the domain gate verdict. Usage:
//
//	go run ./cmd/debug "query one" "query two"
func main() {
	cfg := config.Load()

	var provider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		provider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel, cfg.Ai.RequestTimeout)
	} else {
		provider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini, cfg.Ai.RequestTimeout)
	}

	records, err := corpus.LoadFile(cfg.Rag.CorpusPath)
	if err != nil {
		log.Fatalf("Failed to load corpus: %v", err)
	}
	snippets := corpus.Flatten(records)

	ctx := context.Background()

	color.Cyan("🔎 Retrieval Diagnostic")
	fmt.Printf("Corpus: %s (%d snippets)\n", cfg.Rag.CorpusPath, len(snippets))
	fmt.Printf("Provider: %s | Threshold: %.2f | TopK: %d\n", cfg.Ai.EmbeddingProvider, cfg.Rag.SimThreshold, cfg.Rag.TopK)
	fmt.Println(strings.Repeat("=", 80))

	knowledgeIndex := index.New(provider)
	if err := knowledgeIndex.Build(ctx, snippets); err != nil {
		log.Fatalf("Failed to build index: %v", err)
	}

	domainGate := gate.New(constant.DomainKeywords, float32(cfg.Rag.SimThreshold))

	queries := os.Args[1:]
	if len(queries) == 0 {
		queries = []string{
			"How do I link my Aadhaar with my bank account?",
			"Why is my NSP scholarship payment pending?",
			"What is the weather today?",
		}
	}

	for _, query := range queries {
		fmt.Println(strings.Repeat("-", 80))
		color.Yellow("Query: %s", query)

		results, err := knowledgeIndex.Search(ctx, query, cfg.Rag.TopK)
		if err != nil {
			color.Red("Search failed: %v", err)
			continue
		}

		var bestScore float32
		if len(results) > 0 {
			bestScore = results[0].Score
		}

		for i, r := range results {
			marker := " "
			if r.Score >= float32(cfg.Rag.SimThreshold) {
				marker = "✓"
			}
			fmt.Printf("%s %d. [%.4f] %s\n", marker, i+1, r.Score, preview(r.Snippet, 90))
		}

		if domainGate.Admit(query, bestScore) {
			color.Green("Gate: ADMIT (keyword=%v, best=%.4f)", domainGate.KeywordMatch(query), bestScore)
		} else {
			color.Red("Gate: REFUSE (best=%.4f < %.2f)", bestScore, cfg.Rag.SimThreshold)
		}
	}
}

func preview(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
