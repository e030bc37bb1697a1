package factory

import (
	"fmt"
	"time"

	"dbt-dost-be/pkg/llm"
	"dbt-dost-be/pkg/llm/gemini"
	"dbt-dost-be/pkg/llm/ollama"
)

func NewLLMProvider(providerType, modelName, apiKey, ollamaBaseURL string, timeout time.Duration) (llm.LLMProvider, error) {
	switch providerType {
	case "gemini":
		if apiKey == "" {
			return nil, fmt.Errorf("gemini provider requires an API key")
		}
		return gemini.NewGeminiProvider(apiKey, modelName, timeout), nil
	case "ollama":
		if ollamaBaseURL == "" {
			ollamaBaseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(ollamaBaseURL, modelName, timeout), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
