package bootstrap

import (
	"context"
	"log"

	"dbt-dost-be/internal/config"
	"dbt-dost-be/internal/constant"
	"dbt-dost-be/internal/controller"
	"dbt-dost-be/internal/pkg/logger"
	"dbt-dost-be/internal/repository/memory"
	"dbt-dost-be/internal/service"
	"dbt-dost-be/pkg/embedding"
	"dbt-dost-be/pkg/llm/factory"
	"dbt-dost-be/pkg/rag/corpus"
	"dbt-dost-be/pkg/rag/faq"
	"dbt-dost-be/pkg/rag/gate"
	"dbt-dost-be/pkg/rag/index"
	"dbt-dost-be/pkg/rag/pipeline"
	"dbt-dost-be/pkg/rag/prompt"
	"dbt-dost-be/pkg/whatsapp"
)

type Container struct {
	// Controllers
	ChatController    controller.IChatController
	WebhookController controller.IWebhookController
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. AI Providers
	// Initialize Embedding Provider based on Config
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
			cfg.Ai.RequestTimeout,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini, cfg.Ai.RequestTimeout)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	// Initialize LLM Provider based on Config
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Keys.GoogleGemini,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.RequestTimeout,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 3. Knowledge Index
	// A corpus that fails to load or embed is a deployment problem; refuse to
	// start rather than serve ungrounded answers.
	records, err := corpus.LoadFile(cfg.Rag.CorpusPath)
	if err != nil {
		log.Fatalf("[FATAL] Failed to load corpus %s: %v", cfg.Rag.CorpusPath, err)
	}
	snippets := corpus.Flatten(records)

	knowledgeIndex := index.New(embeddingProvider)
	if err := knowledgeIndex.Build(context.Background(), snippets); err != nil {
		log.Fatalf("[FATAL] Failed to build knowledge index: %v", err)
	}
	log.Printf("[INFO] Knowledge index ready with %d snippets", knowledgeIndex.Size())

	// 4. Retrieval Pipeline
	domainGate := gate.New(constant.DomainKeywords, float32(cfg.Rag.SimThreshold))
	promptBuilder := prompt.NewBuilder(float32(cfg.Rag.SimThreshold), cfg.Rag.TopK)
	faqResolver := faq.NewResolver(constant.KeywordFAQTables)

	answerPipeline := pipeline.New(
		knowledgeIndex,
		domainGate,
		promptBuilder,
		faqResolver,
		llmProvider,
		sysLogger,
		cfg.Rag.TopK,
	)

	// 5. WhatsApp Transport & Sessions
	if cfg.WhatsApp.AccessToken == "" || cfg.WhatsApp.PhoneNumberID == "" {
		sysLogger.Warn("bootstrap", "WhatsApp credentials missing, outbound sends will fail", nil)
	}
	waClient := whatsapp.NewClient(
		cfg.WhatsApp.AccessToken,
		cfg.WhatsApp.PhoneNumberID,
		cfg.Ai.RequestTimeout,
	)

	sessionRepo := memory.NewSessionRepository(cfg.Session.TTL, cfg.Session.CleanupInterval)

	// 6. Services
	chatService := service.NewChatService(answerPipeline, sysLogger)
	conversationService := service.NewConversationService(
		sessionRepo,
		waClient,
		answerPipeline,
		sysLogger,
	)

	// 7. Controllers
	return &Container{
		ChatController:    controller.NewChatController(chatService),
		WebhookController: controller.NewWebhookController(conversationService, cfg.WhatsApp.VerifyToken, sysLogger),
	}
}
