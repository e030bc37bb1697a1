package service

import (
	"context"
	"strings"

	"dbt-dost-be/internal/dto"
	"dbt-dost-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// Answerer produces a reply for one free-text question. Implemented by the
// retrieval pipeline; faked in tests.
type Answerer interface {
	Answer(ctx context.Context, message, language string) string
}

// IChatService defines the REST question-answering interface
type IChatService interface {
	Ask(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error)
}

type chatService struct {
	answerer Answerer
	logger   logger.ILogger
}

func NewChatService(answerer Answerer, sysLogger logger.ILogger) IChatService {
	return &chatService{
		answerer: answerer,
		logger:   sysLogger,
	}
}

// Ask answers a single question. An empty message is the only client error;
// every downstream failure degrades to a fallback answer inside the pipeline.
func (cs *chatService) Ask(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error) {
	message := strings.TrimSpace(request.Message)
	if message == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Empty message")
	}

	lang := strings.ToLower(request.Language)
	if lang == "" {
		lang = "hi"
	}

	answer := cs.answerer.Answer(ctx, message, lang)
	return &dto.ChatResponse{Answer: answer}, nil
}
