package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"dbt-dost-be/internal/dto"
	"dbt-dost-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type fakeChatService struct {
	lastRequest *dto.ChatRequest
	response    *dto.ChatResponse
	err         error
}

func (f *fakeChatService) Ask(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error) {
	f.lastRequest = request
	return f.response, f.err
}

func newChatApp(svc *fakeChatService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	api := app.Group("/api")
	NewChatController(svc).RegisterRoutes(api)
	return app
}

func TestAskEndpoint(t *testing.T) {
	svc := &fakeChatService{response: &dto.ChatResponse{Answer: "grounded answer"}}
	app := newChatApp(svc)

	req := httptest.NewRequest("POST", "/api/chat/v1", strings.NewReader(`{"message":"what is dbt?","language":"en"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "what is dbt?", svc.lastRequest.Message)
	assert.Equal(t, "en", svc.lastRequest.Language)

	body, _ := io.ReadAll(resp.Body)
	var envelope serverutils.Response
	assert.NoError(t, json.Unmarshal(body, &envelope))
	assert.True(t, envelope.Success)

	data := envelope.Data.(map[string]interface{})
	assert.Equal(t, "grounded answer", data["answer"])
}

func TestAskEndpointValidation(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "missing message", payload: `{"language":"en"}`},
		{name: "unsupported language", payload: `{"message":"hello","language":"fr"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeChatService{response: &dto.ChatResponse{}}
			app := newChatApp(svc)

			req := httptest.NewRequest("POST", "/api/chat/v1", strings.NewReader(tt.payload))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)

			assert.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			assert.Nil(t, svc.lastRequest, "invalid requests must not reach the service")
		})
	}
}

func TestAskEndpointServiceError(t *testing.T) {
	svc := &fakeChatService{err: fiber.NewError(fiber.StatusBadRequest, "Empty message")}
	app := newChatApp(svc)

	req := httptest.NewRequest("POST", "/api/chat/v1", strings.NewReader(`{"message":"   "}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
