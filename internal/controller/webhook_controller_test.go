package controller

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"dbt-dost-be/internal/dto"
	"dbt-dost-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type fakeConversationService struct {
	events []*dto.InboundEvent
}

func (f *fakeConversationService) HandleEvent(ctx context.Context, event *dto.InboundEvent) {
	f.events = append(f.events, event)
}

func newWebhookApp(conversations *fakeConversationService) *fiber.App {
	app := fiber.New()
	ctrl := NewWebhookController(conversations, "secret-token", logger.NewNop())
	ctrl.RegisterRoutes(app.Group("/api"))
	return app
}

func TestVerifyHandshake(t *testing.T) {
	app := newWebhookApp(&fakeConversationService{})

	req := httptest.NewRequest("GET", "/api/webhook?hub.mode=subscribe&hub.verify_token=secret-token&hub.challenge=12345", nil)
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "12345", string(body))
}

func TestVerifyRejectsBadToken(t *testing.T) {
	app := newWebhookApp(&fakeConversationService{})

	req := httptest.NewRequest("GET", "/api/webhook?hub.mode=subscribe&hub.verify_token=wrong&hub.challenge=12345", nil)
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "Failed validation.", string(body))
}

func TestReceiveDispatchesEvent(t *testing.T) {
	conversations := &fakeConversationService{}
	app := newWebhookApp(conversations)

	payload := `{"entry":[{"changes":[{"value":{"messages":[{"from":"919999900000","type":"text","text":{"body":"Hi"}}]}}]}]}`
	req := httptest.NewRequest("POST", "/api/webhook", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, conversations.events, 1)
	assert.Equal(t, "919999900000", conversations.events[0].From)
}

func TestReceiveAcknowledgesIgnoredDeliveries(t *testing.T) {
	conversations := &fakeConversationService{}
	app := newWebhookApp(conversations)

	tests := []struct {
		name    string
		payload string
	}{
		{name: "status update", payload: `{"entry":[{"changes":[{"value":{"statuses":[{"id":"wamid.x"}]}}]}]}`},
		{name: "malformed body", payload: `not even json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/webhook", strings.NewReader(tt.payload))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)

			assert.NoError(t, err)
			assert.Equal(t, fiber.StatusOK, resp.StatusCode, "the platform must always get 200 so it never retries")
		})
	}
}

func TestReceiveNeverDispatchesIgnoredDeliveries(t *testing.T) {
	conversations := &fakeConversationService{}
	app := newWebhookApp(conversations)

	req := httptest.NewRequest("POST", "/api/webhook", strings.NewReader(`{"entry":[]}`))
	req.Header.Set("Content-Type", "application/json")
	_, err := app.Test(req)

	assert.NoError(t, err)
	assert.Empty(t, conversations.events)
}
