package controller

import (
	"errors"

	"dbt-dost-be/internal/dto"
	"dbt-dost-be/internal/pkg/logger"
	"dbt-dost-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IWebhookController interface {
	RegisterRoutes(r fiber.Router)
	Verify(ctx *fiber.Ctx) error
	Receive(ctx *fiber.Ctx) error
}

// webhookController terminates the WhatsApp Cloud API webhook. Verification
// uses the standard hub.challenge handshake; deliveries are always answered
// with 200 so the platform never retries a message we chose to ignore.
type webhookController struct {
	conversationService service.IConversationService
	verifyToken         string
	logger              logger.ILogger
}

func NewWebhookController(
	conversationService service.IConversationService,
	verifyToken string,
	sysLogger logger.ILogger,
) IWebhookController {
	return &webhookController{
		conversationService: conversationService,
		verifyToken:         verifyToken,
		logger:              sysLogger,
	}
}

func (c *webhookController) RegisterRoutes(r fiber.Router) {
	r.Get("/webhook", c.Verify)
	r.Post("/webhook", c.Receive)
}

func (c *webhookController) Verify(ctx *fiber.Ctx) error {
	mode := ctx.Query("hub.mode")
	token := ctx.Query("hub.verify_token")
	challenge := ctx.Query("hub.challenge")

	if mode == "subscribe" && token == c.verifyToken {
		c.logger.Info("webhook", "Webhook verified", nil)
		return ctx.SendString(challenge)
	}

	c.logger.Warn("webhook", "Webhook verification failed", map[string]interface{}{
		"mode": mode,
	})
	return ctx.Status(fiber.StatusForbidden).SendString("Failed validation.")
}

func (c *webhookController) Receive(ctx *fiber.Ctx) error {
	eventId := uuid.New().String()

	event, err := dto.DecodeInboundEvent(ctx.Body())
	if err != nil {
		if errors.Is(err, dto.ErrNoMessage) {
			c.logger.Debug("webhook", "Ignoring delivery without user message", map[string]interface{}{
				"event_id": eventId,
			})
		} else {
			c.logger.Warn("webhook", "Dropping malformed delivery", map[string]interface{}{
				"event_id": eventId,
				"error":    err.Error(),
			})
		}
		return ctx.SendString("OK")
	}

	c.logger.Info("webhook", "Handling inbound message", map[string]interface{}{
		"event_id": eventId,
		"kind":     string(event.Kind),
	})

	c.conversationService.HandleEvent(ctx.Context(), event)
	return ctx.SendString("OK")
}
