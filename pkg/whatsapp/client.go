package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client sends outbound messages through the WhatsApp Cloud API
// (graph.facebook.com). Replies to inbound webhooks go through here, out of
// band of the webhook HTTP response.
type Client struct {
	BaseURL       string
	AccessToken   string
	PhoneNumberID string
	Client        *http.Client
}

func NewClient(accessToken, phoneNumberID string, timeout time.Duration) *Client {
	return &Client{
		BaseURL:       "https://graph.facebook.com/v18.0",
		AccessToken:   accessToken,
		PhoneNumberID: phoneNumberID,
		Client: &http.Client{
			Timeout: timeout,
		},
	}
}

// SendText sends a plain text message
func (c *Client) SendText(ctx context.Context, to, body string) error {
	return c.send(ctx, outboundMessage{
		To:   to,
		Type: "text",
		Text: &textPayload{Body: body},
	})
}

// SendButtons sends an interactive reply-button message
func (c *Client) SendButtons(ctx context.Context, to string, msg ButtonMessage) error {
	return c.send(ctx, outboundMessage{
		To:          to,
		Type:        "interactive",
		Interactive: msg.toInteractive(),
	})
}

// SendList sends an interactive list message
func (c *Client) SendList(ctx context.Context, to string, msg ListMessage) error {
	return c.send(ctx, outboundMessage{
		To:          to,
		Type:        "interactive",
		Interactive: msg.toInteractive(),
	})
}

func (c *Client) send(ctx context.Context, msg outboundMessage) error {
	msg.MessagingProduct = "whatsapp"

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", c.BaseURL, c.PhoneNumberID)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("whatsapp request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("whatsapp error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}
	return nil
}
