package dto

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNoMessage marks webhook deliveries that carry no user message (status
// updates and the like). They are acknowledged and ignored.
var ErrNoMessage = errors.New("webhook payload carries no message")

// ErrMalformedEvent marks inbound events missing expected fields. Such events
// are acknowledged, never replied to, and never mutate session state.
var ErrMalformedEvent = errors.New("malformed inbound event")

type EventKind string

const (
	EventButtonReply EventKind = "button_reply"
	EventListReply   EventKind = "list_reply"
	EventText        EventKind = "text"
)

// InboundEvent is the decoded form of one inbound WhatsApp message
type InboundEvent struct {
	From    string
	Kind    EventKind
	ReplyID string // set for button_reply and list_reply
	Text    string // set for text
}

// --- Cloud API webhook wire format ---

type WebhookPayload struct {
	Entry []webhookEntry `json:"entry"`
}

type webhookEntry struct {
	Changes []webhookChange `json:"changes"`
}

type webhookChange struct {
	Value webhookValue `json:"value"`
}

type webhookValue struct {
	Messages []webhookMessage `json:"messages"`
}

type webhookMessage struct {
	From        string              `json:"from"`
	Type        string              `json:"type"`
	Text        *webhookText        `json:"text"`
	Interactive *webhookInteractive `json:"interactive"`
}

type webhookText struct {
	Body string `json:"body"`
}

type webhookInteractive struct {
	Type        string        `json:"type"`
	ButtonReply *webhookReply `json:"button_reply"`
	ListReply   *webhookReply `json:"list_reply"`
}

type webhookReply struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// DecodeInboundEvent turns a raw webhook body into a typed event, replacing
// the original's swallow-all exception handling with a discriminated result:
// (event, nil), (nil, ErrNoMessage) or (nil, ErrMalformedEvent).
func DecodeInboundEvent(body []byte) (*InboundEvent, error) {
	var payload WebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}

	if len(payload.Entry) == 0 || len(payload.Entry[0].Changes) == 0 {
		return nil, ErrNoMessage
	}
	messages := payload.Entry[0].Changes[0].Value.Messages
	if len(messages) == 0 {
		return nil, ErrNoMessage
	}

	msg := messages[0]
	if msg.From == "" {
		return nil, fmt.Errorf("%w: missing sender", ErrMalformedEvent)
	}

	switch msg.Type {
	case "text":
		if msg.Text == nil || msg.Text.Body == "" {
			return nil, fmt.Errorf("%w: text message without body", ErrMalformedEvent)
		}
		return &InboundEvent{From: msg.From, Kind: EventText, Text: msg.Text.Body}, nil

	case "interactive":
		if msg.Interactive == nil {
			return nil, fmt.Errorf("%w: interactive message without payload", ErrMalformedEvent)
		}
		switch msg.Interactive.Type {
		case "button_reply":
			if msg.Interactive.ButtonReply == nil || msg.Interactive.ButtonReply.ID == "" {
				return nil, fmt.Errorf("%w: button reply without id", ErrMalformedEvent)
			}
			return &InboundEvent{From: msg.From, Kind: EventButtonReply, ReplyID: msg.Interactive.ButtonReply.ID}, nil
		case "list_reply":
			if msg.Interactive.ListReply == nil || msg.Interactive.ListReply.ID == "" {
				return nil, fmt.Errorf("%w: list reply without id", ErrMalformedEvent)
			}
			return &InboundEvent{From: msg.From, Kind: EventListReply, ReplyID: msg.Interactive.ListReply.ID}, nil
		default:
			return nil, fmt.Errorf("%w: unsupported interactive type %q", ErrMalformedEvent, msg.Interactive.Type)
		}

	default:
		// Media and other unsupported message types are ignored
		return nil, ErrNoMessage
	}
}
