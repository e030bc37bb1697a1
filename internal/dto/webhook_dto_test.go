package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func wrapMessage(message string) string {
	return `{"entry":[{"changes":[{"value":{"messages":[` + message + `]}}]}]}`
}

func TestDecodeInboundEventText(t *testing.T) {
	body := wrapMessage(`{"from":"919999900000","type":"text","text":{"body":"Hi"}}`)

	event, err := DecodeInboundEvent([]byte(body))

	assert.NoError(t, err)
	assert.Equal(t, "919999900000", event.From)
	assert.Equal(t, EventText, event.Kind)
	assert.Equal(t, "Hi", event.Text)
}

func TestDecodeInboundEventButtonReply(t *testing.T) {
	body := wrapMessage(`{"from":"919999900000","type":"interactive","interactive":{"type":"button_reply","button_reply":{"id":"lang_en","title":"English"}}}`)

	event, err := DecodeInboundEvent([]byte(body))

	assert.NoError(t, err)
	assert.Equal(t, EventButtonReply, event.Kind)
	assert.Equal(t, "lang_en", event.ReplyID)
}

func TestDecodeInboundEventListReply(t *testing.T) {
	body := wrapMessage(`{"from":"919999900000","type":"interactive","interactive":{"type":"list_reply","list_reply":{"id":"faq_cat_dbt","title":"DBT"}}}`)

	event, err := DecodeInboundEvent([]byte(body))

	assert.NoError(t, err)
	assert.Equal(t, EventListReply, event.Kind)
	assert.Equal(t, "faq_cat_dbt", event.ReplyID)
}

func TestDecodeInboundEventNoMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "status-only delivery", body: `{"entry":[{"changes":[{"value":{"statuses":[{"id":"wamid.x"}]}}]}]}`},
		{name: "empty entry", body: `{"entry":[]}`},
		{name: "no entry at all", body: `{}`},
		{name: "unsupported media type", body: wrapMessage(`{"from":"919999900000","type":"image"}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, err := DecodeInboundEvent([]byte(tt.body))
			assert.Nil(t, event)
			assert.ErrorIs(t, err, ErrNoMessage)
		})
	}
}

func TestDecodeInboundEventMalformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "invalid json", body: `{"entry": [`},
		{name: "missing sender", body: wrapMessage(`{"type":"text","text":{"body":"Hi"}}`)},
		{name: "text without body", body: wrapMessage(`{"from":"919999900000","type":"text"}`)},
		{name: "interactive without payload", body: wrapMessage(`{"from":"919999900000","type":"interactive"}`)},
		{name: "button reply without id", body: wrapMessage(`{"from":"919999900000","type":"interactive","interactive":{"type":"button_reply","button_reply":{"title":"x"}}}`)},
		{name: "unsupported interactive type", body: wrapMessage(`{"from":"919999900000","type":"interactive","interactive":{"type":"nfm_reply"}}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, err := DecodeInboundEvent([]byte(tt.body))
			assert.Nil(t, event)
			assert.ErrorIs(t, err, ErrMalformedEvent)
		})
	}
}
