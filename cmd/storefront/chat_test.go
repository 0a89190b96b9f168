package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fjod/go_cart/storefront/internal/chat"
	"github.com/fjod/go_cart/storefront/internal/handoff"
	"github.com/fjod/go_cart/storefront/internal/session"
)

func newChatManager(t *testing.T) *session.Manager {
	t.Helper()
	store := session.NewMemoryStore(time.Hour)
	t.Cleanup(func() { store.Close() })

	links := handoff.Links{WhatsAppPhone: "+919876543210", InstagramURL: "https://instagram.com/x", EmailAddress: "a@b.in"}
	m := session.NewManager(store, chat.NewDispatcher(chat.DefaultResponses(), links), session.Options{
		ReplyDelay:  5 * time.Millisecond,
		EffectDelay: 2 * time.Millisecond,
	})
	t.Cleanup(m.Close)
	return m
}

func TestRunChat_Conversation(t *testing.T) {
	responses := chat.DefaultResponses()
	in := strings.NewReader("/birthday\nhow much is shipping?\n/cart\n/quit\nnever read\n")
	var out bytes.Buffer

	err := runChat(context.Background(), in, &out, newChatManager(t))
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "bot: "+responses.Greeting.Text)
	assert.Contains(t, text, "bot: "+responses.Birthday.Text)
	assert.Contains(t, text, "bot: "+responses.Prices.Text)
	assert.Contains(t, text, "(cart opened)")
	assert.Contains(t, text, "[/birthday]")
	assert.NotContains(t, text, "never read")
}

func TestRunChat_UnknownActionAndEOF(t *testing.T) {
	in := strings.NewReader("/teleport\n")
	var out bytes.Buffer

	err := runChat(context.Background(), in, &out, newChatManager(t))
	require.NoError(t, err)
	assert.Contains(t, out.String(), `unknown action "teleport"`)
	assert.Contains(t, out.String(), "bot: "+chat.DefaultResponses().Fallback.Text)
}

func TestRunChat_WhatsAppLink(t *testing.T) {
	in := strings.NewReader("/whatsapp\n")
	var out bytes.Buffer

	require.NoError(t, runChat(context.Background(), in, &out, newChatManager(t)))
	assert.Contains(t, out.String(), "(open https://wa.me/919876543210?text=")
}
