package http

import (
	"context"
	"net/http"
	"time"

	"github.com/fjod/go_cart/storefront/internal/chat"
	"github.com/fjod/go_cart/storefront/internal/domain"
	"github.com/fjod/go_cart/storefront/internal/session"
)

type ChatHandler struct {
	sessions *session.Manager
	timeout  time.Duration
}

func NewChatHandler(sessions *session.Manager, timeout time.Duration) *ChatHandler {
	return &ChatHandler{
		sessions: sessions,
		timeout:  timeout,
	}
}

type SendMessageRequestDTO struct {
	Text string `json:"text"`
}

type PressActionRequestDTO struct {
	Action string `json:"action"`
}

// TurnResponse tells the client what to render now and when to poll for
// the bot reply and the effect.
type TurnResponse struct {
	Message       *domain.ChatMessage `json:"message,omitempty"`
	Effect        *chat.Effect        `json:"effect,omitempty"`
	ReplyAfterMs  int64               `json:"reply_after_ms,omitempty"`
	EffectAfterMs int64               `json:"effect_after_ms,omitempty"`
}

func toTurnResponse(out session.Outcome) TurnResponse {
	resp := TurnResponse{
		Message:      out.Message,
		ReplyAfterMs: out.ReplyIn.Milliseconds(),
	}
	if !out.Effect.IsZero() {
		effect := out.Effect
		resp.Effect = &effect
		resp.EffectAfterMs = out.EffectIn.Milliseconds()
	}
	return resp
}

// GET /api/v1/sessions/{session_id}/chat
func (h *ChatHandler) GetChat(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	st, err := h.sessions.View(ctx, sessionID(r))
	if err != nil {
		handleError(ctx, w, err)
		return
	}
	respondJSON(w, http.StatusOK, st.Conversation)
}

// POST /api/v1/sessions/{session_id}/chat/messages
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req SendMessageRequestDTO
	if !decodeJSON(w, r, &req) {
		return
	}

	out, err := h.sessions.SendText(ctx, sessionID(r), req.Text)
	if err != nil {
		handleError(ctx, w, err)
		return
	}
	if out.Message == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	respondJSON(w, http.StatusAccepted, toTurnResponse(out))
}

// POST /api/v1/sessions/{session_id}/chat/actions
// Unknown actions get the fallback reply.
func (h *ChatHandler) PressAction(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req PressActionRequestDTO
	if !decodeJSON(w, r, &req) {
		return
	}
	action, _ := domain.ParseAction(req.Action)

	out, err := h.sessions.PressAction(ctx, sessionID(r), action)
	if err != nil {
		handleError(ctx, w, err)
		return
	}
	respondJSON(w, http.StatusAccepted, toTurnResponse(out))
}

// PUT /api/v1/sessions/{session_id}/chat/state
func (h *ChatHandler) SetState(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req session.WindowState
	if !decodeJSON(w, r, &req) {
		return
	}

	st, err := h.sessions.SetWindow(ctx, sessionID(r), req)
	if err != nil {
		handleError(ctx, w, err)
		return
	}
	respondJSON(w, http.StatusOK, st.Conversation)
}
