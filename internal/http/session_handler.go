package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fjod/go_cart/storefront/internal/cart"
	"github.com/fjod/go_cart/storefront/internal/chat"
	"github.com/fjod/go_cart/storefront/internal/session"
)

type SessionHandler struct {
	sessions *session.Manager
	timeout  time.Duration
}

func NewSessionHandler(sessions *session.Manager, timeout time.Duration) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		timeout:  timeout,
	}
}

type SessionResponse struct {
	ID        string             `json:"id"`
	Cart      cart.View          `json:"cart"`
	Chat      *chat.Conversation `json:"chat"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

func toSessionResponse(st *session.State) SessionResponse {
	return SessionResponse{
		ID:        st.ID,
		Cart:      st.Cart.View(),
		Chat:      st.Conversation,
		CreatedAt: st.CreatedAt,
		UpdatedAt: st.UpdatedAt,
	}
}

func sessionID(r *http.Request) string {
	return chi.URLParam(r, "session_id")
}

// POST /api/v1/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	st, err := h.sessions.Create(ctx)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	w.Header().Set("Location", "/api/v1/sessions/"+st.ID)
	respondJSON(w, http.StatusCreated, toSessionResponse(st))
}

// GET /api/v1/sessions/{session_id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	st, err := h.sessions.View(ctx, sessionID(r))
	if err != nil {
		handleError(ctx, w, err)
		return
	}
	respondJSON(w, http.StatusOK, toSessionResponse(st))
}

// DELETE /api/v1/sessions/{session_id}
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.sessions.Destroy(ctx, sessionID(r)); err != nil {
		handleError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
