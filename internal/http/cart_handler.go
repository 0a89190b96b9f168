package http

import (
	"context"
	"net/http"
	"time"

	"github.com/fjod/go_cart/storefront/internal/catalog"
	"github.com/fjod/go_cart/storefront/internal/session"
)

type CartHandler struct {
	sessions *session.Manager
	catalog  catalog.Catalog
	timeout  time.Duration
}

func NewCartHandler(sessions *session.Manager, c catalog.Catalog, timeout time.Duration) *CartHandler {
	return &CartHandler{
		sessions: sessions,
		catalog:  c,
		timeout:  timeout,
	}
}

type AddItemRequestDTO struct {
	ProductID int64 `json:"product_id"`
}

type UpdateQuantityRequestDTO struct {
	Quantity *int `json:"quantity"`
}

type SetOpenRequestDTO struct {
	Open *bool `json:"open"`
}

// GET /api/v1/sessions/{session_id}/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	st, err := h.sessions.View(ctx, sessionID(r))
	if err != nil {
		handleError(ctx, w, err)
		return
	}
	respondJSON(w, http.StatusOK, st.Cart.View())
}

// POST /api/v1/sessions/{session_id}/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req AddItemRequestDTO
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ProductID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be positive")
		return
	}

	product, err := h.catalog.Get(ctx, req.ProductID)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	h.update(ctx, w, r, func(st *session.State) {
		st.Cart.Add(product)
	})
}

// PUT /api/v1/sessions/{session_id}/cart/items/{product_id}
// A quantity of zero or less removes the line.
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	productID, ok := productIDParam(w, r, "product_id")
	if !ok {
		return
	}

	var req UpdateQuantityRequestDTO
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Quantity == nil {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity is required")
		return
	}

	h.update(ctx, w, r, func(st *session.State) {
		st.Cart.UpdateQuantity(productID, *req.Quantity)
	})
}

// DELETE /api/v1/sessions/{session_id}/cart/items/{product_id}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	productID, ok := productIDParam(w, r, "product_id")
	if !ok {
		return
	}

	h.update(ctx, w, r, func(st *session.State) {
		st.Cart.Remove(productID)
	})
}

// DELETE /api/v1/sessions/{session_id}/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	h.update(ctx, w, r, func(st *session.State) {
		st.Cart.Clear()
	})
}

// PUT /api/v1/sessions/{session_id}/cart/open
func (h *CartHandler) SetOpen(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req SetOpenRequestDTO
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Open == nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "open is required")
		return
	}

	h.update(ctx, w, r, func(st *session.State) {
		st.Cart.SetOpen(*req.Open)
	})
}

func (h *CartHandler) update(ctx context.Context, w http.ResponseWriter, r *http.Request, fn func(*session.State)) {
	st, err := h.sessions.Update(ctx, sessionID(r), func(st *session.State) error {
		fn(st)
		return nil
	})
	if err != nil {
		handleError(ctx, w, err)
		return
	}
	respondJSON(w, http.StatusOK, st.Cart.View())
}
