package http

import (
	"context"
	"net/http"
	"time"

	"github.com/fjod/go_cart/storefront/internal/checkout"
	"github.com/fjod/go_cart/storefront/internal/domain"
	"github.com/fjod/go_cart/storefront/internal/session"
)

type CheckoutHandler struct {
	sessions *session.Manager
	checkout *checkout.Service
	timeout  time.Duration
}

func NewCheckoutHandler(sessions *session.Manager, svc *checkout.Service, timeout time.Duration) *CheckoutHandler {
	return &CheckoutHandler{
		sessions: sessions,
		checkout: svc,
		timeout:  timeout,
	}
}

type CheckoutSummaryDTO struct {
	Items      []domain.CartLine `json:"items"`
	TotalItems int               `json:"total_items"`
	TotalPrice int64             `json:"total_price"`
	TotalLabel string            `json:"total_label"`
}

type CustomOrderOptionsDTO struct {
	Occasions    []string `json:"occasions"`
	BudgetRanges []string `json:"budget_ranges"`
}

// GET /api/v1/sessions/{session_id}/checkout
// Entering checkout hides the cart panel.
func (h *CheckoutHandler) Summary(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	st, err := h.sessions.Update(ctx, sessionID(r), func(st *session.State) error {
		st.Cart.SetOpen(false)
		return nil
	})
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	total := st.Cart.TotalPrice()
	respondJSON(w, http.StatusOK, CheckoutSummaryDTO{
		Items:      st.Cart.Lines(),
		TotalItems: st.Cart.TotalItems(),
		TotalPrice: total,
		TotalLabel: domain.FormatRupees(total),
	})
}

// POST /api/v1/sessions/{session_id}/checkout
func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var form checkout.CheckoutForm
	if !decodeJSON(w, r, &form) {
		return
	}

	var receipt *checkout.Receipt
	_, err := h.sessions.Update(ctx, sessionID(r), func(st *session.State) error {
		var err error
		receipt, err = h.checkout.PlaceOrder(ctx, st.Cart, form)
		return err
	})
	if err != nil {
		handleError(ctx, w, err)
		return
	}
	respondJSON(w, http.StatusCreated, receipt)
}

// GET /api/v1/custom-orders/options
func (h *CheckoutHandler) CustomOrderOptions(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, CustomOrderOptionsDTO{
		Occasions:    checkout.Occasions(),
		BudgetRanges: checkout.BudgetRanges(),
	})
}

// POST /api/v1/custom-orders
func (h *CheckoutHandler) SubmitCustomOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var form checkout.CustomOrderForm
	if !decodeJSON(w, r, &form) {
		return
	}

	receipt, err := h.checkout.SubmitCustomOrder(ctx, form)
	if err != nil {
		handleError(ctx, w, err)
		return
	}
	respondJSON(w, http.StatusCreated, receipt)
}
