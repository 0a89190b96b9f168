package http

import (
	"context"
	"net/http"
	"time"

	"github.com/fjod/go_cart/storefront/internal/catalog"
	"github.com/fjod/go_cart/storefront/internal/domain"
)

type ProductHandler struct {
	catalog catalog.Catalog
	timeout time.Duration
}

func NewProductHandler(c catalog.Catalog, timeout time.Duration) *ProductHandler {
	return &ProductHandler{
		catalog: c,
		timeout: timeout,
	}
}

type ProductResponse struct {
	domain.Product
	DisplayPrice string `json:"display_price"`
}

type ProductsResponse struct {
	Products []ProductResponse `json:"products"`
}

func toProductResponse(p domain.Product) ProductResponse {
	return ProductResponse{Product: p, DisplayPrice: p.DisplayPrice()}
}

// GET /api/v1/products?q=
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	res, err := h.catalog.Search(ctx, r.URL.Query().Get("q"))
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	products := make([]ProductResponse, len(res))
	for i, p := range res {
		products[i] = toProductResponse(p)
	}
	respondJSON(w, http.StatusOK, &ProductsResponse{Products: products})
}

// GET /api/v1/products/{id}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	id, ok := productIDParam(w, r, "id")
	if !ok {
		return
	}

	p, err := h.catalog.Get(ctx, id)
	if err != nil {
		handleError(ctx, w, err)
		return
	}
	respondJSON(w, http.StatusOK, toProductResponse(p))
}
