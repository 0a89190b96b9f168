// Package catalog serves the shop's product list.
package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/fjod/go_cart/storefront/internal/domain"
)

var ErrProductNotFound = errors.New("product not found")

// Catalog is the read-only product source used by the HTTP layer and the
// cart endpoints.
type Catalog interface {
	All(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id int64) (domain.Product, error)
	// Search matches a case-insensitive substring of the product name. A
	// blank query returns every product.
	Search(ctx context.Context, query string) ([]domain.Product, error)
}

type MemoryCatalog struct {
	products []domain.Product
}

func NewMemoryCatalog(products []domain.Product) *MemoryCatalog {
	return &MemoryCatalog{products: products}
}

func (m *MemoryCatalog) All(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]domain.Product, len(m.products))
	copy(out, m.products)
	return out, nil
}

func (m *MemoryCatalog) Get(ctx context.Context, id int64) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return domain.Product{}, err
	}
	for _, p := range m.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, ErrProductNotFound
}

func (m *MemoryCatalog) Search(ctx context.Context, query string) ([]domain.Product, error) {
	all, err := m.All(ctx)
	if err != nil {
		return nil, err
	}
	return filterByName(all, query), nil
}

func filterByName(products []domain.Product, query string) []domain.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return products
	}
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, p)
		}
	}
	return out
}
