// Package session keeps the per-visitor storefront state: one cart and one
// chat conversation, created when a page session starts and dropped when it
// ends or goes idle.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/fjod/go_cart/storefront/internal/cart"
	"github.com/fjod/go_cart/storefront/internal/chat"
)

var ErrSessionNotFound = errors.New("session not found")

type State struct {
	ID           string             `json:"id"`
	Cart         *cart.Cart         `json:"cart"`
	Conversation *chat.Conversation `json:"conversation"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// Store persists session snapshots for the lifetime of a page session.
// Implementations hand out private copies: mutating a State returned by Get
// has no effect until it is passed to Save.
type Store interface {
	Get(ctx context.Context, id string) (*State, error)
	Save(ctx context.Context, state *State) error
	Delete(ctx context.Context, id string) error
}
