// Package http exposes the storefront over a JSON API.
package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/fjod/go_cart/storefront/internal/catalog"
	"github.com/fjod/go_cart/storefront/internal/checkout"
	"github.com/fjod/go_cart/storefront/internal/session"
)

type RouterConfig struct {
	Catalog        catalog.Catalog
	Sessions       *session.Manager
	Checkout       *checkout.Service
	Logger         *zap.Logger
	RequestTimeout time.Duration
}

func NewRouter(cfg RouterConfig) http.Handler {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	productHandler := NewProductHandler(cfg.Catalog, timeout)
	sessionHandler := NewSessionHandler(cfg.Sessions, timeout)
	cartHandler := NewCartHandler(cfg.Sessions, cfg.Catalog, timeout)
	chatHandler := NewChatHandler(cfg.Sessions, timeout)
	checkoutHandler := NewCheckoutHandler(cfg.Sessions, cfg.Checkout, timeout)

	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(LoggerMiddleware(log))
	r.Use(RequestIDMiddleware)
	r.Use(AccessLogMiddleware)
	r.Use(middleware.Timeout(timeout))
	r.Use(middleware.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", productHandler.List)
			r.Get("/{id}", productHandler.Get)
		})

		r.Route("/custom-orders", func(r chi.Router) {
			r.Get("/options", checkoutHandler.CustomOrderOptions)
			r.Post("/", checkoutHandler.SubmitCustomOrder)
		})

		r.Post("/sessions", sessionHandler.Create)
		r.Route("/sessions/{session_id}", func(r chi.Router) {
			r.Get("/", sessionHandler.Get)
			r.Delete("/", sessionHandler.Delete)

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", cartHandler.GetCart)
				r.Delete("/", cartHandler.ClearCart)
				r.Put("/open", cartHandler.SetOpen)
				r.Post("/items", cartHandler.AddItem)
				r.Put("/items/{product_id}", cartHandler.UpdateQuantity)
				r.Delete("/items/{product_id}", cartHandler.RemoveItem)
			})

			r.Route("/chat", func(r chi.Router) {
				r.Get("/", chatHandler.GetChat)
				r.Post("/messages", chatHandler.SendMessage)
				r.Post("/actions", chatHandler.PressAction)
				r.Put("/state", chatHandler.SetState)
			})

			r.Get("/checkout", checkoutHandler.Summary)
			r.Post("/checkout", checkoutHandler.PlaceOrder)
		})
	})

	return otelhttp.NewHandler(r, "storefront")
}
