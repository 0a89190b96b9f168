package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fjod/go_cart/storefront/internal/catalog"
	"github.com/fjod/go_cart/storefront/internal/chat"
	"github.com/fjod/go_cart/storefront/internal/checkout"
	"github.com/fjod/go_cart/storefront/internal/handoff"
	h "github.com/fjod/go_cart/storefront/internal/http"
	"github.com/fjod/go_cart/storefront/internal/session"
	"github.com/fjod/go_cart/storefront/internal/telemetry"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the storefront HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx)
	},
}

func serve(ctx context.Context) error {
	shutdownTracing, err := telemetry.Setup(cfg.Tracing, "storefront", os.Stdout)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Warn("tracer shutdown failed", zap.Error(err))
		}
	}()

	products, closeCatalog, err := openCatalog()
	if err != nil {
		return err
	}
	defer closeCatalog()

	store, closeStore, err := openSessionStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	links := handoff.Links{
		WhatsAppPhone: cfg.WhatsAppPhone,
		InstagramURL:  cfg.InstagramURL,
		EmailAddress:  cfg.StoreEmail,
	}

	var publisher handoff.Publisher = handoff.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		publisher = handoff.NewKafkaPublisher(cfg.KafkaBrokers...)
		log.Info("publishing hand-offs to kafka", zap.Strings("brokers", cfg.KafkaBrokers), zap.String("topic", handoff.Topic))
	}
	handoffs := handoff.NewDispatcher(links, publisher)
	defer func() {
		if err := handoffs.Close(); err != nil {
			log.Warn("hand-off publisher close failed", zap.Error(err))
		}
	}()

	sessions := session.NewManager(store, chat.NewDispatcher(chat.DefaultResponses(), links), session.Options{
		ReplyDelay:    cfg.ChatReplyDelay,
		EffectDelay:   cfg.ChatEffectDelay,
		CancelOnClose: cfg.ChatCancelOnClose,
		Logger:        log,
	})
	defer sessions.Close()

	router := h.NewRouter(h.RouterConfig{
		Catalog:        products,
		Sessions:       sessions,
		Checkout:       checkout.NewService(handoffs, links),
		Logger:         log,
		RequestTimeout: cfg.RequestTimeout,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("storefront starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
	}

	log.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("server exited")
	return nil
}

func openCatalog() (catalog.Catalog, func(), error) {
	if cfg.CatalogDBPath == "" {
		return catalog.NewMemoryCatalog(catalog.Default()), func() {}, nil
	}

	repo, err := catalog.NewSQLiteCatalog(cfg.CatalogDBPath)
	if err != nil {
		return nil, nil, err
	}
	if err := repo.RunMigrations(); err != nil {
		repo.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Info("catalog migrations completed", zap.String("path", cfg.CatalogDBPath))

	return repo, func() { repo.Close() }, nil
}

func openSessionStore(ctx context.Context) (session.Store, func(), error) {
	if cfg.RedisAddr == "" {
		store := session.NewMemoryStore(cfg.SessionTTL)
		return store, func() { store.Close() }, nil
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	log.Info("sessions stored in redis", zap.String("addr", cfg.RedisAddr))

	return session.NewRedisStore(client, cfg.SessionTTL), func() { client.Close() }, nil
}
