package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"todo-app/pkg/auth"
	"todo-app/pkg/config"
	"todo-app/pkg/handlers"
	"todo-app/pkg/store"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("%v", err)
	}
}

// run holds the server lifecycle so deferred cleanup still happens when
// startup or serving fails; log.Fatal would skip it.
func run() error {
	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize store
	dataStore, err := newStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := dataStore.Close(ctx); err != nil {
			log.Printf("Failed to close store: %v", err)
		}
	}()

	// Initialize auth
	authService := auth.New(&cfg.Auth)

	// Initialize handlers and routes
	h := handlers.New(cfg, dataStore, authService)

	gin.SetMode(gin.ReleaseMode)
	r := handlers.Router(h, authService)

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Starting todo server on http://%s", addr)

	if err := r.Run(addr); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// newStore picks the persistence backend: MongoDB when a URI is configured,
// otherwise the local JSON file store.
func newStore(cfg *config.Config) (store.Store, error) {
	if cfg.Store.MongoURI == "" {
		return store.NewFileStore(cfg.Store.DataDir)
	}

	timeout := time.Duration(cfg.Store.TimeoutSeconds) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return store.NewMongoStore(ctx, cfg.Store.MongoURI, cfg.Store.Database)
}
