package app

import (
	"context"
	"log"

	"github.com/RitterHou/search-platform/internal/client"
	"github.com/RitterHou/search-platform/internal/config"
	"github.com/RitterHou/search-platform/internal/resource"
	"github.com/RitterHou/search-platform/internal/store"
)

// OpenResources connects to the configured backend, or opens the local store
// when no backend is set. The returned func releases the connection.
func OpenResources(ctx context.Context, cfg *config.Config) (*resource.Resources, func() error, error) {
	if cfg.UseBackend() {
		c := client.New(client.Config{
			BaseURL:   cfg.Backend.APIRoot,
			Token:     cfg.Backend.Token,
			Timeout:   cfg.BackendTimeout(),
			RateLimit: cfg.Backend.RateLimit,
			RateBurst: cfg.Backend.RateBurst,
			Retry: client.RetryConfig{
				MaxRetries:        cfg.Backend.MaxRetries,
				InitialDelay:      client.DefaultConfig().Retry.InitialDelay,
				MaxDelay:          client.DefaultConfig().Retry.MaxDelay,
				BackoffMultiplier: client.DefaultConfig().Retry.BackoffMultiplier,
			},
		})
		log.Printf("🔗 Using backend %s", cfg.Backend.APIRoot)
		return c.Resources(), func() error { return nil }, nil
	}

	s, err := store.Open(ctx, cfg.Store.Driver, cfg.Store.DSN)
	if err != nil {
		return nil, nil, err
	}
	log.Printf("💾 Using %s store %s", cfg.Store.Driver, cfg.Store.DSN)
	return s.Resources(), s.Close, nil
}
