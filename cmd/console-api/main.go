package main

import (
	"context"
	"flag"
	"log"

	"github.com/RitterHou/search-platform/internal/alert"
	"github.com/RitterHou/search-platform/internal/api"
	"github.com/RitterHou/search-platform/internal/api/handler"
	"github.com/RitterHou/search-platform/internal/app"
	"github.com/RitterHou/search-platform/internal/config"
	"github.com/RitterHou/search-platform/pkg/router"
)

// @title Search Platform Console API
// @version 1.0
// @description Edit data rivers, query chains, index templates and system parameters.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	configPath := flag.String("config", "", "path to the console YAML config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	// Open resources
	resources, closeFn, err := app.OpenResources(context.Background(), cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer closeFn()

	// Create router
	r := router.New()
	if cfg.Auth.Secret != "" {
		r.Use(api.Auth(cfg.Auth.Secret))
	}

	// Register API routes
	api.RegisterRoutes(r, handler.NewConsole(resources, alert.NewBoard()))

	// Start server
	if err := r.Start(cfg.Server.Addr); err != nil {
		log.Fatal(err)
	}
}
