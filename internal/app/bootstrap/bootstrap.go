package bootstrap

import (
	"context"
	"log/slog"
	"strings"

	eventgateway "istari/contexts/intent-analytics/event-gateway"
	intentengine "istari/contexts/intent-analytics/intent-engine"
	"istari/internal/platform/config"
	"istari/internal/platform/httpserver"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server *httpserver.Server
	logger *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")

	intent := intentengine.NewInMemoryModule(nil, logger)
	gateway := eventgateway.NewModule(logger)

	server := httpserver.New(intent, gateway, logger, normalizeAddr(cfg.HTTPPort), httpserver.Options{
		EnableGateway: cfg.EnableEventGateway,
		EnableSwagger: cfg.EnableSwagger,
		EnableMetrics: cfg.EnableMetrics,
	})
	return &APIApp{
		server: server,
		logger: logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
