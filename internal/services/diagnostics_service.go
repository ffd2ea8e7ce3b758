package services

import (
	"context"

	"sportsportal/internal/infra"
	"sportsportal/internal/models/response_models"
	"sportsportal/internal/repositories"
)

type DiagnosticsServiceInterface interface {
	Report(ctx context.Context) response_models.DiagnosticsResponse
}

type DiagnosticsService struct {
	cfg   *infra.Config
	store *repositories.DocumentStore
}

func NewDiagnosticsService(cfg *infra.Config, store *repositories.DocumentStore) DiagnosticsServiceInterface {
	return &DiagnosticsService{
		cfg:   cfg,
		store: store,
	}
}

// Report is the one place that swallows an arbitrary probe error: it is
// reported truncated inside the payload instead of failing the route.
func (d *DiagnosticsService) Report(ctx context.Context) response_models.DiagnosticsResponse {
	resp := response_models.DiagnosticsResponse{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		DatabaseURL:      presence(d.cfg.DatabaseURL),
		DatabaseName:     presence(d.cfg.DatabaseName),
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if !d.store.Configured() {
		return resp
	}

	resp.Database = "✅ Available"
	resp.ConnectionStatus = "Connected"

	names, err := d.store.CollectionNames(ctx)
	if err != nil {
		resp.Database = "⚠️ Error: " + truncate(err.Error(), 80)
		return resp
	}

	resp.Collections = names
	resp.Database = "✅ Connected & Working"
	return resp
}

func presence(value string) string {
	if value != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
