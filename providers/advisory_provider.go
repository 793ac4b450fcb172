package providers

import (
	"context"
	"log/slog"

	"farmportal.app/config"
	"farmportal.app/errors"
	"farmportal.app/models"
)

// HTTPAdvisoryProvider implements AdvisoryProvider against the crop advisory
// backend
type HTTPAdvisoryProvider struct {
	api *apiClient
}

// NewAdvisoryProvider creates a new provider for the crop advisory backend
func NewAdvisoryProvider(cfg *config.ServiceConfig) *HTTPAdvisoryProvider {
	return &HTTPAdvisoryProvider{api: newAPIClient(cfg)}
}

// RequestAdvisory submits a built payload and returns the backend's
// recommendation set. Two identical calls may return different results as
// live weather moves; nothing here is cached.
func (p *HTTPAdvisoryProvider) RequestAdvisory(ctx context.Context, token string, req *models.AdvisoryRequest) (*models.AdvisoryResult, error) {
	if token == "" {
		return nil, errors.NewAuthError("no credential held")
	}

	slog.Debug("requesting advisory", "soilType", req.SoilType, "location", req.Location, "sowingMonth", req.SowingMonth)

	var result models.AdvisoryResult
	if err := p.api.postJSON(ctx, "/advisory", token, req, &result); err != nil {
		slog.Error("advisory request failed", "error", err)
		return nil, err
	}
	return &result, nil
}

// FetchHistory retrieves past advisories in the order supplied by the
// backend, assumed reverse-chronological and never re-sorted here. An empty
// list is a valid result.
func (p *HTTPAdvisoryProvider) FetchHistory(ctx context.Context, token string) ([]models.HistoryEntry, error) {
	if token == "" {
		return nil, errors.NewAuthError("no credential held")
	}

	entries := []models.HistoryEntry{}
	if err := p.api.getJSON(ctx, "/history", token, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
