package providers

import (
	"context"

	"farmportal.app/config"
	"farmportal.app/errors"
	"farmportal.app/models"
)

// HTTPEcoProvider implements EcoProvider against the environment-friendly
// advice service
type HTTPEcoProvider struct {
	api *apiClient
}

// NewEcoProvider creates a new provider for the eco advice service
func NewEcoProvider(cfg *config.ServiceConfig) *HTTPEcoProvider {
	return &HTTPEcoProvider{api: newAPIClient(cfg)}
}

// GetAdvice submits soil-test chemistry and planned inputs for a crop and
// returns eco-friendly alternatives
func (p *HTTPEcoProvider) GetAdvice(ctx context.Context, req *models.EcoAdviceRequest) (*models.EcoAdvice, error) {
	if req.CropName == "" {
		return nil, errors.NewValidationError("crop name cannot be empty")
	}

	var advice models.EcoAdvice
	if err := p.api.postJSON(ctx, "/get-environment-friendly-advice", "", req, &advice); err != nil {
		return nil, err
	}
	return &advice, nil
}
