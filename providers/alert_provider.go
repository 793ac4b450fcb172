package providers

import (
	"context"

	"farmportal.app/config"
	"farmportal.app/errors"
	"farmportal.app/pkg/validation"
)

// DefaultAlertCity mirrors the portal form's pre-filled city
const DefaultAlertCity = "Delhi"

// HTTPAlertProvider implements AlertProvider against the weather alert
// subscription service
type HTTPAlertProvider struct {
	api *apiClient
}

// NewAlertProvider creates a new provider for the weather alert service
func NewAlertProvider(cfg *config.ServiceConfig) *HTTPAlertProvider {
	return &HTTPAlertProvider{api: newAPIClient(cfg)}
}

type alertSubscription struct {
	Email string `json:"email"`
	City  string `json:"city"`
}

// Subscribe signs an email address up for weather alerts in a city. The city
// falls back to the form default when left empty.
func (p *HTTPAlertProvider) Subscribe(ctx context.Context, email, city string) error {
	if !validation.IsValidEmail(email) {
		return errors.NewValidationError("a valid email address is required")
	}
	if city == "" {
		city = DefaultAlertCity
	}

	return p.api.postJSON(ctx, "/subscribe-weather-alert", "", alertSubscription{Email: email, City: city}, nil)
}
