package providers

import (
	"context"

	"farmportal.app/config"
	"farmportal.app/errors"
	"farmportal.app/models"
)

// HTTPAuthProvider implements AuthProvider against the advisory backend's
// /auth endpoints
type HTTPAuthProvider struct {
	api *apiClient
}

// NewAuthProvider creates a new provider for the farmer auth backend
func NewAuthProvider(cfg *config.ServiceConfig) *HTTPAuthProvider {
	return &HTTPAuthProvider{api: newAPIClient(cfg)}
}

// Login exchanges farmer credentials for a bearer token and profile
func (p *HTTPAuthProvider) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	if email == "" {
		return nil, errors.NewValidationError("email cannot be empty")
	}
	if password == "" {
		return nil, errors.NewValidationError("password cannot be empty")
	}

	var resp models.AuthResponse
	if err := p.api.postJSON(ctx, "/auth/login", "", models.LoginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, errors.NewServerError("auth backend returned no token", nil)
	}
	return &resp, nil
}

// Register creates a farmer account and returns a bearer token and profile
func (p *HTTPAuthProvider) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	if req.Name == "" {
		return nil, errors.NewValidationError("name cannot be empty")
	}
	if req.Email == "" {
		return nil, errors.NewValidationError("email cannot be empty")
	}
	if req.Password == "" {
		return nil, errors.NewValidationError("password cannot be empty")
	}

	var resp models.AuthResponse
	if err := p.api.postJSON(ctx, "/auth/register", "", req, &resp); err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, errors.NewServerError("auth backend returned no token", nil)
	}
	return &resp, nil
}

// Profile fetches the profile belonging to a stored credential
func (p *HTTPAuthProvider) Profile(ctx context.Context, token string) (*models.FarmerProfile, error) {
	if token == "" {
		return nil, errors.NewAuthError("no credential held")
	}

	var profile models.FarmerProfile
	if err := p.api.getJSON(ctx, "/auth/me", token, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
