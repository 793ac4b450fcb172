package providers

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"

	"farmportal.app/config"
	"farmportal.app/errors"
	"farmportal.app/models"
)

// HTTPLeafProvider implements LeafProvider against the leaf disease
// detection service
type HTTPLeafProvider struct {
	api *apiClient
}

// NewLeafProvider creates a new provider for the leaf disease service
func NewLeafProvider(cfg *config.ServiceConfig) *HTTPLeafProvider {
	return &HTTPLeafProvider{api: newAPIClient(cfg)}
}

// DetectDisease uploads one leaf photo as a multipart form and returns the
// diagnosis
func (p *HTTPLeafProvider) DetectDisease(ctx context.Context, filename string, file io.Reader) (*models.LeafDiagnosis, error) {
	if filename == "" {
		return nil, errors.NewValidationError("file name cannot be empty")
	}
	if file == nil {
		return nil, errors.NewValidationError("no file supplied")
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, errors.NewServerError("failed to build multipart form", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, errors.NewValidationError("failed to read uploaded file")
	}
	if err := writer.Close(); err != nil {
		return nil, errors.NewServerError("failed to finalize multipart form", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.api.baseURL+"/detect-leaf-disease", &body)
	if err != nil {
		return nil, errors.NewNetworkError("failed to build request", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var diagnosis models.LeafDiagnosis
	if err := p.api.do(req, "", &diagnosis); err != nil {
		return nil, err
	}
	return &diagnosis, nil
}
