package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"farmportal.app/config"
	"farmportal.app/errors"
	"github.com/google/uuid"
)

// apiClient wraps an http.Client bound to one upstream service base URL.
// Timeouts live on the client; a timed-out call is classified as a network
// failure, not a server one.
type apiClient struct {
	baseURL string
	client  *http.Client
}

func newAPIClient(cfg *config.ServiceConfig) *apiClient {
	return &apiClient{
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: cfg.Timeout()},
	}
}

// serverMessage is the structured error body the backends return on failure.
// Some services use "message", others "error".
type serverMessage struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *apiClient) postJSON(ctx context.Context, path, token string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.NewValidationError("failed to encode request payload")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return errors.NewNetworkError("failed to build request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, token, out)
}

func (c *apiClient) getJSON(ctx context.Context, path, token string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errors.NewNetworkError("failed to build request", err)
	}
	return c.do(req, token, out)
}

// do sends the request with the bearer credential attached when present and
// decodes the response into out. Non-2xx statuses are classified into the
// application error taxonomy with the server's own message when it sent one.
func (c *apiClient) do(req *http.Request, token string, out interface{}) error {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-ID", uuid.New().String())

	resp, err := c.client.Do(req)
	if err != nil {
		return errors.NewNetworkError("upstream service unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return classifyStatus(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.NewServerError("failed to decode upstream response", err)
	}
	return nil
}

// classifyStatus maps a rejected upstream response onto the error taxonomy.
// The user-facing message comes from the structured error body when present.
func classifyStatus(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))

	var sm serverMessage
	_ = json.Unmarshal(body, &sm)
	message := sm.Message
	if message == "" {
		message = sm.Error
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		if message == "" {
			message = "authentication rejected"
		}
		return errors.NewAuthError(message)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		if message == "" {
			message = "request rejected by upstream service"
		}
		return errors.NewValidationError(message)
	default:
		if message == "" {
			message = fmt.Sprintf("upstream service returned status code %d", resp.StatusCode)
		}
		return errors.NewServerError(message, nil)
	}
}
