package providers

import (
	"context"

	"farmportal.app/config"
	"farmportal.app/errors"
	"farmportal.app/models"
)

// HTTPChatbotProvider implements ChatbotProvider against the farming chatbot
// service
type HTTPChatbotProvider struct {
	api *apiClient
}

// NewChatbotProvider creates a new provider for the chatbot service
func NewChatbotProvider(cfg *config.ServiceConfig) *HTTPChatbotProvider {
	return &HTTPChatbotProvider{api: newAPIClient(cfg)}
}

// Ask relays one farmer message and returns the bot's reply. The service
// reports its own failures inside a 2xx body via the error field.
func (p *HTTPChatbotProvider) Ask(ctx context.Context, message string) (*models.ChatReply, error) {
	if message == "" {
		return nil, errors.NewValidationError("message cannot be empty")
	}

	var reply models.ChatReply
	if err := p.api.postJSON(ctx, "/api/chatbot", "", models.ChatRequest{Message: message}, &reply); err != nil {
		return nil, err
	}
	if reply.Error != "" {
		return nil, errors.NewServerError(reply.Error, nil)
	}
	return &reply, nil
}
