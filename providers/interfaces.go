package providers

import (
	"context"
	"io"

	"farmportal.app/models"
)

// AuthProvider defines the interface for the farmer authentication backend
type AuthProvider interface {
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	Profile(ctx context.Context, token string) (*models.FarmerProfile, error)
}

// AdvisoryProvider defines the interface for the crop advisory backend
type AdvisoryProvider interface {
	RequestAdvisory(ctx context.Context, token string, req *models.AdvisoryRequest) (*models.AdvisoryResult, error)
	FetchHistory(ctx context.Context, token string) ([]models.HistoryEntry, error)
}

// EcoProvider defines the interface for the environment-friendly advice service
type EcoProvider interface {
	GetAdvice(ctx context.Context, req *models.EcoAdviceRequest) (*models.EcoAdvice, error)
}

// LeafProvider defines the interface for the leaf disease detection service
type LeafProvider interface {
	DetectDisease(ctx context.Context, filename string, file io.Reader) (*models.LeafDiagnosis, error)
}

// AlertProvider defines the interface for the weather alert subscription service
type AlertProvider interface {
	Subscribe(ctx context.Context, email, city string) error
}

// ChatbotProvider defines the interface for the farming chatbot service
type ChatbotProvider interface {
	Ask(ctx context.Context, message string) (*models.ChatReply, error)
}
