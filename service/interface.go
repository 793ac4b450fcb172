package service

import (
	"context"

	"farmportal.app/models"
	"farmportal.app/session"
)

// SessionServiceInterface defines credential lifecycle operations
type SessionServiceInterface interface {
	Login(ctx context.Context, email, password string) (*session.Session, error)
	Register(ctx context.Context, req *models.RegisterRequest) (*session.Session, error)
	Restore(ctx context.Context, token string) *session.Session
	Logout(s *session.Session)
}

// AdvisoryServiceInterface defines advisory and history operations
type AdvisoryServiceInterface interface {
	BuildPayload(soilType, location, sowingMonth string) (*models.AdvisoryRequest, error)
	GetAdvisory(ctx context.Context, s *session.Session, req *models.AdvisoryRequest) (*models.AdvisoryResult, error)
	FetchHistory(ctx context.Context, s *session.Session) ([]models.HistoryEntry, error)
}

// EcoAdviceServiceInterface defines the cached eco advice operation
type EcoAdviceServiceInterface interface {
	GetAdvice(ctx context.Context, req *models.EcoAdviceRequest) (*models.EcoAdvice, error)
}
