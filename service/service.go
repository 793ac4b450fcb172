package service

import (
	"context"
	stderrors "errors"
	"log/slog"
	"strconv"
	"time"

	"farmportal.app/errors"
	"farmportal.app/metrics"
	"farmportal.app/models"
	"farmportal.app/pkg/validation"
	"farmportal.app/providers"
	"farmportal.app/session"
)

// SessionService handles the farmer credential lifecycle
type SessionService struct {
	auth providers.AuthProvider
}

// NewSessionService creates a session service backed by the auth provider
func NewSessionService(auth providers.AuthProvider) *SessionService {
	return &SessionService{auth: auth}
}

// Login exchanges credentials for an authenticated session
func (s *SessionService) Login(ctx context.Context, email, password string) (*session.Session, error) {
	resp, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	sess := session.New()
	sess.Set(resp.Token, &resp.FarmerProfile)
	return sess, nil
}

// Register creates an account and returns an authenticated session
func (s *SessionService) Register(ctx context.Context, req *models.RegisterRequest) (*session.Session, error) {
	resp, err := s.auth.Register(ctx, req)
	if err != nil {
		return nil, err
	}

	sess := session.New()
	sess.Set(resp.Token, &resp.FarmerProfile)
	return sess, nil
}

// Restore attempts to revive a session from a previously stored credential.
// Any rejection degrades silently to a logged-out session; the stored
// credential is considered discarded and no error escapes.
func (s *SessionService) Restore(ctx context.Context, token string) *session.Session {
	if token == "" {
		return session.New()
	}

	profile, err := s.auth.Profile(ctx, token)
	if err != nil {
		slog.Debug("session restore failed, falling back to logged-out state", "error", err)
		return session.New()
	}

	sess := session.FromToken(token)
	sess.SetProfile(profile)
	return sess
}

// Logout discards the credential and profile unconditionally. Purely local:
// there is no server-side session to revoke.
func (s *SessionService) Logout(sess *session.Session) {
	sess.Clear()
}

// AdvisoryService handles advisory payload construction, submission and
// history retrieval
type AdvisoryService struct {
	provider providers.AdvisoryProvider
	metrics  *metrics.UpstreamMetrics
}

// NewAdvisoryService creates an advisory service backed by the advisory provider
func NewAdvisoryService(provider providers.AdvisoryProvider) *AdvisoryService {
	return &AdvisoryService{
		provider: provider,
		metrics:  metrics.NewUpstreamMetrics("advisory"),
	}
}

// BuildPayload validates and normalizes farmer form input into an advisory
// request. Soil type defaults to the form's pre-selected option; optional
// fields are omitted entirely rather than sent empty so the backend applies
// its own defaulting.
func (s *AdvisoryService) BuildPayload(soilType, location, sowingMonth string) (*models.AdvisoryRequest, error) {
	if soilType == "" {
		soilType = models.DefaultSoilType
	}
	if !validation.IsValidSoilType(soilType) {
		return nil, errors.NewValidationError("soil type must be one of loam, clay or sandy")
	}

	req := &models.AdvisoryRequest{SoilType: soilType}

	if loc, ok := validation.TrimAndValidate(location); ok {
		req.Location = loc
	}

	if sowingMonth != "" {
		month, err := strconv.Atoi(sowingMonth)
		if err != nil || month < 1 || month > 12 {
			return nil, errors.NewValidationError("sowing month must be a whole number between 1 and 12")
		}
		req.SowingMonth = month
	}

	return req, nil
}

// GetAdvisory submits a built payload under the session's credential. Never
// cached and never retried; a repeat call may legitimately differ as live
// weather moves.
func (s *AdvisoryService) GetAdvisory(ctx context.Context, sess *session.Session, req *models.AdvisoryRequest) (*models.AdvisoryResult, error) {
	if !sess.Authenticated() {
		return nil, errors.NewAuthError("login required to request an advisory")
	}

	start := time.Now()
	result, err := s.provider.RequestAdvisory(ctx, sess.Token(), req)
	s.metrics.RecordCall(outcomeOf(err), time.Since(start).Seconds())
	if err != nil {
		return nil, err
	}
	return result, nil
}

// FetchHistory lists the farmer's past advisories in backend order. An empty
// history is a valid result, not a failure.
func (s *AdvisoryService) FetchHistory(ctx context.Context, sess *session.Session) ([]models.HistoryEntry, error) {
	if !sess.Authenticated() {
		return nil, errors.NewAuthError("login required to view history")
	}

	start := time.Now()
	entries, err := s.provider.FetchHistory(ctx, sess.Token())
	s.metrics.RecordCall(outcomeOf(err), time.Since(start).Seconds())
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func outcomeOf(err error) string {
	if err == nil {
		return "success"
	}
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return string(appErr.Type)
	}
	return "error"
}
