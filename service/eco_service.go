package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"farmportal.app/cache"
	"farmportal.app/errors"
	"farmportal.app/metrics"
	"farmportal.app/models"
	"farmportal.app/providers"
)

// DefaultAdviceLanguage mirrors the portal form's pre-selected language
const DefaultAdviceLanguage = "English"

// EcoAdviceService validates soil-test input and fetches eco-friendly advice,
// serving repeat requests for identical inputs from cache. The upstream AI
// call is slow and metered; identical chemistry yields identical advice.
type EcoAdviceService struct {
	provider providers.EcoProvider
	cache    cache.GenericCache
	ttl      time.Duration
	metrics  *metrics.UpstreamMetrics
}

// NewEcoAdviceService creates an eco advice service. cache may be nil to
// disable caching.
func NewEcoAdviceService(provider providers.EcoProvider, c cache.GenericCache, ttl time.Duration) *EcoAdviceService {
	return &EcoAdviceService{
		provider: provider,
		cache:    c,
		ttl:      ttl,
		metrics:  metrics.NewUpstreamMetrics("eco-advice"),
	}
}

// GetAdvice validates the soil-test report and returns eco-friendly
// suggestions. All numeric fields are checked here; raw form strings never
// reach the upstream service.
func (s *EcoAdviceService) GetAdvice(ctx context.Context, req *models.EcoAdviceRequest) (*models.EcoAdvice, error) {
	if err := validateEcoRequest(req); err != nil {
		return nil, err
	}

	// Default into a copy so the caller's request stays untouched
	resolved := *req
	if resolved.Language == "" {
		resolved.Language = DefaultAdviceLanguage
	}

	key := ecoCacheKey(&resolved)
	if s.cache != nil {
		if data, found := s.cache.Get(ctx, key); found {
			var advice models.EcoAdvice
			if err := json.Unmarshal(data, &advice); err == nil {
				return &advice, nil
			}
			slog.Debug("discarding undecodable cache entry", "key", key)
		}
	}

	start := time.Now()
	advice, err := s.provider.GetAdvice(ctx, &resolved)
	s.metrics.RecordCall(outcomeOf(err), time.Since(start).Seconds())
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(advice); err == nil {
			s.cache.Set(ctx, key, data, s.ttl)
		}
	}
	return advice, nil
}

func validateEcoRequest(req *models.EcoAdviceRequest) error {
	if req.CropName == "" {
		return errors.NewValidationError("crop name cannot be empty")
	}
	if req.Nitrogen < 0 || req.Phosphorus < 0 || req.Potassium < 0 {
		return errors.NewValidationError("nutrient values cannot be negative")
	}
	if req.PH < 0 || req.PH > 14 {
		return errors.NewValidationError("soil pH must be between 0 and 14")
	}
	if req.OrganicCarbon < 0 || req.OrganicCarbon > 100 {
		return errors.NewValidationError("organic carbon must be between 0 and 100 percent")
	}
	return nil
}

// ecoCacheKey derives a stable key from the full request so any change in
// chemistry, inputs or language misses the cache
func ecoCacheKey(req *models.EcoAdviceRequest) string {
	data, _ := json.Marshal(req)
	sum := sha256.Sum256(data)
	return "eco:" + hex.EncodeToString(sum[:])
}
