package providers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "farmportal.app/errors"
	"farmportal.app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEcoProvider_GetAdvice(t *testing.T) {
	t.Run("ValidRequest", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/get-environment-friendly-advice", r.URL.Path)

			var req models.EcoAdviceRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "Rice", req.CropName)
			assert.Equal(t, 6.5, req.PH)
			assert.Equal(t, "Hindi", req.Language)

			_, err := w.Write([]byte(`{
				"environment_friendly_fertilizer": "Vermicompost",
				"fertilizer_reason": "Improves soil structure",
				"environment_friendly_pesticide": "Neem oil",
				"pesticide_reason": "Non-toxic to pollinators",
				"soil_health_advice": "Rotate with legumes"
			}`))
			require.NoError(t, err)
		}))
		defer mockServer.Close()

		provider := NewEcoProvider(serviceConfig(mockServer.URL))
		advice, err := provider.GetAdvice(context.Background(), &models.EcoAdviceRequest{
			CropName:      "Rice",
			Fertilizer:    "Urea",
			Pesticide:     "Malathion",
			Nitrogen:      120,
			Phosphorus:    40,
			Potassium:     35,
			PH:            6.5,
			OrganicCarbon: 0.8,
			Language:      "Hindi",
		})

		require.NoError(t, err)
		assert.Equal(t, "Vermicompost", advice.EnvironmentFriendlyFertilizer)
		assert.Equal(t, "Neem oil", advice.EnvironmentFriendlyPesticide)
		assert.Equal(t, "Rotate with legumes", advice.SoilHealthAdvice)
	})

	t.Run("EmptyCropName", func(t *testing.T) {
		provider := NewEcoProvider(serviceConfig("https://eco.example.com"))
		advice, err := provider.GetAdvice(context.Background(), &models.EcoAdviceRequest{})

		assert.Nil(t, advice)

		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.ValidationError, appErr.Type)
	})
}

func TestLeafProvider_DetectDisease(t *testing.T) {
	t.Run("ValidUpload", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/detect-leaf-disease", r.URL.Path)
			assert.Contains(t, r.Header.Get("Content-Type"), "multipart/form-data")

			file, header, err := r.FormFile("file")
			require.NoError(t, err)
			defer file.Close()
			assert.Equal(t, "leaf.jpg", header.Filename)

			_, err = w.Write([]byte(`{
				"disease_name": "Leaf blast",
				"severity": "Moderate",
				"cause": "Magnaporthe oryzae",
				"recommended_treatment": "Tricyclazole spray",
				"eco_friendly_solution": "Silicon amendment"
			}`))
			require.NoError(t, err)
		}))
		defer mockServer.Close()

		provider := NewLeafProvider(serviceConfig(mockServer.URL))
		diagnosis, err := provider.DetectDisease(context.Background(), "leaf.jpg", strings.NewReader("fake image bytes"))

		require.NoError(t, err)
		assert.Equal(t, "Leaf blast", diagnosis.DiseaseName)
		assert.Equal(t, "Moderate", diagnosis.Severity)
		assert.Equal(t, "Silicon amendment", diagnosis.EcoFriendlySolution)
	})

	t.Run("EmptyFilename", func(t *testing.T) {
		provider := NewLeafProvider(serviceConfig("https://eco.example.com"))
		diagnosis, err := provider.DetectDisease(context.Background(), "", strings.NewReader("x"))

		assert.Nil(t, diagnosis)

		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.ValidationError, appErr.Type)
	})

	t.Run("NilReader", func(t *testing.T) {
		provider := NewLeafProvider(serviceConfig("https://eco.example.com"))
		diagnosis, err := provider.DetectDisease(context.Background(), "leaf.jpg", nil)

		assert.Nil(t, diagnosis)
		assert.Error(t, err)
	})
}

func TestAlertProvider_Subscribe(t *testing.T) {
	t.Run("ValidSubscription", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/subscribe-weather-alert", r.URL.Path)

			var req alertSubscription
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "asha@example.com", req.Email)
			assert.Equal(t, "Pune", req.City)

			_, err := w.Write([]byte(`{"message":"subscribed"}`))
			require.NoError(t, err)
		}))
		defer mockServer.Close()

		provider := NewAlertProvider(serviceConfig(mockServer.URL))
		err := provider.Subscribe(context.Background(), "asha@example.com", "Pune")

		assert.NoError(t, err)
	})

	t.Run("EmptyCityDefaults", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req alertSubscription
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, DefaultAlertCity, req.City)

			_, err := w.Write([]byte(`{}`))
			require.NoError(t, err)
		}))
		defer mockServer.Close()

		provider := NewAlertProvider(serviceConfig(mockServer.URL))
		err := provider.Subscribe(context.Background(), "asha@example.com", "")

		assert.NoError(t, err)
	})

	t.Run("InvalidEmail", func(t *testing.T) {
		provider := NewAlertProvider(serviceConfig("https://alerts.example.com"))
		err := provider.Subscribe(context.Background(), "not-an-email", "Delhi")

		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.ValidationError, appErr.Type)
	})
}

func TestChatbotProvider_Ask(t *testing.T) {
	t.Run("ValidMessage", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/chatbot", r.URL.Path)

			var req models.ChatRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "When should I sow wheat?", req.Message)

			_, err := w.Write([]byte(`{"reply":"Sow wheat from late October to November."}`))
			require.NoError(t, err)
		}))
		defer mockServer.Close()

		provider := NewChatbotProvider(serviceConfig(mockServer.URL))
		reply, err := provider.Ask(context.Background(), "When should I sow wheat?")

		require.NoError(t, err)
		assert.Equal(t, "Sow wheat from late October to November.", reply.Reply)
	})

	t.Run("ErrorInsideBody", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, err := w.Write([]byte(`{"error":"model overloaded"}`))
			require.NoError(t, err)
		}))
		defer mockServer.Close()

		provider := NewChatbotProvider(serviceConfig(mockServer.URL))
		reply, err := provider.Ask(context.Background(), "hello")

		assert.Nil(t, reply)

		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.ServerError, appErr.Type)
		assert.Equal(t, "model overloaded", appErr.Message)
	})

	t.Run("EmptyMessage", func(t *testing.T) {
		provider := NewChatbotProvider(serviceConfig("https://chat.example.com"))
		reply, err := provider.Ask(context.Background(), "")

		assert.Nil(t, reply)

		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.ValidationError, appErr.Type)
	})
}
