package providers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"farmportal.app/config"
	apperrors "farmportal.app/errors"
	"farmportal.app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serviceConfig(baseURL string) *config.ServiceConfig {
	return &config.ServiceConfig{BaseURL: baseURL, TimeoutSeconds: 2}
}

func TestAuthProvider_Login(t *testing.T) {
	t.Run("ValidCredentials", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/login", r.URL.Path)
			assert.Empty(t, r.Header.Get("Authorization"))
			assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

			var req models.LoginRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "asha@example.com", req.Email)
			assert.Equal(t, "secret", req.Password)

			w.Header().Set("Content-Type", "application/json")
			_, err := w.Write([]byte(`{"token":"tok-123","name":"Asha","email":"asha@example.com","location":"Delhi,IN"}`))
			require.NoError(t, err)
		}))
		defer mockServer.Close()

		provider := NewAuthProvider(serviceConfig(mockServer.URL))
		resp, err := provider.Login(context.Background(), "asha@example.com", "secret")

		require.NoError(t, err)
		assert.Equal(t, "tok-123", resp.Token)
		assert.Equal(t, "Asha", resp.Name)
		assert.Equal(t, "Delhi,IN", resp.Location)
	})

	t.Run("InvalidCredentials", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, err := w.Write([]byte(`{"message":"Invalid email or password"}`))
			require.NoError(t, err)
		}))
		defer mockServer.Close()

		provider := NewAuthProvider(serviceConfig(mockServer.URL))
		resp, err := provider.Login(context.Background(), "asha@example.com", "wrong")

		assert.Nil(t, resp)

		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.AuthError, appErr.Type)
		assert.Equal(t, "Invalid email or password", appErr.Message)
	})

	t.Run("EmptyEmail", func(t *testing.T) {
		provider := NewAuthProvider(serviceConfig("https://auth.example.com"))
		resp, err := provider.Login(context.Background(), "", "secret")

		assert.Nil(t, resp)

		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.ValidationError, appErr.Type)
	})

	t.Run("MissingToken", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, err := w.Write([]byte(`{"name":"Asha"}`))
			require.NoError(t, err)
		}))
		defer mockServer.Close()

		provider := NewAuthProvider(serviceConfig(mockServer.URL))
		resp, err := provider.Login(context.Background(), "asha@example.com", "secret")

		assert.Nil(t, resp)

		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.ServerError, appErr.Type)
	})

	t.Run("Unreachable", func(t *testing.T) {
		provider := NewAuthProvider(serviceConfig("http://127.0.0.1:1"))
		resp, err := provider.Login(context.Background(), "asha@example.com", "secret")

		assert.Nil(t, resp)

		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.NetworkError, appErr.Type)
	})
}

func TestAuthProvider_Register(t *testing.T) {
	t.Run("ValidRequest", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/register", r.URL.Path)

			var req models.RegisterRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "Asha", req.Name)
			assert.Equal(t, "Delhi,IN", req.Location)

			_, err := w.Write([]byte(`{"token":"tok-456","name":"Asha","email":"asha@example.com"}`))
			require.NoError(t, err)
		}))
		defer mockServer.Close()

		provider := NewAuthProvider(serviceConfig(mockServer.URL))
		resp, err := provider.Register(context.Background(), &models.RegisterRequest{
			Name:     "Asha",
			Email:    "asha@example.com",
			Password: "secret",
			Location: "Delhi,IN",
		})

		require.NoError(t, err)
		assert.Equal(t, "tok-456", resp.Token)
	})

	t.Run("EmptyName", func(t *testing.T) {
		provider := NewAuthProvider(serviceConfig("https://auth.example.com"))
		resp, err := provider.Register(context.Background(), &models.RegisterRequest{
			Email:    "asha@example.com",
			Password: "secret",
		})

		assert.Nil(t, resp)

		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.ValidationError, appErr.Type)
	})
}

func TestAuthProvider_Profile(t *testing.T) {
	t.Run("ValidToken", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/me", r.URL.Path)
			assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))

			_, err := w.Write([]byte(`{"name":"Asha","email":"asha@example.com","location":"Delhi,IN"}`))
			require.NoError(t, err)
		}))
		defer mockServer.Close()

		provider := NewAuthProvider(serviceConfig(mockServer.URL))
		profile, err := provider.Profile(context.Background(), "tok-123")

		require.NoError(t, err)
		assert.Equal(t, "Asha", profile.Name)
		assert.Equal(t, "Delhi,IN", profile.Location)
	})

	t.Run("NoToken", func(t *testing.T) {
		provider := NewAuthProvider(serviceConfig("https://auth.example.com"))
		profile, err := provider.Profile(context.Background(), "")

		assert.Nil(t, profile)

		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.AuthError, appErr.Type)
	})

	t.Run("RejectedToken", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer mockServer.Close()

		provider := NewAuthProvider(serviceConfig(mockServer.URL))
		profile, err := provider.Profile(context.Background(), "expired")

		assert.Nil(t, profile)

		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.AuthError, appErr.Type)
	})
}
