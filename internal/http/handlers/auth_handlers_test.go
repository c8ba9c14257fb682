package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Biholo/planete-xplorer/domain"
	"github.com/Biholo/planete-xplorer/internal/http/middleware"
	"github.com/Biholo/planete-xplorer/internal/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func jsonBody(t *testing.T, v interface{}) *bytes.Reader {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(raw)
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func authRouter(auth domain.AuthService, signer domain.TokenService) *gin.Engine {
	handler := NewAuthHandler(auth, testLogger())
	router := gin.New()
	api := router.Group("/api/auth")
	api.POST("/register", handler.Register)
	api.POST("/login", handler.Login)
	api.POST("/refresh_token", handler.Refresh)
	api.POST("/forgot-password", handler.ForgotPassword)
	api.POST("/reset-password", handler.ResetPassword)
	if signer != nil {
		api.GET("/me", middleware.RequireAuth(signer), handler.Me)
	}
	return router
}

func validRegisterPayload() map[string]interface{} {
	return map[string]interface{}{
		"email":           "new@example.com",
		"password":        "longenough",
		"confirmPassword": "longenough",
		"firstName":       "New",
		"lastName":        "User",
	}
}

func TestRegisterHandler(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]interface{}
		service *mocks.MockAuthService
		want    int
	}{
		{
			"created",
			validRegisterPayload(),
			&mocks.MockAuthService{
				RegisterFn: func(_ context.Context, input domain.RegisterInput, device domain.DeviceInfo) (*domain.TokenPair, error) {
					return &domain.TokenPair{AccessToken: "a", RefreshToken: "r"}, nil
				},
			},
			http.StatusCreated,
		},
		{
			"email taken reports 400",
			validRegisterPayload(),
			&mocks.MockAuthService{
				RegisterFn: func(_ context.Context, _ domain.RegisterInput, _ domain.DeviceInfo) (*domain.TokenPair, error) {
					return nil, domain.ErrUserAlreadyExists
				},
			},
			http.StatusBadRequest,
		},
		{
			"password mismatch",
			map[string]interface{}{
				"email":           "new@example.com",
				"password":        "longenough",
				"confirmPassword": "different11",
				"firstName":       "New",
				"lastName":        "User",
			},
			&mocks.MockAuthService{},
			http.StatusBadRequest,
		},
		{
			"short password",
			map[string]interface{}{
				"email":           "new@example.com",
				"password":        "short",
				"confirmPassword": "short",
				"firstName":       "New",
				"lastName":        "User",
			},
			&mocks.MockAuthService{},
			http.StatusBadRequest,
		},
		{
			"bad email",
			map[string]interface{}{
				"email":           "not-an-email",
				"password":        "longenough",
				"confirmPassword": "longenough",
				"firstName":       "New",
				"lastName":        "User",
			},
			&mocks.MockAuthService{},
			http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := authRouter(tt.service, nil)
			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", jsonBody(t, tt.payload))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
			body := decodeEnvelope(t, rec)
			assert.EqualValues(t, tt.want, body["status"])
			if tt.want == http.StatusCreated {
				data := body["data"].(map[string]interface{})
				assert.Equal(t, "a", data["accessToken"])
				assert.Equal(t, "r", data["refreshToken"])
			}
		})
	}
}

func TestRegisterHandler_CapturesDeviceInfo(t *testing.T) {
	var captured domain.DeviceInfo
	service := &mocks.MockAuthService{
		RegisterFn: func(_ context.Context, _ domain.RegisterInput, device domain.DeviceInfo) (*domain.TokenPair, error) {
			captured = device
			return &domain.TokenPair{AccessToken: "a", RefreshToken: "r"}, nil
		},
	}
	router := authRouter(service, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", jsonBody(t, validRegisterPayload()))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64)")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Mozilla/5.0", captured.Name)
	assert.NotEmpty(t, captured.IP)
}

func TestLoginHandler(t *testing.T) {
	service := &mocks.MockAuthService{
		LoginFn: func(_ context.Context, email, password string, _ domain.DeviceInfo) (*domain.TokenPair, error) {
			if email == "known@example.com" && password == "correct-pw" {
				return &domain.TokenPair{AccessToken: "a", RefreshToken: "r"}, nil
			}
			return nil, domain.ErrInvalidCredentials
		},
	}
	router := authRouter(service, nil)

	login := func(email, password string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", jsonBody(t, map[string]string{
			"email":    email,
			"password": password,
		}))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	rec := login("known@example.com", "correct-pw")
	assert.Equal(t, http.StatusOK, rec.Code)

	// Unknown email and wrong password must be byte-identical responses.
	unknown := login("ghost@example.com", "correct-pw")
	wrongPw := login("known@example.com", "bad-pw")
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, http.StatusUnauthorized, wrongPw.Code)
	assert.Equal(t, unknown.Body.String(), wrongPw.Body.String())
}

func TestMeHandler(t *testing.T) {
	signer := &mocks.MockTokenService{
		VerifyFn: func(token string) (*domain.TokenClaims, error) {
			if token == "valid" {
				return &domain.TokenClaims{UserID: "u1", Email: "user@example.com", Roles: []domain.Role{domain.RoleUser}}, nil
			}
			return nil, domain.ErrTokenInvalid
		},
	}
	service := &mocks.MockAuthService{
		GetProfileFn: func(_ context.Context, userID string) (*domain.User, error) {
			if userID == "u1" {
				return &domain.User{ID: "u1", Email: "user@example.com", PasswordHash: "secret-hash"}, nil
			}
			return nil, domain.ErrUserNotFound
		},
	}
	router := authRouter(service, signer)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer valid")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret-hash")
	data := decodeEnvelope(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, "user@example.com", data["email"])

	req = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMeHandler_ProfileGone(t *testing.T) {
	signer := &mocks.MockTokenService{
		VerifyFn: func(_ string) (*domain.TokenClaims, error) {
			return &domain.TokenClaims{UserID: "deleted", Roles: []domain.Role{domain.RoleUser}}, nil
		},
	}
	service := &mocks.MockAuthService{
		GetProfileFn: func(_ context.Context, _ string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	router := authRouter(service, signer)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer anything")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRefreshHandler(t *testing.T) {
	tests := []struct {
		name    string
		service *mocks.MockAuthService
		want    int
	}{
		{
			"refreshed",
			&mocks.MockAuthService{
				RefreshAccessTokenFn: func(_ context.Context, _ string, _ domain.DeviceInfo) (string, error) {
					return "new-access", nil
				},
			},
			http.StatusOK,
		},
		{
			"invalid token",
			&mocks.MockAuthService{
				RefreshAccessTokenFn: func(_ context.Context, _ string, _ domain.DeviceInfo) (string, error) {
					return "", domain.ErrTokenInvalid
				},
			},
			http.StatusUnauthorized,
		},
		{
			"user deleted",
			&mocks.MockAuthService{
				RefreshAccessTokenFn: func(_ context.Context, _ string, _ domain.DeviceInfo) (string, error) {
					return "", domain.ErrUserNotFound
				},
			},
			http.StatusNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := authRouter(tt.service, nil)
			req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh_token", jsonBody(t, map[string]string{
				"refreshToken": "some-refresh",
			}))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusOK {
				data := decodeEnvelope(t, rec)["data"].(map[string]interface{})
				assert.Equal(t, "new-access", data["accessToken"])
			}
		})
	}
}

func TestForgotPasswordHandler(t *testing.T) {
	service := &mocks.MockAuthService{
		RequestPasswordResetFn: func(_ context.Context, email, _ string) (string, error) {
			if email == "known@example.com" {
				return "reset-token-value", nil
			}
			return "", domain.ErrInvalidCredentials
		},
	}
	router := authRouter(service, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/forgot-password", jsonBody(t, map[string]string{
		"email": "known@example.com",
	}))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeEnvelope(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, "reset-token-value", data["token"])

	req = httptest.NewRequest(http.MethodPost, "/api/auth/forgot-password", jsonBody(t, map[string]string{
		"email": "ghost@example.com",
	}))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestResetPasswordHandler(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]string
		service *mocks.MockAuthService
		want    int
	}{
		{
			"success",
			map[string]string{"token": "t", "password": "newpassword", "confirmPassword": "newpassword"},
			&mocks.MockAuthService{
				ResetPasswordFn: func(_ context.Context, _, _ string) error { return nil },
			},
			http.StatusOK,
		},
		{
			"bad token",
			map[string]string{"token": "t", "password": "newpassword", "confirmPassword": "newpassword"},
			&mocks.MockAuthService{
				ResetPasswordFn: func(_ context.Context, _, _ string) error { return domain.ErrResetTokenInvalid },
			},
			http.StatusBadRequest,
		},
		{
			"mismatched confirmation",
			map[string]string{"token": "t", "password": "newpassword", "confirmPassword": "otherpassword"},
			&mocks.MockAuthService{},
			http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := authRouter(tt.service, nil)
			req := httptest.NewRequest(http.MethodPost, "/api/auth/reset-password", jsonBody(t, tt.payload))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
