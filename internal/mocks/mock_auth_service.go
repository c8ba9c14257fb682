package mocks

import (
	"context"

	"github.com/Biholo/planete-xplorer/domain"
)

// MockAuthService is a function-field test double for domain.AuthService.
type MockAuthService struct {
	RegisterFn             func(ctx context.Context, input domain.RegisterInput, device domain.DeviceInfo) (*domain.TokenPair, error)
	LoginFn                func(ctx context.Context, email, password string, device domain.DeviceInfo) (*domain.TokenPair, error)
	RefreshAccessTokenFn   func(ctx context.Context, refreshToken string, device domain.DeviceInfo) (string, error)
	RequestPasswordResetFn func(ctx context.Context, email, requestIP string) (string, error)
	ResetPasswordFn        func(ctx context.Context, token, newPassword string) error
	GetProfileFn           func(ctx context.Context, userID string) (*domain.User, error)
}

func (m *MockAuthService) Register(ctx context.Context, input domain.RegisterInput, device domain.DeviceInfo) (*domain.TokenPair, error) {
	return m.RegisterFn(ctx, input, device)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string, device domain.DeviceInfo) (*domain.TokenPair, error) {
	return m.LoginFn(ctx, email, password, device)
}

func (m *MockAuthService) RefreshAccessToken(ctx context.Context, refreshToken string, device domain.DeviceInfo) (string, error) {
	return m.RefreshAccessTokenFn(ctx, refreshToken, device)
}

func (m *MockAuthService) RequestPasswordReset(ctx context.Context, email, requestIP string) (string, error) {
	return m.RequestPasswordResetFn(ctx, email, requestIP)
}

func (m *MockAuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	return m.ResetPasswordFn(ctx, token, newPassword)
}

func (m *MockAuthService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	return m.GetProfileFn(ctx, userID)
}
