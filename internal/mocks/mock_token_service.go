package mocks

import "github.com/Biholo/planete-xplorer/domain"

// MockTokenService is a function-field test double for domain.TokenService.
type MockTokenService struct {
	GenerateAccessTokenFn  func(user *domain.User) (string, int64, error)
	GenerateRefreshTokenFn func(user *domain.User) (string, int64, error)
	GenerateResetTokenFn   func() (string, error)
	VerifyFn               func(token string) (*domain.TokenClaims, error)
}

func (m *MockTokenService) GenerateAccessToken(user *domain.User) (string, int64, error) {
	return m.GenerateAccessTokenFn(user)
}

func (m *MockTokenService) GenerateRefreshToken(user *domain.User) (string, int64, error) {
	return m.GenerateRefreshTokenFn(user)
}

func (m *MockTokenService) GenerateResetToken() (string, error) {
	return m.GenerateResetTokenFn()
}

func (m *MockTokenService) Verify(token string) (*domain.TokenClaims, error) {
	return m.VerifyFn(token)
}
