package mocks

import (
	"context"

	"github.com/Biholo/planete-xplorer/domain"
)

// MockTokenRepository is a function-field test double for
// domain.TokenRepository.
type MockTokenRepository struct {
	CreateFn        func(ctx context.Context, token *domain.Token) error
	FindByValueFn   func(ctx context.Context, value string) (*domain.Token, error)
	DeleteFn        func(ctx context.Context, id string) error
	DeleteExpiredFn func(ctx context.Context) (int64, error)
}

func (m *MockTokenRepository) Create(ctx context.Context, token *domain.Token) error {
	return m.CreateFn(ctx, token)
}

func (m *MockTokenRepository) FindByValue(ctx context.Context, value string) (*domain.Token, error) {
	return m.FindByValueFn(ctx, value)
}

func (m *MockTokenRepository) Delete(ctx context.Context, id string) error {
	return m.DeleteFn(ctx, id)
}

func (m *MockTokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	return m.DeleteExpiredFn(ctx)
}
