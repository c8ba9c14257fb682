package mocks

import "context"

// MockRateLimiter is a function-field test double for domain.RateLimiter.
type MockRateLimiter struct {
	AllowFn func(ctx context.Context, key string) (bool, error)
}

func (m *MockRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	return m.AllowFn(ctx, key)
}
