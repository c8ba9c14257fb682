package mocks

import (
	"context"

	"github.com/Biholo/planete-xplorer/domain"
)

// MockUserRepository is a function-field test double for
// domain.UserRepository.
type MockUserRepository struct {
	CreateFn         func(ctx context.Context, user *domain.User) error
	FindByEmailFn    func(ctx context.Context, email string) (*domain.User, error)
	FindByIDFn       func(ctx context.Context, id string) (*domain.User, error)
	UpdateFn         func(ctx context.Context, user *domain.User) error
	UpdatePasswordFn func(ctx context.Context, userID, passwordHash string) error
	DeleteFn         func(ctx context.Context, id string) error
	ListFn           func(ctx context.Context, q domain.ListQuery) ([]*domain.User, *domain.PaginationMeta, error)
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	return m.CreateFn(ctx, user)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.FindByEmailFn(ctx, email)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return m.FindByIDFn(ctx, id)
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	return m.UpdateFn(ctx, user)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	return m.UpdatePasswordFn(ctx, userID, passwordHash)
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) error {
	return m.DeleteFn(ctx, id)
}

func (m *MockUserRepository) List(ctx context.Context, q domain.ListQuery) ([]*domain.User, *domain.PaginationMeta, error) {
	return m.ListFn(ctx, q)
}
