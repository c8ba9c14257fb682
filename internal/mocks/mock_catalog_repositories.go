package mocks

import (
	"context"

	"github.com/Biholo/planete-xplorer/domain"
)

// MockCategoryRepository is a function-field test double for
// domain.CategoryRepository.
type MockCategoryRepository struct {
	CreateFn     func(ctx context.Context, category *domain.Category) error
	UpdateFn     func(ctx context.Context, category *domain.Category) error
	DeleteFn     func(ctx context.Context, id string) error
	FindByIDFn   func(ctx context.Context, id string) (*domain.Category, error)
	FindByNameFn func(ctx context.Context, name string) (*domain.Category, error)
	ListFn       func(ctx context.Context, q domain.ListQuery) ([]*domain.Category, *domain.PaginationMeta, error)
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	return m.CreateFn(ctx, category)
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	return m.UpdateFn(ctx, category)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id string) error {
	return m.DeleteFn(ctx, id)
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	return m.FindByIDFn(ctx, id)
}

func (m *MockCategoryRepository) FindByName(ctx context.Context, name string) (*domain.Category, error) {
	return m.FindByNameFn(ctx, name)
}

func (m *MockCategoryRepository) List(ctx context.Context, q domain.ListQuery) ([]*domain.Category, *domain.PaginationMeta, error) {
	return m.ListFn(ctx, q)
}

// MockSystemRepository is a function-field test double for
// domain.SystemRepository.
type MockSystemRepository struct {
	CreateFn     func(ctx context.Context, system *domain.StarSystem) error
	UpdateFn     func(ctx context.Context, system *domain.StarSystem) error
	DeleteFn     func(ctx context.Context, id string) error
	FindByIDFn   func(ctx context.Context, id string) (*domain.StarSystem, error)
	FindByNameFn func(ctx context.Context, name string) (*domain.StarSystem, error)
	ListFn       func(ctx context.Context, q domain.ListQuery) ([]*domain.StarSystem, *domain.PaginationMeta, error)
}

func (m *MockSystemRepository) Create(ctx context.Context, system *domain.StarSystem) error {
	return m.CreateFn(ctx, system)
}

func (m *MockSystemRepository) Update(ctx context.Context, system *domain.StarSystem) error {
	return m.UpdateFn(ctx, system)
}

func (m *MockSystemRepository) Delete(ctx context.Context, id string) error {
	return m.DeleteFn(ctx, id)
}

func (m *MockSystemRepository) FindByID(ctx context.Context, id string) (*domain.StarSystem, error) {
	return m.FindByIDFn(ctx, id)
}

func (m *MockSystemRepository) FindByName(ctx context.Context, name string) (*domain.StarSystem, error) {
	return m.FindByNameFn(ctx, name)
}

func (m *MockSystemRepository) List(ctx context.Context, q domain.ListQuery) ([]*domain.StarSystem, *domain.PaginationMeta, error) {
	return m.ListFn(ctx, q)
}

// MockCelestialObjectRepository is a function-field test double for
// domain.CelestialObjectRepository.
type MockCelestialObjectRepository struct {
	CreateFn     func(ctx context.Context, object *domain.CelestialObject) error
	UpdateFn     func(ctx context.Context, object *domain.CelestialObject) error
	DeleteFn     func(ctx context.Context, id string) error
	FindByIDFn   func(ctx context.Context, id string) (*domain.CelestialObject, error)
	FindByNameFn func(ctx context.Context, name string) (*domain.CelestialObject, error)
	ListFn       func(ctx context.Context, q domain.ObjectListQuery) ([]*domain.CelestialObject, *domain.PaginationMeta, error)
}

func (m *MockCelestialObjectRepository) Create(ctx context.Context, object *domain.CelestialObject) error {
	return m.CreateFn(ctx, object)
}

func (m *MockCelestialObjectRepository) Update(ctx context.Context, object *domain.CelestialObject) error {
	return m.UpdateFn(ctx, object)
}

func (m *MockCelestialObjectRepository) Delete(ctx context.Context, id string) error {
	return m.DeleteFn(ctx, id)
}

func (m *MockCelestialObjectRepository) FindByID(ctx context.Context, id string) (*domain.CelestialObject, error) {
	return m.FindByIDFn(ctx, id)
}

func (m *MockCelestialObjectRepository) FindByName(ctx context.Context, name string) (*domain.CelestialObject, error) {
	return m.FindByNameFn(ctx, name)
}

func (m *MockCelestialObjectRepository) List(ctx context.Context, q domain.ObjectListQuery) ([]*domain.CelestialObject, *domain.PaginationMeta, error) {
	return m.ListFn(ctx, q)
}
