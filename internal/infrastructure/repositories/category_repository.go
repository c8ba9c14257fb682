package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Biholo/planete-xplorer/domain"
)

// CategoryRepositoryImpl implements domain.CategoryRepository using GORM.
type CategoryRepositoryImpl struct {
	db *gorm.DB
}

// DBCategory is the database model for Category.
type DBCategory struct {
	ID          string         `gorm:"primaryKey;size:36"`
	Name        string         `gorm:"uniqueIndex;size:128"`
	Description string         `gorm:"size:1024"`
	Color       string         `gorm:"size:16"`
	Icon        string         `gorm:"size:64"`
	CreatedAt   time.Time      `gorm:"index"`
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName returns the table name for GORM.
func (DBCategory) TableName() string {
	return "categories"
}

var categorySortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"name":      "name",
}

// NewCategoryRepository creates a new category repository.
func NewCategoryRepository(db *gorm.DB) domain.CategoryRepository {
	return &CategoryRepositoryImpl{db: db}
}

// Create implements domain.CategoryRepository.
func (r *CategoryRepositoryImpl) Create(ctx context.Context, category *domain.Category) error {
	dbCategory := categoryToDB(category)
	if dbCategory.ID == "" {
		dbCategory.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(dbCategory).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateName
		}
		return err
	}
	category.ID = dbCategory.ID
	category.CreatedAt = dbCategory.CreatedAt
	category.UpdatedAt = dbCategory.UpdatedAt
	return nil
}

// Update implements domain.CategoryRepository.
func (r *CategoryRepositoryImpl) Update(ctx context.Context, category *domain.Category) error {
	updates := map[string]interface{}{
		"name":        category.Name,
		"description": category.Description,
		"color":       category.Color,
		"icon":        category.Icon,
	}
	result := r.db.WithContext(ctx).Model(&DBCategory{}).Where("id = ?", category.ID).Updates(updates)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateName
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

// Delete implements domain.CategoryRepository as a soft delete.
func (r *CategoryRepositoryImpl) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&DBCategory{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

// FindByID implements domain.CategoryRepository, including the summaries of
// the category's live celestial objects.
func (r *CategoryRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	var dbCategory DBCategory
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbCategory).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}

	category := categoryFromDB(&dbCategory)
	objects, err := r.objectSummaries(ctx, dbCategory.ID)
	if err != nil {
		return nil, err
	}
	category.Objects = objects
	return category, nil
}

// FindByName implements domain.CategoryRepository.
func (r *CategoryRepositoryImpl) FindByName(ctx context.Context, name string) (*domain.Category, error) {
	var dbCategory DBCategory
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&dbCategory).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return categoryFromDB(&dbCategory), nil
}

// List implements domain.CategoryRepository.
func (r *CategoryRepositoryImpl) List(ctx context.Context, q domain.ListQuery) ([]*domain.Category, *domain.PaginationMeta, error) {
	query := r.db.WithContext(ctx).Model(&DBCategory{})

	if q.Search != "" {
		pattern := likePattern(q.Search)
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, nil, err
	}

	var dbCategories []DBCategory
	err := query.
		Order(orderClause(q.Sort, categorySortColumns)).
		Offset(q.Offset()).
		Limit(q.PerPage()).
		Find(&dbCategories).Error
	if err != nil {
		return nil, nil, err
	}

	categories := make([]*domain.Category, len(dbCategories))
	for i := range dbCategories {
		categories[i] = categoryFromDB(&dbCategories[i])
		objects, err := r.objectSummaries(ctx, dbCategories[i].ID)
		if err != nil {
			return nil, nil, err
		}
		categories[i].Objects = objects
	}
	return categories, domain.NewPaginationMeta(q.Offset(), q.PerPage(), total), nil
}

func (r *CategoryRepositoryImpl) objectSummaries(ctx context.Context, categoryID string) ([]domain.ObjectSummary, error) {
	var rows []struct {
		ID   string
		Name string
	}
	err := r.db.WithContext(ctx).
		Model(&DBCelestialObject{}).
		Select("id", "name").
		Where("category_id = ?", categoryID).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.ObjectSummary, len(rows))
	for i, row := range rows {
		summaries[i] = domain.ObjectSummary{ID: row.ID, Name: row.Name}
	}
	return summaries, nil
}

func categoryToDB(category *domain.Category) *DBCategory {
	return &DBCategory{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		Color:       category.Color,
		Icon:        category.Icon,
	}
}

func categoryFromDB(dbCategory *DBCategory) *domain.Category {
	return &domain.Category{
		ID:          dbCategory.ID,
		Name:        dbCategory.Name,
		Description: dbCategory.Description,
		Color:       dbCategory.Color,
		Icon:        dbCategory.Icon,
		CreatedAt:   dbCategory.CreatedAt,
		UpdatedAt:   dbCategory.UpdatedAt,
	}
}
