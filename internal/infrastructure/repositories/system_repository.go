package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Biholo/planete-xplorer/domain"
)

// SystemRepositoryImpl implements domain.SystemRepository using GORM.
type SystemRepositoryImpl struct {
	db *gorm.DB
}

// DBStarSystem is the database model for StarSystem.
type DBStarSystem struct {
	ID                string         `gorm:"primaryKey;size:36"`
	Name              string         `gorm:"uniqueIndex;size:128"`
	MainStar          string         `gorm:"size:128"`
	DistanceFromEarth *float64       `gorm:"column:distance_from_earth"`
	Description       string         `gorm:"size:1024"`
	CreatedAt         time.Time      `gorm:"index"`
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}

// TableName returns the table name for GORM.
func (DBStarSystem) TableName() string {
	return "star_systems"
}

var systemSortColumns = map[string]string{
	"createdAt":         "created_at",
	"updatedAt":         "updated_at",
	"name":              "name",
	"distanceFromEarth": "distance_from_earth",
}

// NewSystemRepository creates a new star-system repository.
func NewSystemRepository(db *gorm.DB) domain.SystemRepository {
	return &SystemRepositoryImpl{db: db}
}

// Create implements domain.SystemRepository.
func (r *SystemRepositoryImpl) Create(ctx context.Context, system *domain.StarSystem) error {
	dbSystem := systemToDB(system)
	if dbSystem.ID == "" {
		dbSystem.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(dbSystem).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateName
		}
		return err
	}
	system.ID = dbSystem.ID
	system.CreatedAt = dbSystem.CreatedAt
	system.UpdatedAt = dbSystem.UpdatedAt
	return nil
}

// Update implements domain.SystemRepository.
func (r *SystemRepositoryImpl) Update(ctx context.Context, system *domain.StarSystem) error {
	updates := map[string]interface{}{
		"name":                system.Name,
		"main_star":           system.MainStar,
		"distance_from_earth": system.DistanceFromEarth,
		"description":         system.Description,
	}
	result := r.db.WithContext(ctx).Model(&DBStarSystem{}).Where("id = ?", system.ID).Updates(updates)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateName
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrSystemNotFound
	}
	return nil
}

// Delete implements domain.SystemRepository as a soft delete.
func (r *SystemRepositoryImpl) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&DBStarSystem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrSystemNotFound
	}
	return nil
}

// FindByID implements domain.SystemRepository.
func (r *SystemRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.StarSystem, error) {
	var dbSystem DBStarSystem
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbSystem).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSystemNotFound
		}
		return nil, err
	}
	return systemFromDB(&dbSystem), nil
}

// FindByName implements domain.SystemRepository.
func (r *SystemRepositoryImpl) FindByName(ctx context.Context, name string) (*domain.StarSystem, error) {
	var dbSystem DBStarSystem
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&dbSystem).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSystemNotFound
		}
		return nil, err
	}
	return systemFromDB(&dbSystem), nil
}

// List implements domain.SystemRepository.
func (r *SystemRepositoryImpl) List(ctx context.Context, q domain.ListQuery) ([]*domain.StarSystem, *domain.PaginationMeta, error) {
	query := r.db.WithContext(ctx).Model(&DBStarSystem{})

	if q.Search != "" {
		pattern := likePattern(q.Search)
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, nil, err
	}

	var dbSystems []DBStarSystem
	err := query.
		Order(orderClause(q.Sort, systemSortColumns)).
		Offset(q.Offset()).
		Limit(q.PerPage()).
		Find(&dbSystems).Error
	if err != nil {
		return nil, nil, err
	}

	systems := make([]*domain.StarSystem, len(dbSystems))
	for i := range dbSystems {
		systems[i] = systemFromDB(&dbSystems[i])
	}
	return systems, domain.NewPaginationMeta(q.Offset(), q.PerPage(), total), nil
}

func systemToDB(system *domain.StarSystem) *DBStarSystem {
	return &DBStarSystem{
		ID:                system.ID,
		Name:              system.Name,
		MainStar:          system.MainStar,
		DistanceFromEarth: system.DistanceFromEarth,
		Description:       system.Description,
	}
}

func systemFromDB(dbSystem *DBStarSystem) *domain.StarSystem {
	return &domain.StarSystem{
		ID:                dbSystem.ID,
		Name:              dbSystem.Name,
		MainStar:          dbSystem.MainStar,
		DistanceFromEarth: dbSystem.DistanceFromEarth,
		Description:       dbSystem.Description,
		CreatedAt:         dbSystem.CreatedAt,
		UpdatedAt:         dbSystem.UpdatedAt,
	}
}
