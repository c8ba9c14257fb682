package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Biholo/planete-xplorer/domain"
)

// CelestialObjectRepositoryImpl implements domain.CelestialObjectRepository
// using GORM.
type CelestialObjectRepositoryImpl struct {
	db *gorm.DB
}

// DBCelestialObject is the database model for CelestialObject.
type DBCelestialObject struct {
	ID              string         `gorm:"primaryKey;size:36"`
	Name            string         `gorm:"uniqueIndex;size:128"`
	Description     string         `gorm:"size:2048"`
	Type            string         `gorm:"index;size:64"`
	Radius          *float64
	Mass            *float64
	DistanceFromSun *float64       `gorm:"column:distance_from_sun"`
	OrbitalPeriod   *float64       `gorm:"column:orbital_period"`
	RotationPeriod  *float64       `gorm:"column:rotation_period"`
	Temperature     *float64
	DiscoveryDate   string         `gorm:"size:32"`
	Discoverer      string         `gorm:"size:128"`
	SystemID        string         `gorm:"index;size:36"`
	CategoryID      string         `gorm:"index;size:36"`
	CreatorID       string         `gorm:"index;size:36"`
	CreatedAt       time.Time      `gorm:"index"`
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

// TableName returns the table name for GORM.
func (DBCelestialObject) TableName() string {
	return "celestial_objects"
}

var objectSortColumns = map[string]string{
	"createdAt":     "created_at",
	"updatedAt":     "updated_at",
	"name":          "name",
	"type":          "type",
	"discoveryDate": "discovery_date",
}

// NewCelestialObjectRepository creates a new celestial-object repository.
func NewCelestialObjectRepository(db *gorm.DB) domain.CelestialObjectRepository {
	return &CelestialObjectRepositoryImpl{db: db}
}

// Create implements domain.CelestialObjectRepository.
func (r *CelestialObjectRepositoryImpl) Create(ctx context.Context, object *domain.CelestialObject) error {
	dbObject := objectToDB(object)
	if dbObject.ID == "" {
		dbObject.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(dbObject).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateName
		}
		return err
	}
	object.ID = dbObject.ID
	object.CreatedAt = dbObject.CreatedAt
	object.UpdatedAt = dbObject.UpdatedAt
	return nil
}

// Update implements domain.CelestialObjectRepository.
func (r *CelestialObjectRepositoryImpl) Update(ctx context.Context, object *domain.CelestialObject) error {
	updates := map[string]interface{}{
		"name":              object.Name,
		"description":       object.Description,
		"type":              object.Type,
		"radius":            object.Radius,
		"mass":              object.Mass,
		"distance_from_sun": object.DistanceFromSun,
		"orbital_period":    object.OrbitalPeriod,
		"rotation_period":   object.RotationPeriod,
		"temperature":       object.Temperature,
		"discovery_date":    object.DiscoveryDate,
		"discoverer":        object.Discoverer,
		"system_id":         object.SystemID,
		"category_id":       object.CategoryID,
	}
	result := r.db.WithContext(ctx).Model(&DBCelestialObject{}).Where("id = ?", object.ID).Updates(updates)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateName
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrObjectNotFound
	}
	return nil
}

// Delete implements domain.CelestialObjectRepository as a soft delete.
func (r *CelestialObjectRepositoryImpl) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&DBCelestialObject{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrObjectNotFound
	}
	return nil
}

// FindByID implements domain.CelestialObjectRepository.
func (r *CelestialObjectRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.CelestialObject, error) {
	var dbObject DBCelestialObject
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbObject).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrObjectNotFound
		}
		return nil, err
	}
	return objectFromDB(&dbObject), nil
}

// FindByName implements domain.CelestialObjectRepository.
func (r *CelestialObjectRepositoryImpl) FindByName(ctx context.Context, name string) (*domain.CelestialObject, error) {
	var dbObject DBCelestialObject
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&dbObject).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrObjectNotFound
		}
		return nil, err
	}
	return objectFromDB(&dbObject), nil
}

// List implements domain.CelestialObjectRepository with the category,
// system and type filters.
func (r *CelestialObjectRepositoryImpl) List(ctx context.Context, q domain.ObjectListQuery) ([]*domain.CelestialObject, *domain.PaginationMeta, error) {
	query := r.db.WithContext(ctx).Model(&DBCelestialObject{})

	if q.Search != "" {
		pattern := likePattern(q.Search)
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	if q.CategoryID != "" {
		query = query.Where("category_id = ?", q.CategoryID)
	}
	if q.SystemID != "" {
		query = query.Where("system_id = ?", q.SystemID)
	}
	if q.Type != "" {
		query = query.Where("type = ?", q.Type)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, nil, err
	}

	var dbObjects []DBCelestialObject
	err := query.
		Order(orderClause(q.Sort, objectSortColumns)).
		Offset(q.Offset()).
		Limit(q.PerPage()).
		Find(&dbObjects).Error
	if err != nil {
		return nil, nil, err
	}

	objects := make([]*domain.CelestialObject, len(dbObjects))
	for i := range dbObjects {
		objects[i] = objectFromDB(&dbObjects[i])
	}
	return objects, domain.NewPaginationMeta(q.Offset(), q.PerPage(), total), nil
}

func objectToDB(object *domain.CelestialObject) *DBCelestialObject {
	return &DBCelestialObject{
		ID:              object.ID,
		Name:            object.Name,
		Description:     object.Description,
		Type:            object.Type,
		Radius:          object.Radius,
		Mass:            object.Mass,
		DistanceFromSun: object.DistanceFromSun,
		OrbitalPeriod:   object.OrbitalPeriod,
		RotationPeriod:  object.RotationPeriod,
		Temperature:     object.Temperature,
		DiscoveryDate:   object.DiscoveryDate,
		Discoverer:      object.Discoverer,
		SystemID:        object.SystemID,
		CategoryID:      object.CategoryID,
		CreatorID:       object.CreatorID,
	}
}

func objectFromDB(dbObject *DBCelestialObject) *domain.CelestialObject {
	return &domain.CelestialObject{
		ID:              dbObject.ID,
		Name:            dbObject.Name,
		Description:     dbObject.Description,
		Type:            dbObject.Type,
		Radius:          dbObject.Radius,
		Mass:            dbObject.Mass,
		DistanceFromSun: dbObject.DistanceFromSun,
		OrbitalPeriod:   dbObject.OrbitalPeriod,
		RotationPeriod:  dbObject.RotationPeriod,
		Temperature:     dbObject.Temperature,
		DiscoveryDate:   dbObject.DiscoveryDate,
		Discoverer:      dbObject.Discoverer,
		SystemID:        dbObject.SystemID,
		CategoryID:      dbObject.CategoryID,
		CreatorID:       dbObject.CreatorID,
		CreatedAt:       dbObject.CreatedAt,
		UpdatedAt:       dbObject.UpdatedAt,
	}
}
