package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Biholo/planete-xplorer/domain"
)

// UserRepositoryImpl implements domain.UserRepository using GORM.
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser is the database model for User. Emails are stored lower-cased so
// the unique index is effectively case-insensitive. Roles are stored as a
// comma-joined list.
type DBUser struct {
	ID               string `gorm:"primaryKey;size:36"`
	Email            string `gorm:"uniqueIndex;size:255"`
	PasswordHash     string `gorm:"column:password;size:255"`
	FirstName        string `gorm:"size:128"`
	LastName         string `gorm:"size:128"`
	Phone            string `gorm:"size:32"`
	Civility         string `gorm:"size:16"`
	BirthDate        string `gorm:"size:32"`
	Roles            string `gorm:"size:255"`
	AcceptNewsletter bool
	CreatedAt        time.Time `gorm:"index"`
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

// TableName returns the table name for GORM.
func (DBUser) TableName() string {
	return "users"
}

var userSortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"firstName": "first_name",
	"lastName":  "last_name",
	"email":     "email",
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository. A unique-index violation on the
// email column is reported as ErrUserAlreadyExists so concurrent
// registrations for the same address cannot both succeed.
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	dbUser := userToDB(user)
	if dbUser.ID == "" {
		dbUser.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrUserAlreadyExists
		}
		return err
	}
	user.ID = dbUser.ID
	user.CreatedAt = dbUser.CreatedAt
	user.UpdatedAt = dbUser.UpdatedAt
	return nil
}

// FindByEmail implements domain.UserRepository.
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("email = ?", strings.ToLower(email)).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return userFromDB(&dbUser), nil
}

// FindByID implements domain.UserRepository.
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return userFromDB(&dbUser), nil
}

// Update implements domain.UserRepository.
func (r *UserRepositoryImpl) Update(ctx context.Context, user *domain.User) error {
	updates := map[string]interface{}{
		"email":             strings.ToLower(user.Email),
		"first_name":        user.FirstName,
		"last_name":         user.LastName,
		"phone":             user.Phone,
		"civility":          user.Civility,
		"birth_date":        user.BirthDate,
		"accept_newsletter": user.AcceptNewsletter,
	}
	if len(user.Roles) > 0 {
		updates["roles"] = rolesToDB(user.Roles)
	}
	result := r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", user.ID).Updates(updates)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrUserAlreadyExists
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// UpdatePassword implements domain.UserRepository.
func (r *UserRepositoryImpl) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	result := r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", userID).Update("password", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// Delete implements domain.UserRepository. User rows are removed outright:
// no downstream data references them for audit.
func (r *UserRepositoryImpl) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Unscoped().Where("id = ?", id).Delete(&DBUser{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// List implements domain.UserRepository.
func (r *UserRepositoryImpl) List(ctx context.Context, q domain.ListQuery) ([]*domain.User, *domain.PaginationMeta, error) {
	query := r.db.WithContext(ctx).Model(&DBUser{})

	if q.Search != "" {
		pattern := likePattern(q.Search)
		query = query.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, nil, err
	}

	var dbUsers []DBUser
	err := query.
		Order(orderClause(q.Sort, userSortColumns)).
		Offset(q.Offset()).
		Limit(q.PerPage()).
		Find(&dbUsers).Error
	if err != nil {
		return nil, nil, err
	}

	users := make([]*domain.User, len(dbUsers))
	for i := range dbUsers {
		users[i] = userFromDB(&dbUsers[i])
	}
	return users, domain.NewPaginationMeta(q.Offset(), q.PerPage(), total), nil
}

func userToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:               user.ID,
		Email:            strings.ToLower(user.Email),
		PasswordHash:     user.PasswordHash,
		FirstName:        user.FirstName,
		LastName:         user.LastName,
		Phone:            user.Phone,
		Civility:         user.Civility,
		BirthDate:        user.BirthDate,
		Roles:            rolesToDB(user.Roles),
		AcceptNewsletter: user.AcceptNewsletter,
	}
}

func userFromDB(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:               dbUser.ID,
		Email:            dbUser.Email,
		PasswordHash:     dbUser.PasswordHash,
		FirstName:        dbUser.FirstName,
		LastName:         dbUser.LastName,
		Phone:            dbUser.Phone,
		Civility:         dbUser.Civility,
		BirthDate:        dbUser.BirthDate,
		Roles:            rolesFromDB(dbUser.Roles),
		AcceptNewsletter: dbUser.AcceptNewsletter,
		CreatedAt:        dbUser.CreatedAt,
		UpdatedAt:        dbUser.UpdatedAt,
	}
}

func rolesToDB(roles []domain.Role) string {
	if len(roles) == 0 {
		return string(domain.RoleUser)
	}
	parts := make([]string, len(roles))
	for i, r := range roles {
		parts[i] = string(r)
	}
	return strings.Join(parts, ",")
}

func rolesFromDB(s string) []domain.Role {
	if s == "" {
		return []domain.Role{domain.RoleUser}
	}
	parts := strings.Split(s, ",")
	roles := make([]domain.Role, len(parts))
	for i, p := range parts {
		roles[i] = domain.Role(strings.TrimSpace(p))
	}
	return roles
}
