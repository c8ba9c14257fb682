package domain

import "context"

// UserRepository defines user data access operations. Email lookups compare
// case-insensitively. Delete is a hard delete: nothing references user rows
// for audit.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	Update(ctx context.Context, user *User) error
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, q ListQuery) ([]*User, *PaginationMeta, error)
}

// TokenRepository defines persisted bearer-credential operations.
type TokenRepository interface {
	Create(ctx context.Context, token *Token) error
	FindByValue(ctx context.Context, value string) (*Token, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

// CategoryRepository defines catalog category access. Delete is a soft
// delete; reads never return tombstoned rows.
type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*Category, error)
	FindByName(ctx context.Context, name string) (*Category, error)
	List(ctx context.Context, q ListQuery) ([]*Category, *PaginationMeta, error)
}

// SystemRepository defines star-system access.
type SystemRepository interface {
	Create(ctx context.Context, system *StarSystem) error
	Update(ctx context.Context, system *StarSystem) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*StarSystem, error)
	FindByName(ctx context.Context, name string) (*StarSystem, error)
	List(ctx context.Context, q ListQuery) ([]*StarSystem, *PaginationMeta, error)
}

// CelestialObjectRepository defines celestial-object access.
type CelestialObjectRepository interface {
	Create(ctx context.Context, object *CelestialObject) error
	Update(ctx context.Context, object *CelestialObject) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*CelestialObject, error)
	FindByName(ctx context.Context, name string) (*CelestialObject, error)
	List(ctx context.Context, q ObjectListQuery) ([]*CelestialObject, *PaginationMeta, error)
}

// AuthService defines the authentication flows.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput, device DeviceInfo) (*TokenPair, error)
	Login(ctx context.Context, email, password string, device DeviceInfo) (*TokenPair, error)
	RefreshAccessToken(ctx context.Context, refreshToken string, device DeviceInfo) (string, error)
	RequestPasswordReset(ctx context.Context, email, requestIP string) (string, error)
	ResetPassword(ctx context.Context, token, newPassword string) error
	GetProfile(ctx context.Context, userID string) (*User, error)
}

// PasswordService defines password hashing operations. Verify returns false
// on a malformed hash, never an error.
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService signs and verifies bearer tokens. Verify collapses signature,
// malformation and expiry failures into ErrTokenInvalid so callers cannot
// leak the distinction to clients. GenerateResetToken returns an opaque
// single-use value that is validated against its stored record, not by
// signature.
type TokenService interface {
	GenerateAccessToken(user *User) (value string, expiresAt int64, err error)
	GenerateRefreshToken(user *User) (value string, expiresAt int64, err error)
	GenerateResetToken() (string, error)
	Verify(token string) (*TokenClaims, error)
}

// RateLimiter answers whether a keyed request is within its window budget.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
