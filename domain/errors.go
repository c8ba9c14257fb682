package domain

import "errors"

// Authentication errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Token errors
var (
	ErrTokenInvalid      = errors.New("invalid token")
	ErrTokenNotFound     = errors.New("token not found")
	ErrResetTokenInvalid = errors.New("invalid or expired token")
)

// Authorization errors
var (
	ErrUnauthorized     = errors.New("unauthorized access")
	ErrInsufficientRole = errors.New("insufficient role permissions")
)

// Catalog errors
var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrSystemNotFound   = errors.New("system not found")
	ErrObjectNotFound   = errors.New("celestial object not found")
	ErrDuplicateName    = errors.New("name already in use")
	ErrInvalidReference = errors.New("referenced entity does not exist")
)

// Throttling
var ErrRateLimited = errors.New("rate limit exceeded")
