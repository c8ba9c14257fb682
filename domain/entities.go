package domain

import "time"

// TokenType discriminates the persisted credential records.
type TokenType string

const (
	TokenAccess        TokenType = "access_token"
	TokenRefresh       TokenType = "refresh_token"
	TokenResetPassword TokenType = "reset_password"
)

// User represents an identity record in the catalog.
type User struct {
	ID               string
	Email            string
	PasswordHash     string
	FirstName        string
	LastName         string
	Phone            string
	Civility         string
	BirthDate        string
	Roles            []Role
	AcceptNewsletter bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Token is a persisted bearer-credential record. It references its owning
// user; it never owns it.
type Token struct {
	ID         string
	Value      string
	Type       TokenType
	UserID     string
	DeviceName string
	DeviceIP   string
	ExpiresAt  time.Time
	CreatedAt  time.Time
}

// Expired reports whether the record's absolute expiry has passed.
func (t *Token) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

// DeviceInfo carries best-effort request metadata captured at issuance.
type DeviceInfo struct {
	Name string
	IP   string
}

// TokenPair is the result of a successful registration or login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenClaims represents the verified content of a signed token.
type TokenClaims struct {
	UserID    string
	Email     string
	Roles     []Role
	IssuedAt  int64
	ExpiresAt int64
}

// RegisterInput carries the profile fields accepted at registration.
type RegisterInput struct {
	Email            string
	Password         string
	FirstName        string
	LastName         string
	Phone            string
	Civility         string
	BirthDate        string
	AcceptNewsletter bool
}

// Category groups celestial objects.
type Category struct {
	ID          string
	Name        string
	Description string
	Color       string
	Icon        string
	Objects     []ObjectSummary
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ObjectSummary is the light reference embedded in category reads.
type ObjectSummary struct {
	ID   string
	Name string
}

// StarSystem is a stellar system in the catalog.
type StarSystem struct {
	ID                string
	Name              string
	MainStar          string
	DistanceFromEarth *float64
	Description       string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// CelestialObject is a catalogued body. CategoryID is required, SystemID is
// optional, CreatorID records the authenticated user who entered it.
type CelestialObject struct {
	ID              string
	Name            string
	Description     string
	Type            string
	Radius          *float64
	Mass            *float64
	DistanceFromSun *float64
	OrbitalPeriod   *float64
	RotationPeriod  *float64
	Temperature     *float64
	DiscoveryDate   string
	Discoverer      string
	SystemID        string
	CategoryID      string
	CreatorID       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ListQuery carries pagination, search and sort parameters for list reads.
type ListQuery struct {
	Page   int
	Limit  int
	Search string
	Sort   string
}

// Offset translates page/limit into a row offset, normalizing out-of-range
// values to the first page.
func (q ListQuery) Offset() int {
	page := q.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * q.PerPage()
}

// PerPage returns the effective page size.
func (q ListQuery) PerPage() int {
	if q.Limit < 1 {
		return 10
	}
	return q.Limit
}

// ObjectListQuery adds the celestial-object specific filters.
type ObjectListQuery struct {
	ListQuery
	CategoryID string
	SystemID   string
	Type       string
}

// PaginationMeta describes the page window of a list response. NextPage and
// PreviousPage are 0 at the edges.
type PaginationMeta struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	NextPage     int   `json:"nextPage"`
	PreviousPage int   `json:"previousPage"`
	PerPage      int   `json:"perPage"`
}

// NewPaginationMeta computes the page window for a list result.
func NewPaginationMeta(offset, perPage int, total int64) *PaginationMeta {
	if perPage < 1 {
		perPage = 10
	}
	currentPage := offset/perPage + 1
	totalPages := int((total + int64(perPage) - 1) / int64(perPage))
	meta := &PaginationMeta{
		CurrentPage: currentPage,
		TotalPages:  totalPages,
		TotalItems:  total,
		PerPage:     perPage,
	}
	if currentPage < totalPages {
		meta.NextPage = currentPage + 1
	}
	if currentPage > 1 {
		meta.PreviousPage = currentPage - 1
	}
	return meta
}
