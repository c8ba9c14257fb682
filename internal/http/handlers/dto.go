package handlers

import (
	"time"

	"github.com/Biholo/planete-xplorer/domain"
)

// UserDTO is the public shape of a user. The password hash never leaves the
// service.
type UserDTO struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	FirstName        string    `json:"firstName"`
	LastName         string    `json:"lastName"`
	Phone            string    `json:"phone,omitempty"`
	Civility         string    `json:"civility,omitempty"`
	BirthDate        string    `json:"birthDate,omitempty"`
	Roles            []string  `json:"roles"`
	AcceptNewsletter bool      `json:"acceptNewsletter"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func userToDTO(user *domain.User) UserDTO {
	roles := make([]string, len(user.Roles))
	for i, r := range user.Roles {
		roles[i] = string(r)
	}
	return UserDTO{
		ID:               user.ID,
		Email:            user.Email,
		FirstName:        user.FirstName,
		LastName:         user.LastName,
		Phone:            user.Phone,
		Civility:         user.Civility,
		BirthDate:        user.BirthDate,
		Roles:            roles,
		AcceptNewsletter: user.AcceptNewsletter,
		CreatedAt:        user.CreatedAt,
		UpdatedAt:        user.UpdatedAt,
	}
}

func usersToDTO(users []*domain.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i, u := range users {
		dtos[i] = userToDTO(u)
	}
	return dtos
}

// ObjectSummaryDTO is the light object reference embedded in category reads.
type ObjectSummaryDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CategoryDTO is the public shape of a category.
type CategoryDTO struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	Description      string             `json:"description,omitempty"`
	Color            string             `json:"color,omitempty"`
	Icon             string             `json:"icon,omitempty"`
	CelestialObjects []ObjectSummaryDTO `json:"celestialObjects"`
	CreatedAt        time.Time          `json:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt"`
}

func categoryToDTO(category *domain.Category) CategoryDTO {
	objects := make([]ObjectSummaryDTO, len(category.Objects))
	for i, o := range category.Objects {
		objects[i] = ObjectSummaryDTO{ID: o.ID, Name: o.Name}
	}
	return CategoryDTO{
		ID:               category.ID,
		Name:             category.Name,
		Description:      category.Description,
		Color:            category.Color,
		Icon:             category.Icon,
		CelestialObjects: objects,
		CreatedAt:        category.CreatedAt,
		UpdatedAt:        category.UpdatedAt,
	}
}

func categoriesToDTO(categories []*domain.Category) []CategoryDTO {
	dtos := make([]CategoryDTO, len(categories))
	for i, c := range categories {
		dtos[i] = categoryToDTO(c)
	}
	return dtos
}

// SystemDTO is the public shape of a star system.
type SystemDTO struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	MainStar          string    `json:"mainStar,omitempty"`
	DistanceFromEarth *float64  `json:"distanceFromEarth,omitempty"`
	Description       string    `json:"description,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func systemToDTO(system *domain.StarSystem) SystemDTO {
	return SystemDTO{
		ID:                system.ID,
		Name:              system.Name,
		MainStar:          system.MainStar,
		DistanceFromEarth: system.DistanceFromEarth,
		Description:       system.Description,
		CreatedAt:         system.CreatedAt,
		UpdatedAt:         system.UpdatedAt,
	}
}

func systemsToDTO(systems []*domain.StarSystem) []SystemDTO {
	dtos := make([]SystemDTO, len(systems))
	for i, s := range systems {
		dtos[i] = systemToDTO(s)
	}
	return dtos
}

// ObjectDTO is the public shape of a celestial object.
type ObjectDTO struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	Type            string    `json:"type"`
	Radius          *float64  `json:"radius,omitempty"`
	Mass            *float64  `json:"mass,omitempty"`
	DistanceFromSun *float64  `json:"distanceFromSun,omitempty"`
	OrbitalPeriod   *float64  `json:"orbitalPeriod,omitempty"`
	RotationPeriod  *float64  `json:"rotationPeriod,omitempty"`
	Temperature     *float64  `json:"temperature,omitempty"`
	DiscoveryDate   string    `json:"discoveryDate,omitempty"`
	Discoverer      string    `json:"discoverer,omitempty"`
	SystemID        string    `json:"systemId,omitempty"`
	CategoryID      string    `json:"categoryId"`
	CreatorID       string    `json:"creatorId"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func objectToDTO(object *domain.CelestialObject) ObjectDTO {
	return ObjectDTO{
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
		CreatedAt:       object.CreatedAt,
		UpdatedAt:       object.UpdatedAt,
	}
}

func objectsToDTO(objects []*domain.CelestialObject) []ObjectDTO {
	dtos := make([]ObjectDTO, len(objects))
	for i, o := range objects {
		dtos[i] = objectToDTO(o)
	}
	return dtos
}
