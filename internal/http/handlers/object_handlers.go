package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Biholo/planete-xplorer/domain"
	"github.com/Biholo/planete-xplorer/internal/http/middleware"
)

// ObjectHandler exposes the celestial-object CRUD endpoints.
type ObjectHandler struct {
	objects    domain.CelestialObjectRepository
	categories domain.CategoryRepository
	systems    domain.SystemRepository
	log        *logrus.Logger
}

// NewObjectHandler creates the celestial-object handler.
func NewObjectHandler(
	objects domain.CelestialObjectRepository,
	categories domain.CategoryRepository,
	systems domain.SystemRepository,
	log *logrus.Logger,
) *ObjectHandler {
	return &ObjectHandler{objects: objects, categories: categories, systems: systems, log: log}
}

type objectRequest struct {
	Name            string   `json:"name" binding:"required"`
	Description     string   `json:"description"`
	Type            string   `json:"type" binding:"required"`
	Radius          *float64 `json:"radius" binding:"omitempty,gt=0"`
	Mass            *float64 `json:"mass" binding:"omitempty,gt=0"`
	DistanceFromSun *float64 `json:"distanceFromSun" binding:"omitempty,gt=0"`
	OrbitalPeriod   *float64 `json:"orbitalPeriod"`
	RotationPeriod  *float64 `json:"rotationPeriod"`
	Temperature     *float64 `json:"temperature"`
	DiscoveryDate   string   `json:"discoveryDate"`
	Discoverer      string   `json:"discoverer"`
	SystemID        string   `json:"systemId"`
	CategoryID      string   `json:"categoryId" binding:"required"`
}

// checkReferences verifies the category and optional system exist before an
// object write. Unknown references are ErrInvalidReference: a client error,
// not a conflict.
func (h *ObjectHandler) checkReferences(c *gin.Context, categoryID, systemID string) bool {
	err := func() error {
		if _, err := h.categories.FindByID(c.Request.Context(), categoryID); err != nil {
			if errors.Is(err, domain.ErrCategoryNotFound) {
				return fmt.Errorf("%w: unknown category", domain.ErrInvalidReference)
			}
			return err
		}
		if systemID != "" {
			if _, err := h.systems.FindByID(c.Request.Context(), systemID); err != nil {
				if errors.Is(err, domain.ErrSystemNotFound) {
					return fmt.Errorf("%w: unknown system", domain.ErrInvalidReference)
				}
				return err
			}
		}
		return nil
	}()
	if err == nil {
		return true
	}
	if errors.Is(err, domain.ErrInvalidReference) {
		respondError(c, http.StatusBadRequest, err.Error())
		return false
	}
	h.log.WithField("error", err.Error()).Error("reference check failed")
	respondError(c, http.StatusInternalServerError, "internal server error")
	return false
}

// List handles GET /api/celestial-objects. Browsing is open to anonymous
// requests; authenticated callers get the same view.
func (h *ObjectHandler) List(c *gin.Context) {
	query := domain.ObjectListQuery{
		ListQuery:  listQuery(c),
		CategoryID: c.Query("categoryId"),
		SystemID:   c.Query("systemId"),
		Type:       c.Query("type"),
	}
	objects, meta, err := h.objects.List(c.Request.Context(), query)
	if err != nil {
		h.log.WithField("error", err.Error()).Error("object list failed")
		respondError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	respondList(c, "celestial objects", objectsToDTO(objects), meta)
}

// Get handles GET /api/celestial-objects/:id.
func (h *ObjectHandler) Get(c *gin.Context) {
	object, err := h.objects.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrObjectNotFound) {
			respondError(c, http.StatusNotFound, "celestial object not found")
			return
		}
		h.log.WithField("error", err.Error()).Error("object lookup failed")
		respondError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	respond(c, http.StatusOK, "celestial object", objectToDTO(object))
}

// Create handles POST /api/celestial-objects. The creator is the
// authenticated identity, never a client-supplied field.
func (h *ObjectHandler) Create(c *gin.Context) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req objectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if !h.checkReferences(c, req.CategoryID, req.SystemID) {
		return
	}

	object := &domain.CelestialObject{
		Name:            req.Name,
		Description:     req.Description,
		Type:            req.Type,
		Radius:          req.Radius,
		Mass:            req.Mass,
		DistanceFromSun: req.DistanceFromSun,
		OrbitalPeriod:   req.OrbitalPeriod,
		RotationPeriod:  req.RotationPeriod,
		Temperature:     req.Temperature,
		DiscoveryDate:   req.DiscoveryDate,
		Discoverer:      req.Discoverer,
		SystemID:        req.SystemID,
		CategoryID:      req.CategoryID,
		CreatorID:       claims.UserID,
	}
	if err := h.objects.Create(c.Request.Context(), object); err != nil {
		if errors.Is(err, domain.ErrDuplicateName) {
			respondError(c, http.StatusConflict, "object name already exists")
			return
		}
		h.log.WithField("error", err.Error()).Error("object create failed")
		respondError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	respond(c, http.StatusCreated, "celestial object created", objectToDTO(object))
}

// Update handles PUT /api/celestial-objects/:id.
func (h *ObjectHandler) Update(c *gin.Context) {
	var req objectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if !h.checkReferences(c, req.CategoryID, req.SystemID) {
		return
	}

	object := &domain.CelestialObject{
		ID:              c.Param("id"),
		Name:            req.Name,
		Description:     req.Description,
		Type:            req.Type,
		Radius:          req.Radius,
		Mass:            req.Mass,
		DistanceFromSun: req.DistanceFromSun,
		OrbitalPeriod:   req.OrbitalPeriod,
		RotationPeriod:  req.RotationPeriod,
		Temperature:     req.Temperature,
		DiscoveryDate:   req.DiscoveryDate,
		Discoverer:      req.Discoverer,
		SystemID:        req.SystemID,
		CategoryID:      req.CategoryID,
	}
	if err := h.objects.Update(c.Request.Context(), object); err != nil {
		switch {
		case errors.Is(err, domain.ErrObjectNotFound):
			respondError(c, http.StatusNotFound, "celestial object not found")
		case errors.Is(err, domain.ErrDuplicateName):
			respondError(c, http.StatusConflict, "object name already exists")
		default:
			h.log.WithField("error", err.Error()).Error("object update failed")
			respondError(c, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	updated, err := h.objects.FindByID(c.Request.Context(), object.ID)
	if err != nil {
		h.log.WithField("error", err.Error()).Error("object reload failed")
		respondError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	respond(c, http.StatusOK, "celestial object updated", objectToDTO(updated))
}

// Delete handles DELETE /api/celestial-objects/:id.
func (h *ObjectHandler) Delete(c *gin.Context) {
	if err := h.objects.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrObjectNotFound) {
			respondError(c, http.StatusNotFound, "celestial object not found")
			return
		}
		h.log.WithField("error", err.Error()).Error("object delete failed")
		respondError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	respond(c, http.StatusOK, "celestial object deleted", nil)
}
