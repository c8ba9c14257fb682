package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Biholo/planete-xplorer/domain"
)

// SystemHandler exposes the star-system CRUD endpoints.
type SystemHandler struct {
	systems domain.SystemRepository
	log     *logrus.Logger
}

// NewSystemHandler creates the star-system handler.
func NewSystemHandler(systems domain.SystemRepository, log *logrus.Logger) *SystemHandler {
	return &SystemHandler{systems: systems, log: log}
}

type systemRequest struct {
	Name              string   `json:"name" binding:"required"`
	MainStar          string   `json:"mainStar"`
	DistanceFromEarth *float64 `json:"distanceFromEarth" binding:"omitempty,gt=0"`
	Description       string   `json:"description"`
}

// List handles GET /api/systems.
func (h *SystemHandler) List(c *gin.Context) {
	systems, meta, err := h.systems.List(c.Request.Context(), listQuery(c))
	if err != nil {
		h.log.WithField("error", err.Error()).Error("system list failed")
		respondError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	respondList(c, "systems", systemsToDTO(systems), meta)
}

// Get handles GET /api/systems/:id.
func (h *SystemHandler) Get(c *gin.Context) {
	system, err := h.systems.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrSystemNotFound) {
			respondError(c, http.StatusNotFound, "system not found")
			return
		}
		h.log.WithField("error", err.Error()).Error("system lookup failed")
		respondError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	respond(c, http.StatusOK, "system", systemToDTO(system))
}

// Create handles POST /api/systems.
func (h *SystemHandler) Create(c *gin.Context) {
	var req systemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	system := &domain.StarSystem{
		Name:              req.Name,
		MainStar:          req.MainStar,
		DistanceFromEarth: req.DistanceFromEarth,
		Description:       req.Description,
	}
	if err := h.systems.Create(c.Request.Context(), system); err != nil {
		if errors.Is(err, domain.ErrDuplicateName) {
			respondError(c, http.StatusConflict, "system name already exists")
			return
		}
		h.log.WithField("error", err.Error()).Error("system create failed")
		respondError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	respond(c, http.StatusCreated, "system created", systemToDTO(system))
}

// Update handles PUT /api/systems/:id.
func (h *SystemHandler) Update(c *gin.Context) {
	var req systemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	system := &domain.StarSystem{
		ID:                c.Param("id"),
		Name:              req.Name,
		MainStar:          req.MainStar,
		DistanceFromEarth: req.DistanceFromEarth,
		Description:       req.Description,
	}
	if err := h.systems.Update(c.Request.Context(), system); err != nil {
		switch {
		case errors.Is(err, domain.ErrSystemNotFound):
			respondError(c, http.StatusNotFound, "system not found")
		case errors.Is(err, domain.ErrDuplicateName):
			respondError(c, http.StatusConflict, "system name already exists")
		default:
			h.log.WithField("error", err.Error()).Error("system update failed")
			respondError(c, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	updated, err := h.systems.FindByID(c.Request.Context(), system.ID)
	if err != nil {
		h.log.WithField("error", err.Error()).Error("system reload failed")
		respondError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	respond(c, http.StatusOK, "system updated", systemToDTO(updated))
}

// Delete handles DELETE /api/systems/:id.
func (h *SystemHandler) Delete(c *gin.Context) {
	if err := h.systems.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrSystemNotFound) {
			respondError(c, http.StatusNotFound, "system not found")
			return
		}
		h.log.WithField("error", err.Error()).Error("system delete failed")
		respondError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	respond(c, http.StatusOK, "system deleted", nil)
}
