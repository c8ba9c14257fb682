package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Biholo/planete-xplorer/domain"
)

// CategoryHandler exposes the category CRUD endpoints.
type CategoryHandler struct {
	categories domain.CategoryRepository
	log        *logrus.Logger
}

// NewCategoryHandler creates the category handler.
func NewCategoryHandler(categories domain.CategoryRepository, log *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{categories: categories, log: log}
}

type categoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Icon        string `json:"icon"`
}

// List handles GET /api/categories.
func (h *CategoryHandler) List(c *gin.Context) {
	categories, meta, err := h.categories.List(c.Request.Context(), listQuery(c))
	if err != nil {
		h.log.WithField("error", err.Error()).Error("category list failed")
		respondError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	respondList(c, "categories", categoriesToDTO(categories), meta)
}

// Get handles GET /api/categories/:id.
func (h *CategoryHandler) Get(c *gin.Context) {
	category, err := h.categories.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			respondError(c, http.StatusNotFound, "category not found")
			return
		}
		h.log.WithField("error", err.Error()).Error("category lookup failed")
		respondError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	respond(c, http.StatusOK, "category", categoryToDTO(category))
}

// Create handles POST /api/categories.
func (h *CategoryHandler) Create(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	category := &domain.Category{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		Icon:        req.Icon,
	}
	if err := h.categories.Create(c.Request.Context(), category); err != nil {
		if errors.Is(err, domain.ErrDuplicateName) {
			respondError(c, http.StatusConflict, "category name already exists")
			return
		}
		h.log.WithField("error", err.Error()).Error("category create failed")
		respondError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	respond(c, http.StatusCreated, "category created", categoryToDTO(category))
}

// Update handles PUT /api/categories/:id.
func (h *CategoryHandler) Update(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	category := &domain.Category{
		ID:          c.Param("id"),
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		Icon:        req.Icon,
	}
	if err := h.categories.Update(c.Request.Context(), category); err != nil {
		switch {
		case errors.Is(err, domain.ErrCategoryNotFound):
			respondError(c, http.StatusNotFound, "category not found")
		case errors.Is(err, domain.ErrDuplicateName):
			respondError(c, http.StatusConflict, "category name already exists")
		default:
			h.log.WithField("error", err.Error()).Error("category update failed")
			respondError(c, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	updated, err := h.categories.FindByID(c.Request.Context(), category.ID)
	if err != nil {
		h.log.WithField("error", err.Error()).Error("category reload failed")
		respondError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	respond(c, http.StatusOK, "category updated", categoryToDTO(updated))
}

// Delete handles DELETE /api/categories/:id.
func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.categories.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			respondError(c, http.StatusNotFound, "category not found")
			return
		}
		h.log.WithField("error", err.Error()).Error("category delete failed")
		respondError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	respond(c, http.StatusOK, "category deleted", nil)
}
