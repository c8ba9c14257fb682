package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Biholo/planete-xplorer/domain"
)

// UserHandler exposes the admin user-management endpoints.
type UserHandler struct {
	users domain.UserRepository
	log   *logrus.Logger
}

// NewUserHandler creates the user handler.
func NewUserHandler(users domain.UserRepository, log *logrus.Logger) *UserHandler {
	return &UserHandler{users: users, log: log}
}

type updateUserRequest struct {
	Email            string   `json:"email" binding:"required,email"`
	FirstName        string   `json:"firstName" binding:"required"`
	LastName         string   `json:"lastName" binding:"required"`
	Phone            string   `json:"phone"`
	Civility         string   `json:"civility"`
	BirthDate        string   `json:"birthDate"`
	Roles            []string `json:"roles"`
	AcceptNewsletter bool     `json:"acceptNewsletter"`
}

// List handles GET /api/users.
func (h *UserHandler) List(c *gin.Context) {
	users, meta, err := h.users.List(c.Request.Context(), listQuery(c))
	if err != nil {
		h.log.WithField("error", err.Error()).Error("user list failed")
		respondError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	respondList(c, "users", usersToDTO(users), meta)
}

// Get handles GET /api/users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.users.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			respondError(c, http.StatusNotFound, "user not found")
			return
		}
		h.log.WithField("error", err.Error()).Error("user lookup failed")
		respondError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	respond(c, http.StatusOK, "user", userToDTO(user))
}

// Update handles PUT /api/users/:id. Roles outside the closed set are
// rejected before anything is written.
func (h *UserHandler) Update(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	roles := make([]domain.Role, len(req.Roles))
	for i, r := range req.Roles {
		role := domain.Role(r)
		if !domain.ValidRole(role) {
			respondError(c, http.StatusBadRequest, "unknown role")
			return
		}
		roles[i] = role
	}

	user := &domain.User{
		ID:               c.Param("id"),
		Email:            req.Email,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Phone:            req.Phone,
		Civility:         req.Civility,
		BirthDate:        req.BirthDate,
		Roles:            roles,
		AcceptNewsletter: req.AcceptNewsletter,
	}
	if err := h.users.Update(c.Request.Context(), user); err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			respondError(c, http.StatusNotFound, "user not found")
		case errors.Is(err, domain.ErrUserAlreadyExists):
			respondError(c, http.StatusConflict, "email already in use")
		default:
			h.log.WithField("error", err.Error()).Error("user update failed")
			respondError(c, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	updated, err := h.users.FindByID(c.Request.Context(), user.ID)
	if err != nil {
		h.log.WithField("error", err.Error()).Error("user reload failed")
		respondError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	respond(c, http.StatusOK, "user updated", userToDTO(updated))
}

// Delete handles DELETE /api/users/:id.
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.users.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			respondError(c, http.StatusNotFound, "user not found")
			return
		}
		h.log.WithField("error", err.Error()).Error("user delete failed")
		respondError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	respond(c, http.StatusOK, "user deleted", nil)
}
