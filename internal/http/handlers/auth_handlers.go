package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Biholo/planete-xplorer/domain"
	"github.com/Biholo/planete-xplorer/internal/http/middleware"
)

// AuthHandler exposes the authentication endpoints.
type AuthHandler struct {
	auth domain.AuthService
	log  *logrus.Logger
}

// NewAuthHandler creates the auth handler.
func NewAuthHandler(auth domain.AuthService, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, log: log}
}

type registerRequest struct {
	Email            string `json:"email" binding:"required,email"`
	Password         string `json:"password" binding:"required,min=8"`
	ConfirmPassword  string `json:"confirmPassword" binding:"required,eqfield=Password"`
	FirstName        string `json:"firstName" binding:"required"`
	LastName         string `json:"lastName" binding:"required"`
	Phone            string `json:"phone"`
	Civility         string `json:"civility"`
	BirthDate        string `json:"birthDate"`
	AcceptNewsletter bool   `json:"acceptNewsletter"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type resetPasswordRequest struct {
	Token           string `json:"token" binding:"required"`
	Password        string `json:"password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=Password"`
}

// deviceInfo extracts best-effort device metadata from the request. The
// device name is the first token of the User-Agent header.
func deviceInfo(c *gin.Context) domain.DeviceInfo {
	name := c.Request.UserAgent()
	if i := strings.IndexByte(name, ' '); i > 0 {
		name = name[:i]
	}
	return domain.DeviceInfo{Name: name, IP: c.ClientIP()}
}

// Register handles POST /api/auth/register. A taken email reports 400, not
// 409, matching the public API contract.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	pair, err := h.auth.Register(c.Request.Context(), domain.RegisterInput{
		Email:            req.Email,
		Password:         req.Password,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Phone:            req.Phone,
		Civility:         req.Civility,
		BirthDate:        req.BirthDate,
		AcceptNewsletter: req.AcceptNewsletter,
	}, deviceInfo(c))
	if err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			respondError(c, http.StatusBadRequest, "email already in use")
			return
		}
		h.log.WithField("error", err.Error()).Error("registration failed")
		respondError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	respond(c, http.StatusCreated, "account created", gin.H{
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	pair, err := h.auth.Login(c.Request.Context(), req.Email, req.Password, deviceInfo(c))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "invalid credentials")
			return
		}
		h.log.WithField("error", err.Error()).Error("login failed")
		respondError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	respond(c, http.StatusOK, "login successful", gin.H{
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	})
}

// Me handles GET /api/auth/me. The identity comes from the verified claims;
// the profile row is re-read so the response reflects current data.
func (h *AuthHandler) Me(c *gin.Context) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	user, err := h.auth.GetProfile(c.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			respondError(c, http.StatusNotFound, "user not found")
			return
		}
		h.log.WithField("error", err.Error()).Error("profile lookup failed")
		respondError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	respond(c, http.StatusOK, "current user", userToDTO(user))
}

// Refresh handles POST /api/auth/refresh_token.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	accessToken, err := h.auth.RefreshAccessToken(c.Request.Context(), req.RefreshToken, deviceInfo(c))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTokenInvalid):
			respondError(c, http.StatusUnauthorized, "invalid token")
		case errors.Is(err, domain.ErrUserNotFound):
			respondError(c, http.StatusNotFound, "user not found")
		default:
			h.log.WithField("error", err.Error()).Error("token refresh failed")
			respondError(c, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	respond(c, http.StatusOK, "token refreshed", gin.H{"accessToken": accessToken})
}

// ForgotPassword handles POST /api/auth/forgot-password. The raw token is
// returned in the response; delivery is out of band.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.auth.RequestPasswordReset(c.Request.Context(), req.Email, c.ClientIP())
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "invalid credentials")
			return
		}
		h.log.WithField("error", err.Error()).Error("password reset request failed")
		respondError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	respond(c, http.StatusOK, "password reset requested", gin.H{"token": token})
}

// ResetPassword handles POST /api/auth/reset-password.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.auth.ResetPassword(c.Request.Context(), req.Token, req.Password); err != nil {
		if errors.Is(err, domain.ErrResetTokenInvalid) {
			respondError(c, http.StatusBadRequest, "invalid or expired token")
			return
		}
		h.log.WithField("error", err.Error()).Error("password reset failed")
		respondError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	respond(c, http.StatusOK, "password updated", nil)
}
