package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Biholo/planete-xplorer/domain"
)

// AuthServiceImpl orchestrates registration, login, token refresh and
// password reset against the repositories and the token/password services.
type AuthServiceImpl struct {
	users     domain.UserRepository
	tokens    domain.TokenRepository
	passwords domain.PasswordService
	signer    domain.TokenService
	resetTTL  time.Duration
	log       *logrus.Logger
}

// NewAuthService creates the authentication service. resetTTL bounds the
// lifetime of password-reset tokens.
func NewAuthService(
	users domain.UserRepository,
	tokens domain.TokenRepository,
	passwords domain.PasswordService,
	signer domain.TokenService,
	resetTTL time.Duration,
	log *logrus.Logger,
) domain.AuthService {
	return &AuthServiceImpl{
		users:     users,
		tokens:    tokens,
		passwords: passwords,
		signer:    signer,
		resetTTL:  resetTTL,
		log:       log,
	}
}

// Register creates a new user with the default role and issues its first
// token pair. A duplicate email is reported as ErrUserAlreadyExists, whether
// caught by the pre-check or by the unique index on a concurrent insert.
func (s *AuthServiceImpl) Register(ctx context.Context, input domain.RegisterInput, device domain.DeviceInfo) (*domain.TokenPair, error) {
	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrUserAlreadyExists
	} else if err != domain.ErrUserNotFound {
		return nil, fmt.Errorf("register: %w", err)
	}

	hash, err := s.passwords.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	user := &domain.User{
		Email:            input.Email,
		PasswordHash:     hash,
		FirstName:        input.FirstName,
		LastName:         input.LastName,
		Phone:            input.Phone,
		Civility:         input.Civility,
		BirthDate:        input.BirthDate,
		Roles:            []domain.Role{domain.RoleUser},
		AcceptNewsletter: input.AcceptNewsletter,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	pair, err := s.issueTokenPair(ctx, user, device)
	if err != nil {
		// The user row stays; the client can log in once issuance recovers.
		s.log.WithFields(logrus.Fields{
			"user_id": user.ID,
			"error":   err.Error(),
		}).Error("token issuance failed after registration")
		return nil, fmt.Errorf("register: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"user_id": user.ID,
		"ip":      device.IP,
	}).Info("user registered")
	return pair, nil
}

// Login verifies the credentials and issues a fresh token pair. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string, device domain.DeviceInfo) (*domain.TokenPair, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}
	if !s.passwords.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	pair, err := s.issueTokenPair(ctx, user, device)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"user_id": user.ID,
		"ip":      device.IP,
	}).Info("user logged in")
	return pair, nil
}

// RefreshAccessToken verifies a refresh token and issues a new access token.
// The refresh token itself is left untouched, so concurrent refreshes with
// the same token all succeed until it expires.
func (s *AuthServiceImpl) RefreshAccessToken(ctx context.Context, refreshToken string, device domain.DeviceInfo) (string, error) {
	claims, err := s.signer.Verify(refreshToken)
	if err != nil {
		return "", domain.ErrTokenInvalid
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return "", domain.ErrUserNotFound
		}
		return "", fmt.Errorf("refresh: %w", err)
	}

	value, expiresAt, err := s.signer.GenerateAccessToken(user)
	if err != nil {
		return "", fmt.Errorf("refresh: %w", err)
	}
	if err := s.persistToken(ctx, user.ID, value, domain.TokenAccess, expiresAt, device); err != nil {
		return "", fmt.Errorf("refresh: %w", err)
	}
	return value, nil
}

// RequestPasswordReset creates a single-use reset token for the account. An
// unknown email is reported as ErrInvalidCredentials so the endpoint cannot
// be used to probe for accounts.
func (s *AuthServiceImpl) RequestPasswordReset(ctx context.Context, email, requestIP string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("password reset request: %w", err)
	}

	value, err := s.signer.GenerateResetToken()
	if err != nil {
		return "", fmt.Errorf("password reset request: %w", err)
	}

	token := &domain.Token{
		Value:     value,
		Type:      domain.TokenResetPassword,
		UserID:    user.ID,
		DeviceIP:  requestIP,
		ExpiresAt: time.Now().Add(s.resetTTL),
	}
	if err := s.tokens.Create(ctx, token); err != nil {
		return "", fmt.Errorf("password reset request: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"user_id": user.ID,
		"ip":      requestIP,
	}).Info("password reset requested")
	return value, nil
}

// ResetPassword consumes a reset token and installs the new password. The
// password is updated before the token row is deleted: a crash in between
// leaves a used token that can only re-set the same account, never a user
// with a half-applied password.
func (s *AuthServiceImpl) ResetPassword(ctx context.Context, token, newPassword string) error {
	record, err := s.tokens.FindByValue(ctx, token)
	if err != nil {
		if err == domain.ErrTokenNotFound {
			return domain.ErrResetTokenInvalid
		}
		return fmt.Errorf("password reset: %w", err)
	}
	if record.Type != domain.TokenResetPassword || record.Expired(time.Now()) {
		return domain.ErrResetTokenInvalid
	}

	hash, err := s.passwords.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("password reset: %w", err)
	}
	if err := s.users.UpdatePassword(ctx, record.UserID, hash); err != nil {
		return fmt.Errorf("password reset: %w", err)
	}
	if err := s.tokens.Delete(ctx, record.ID); err != nil {
		return fmt.Errorf("password reset: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"user_id": record.UserID,
	}).Info("password reset completed")
	return nil
}

// GetProfile loads the current profile row for the authenticated user.
func (s *AuthServiceImpl) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("profile: %w", err)
	}
	return user, nil
}

func (s *AuthServiceImpl) issueTokenPair(ctx context.Context, user *domain.User, device domain.DeviceInfo) (*domain.TokenPair, error) {
	accessValue, accessExp, err := s.signer.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}
	refreshValue, refreshExp, err := s.signer.GenerateRefreshToken(user)
	if err != nil {
		return nil, err
	}

	if err := s.persistToken(ctx, user.ID, accessValue, domain.TokenAccess, accessExp, device); err != nil {
		return nil, err
	}
	if err := s.persistToken(ctx, user.ID, refreshValue, domain.TokenRefresh, refreshExp, device); err != nil {
		return nil, err
	}

	return &domain.TokenPair{AccessToken: accessValue, RefreshToken: refreshValue}, nil
}

func (s *AuthServiceImpl) persistToken(ctx context.Context, userID, value string, tokenType domain.TokenType, expiresAt int64, device domain.DeviceInfo) error {
	return s.tokens.Create(ctx, &domain.Token{
		Value:      value,
		Type:       tokenType,
		UserID:     userID,
		DeviceName: device.Name,
		DeviceIP:   device.IP,
		ExpiresAt:  time.Unix(expiresAt, 0),
	})
}
