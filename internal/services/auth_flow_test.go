package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Biholo/planete-xplorer/domain"
	"github.com/Biholo/planete-xplorer/internal/infrastructure/auth"
	"github.com/Biholo/planete-xplorer/internal/infrastructure/repositories"
)

// newAuthService wires the service to real repositories, bcrypt and JWT
// signing, backed by an in-memory database.
func newAuthService(t *testing.T) (domain.AuthService, domain.TokenService) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&repositories.DBUser{}, &repositories.DBToken{}))

	signer := auth.NewJWTService("flow-test-secret", "planete-xplorer", 24*time.Hour, 7*24*time.Hour)
	service := NewAuthService(
		repositories.NewUserRepository(db),
		repositories.NewTokenRepository(db),
		auth.NewPasswordService(),
		signer,
		time.Hour,
		silentLogger(),
	)
	return service, signer
}

func TestAuthFlow_RegisterToPasswordReset(t *testing.T) {
	service, signer := newAuthService(t)
	ctx := context.Background()
	device := domain.DeviceInfo{Name: "Mozilla/5.0", IP: "10.0.0.1"}

	pair, err := service.Register(ctx, domain.RegisterInput{
		Email:     "flow@example.com",
		Password:  "original-pw",
		FirstName: "Flow",
		LastName:  "Test",
	}, device)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	// The issued access token resolves the current user the way the bearer
	// gate does: verify, then read the profile by the claims id.
	claims, err := signer.Verify(pair.AccessToken)
	require.NoError(t, err)
	profile, err := service.GetProfile(ctx, claims.UserID)
	require.NoError(t, err)
	assert.Equal(t, "flow@example.com", profile.Email)
	assert.Equal(t, []domain.Role{domain.RoleUser}, profile.Roles)

	_, err = service.Login(ctx, "flow@example.com", "original-pw", device)
	require.NoError(t, err)

	// A fresh access token comes off the refresh token without touching it.
	accessToken, err := service.RefreshAccessToken(ctx, pair.RefreshToken, device)
	require.NoError(t, err)
	_, err = signer.Verify(accessToken)
	require.NoError(t, err)

	resetToken, err := service.RequestPasswordReset(ctx, "flow@example.com", "10.0.0.2")
	require.NoError(t, err)
	require.NotEmpty(t, resetToken)

	require.NoError(t, service.ResetPassword(ctx, resetToken, "replacement-pw"))

	// The old password is dead, the new one works.
	_, err = service.Login(ctx, "flow@example.com", "original-pw", device)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, err = service.Login(ctx, "flow@example.com", "replacement-pw", device)
	require.NoError(t, err)
}

func TestAuthFlow_ResetTokenSingleUse(t *testing.T) {
	service, _ := newAuthService(t)
	ctx := context.Background()
	device := domain.DeviceInfo{Name: "Mozilla/5.0", IP: "10.0.0.1"}

	_, err := service.Register(ctx, domain.RegisterInput{
		Email:     "once@example.com",
		Password:  "original-pw",
		FirstName: "Once",
		LastName:  "Only",
	}, device)
	require.NoError(t, err)

	resetToken, err := service.RequestPasswordReset(ctx, "once@example.com", "10.0.0.1")
	require.NoError(t, err)

	require.NoError(t, service.ResetPassword(ctx, resetToken, "first-new-pw"))

	// The consumed token is gone from the store, so replaying it fails and
	// the password from the first use stays in force.
	err = service.ResetPassword(ctx, resetToken, "second-new-pw")
	assert.ErrorIs(t, err, domain.ErrResetTokenInvalid)

	_, err = service.Login(ctx, "once@example.com", "first-new-pw", device)
	require.NoError(t, err)
	_, err = service.Login(ctx, "once@example.com", "second-new-pw", device)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
