package services

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Biholo/planete-xplorer/domain"
	"github.com/Biholo/planete-xplorer/internal/mocks"
)

func silentLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type authFixture struct {
	users     *mocks.MockUserRepository
	tokens    *mocks.MockTokenRepository
	passwords *mocks.MockPasswordService
	signer    *mocks.MockTokenService
	service   domain.AuthService

	createdTokens []*domain.Token
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	f := &authFixture{
		users:     &mocks.MockUserRepository{},
		tokens:    &mocks.MockTokenRepository{},
		passwords: &mocks.MockPasswordService{},
		signer:    &mocks.MockTokenService{},
	}
	f.tokens.CreateFn = func(_ context.Context, token *domain.Token) error {
		f.createdTokens = append(f.createdTokens, token)
		return nil
	}
	f.passwords.HashFn = func(password string) (string, error) {
		return "hashed:" + password, nil
	}
	f.passwords.VerifyFn = func(hashed, password string) bool {
		return hashed == "hashed:"+password
	}
	f.signer.GenerateAccessTokenFn = func(user *domain.User) (string, int64, error) {
		return "access-" + user.ID, time.Now().Add(24 * time.Hour).Unix(), nil
	}
	f.signer.GenerateRefreshTokenFn = func(user *domain.User) (string, int64, error) {
		return "refresh-" + user.ID, time.Now().Add(7 * 24 * time.Hour).Unix(), nil
	}
	f.service = NewAuthService(f.users, f.tokens, f.passwords, f.signer, time.Hour, silentLogger())
	return f
}

func TestRegister_Success(t *testing.T) {
	f := newAuthFixture(t)
	f.users.FindByEmailFn = func(_ context.Context, _ string) (*domain.User, error) {
		return nil, domain.ErrUserNotFound
	}
	var created *domain.User
	f.users.CreateFn = func(_ context.Context, user *domain.User) error {
		user.ID = "u1"
		created = user
		return nil
	}

	pair, err := f.service.Register(context.Background(), domain.RegisterInput{
		Email:     "new@example.com",
		Password:  "s3cretpass",
		FirstName: "New",
		LastName:  "User",
	}, domain.DeviceInfo{Name: "Mozilla/5.0", IP: "10.0.0.9"})

	require.NoError(t, err)
	assert.Equal(t, "access-u1", pair.AccessToken)
	assert.Equal(t, "refresh-u1", pair.RefreshToken)

	require.NotNil(t, created)
	assert.Equal(t, "hashed:s3cretpass", created.PasswordHash)
	assert.Equal(t, []domain.Role{domain.RoleUser}, created.Roles)

	require.Len(t, f.createdTokens, 2)
	assert.Equal(t, domain.TokenAccess, f.createdTokens[0].Type)
	assert.Equal(t, domain.TokenRefresh, f.createdTokens[1].Type)
	assert.Equal(t, "Mozilla/5.0", f.createdTokens[0].DeviceName)
	assert.Equal(t, "10.0.0.9", f.createdTokens[1].DeviceIP)
}

func TestRegister_EmailTaken(t *testing.T) {
	f := newAuthFixture(t)
	f.users.FindByEmailFn = func(_ context.Context, _ string) (*domain.User, error) {
		return &domain.User{ID: "u1"}, nil
	}

	_, err := f.service.Register(context.Background(), domain.RegisterInput{
		Email:    "taken@example.com",
		Password: "whatever1",
	}, domain.DeviceInfo{})
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}

func TestRegister_ConcurrentInsertLosesRace(t *testing.T) {
	f := newAuthFixture(t)
	f.users.FindByEmailFn = func(_ context.Context, _ string) (*domain.User, error) {
		return nil, domain.ErrUserNotFound
	}
	f.users.CreateFn = func(_ context.Context, _ *domain.User) error {
		return domain.ErrUserAlreadyExists
	}

	_, err := f.service.Register(context.Background(), domain.RegisterInput{
		Email:    "race@example.com",
		Password: "whatever1",
	}, domain.DeviceInfo{})
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}

func TestRegister_TokenIssuanceFailureKeepsUser(t *testing.T) {
	f := newAuthFixture(t)
	f.users.FindByEmailFn = func(_ context.Context, _ string) (*domain.User, error) {
		return nil, domain.ErrUserNotFound
	}
	var deleted bool
	f.users.CreateFn = func(_ context.Context, user *domain.User) error {
		user.ID = "u1"
		return nil
	}
	f.users.DeleteFn = func(_ context.Context, _ string) error {
		deleted = true
		return nil
	}
	f.signer.GenerateAccessTokenFn = func(_ *domain.User) (string, int64, error) {
		return "", 0, errors.New("signing backend down")
	}

	_, err := f.service.Register(context.Background(), domain.RegisterInput{
		Email:    "partial@example.com",
		Password: "whatever1",
	}, domain.DeviceInfo{})
	require.Error(t, err)
	assert.False(t, deleted, "user row must survive issuance failure")
}

func TestLogin_Success(t *testing.T) {
	f := newAuthFixture(t)
	f.users.FindByEmailFn = func(_ context.Context, email string) (*domain.User, error) {
		return &domain.User{ID: "u1", Email: email, PasswordHash: "hashed:correct-pw"}, nil
	}

	pair, err := f.service.Login(context.Background(), "user@example.com", "correct-pw", domain.DeviceInfo{IP: "10.0.0.1"})
	require.NoError(t, err)
	assert.Equal(t, "access-u1", pair.AccessToken)
	assert.Equal(t, "refresh-u1", pair.RefreshToken)
	assert.Len(t, f.createdTokens, 2)
}

func TestLogin_GenericFailure(t *testing.T) {
	tests := []struct {
		name   string
		findFn func(ctx context.Context, email string) (*domain.User, error)
	}{
		{
			"unknown email",
			func(_ context.Context, _ string) (*domain.User, error) {
				return nil, domain.ErrUserNotFound
			},
		},
		{
			"wrong password",
			func(_ context.Context, email string) (*domain.User, error) {
				return &domain.User{ID: "u1", Email: email, PasswordHash: "hashed:other-pw"}, nil
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture(t)
			f.users.FindByEmailFn = tt.findFn

			_, err := f.service.Login(context.Background(), "user@example.com", "correct-pw", domain.DeviceInfo{})
			// Both paths collapse to the same error so account existence
			// cannot be probed.
			assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		})
	}
}

func TestRefreshAccessToken_Success(t *testing.T) {
	f := newAuthFixture(t)
	f.signer.VerifyFn = func(token string) (*domain.TokenClaims, error) {
		return &domain.TokenClaims{UserID: "u1", Email: "user@example.com"}, nil
	}
	f.users.FindByIDFn = func(_ context.Context, id string) (*domain.User, error) {
		return &domain.User{ID: id, Email: "user@example.com", Roles: []domain.Role{domain.RoleUser}}, nil
	}

	value, err := f.service.RefreshAccessToken(context.Background(), "refresh-u1", domain.DeviceInfo{})
	require.NoError(t, err)
	assert.Equal(t, "access-u1", value)

	// Only the new access token is written; the refresh token is untouched.
	require.Len(t, f.createdTokens, 1)
	assert.Equal(t, domain.TokenAccess, f.createdTokens[0].Type)
}

func TestRefreshAccessToken_InvalidToken(t *testing.T) {
	f := newAuthFixture(t)
	f.signer.VerifyFn = func(_ string) (*domain.TokenClaims, error) {
		return nil, domain.ErrTokenInvalid
	}

	_, err := f.service.RefreshAccessToken(context.Background(), "garbage", domain.DeviceInfo{})
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestRefreshAccessToken_UserGone(t *testing.T) {
	f := newAuthFixture(t)
	f.signer.VerifyFn = func(_ string) (*domain.TokenClaims, error) {
		return &domain.TokenClaims{UserID: "deleted"}, nil
	}
	f.users.FindByIDFn = func(_ context.Context, _ string) (*domain.User, error) {
		return nil, domain.ErrUserNotFound
	}

	_, err := f.service.RefreshAccessToken(context.Background(), "refresh", domain.DeviceInfo{})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestRequestPasswordReset_Success(t *testing.T) {
	f := newAuthFixture(t)
	f.users.FindByEmailFn = func(_ context.Context, _ string) (*domain.User, error) {
		return &domain.User{ID: "u1"}, nil
	}
	f.signer.GenerateResetTokenFn = func() (string, error) {
		return "aabbccdd", nil
	}

	value, err := f.service.RequestPasswordReset(context.Background(), "user@example.com", "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "aabbccdd", value)

	require.Len(t, f.createdTokens, 1)
	token := f.createdTokens[0]
	assert.Equal(t, domain.TokenResetPassword, token.Type)
	assert.Equal(t, "u1", token.UserID)
	assert.Equal(t, "10.0.0.1", token.DeviceIP)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt, 5*time.Second)
}

func TestRequestPasswordReset_UnknownEmail(t *testing.T) {
	f := newAuthFixture(t)
	f.users.FindByEmailFn = func(_ context.Context, _ string) (*domain.User, error) {
		return nil, domain.ErrUserNotFound
	}

	_, err := f.service.RequestPasswordReset(context.Background(), "ghost@example.com", "10.0.0.1")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestResetPassword_Success(t *testing.T) {
	f := newAuthFixture(t)
	var sequence []string
	f.tokens.FindByValueFn = func(_ context.Context, _ string) (*domain.Token, error) {
		return &domain.Token{
			ID:        "t1",
			Type:      domain.TokenResetPassword,
			UserID:    "u1",
			ExpiresAt: time.Now().Add(30 * time.Minute),
		}, nil
	}
	f.users.UpdatePasswordFn = func(_ context.Context, userID, hash string) error {
		sequence = append(sequence, "update")
		assert.Equal(t, "u1", userID)
		assert.Equal(t, "hashed:new-password", hash)
		return nil
	}
	f.tokens.DeleteFn = func(_ context.Context, id string) error {
		sequence = append(sequence, "delete")
		assert.Equal(t, "t1", id)
		return nil
	}

	require.NoError(t, f.service.ResetPassword(context.Background(), "reset-value", "new-password"))
	assert.Equal(t, []string{"update", "delete"}, sequence)
}

func TestResetPassword_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		findFn func(ctx context.Context, value string) (*domain.Token, error)
	}{
		{
			"unknown token",
			func(_ context.Context, _ string) (*domain.Token, error) {
				return nil, domain.ErrTokenNotFound
			},
		},
		{
			"expired token",
			func(_ context.Context, _ string) (*domain.Token, error) {
				return &domain.Token{
					ID:        "t1",
					Type:      domain.TokenResetPassword,
					UserID:    "u1",
					ExpiresAt: time.Now().Add(-time.Minute),
				}, nil
			},
		},
		{
			"wrong token type",
			func(_ context.Context, _ string) (*domain.Token, error) {
				return &domain.Token{
					ID:        "t1",
					Type:      domain.TokenRefresh,
					UserID:    "u1",
					ExpiresAt: time.Now().Add(time.Hour),
				}, nil
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture(t)
			f.tokens.FindByValueFn = tt.findFn
			f.users.UpdatePasswordFn = func(_ context.Context, _, _ string) error {
				t.Fatal("password must not change for a rejected token")
				return nil
			}

			err := f.service.ResetPassword(context.Background(), "value", "new-password")
			assert.ErrorIs(t, err, domain.ErrResetTokenInvalid)
		})
	}
}

func TestGetProfile(t *testing.T) {
	f := newAuthFixture(t)
	f.users.FindByIDFn = func(_ context.Context, id string) (*domain.User, error) {
		if id != "u1" {
			return nil, domain.ErrUserNotFound
		}
		return &domain.User{ID: "u1", Email: "user@example.com"}, nil
	}

	user, err := f.service.GetProfile(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", user.Email)

	_, err = f.service.GetProfile(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
