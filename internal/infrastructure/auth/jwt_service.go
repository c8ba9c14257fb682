package auth

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Biholo/planete-xplorer/domain"
)

// JWTServiceImpl implements domain.TokenService with HS256 signatures and a
// process-wide secret injected at construction.
type JWTServiceImpl struct {
	secretKey  []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewJWTService creates a new JWT token service.
func NewJWTService(secretKey, issuer string, accessTTL, refreshTTL time.Duration) domain.TokenService {
	return &JWTServiceImpl{
		secretKey:  []byte(secretKey),
		issuer:     issuer,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// generateJTI creates a unique JWT ID so two tokens issued in the same
// second still differ.
func (j *JWTServiceImpl) generateJTI() string {
	bytes := make([]byte, 16)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

func (j *JWTServiceImpl) sign(user *domain.User, ttl time.Duration) (string, int64, error) {
	now := time.Now()
	exp := now.Add(ttl).Unix()

	roles := make([]string, len(user.Roles))
	for i, r := range user.Roles {
		roles[i] = string(r)
	}

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"roles":   roles,
		"iss":     j.issuer,
		"iat":     now.Unix(),
		"exp":     exp,
		"jti":     j.generateJTI(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", 0, err
	}
	return signed, exp, nil
}

// GenerateAccessToken implements domain.TokenService.
func (j *JWTServiceImpl) GenerateAccessToken(user *domain.User) (string, int64, error) {
	return j.sign(user, j.accessTTL)
}

// GenerateRefreshToken implements domain.TokenService.
func (j *JWTServiceImpl) GenerateRefreshToken(user *domain.User) (string, int64, error) {
	return j.sign(user, j.refreshTTL)
}

// Verify implements domain.TokenService. Every failure mode surfaces as
// ErrTokenInvalid; callers must not let clients tell a bad signature from an
// expired token.
func (j *JWTServiceImpl) Verify(tokenString string) (*domain.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrTokenInvalid
		}
		return j.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrTokenInvalid
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return nil, domain.ErrTokenInvalid
	}
	email, ok := claims["email"].(string)
	if !ok {
		return nil, domain.ErrTokenInvalid
	}
	iat, ok := claims["iat"].(float64)
	if !ok {
		return nil, domain.ErrTokenInvalid
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, domain.ErrTokenInvalid
	}
	if time.Unix(int64(exp), 0).Before(time.Now()) {
		return nil, domain.ErrTokenInvalid
	}

	rawRoles, ok := claims["roles"].([]interface{})
	if !ok {
		return nil, domain.ErrTokenInvalid
	}
	roles := make([]domain.Role, 0, len(rawRoles))
	for _, r := range rawRoles {
		s, ok := r.(string)
		if !ok {
			return nil, domain.ErrTokenInvalid
		}
		roles = append(roles, domain.Role(s))
	}
	if len(roles) == 0 {
		return nil, domain.ErrTokenInvalid
	}

	return &domain.TokenClaims{
		UserID:    userID,
		Email:     email,
		Roles:     roles,
		IssuedAt:  int64(iat),
		ExpiresAt: int64(exp),
	}, nil
}
