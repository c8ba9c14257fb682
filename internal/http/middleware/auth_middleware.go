package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Biholo/planete-xplorer/domain"
)

const claimsContextKey = "auth_claims"

// RequireAuth rejects requests without a valid bearer token. Verified claims
// are trusted as the request identity without a user re-read; the staleness
// window equals the token TTL.
func RequireAuth(signer domain.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := verifyBearer(c, signer)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": domain.ErrUnauthorized.Error(),
				"data":    nil,
				"status":  http.StatusUnauthorized,
			})
			return
		}
		c.Set(claimsContextKey, claims)
		c.Next()
	}
}

// OptionalAuth attaches claims when a valid bearer token is present and lets
// the request through either way. An invalid token is treated as anonymous.
func OptionalAuth(signer domain.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := verifyBearer(c, signer); ok {
			c.Set(claimsContextKey, claims)
		}
		c.Next()
	}
}

// CurrentClaims returns the verified claims attached by RequireAuth or
// OptionalAuth.
func CurrentClaims(c *gin.Context) (*domain.TokenClaims, bool) {
	value, exists := c.Get(claimsContextKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*domain.TokenClaims)
	return claims, ok
}

func verifyBearer(c *gin.Context, signer domain.TokenService) (*domain.TokenClaims, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return nil, false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return nil, false
	}
	claims, err := signer.Verify(parts[1])
	if err != nil {
		return nil, false
	}
	return claims, true
}
