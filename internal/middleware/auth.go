// Package middleware provides HTTP middleware for the auth service.
package middleware

import (
	"net/http"
	"strings"

	"github.com/earlgeraldesparcia/IT342-G6-Esparcia-Lab1/internal/service"
	"github.com/gin-gonic/gin"
)

// UnauthorizedMessage is the single error body returned for every failure
// on identity-protected routes. Missing tokens, bad signatures, expired
// tokens and deleted users all look the same to the caller.
const UnauthorizedMessage = "Unable to fetch user information"

const identityKey = "identity"

// RequireAuth returns middleware that verifies the bearer token in the
// Authorization header and attaches the resulting Identity to the request
// context for downstream handlers.
func RequireAuth(jwtService service.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": UnauthorizedMessage})
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": UnauthorizedMessage})
			return
		}

		c.Set(identityKey, &service.Identity{
			UserID:   claims.UserID,
			Username: claims.Username,
		})
		c.Next()
	}
}

// IdentityFromContext returns the Identity set by RequireAuth, or nil when
// the request carries no verified identity.
func IdentityFromContext(c *gin.Context) *service.Identity {
	value, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	identity, ok := value.(*service.Identity)
	if !ok {
		return nil
	}
	return identity
}

func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	parts := strings.Split(bearerToken, " ")
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return ""
}
