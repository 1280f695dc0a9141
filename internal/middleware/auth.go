package middleware

import (
	"net/http"
	"strings"

	"github.com/mflath/TImesheets/internal/apierror"
	"github.com/mflath/TImesheets/internal/auth"

	"github.com/gin-gonic/gin"
)

const ClaimsKey = "claims"

// Authenticate validates the Bearer token on every protected route.
// No token (or an ill-shaped Authorization header) is 401; a token that fails
// verification for any reason is 403. On success the decoded claims are stored
// in the request context for downstream handlers.
func Authenticate(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Authentication required"))
			return
		}

		claims, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("Invalid or expired token"))
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// GetClaims is a helper to retrieve typed claims from the Gin context.
func GetClaims(c *gin.Context) *auth.Claims {
	claims, _ := c.MustGet(ClaimsKey).(*auth.Claims)
	return claims
}
