package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mflath/TImesheets/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_jwt_secret_32_chars_minimum!"

func protectedRouter(tokens *auth.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Authenticate(tokens))
	r.GET("/protected", func(c *gin.Context) {
		claims := GetClaims(c)
		c.JSON(http.StatusOK, gin.H{"id": claims.UserID, "username": claims.Username})
	})
	return r
}

func doProtected(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticate_NoToken(t *testing.T) {
	r := protectedRouter(auth.NewTokenService(testSecret))
	w := doProtected(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticate_NotBearer(t *testing.T) {
	r := protectedRouter(auth.NewTokenService(testSecret))
	// Anything other than "Bearer <token>" is treated as missing
	w := doProtected(r, "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticate_GarbageToken(t *testing.T) {
	r := protectedRouter(auth.NewTokenService(testSecret))
	w := doProtected(r, "Bearer garbage")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	tokens := auth.NewTokenService(testSecret)
	r := protectedRouter(tokens)

	now := time.Now()
	claims := auth.Claims{
		UserID:   1,
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	w := doProtected(r, "Bearer "+expired)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthenticate_ValidToken(t *testing.T) {
	tokens := auth.NewTokenService(testSecret)
	r := protectedRouter(tokens)

	tok, err := tokens.Issue(9, "alice")
	require.NoError(t, err)

	w := doProtected(r, "Bearer "+tok)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"alice"`)
}
