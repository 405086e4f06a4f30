package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crewdeck.io/notifier/internal/identity"
)

var testSigningKey = []byte("test-signing-key-1234567890123456")

func authRouter(t *testing.T, key []byte) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", JWTAuth(key), func(c *gin.Context) {
		userID, err := identity.CurrentUserID(c.Request.Context())
		require.NoError(t, err)
		c.JSON(http.StatusOK, gin.H{
			"user_id":  userID,
			"username": identity.Username(c.Request.Context()),
		})
	})
	return r
}

func TestGenerateToken_RoundTrip(t *testing.T) {
	cfg := JWTConfig{
		SigningKey: testSigningKey,
		Issuer:     "crewdeck-notifier",
		ExpiresIn:  time.Hour,
	}

	token, expiresAt, err := GenerateToken(cfg, "u-1", "ahmed")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	r := authRouter(t, testSigningKey)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":"u-1"`)
	assert.Contains(t, w.Body.String(), `"username":"ahmed"`)
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	r := authRouter(t, testSigningKey)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "UNAUTHENTICATED")
}

func TestJWTAuth_MalformedHeader(t *testing.T) {
	r := authRouter(t, testSigningKey)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Token abc")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid authorization header format")
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	cfg := JWTConfig{
		SigningKey: testSigningKey,
		Issuer:     "crewdeck-notifier",
		ExpiresIn:  -time.Minute,
	}
	token, _, err := GenerateToken(cfg, "u-1", "ahmed")
	require.NoError(t, err)

	r := authRouter(t, testSigningKey)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "TOKEN_EXPIRED")
}

func TestJWTAuth_WrongSigningKey(t *testing.T) {
	token, _, err := GenerateToken(JWTConfig{
		SigningKey: []byte("other-signing-key-123456789012345678"),
		Issuer:     "crewdeck-notifier",
		ExpiresIn:  time.Hour,
	}, "u-1", "ahmed")
	require.NoError(t, err)

	r := authRouter(t, testSigningKey)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "TOKEN_INVALID")
}

func TestJWTAuth_RejectsNoneSigningMethod(t *testing.T) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodNone, JWTClaims{
		UserID: "u-1",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "crewdeck-notifier",
			Subject:   "u-1",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})
	tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	r := authRouter(t, testSigningKey)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_RejectsEmptyUserID(t *testing.T) {
	token, _, err := GenerateToken(JWTConfig{
		SigningKey: testSigningKey,
		Issuer:     "crewdeck-notifier",
		ExpiresIn:  time.Hour,
	}, "", "ghost")
	require.NoError(t, err)

	r := authRouter(t, testSigningKey)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid token claims")
}
