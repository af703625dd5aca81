package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tobi/edushare/internal/app/models"
	"github.com/tobi/edushare/internal/pkg/auth"
)

func newTestRouter() (*gin.Engine, *AuthMiddleware, *auth.JWTService) {
	gin.SetMode(gin.TestMode)
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "edushare-test",
	})
	return gin.New(), NewAuthMiddleware(jwtService), jwtService
}

func tokenFor(t *testing.T, jwtService *auth.JWTService, role models.Role, onboarded bool) string {
	t.Helper()
	accessToken, _, _, _, err := jwtService.GenerateTokenPair(&models.User{
		ID:                 1,
		Email:              "user@example.edu",
		Role:               role,
		OnboardingComplete: onboarded,
	})
	require.NoError(t, err)
	return "Bearer " + accessToken
}

func performRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	router, mw, _ := newTestRouter()
	router.GET("/protected", mw.JWTAuth(), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := performRequest(router, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	router, mw, _ := newTestRouter()
	router.GET("/protected", mw.JWTAuth(), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := performRequest(router, "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_SetsIdentity(t *testing.T) {
	router, mw, jwtService := newTestRouter()
	router.GET("/protected", mw.JWTAuth(), func(c *gin.Context) {
		assert.Equal(t, int64(1), GetUserID(c))
		assert.Equal(t, models.RoleStudent, GetUserRole(c))
		c.Status(http.StatusOK)
	})

	w := performRequest(router, tokenFor(t, jwtService, models.RoleStudent, true))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoleRequired(t *testing.T) {
	router, mw, jwtService := newTestRouter()
	router.GET("/protected", mw.JWTAuth(), mw.RoleRequired(models.RoleInstructor, models.RoleAdmin),
		func(c *gin.Context) { c.Status(http.StatusOK) })

	w := performRequest(router, tokenFor(t, jwtService, models.RoleInstructor, true))
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, tokenFor(t, jwtService, models.RoleStudent, true))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestOnboardingRequired(t *testing.T) {
	router, mw, jwtService := newTestRouter()
	router.GET("/protected", mw.JWTAuth(), mw.OnboardingRequired(),
		func(c *gin.Context) { c.Status(http.StatusOK) })

	w := performRequest(router, tokenFor(t, jwtService, models.RoleStudent, true))
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, tokenFor(t, jwtService, models.RoleStudent, false))
	assert.Equal(t, http.StatusForbidden, w.Code)
}
