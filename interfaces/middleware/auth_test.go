package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"eventstream/domain/model"
	"eventstream/infrastructure/security"
	"eventstream/interfaces/middleware"
)

func newTestRouter(tokens *security.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	authed := router.Group("/authed")
	authed.Use(middleware.Auth(tokens))
	authed.GET("/whoami", func(c *gin.Context) {
		claim, ok := middleware.Claims(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, model.Err("claims missing"))
			return
		}
		c.JSON(http.StatusOK, model.OK("ok", claim.ID))
	})

	admin := router.Group("/admin")
	admin.Use(middleware.AdminOnly(tokens))
	admin.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, model.OK("pong", nil))
	})

	return router
}

func issue(t *testing.T, tokens *security.TokenService, role model.UserRole) string {
	t.Helper()
	token, err := tokens.Issue(model.IdentityClaim{
		ID:       "u-1",
		Username: "alice",
		Email:    "alice@example.com",
		Role:     role,
		Status:   model.UserActive,
	})
	require.NoError(t, err)
	return token
}

func TestAuth_MissingHeader(t *testing.T) {
	tokens := security.NewTokenService("test-secret", time.Hour)
	router := newTestRouter(tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/authed/whoami", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_BadScheme(t *testing.T) {
	tokens := security.NewTokenService("test-secret", time.Hour)
	router := newTestRouter(tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/authed/whoami", nil)
	req.Header.Set("Authorization", "Basic abc123")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_ValidToken(t *testing.T) {
	tokens := security.NewTokenService("test-secret", time.Hour)
	router := newTestRouter(tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/authed/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+issue(t, tokens, model.RoleViewer))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "u-1")
}

func TestAuth_WrongSecret(t *testing.T) {
	tokens := security.NewTokenService("test-secret", time.Hour)
	other := security.NewTokenService("other-secret", time.Hour)
	router := newTestRouter(tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/authed/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+issue(t, other, model.RoleViewer))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminOnly_ViewerForbidden(t *testing.T) {
	tokens := security.NewTokenService("test-secret", time.Hour)
	router := newTestRouter(tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+issue(t, tokens, model.RoleViewer))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminOnly_AdminAllowed(t *testing.T) {
	tokens := security.NewTokenService("test-secret", time.Hour)
	router := newTestRouter(tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+issue(t, tokens, model.RoleAdmin))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}
