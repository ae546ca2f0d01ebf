//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"fitstudio/internal/domain/user"
	"fitstudio/internal/handler/middleware"
	"fitstudio/internal/pkg/cookie"
	"fitstudio/internal/pkg/jwt"
	"fitstudio/internal/usecase"
	"fitstudio/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) (*gin.Engine, *jwt.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := jwt.NewService("middleware-test-secret", 15*time.Minute, 24*time.Hour)
	m := middleware.NewAuthMiddleware(usecase.NewTokenValidator(svc))

	whoami := func(c *gin.Context) {
		id, ok := middleware.GetUserID(c)
		if !ok {
			c.JSON(http.StatusOK, gin.H{"user_id": ""})
			return
		}
		role, _ := middleware.GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id.String(), "role": string(role)})
	}

	r := gin.New()
	r.GET("/private", m.RequireAuth(), whoami)
	r.GET("/admin", m.RequireAuth(), m.RequireRoleAtLeast(user.RoleAdmin), whoami)
	r.GET("/public", m.OptionalAuth(), whoami)
	r.GET("/misordered", m.RequireRoleAtLeast(user.RoleAdmin), whoami)
	return r, svc
}

func TestRequireAuth(t *testing.T) {
	r, svc := newRouter(t)
	userID := uuid.New()
	access, err := svc.GenerateAccessToken(userID, user.RoleMember)
	require.NoError(t, err)
	refresh, err := svc.GenerateRefreshToken(userID, user.RoleMember)
	require.NoError(t, err)

	t.Run("Bearerヘッダー", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/private", nil, access)

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, userID.String(), body["user_id"])
		assert.Equal(t, "member", body["role"])
	})

	t.Run("Cookie", func(t *testing.T) {
		cookies := []*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: access}}
		rec := httptest.PerformRequestWithCookies(t, r, http.MethodGet, "/private", nil, cookies, "")
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)
	})

	t.Run("トークンなし", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/private", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("リフレッシュトークンは拒否", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/private", nil, refresh)
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("不正なトークン", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/private", nil, "garbage")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func TestRequireRoleAtLeast(t *testing.T) {
	r, svc := newRouter(t)

	member, _ := svc.GenerateAccessToken(uuid.New(), user.RoleMember)
	admin, _ := svc.GenerateAccessToken(uuid.New(), user.RoleAdmin)

	rec := httptest.PerformRequest(t, r, http.MethodGet, "/admin", nil, member)
	httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "Insufficient permissions")

	rec = httptest.PerformRequest(t, r, http.MethodGet, "/admin", nil, admin)
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)

	rec = httptest.PerformRequest(t, r, http.MethodGet, "/misordered", nil, admin)
	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "")
}

func TestOptionalAuth(t *testing.T) {
	r, svc := newRouter(t)
	userID := uuid.New()
	access, _ := svc.GenerateAccessToken(userID, user.RoleMember)

	tests := []struct {
		name   string
		token  string
		wantID string
	}{
		{name: "匿名", token: "", wantID: ""},
		{name: "有効なトークン", token: access, wantID: userID.String()},
		{name: "不正なトークンでも拒否しない", token: "garbage", wantID: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.PerformRequest(t, r, http.MethodGet, "/public", nil, tt.token)

			var body map[string]string
			httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
			assert.Equal(t, tt.wantID, body["user_id"])
		})
	}
}
