package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/locallibrary/pkg/jwt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeBlacklist 内存版Token黑名单
type fakeBlacklist struct {
	tokens map[string]bool
}

func (b *fakeBlacklist) IsInBlacklist(ctx context.Context, token string) (bool, error) {
	return b.tokens[token], nil
}

func newAuthRouter(m *AuthMiddleware) *gin.Engine {
	r := gin.New()
	r.GET("/protected", m.RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":      GetUserID(c),
			"can_returned": HasPermission(c, "catalog.can_mark_returned"),
		})
	})
	return r
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	r.ServeHTTP(w, req)
	return w
}

// TestAuthMiddleware_RequireAuth 测试认证中间件
func TestAuthMiddleware_RequireAuth(t *testing.T) {
	jwtManager := jwt.NewManager("test-secret", time.Hour)
	blacklist := &fakeBlacklist{tokens: make(map[string]bool)}
	r := newAuthRouter(NewAuthMiddleware(jwtManager, blacklist))

	t.Run("缺少Authorization头返回401", func(t *testing.T) {
		w := doRequest(r, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("非Bearer格式返回401", func(t *testing.T) {
		w := doRequest(r, "Basic dXNlcjpwYXNz")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("伪造Token返回401", func(t *testing.T) {
		w := doRequest(r, "Bearer not-a-valid-token")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("过期Token返回401", func(t *testing.T) {
		expired := jwt.NewManager("test-secret", -time.Minute)
		token, err := expired.GenerateToken(7, "librarian", nil)
		require.NoError(t, err)

		w := doRequest(r, "Bearer "+token.AccessToken)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("黑名单中的Token返回401", func(t *testing.T) {
		token, err := jwtManager.GenerateToken(7, "librarian", nil)
		require.NoError(t, err)
		blacklist.tokens[token.AccessToken] = true

		w := doRequest(r, "Bearer "+token.AccessToken)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("有效Token放行并注入用户信息", func(t *testing.T) {
		token, err := jwtManager.GenerateToken(7, "librarian", []string{"catalog.can_mark_returned"})
		require.NoError(t, err)

		w := doRequest(r, "Bearer "+token.AccessToken)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":7`)
		assert.Contains(t, w.Body.String(), `"can_returned":true`)
	})

	t.Run("未授予的权限校验不通过", func(t *testing.T) {
		token, err := jwtManager.GenerateToken(8, "reader", nil)
		require.NoError(t, err)

		w := doRequest(r, "Bearer "+token.AccessToken)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"can_returned":false`)
	})
}
