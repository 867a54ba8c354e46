package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/locallibrary/pkg/errors"
)

// TestManager_GenerateAndParse 测试Token签发与解析往返
func TestManager_GenerateAndParse(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)

	token, err := manager.GenerateToken(7, "librarian", []string{"catalog.can_mark_returned"})
	require.NoError(t, err)
	assert.NotEmpty(t, token.AccessToken)
	assert.Equal(t, int64(3600), token.ExpiresIn)

	claims, err := manager.ParseToken(token.AccessToken)
	require.NoError(t, err)

	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "librarian", claims.Username)
	assert.True(t, claims.HasPermission("catalog.can_mark_returned"), "权限列表应随Token携带")
	assert.False(t, claims.HasPermission("catalog.can_edit"), "未授予的权限不应通过校验")
}

// TestManager_ParseToken_Invalid 测试非法Token的各种失败场景
func TestManager_ParseToken_Invalid(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)

	t.Run("密钥不匹配", func(t *testing.T) {
		other := NewManager("other-secret", time.Hour)
		token, err := other.GenerateToken(1, "someone", nil)
		require.NoError(t, err)

		_, err = manager.ParseToken(token.AccessToken)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("格式错误", func(t *testing.T) {
		_, err := manager.ParseToken("not-a-jwt")
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("已过期", func(t *testing.T) {
		expired := NewManager("test-secret", -time.Minute)
		token, err := expired.GenerateToken(1, "someone", nil)
		require.NoError(t, err)

		_, err = manager.ParseToken(token.AccessToken)
		assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
	})
}
