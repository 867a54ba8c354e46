package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/xiebiao/locallibrary/pkg/errors"
)

// fakeRepo 内存版用户仓储
type fakeRepo struct {
	users map[string]*User
}

func (r *fakeRepo) FindByID(ctx context.Context, id uint) (*User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *fakeRepo) FindByUsername(ctx context.Context, username string) (*User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// TestService_Authenticate 测试凭证校验
func TestService_Authenticate(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeRepo{users: map[string]*User{
		"librarian": {
			ID:          7,
			Username:    "librarian",
			Password:    string(hash),
			Permissions: []string{"catalog.can_mark_returned"},
		},
	}}
	svc := NewService(repo)

	t.Run("凭证正确返回用户", func(t *testing.T) {
		u, err := svc.Authenticate(ctx, "librarian", "correct-password")
		require.NoError(t, err)
		assert.Equal(t, uint(7), u.ID)
		assert.True(t, u.HasPermission("catalog.can_mark_returned"))
	})

	t.Run("密码错误返回凭证错误", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "librarian", "wrong-password")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("用户不存在返回同一个凭证错误", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "nobody", "whatever")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials, "不应泄露用户名是否存在")
	})
}
