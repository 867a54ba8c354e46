package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/locallibrary/internal/domain/catalog"
)

// TestAuthorUseCase_CRUD 测试作者增删改查闭环
func TestAuthorUseCase_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAuthorRepo()
	uc := NewAuthorUseCase(repo)

	birth := time.Date(1881, 9, 25, 0, 0, 0, 0, time.UTC)

	t.Run("创建后按ID可查回", func(t *testing.T) {
		created, err := uc.Create(ctx, CreateAuthorRequest{
			FirstName:   "鲁",
			LastName:    "迅",
			DateOfBirth: &birth,
		})
		require.NoError(t, err, "创建作者应该成功")
		assert.NotZero(t, created.ID, "创建后应回填ID")

		found, err := uc.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "鲁", found.FirstName)
		assert.Equal(t, "迅", found.LastName)
		require.NotNil(t, found.DateOfBirth)
		assert.True(t, found.DateOfBirth.Equal(birth), "出生日期应一致")
		assert.Nil(t, found.DateOfDeath, "未提供的去世日期应为空")
	})

	t.Run("查询不存在的ID返回未找到", func(t *testing.T) {
		_, err := uc.Get(ctx, 9999)
		assert.ErrorIs(t, err, catalog.ErrAuthorNotFound)
	})

	t.Run("删除后再查返回未找到", func(t *testing.T) {
		created, err := uc.Create(ctx, CreateAuthorRequest{FirstName: "老", LastName: "舍"})
		require.NoError(t, err)

		require.NoError(t, uc.Delete(ctx, created.ID))

		_, err = uc.Get(ctx, created.ID)
		assert.ErrorIs(t, err, catalog.ErrAuthorNotFound)

		err = uc.Delete(ctx, created.ID)
		assert.ErrorIs(t, err, catalog.ErrAuthorNotFound, "重复删除应返回未找到")
	})
}

// TestAuthorUseCase_Update 测试merge-patch更新语义
func TestAuthorUseCase_Update(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAuthorRepo()
	uc := NewAuthorUseCase(repo)

	birth := time.Date(1899, 2, 3, 0, 0, 0, 0, time.UTC)
	created, err := uc.Create(ctx, CreateAuthorRequest{
		FirstName:   "老",
		LastName:    "舍",
		DateOfBirth: &birth,
	})
	require.NoError(t, err)

	t.Run("只更新提供的字段", func(t *testing.T) {
		updated, err := uc.Update(ctx, created.ID, UpdateAuthorRequest{
			FirstName: strPtr("舒"),
		})
		require.NoError(t, err)

		assert.Equal(t, "舒", updated.FirstName, "提供的字段应被更新")
		assert.Equal(t, "舍", updated.LastName, "缺席的字段应保持原值")
		require.NotNil(t, updated.DateOfBirth)
		assert.True(t, updated.DateOfBirth.Equal(birth), "缺席的日期应保持原值")
	})

	t.Run("更新不存在的作者返回未找到", func(t *testing.T) {
		_, err := uc.Update(ctx, 9999, UpdateAuthorRequest{FirstName: strPtr("无")})
		assert.ErrorIs(t, err, catalog.ErrAuthorNotFound)
	})
}

// TestAuthorUseCase_List 测试分页行为
func TestAuthorUseCase_List(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAuthorRepo()
	uc := NewAuthorUseCase(repo)

	for i := 0; i < 5; i++ {
		_, err := uc.Create(ctx, CreateAuthorRequest{FirstName: "作者", LastName: "某"})
		require.NoError(t, err)
	}

	items, count, err := uc.List(ctx, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), count, "count应为总记录数而非当前页数量")
	assert.Len(t, items, 2, "当前页数量受limit约束")
}
