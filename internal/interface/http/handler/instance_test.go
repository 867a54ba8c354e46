package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcatalog "github.com/xiebiao/locallibrary/internal/application/catalog"
	"github.com/xiebiao/locallibrary/internal/domain/catalog"
	"github.com/xiebiao/locallibrary/internal/domain/user"
	"github.com/xiebiao/locallibrary/pkg/jwt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubInstanceRepo 内存版副本仓储（只实现测试用到的路径）
type stubInstanceRepo struct {
	items map[catalog.InstanceID]catalog.BookInstance
}

func (r *stubInstanceRepo) Create(ctx context.Context, instance *catalog.BookInstance) error {
	r.items[instance.ID] = *instance
	return nil
}

func (r *stubInstanceRepo) FindByID(ctx context.Context, id catalog.InstanceID) (*catalog.BookInstance, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, catalog.ErrInstanceNotFound
	}
	found := item
	return &found, nil
}

func (r *stubInstanceRepo) List(ctx context.Context, limit, offset int) ([]*catalog.BookInstance, int64, error) {
	result := make([]*catalog.BookInstance, 0, len(r.items))
	for id := range r.items {
		item := r.items[id]
		result = append(result, &item)
	}
	return result, int64(len(r.items)), nil
}

func (r *stubInstanceRepo) Update(ctx context.Context, instance *catalog.BookInstance) error {
	if _, ok := r.items[instance.ID]; !ok {
		return catalog.ErrInstanceNotFound
	}
	r.items[instance.ID] = *instance
	return nil
}

func (r *stubInstanceRepo) Delete(ctx context.Context, id catalog.InstanceID) error {
	if _, ok := r.items[id]; !ok {
		return catalog.ErrInstanceNotFound
	}
	delete(r.items, id)
	return nil
}

// stubBookRepo 只支持FindByID，其余方法不会被副本接口触达
type stubBookRepo struct {
	catalog.BookRepository
	book *catalog.Book
}

func (r *stubBookRepo) FindByID(ctx context.Context, id uint) (*catalog.Book, error) {
	if r.book != nil && r.book.ID == id {
		return r.book, nil
	}
	return nil, catalog.ErrBookNotFound
}

// stubUserRepo 无任何用户
type stubUserRepo struct{}

func (r *stubUserRepo) FindByID(ctx context.Context, id uint) (*user.User, error) {
	return nil, user.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	return nil, user.ErrUserNotFound
}

// instanceTestEnv 副本接口测试环境
type instanceTestEnv struct {
	router *gin.Engine
	repo   *stubInstanceRepo
	seeded *catalog.BookInstance
	claims *jwt.Claims // 归还接口注入的Claims，nil表示匿名
}

func newInstanceTestEnv(t *testing.T) *instanceTestEnv {
	t.Helper()

	book := catalog.NewBook("呐喊", "短篇小说集", "9787020008734", nil, nil, nil)
	book.ID = 1

	env := &instanceTestEnv{
		repo: &stubInstanceRepo{items: make(map[catalog.InstanceID]catalog.BookInstance)},
	}

	borrower := uint(7)
	env.seeded = catalog.NewBookInstance(book, "人民文学出版社 2021", nil, &borrower, catalog.StatusOnLoan)
	env.repo.items[env.seeded.ID] = *env.seeded

	uc := appcatalog.NewBookInstanceUseCase(env.repo, &stubBookRepo{book: book}, &stubUserRepo{})
	h := NewInstanceHandler(uc)

	r := gin.New()
	instances := r.Group("/bookinstances")
	{
		instances.GET("/:id", h.GetInstance)
		instances.PUT("/:id", h.UpdateInstance)
		instances.DELETE("/:id", h.DeleteInstance)
		instances.POST("/:id/return", func(c *gin.Context) {
			if env.claims != nil {
				c.Set("claims", env.claims)
			}
			c.Next()
		}, h.ReturnInstance)
	}
	env.router = r
	return env
}

func (env *instanceTestEnv) do(method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	env.router.ServeHTTP(w, req)
	return w
}

// TestInstanceHandler_IDMapping 测试副本标识在不同接口下的错误映射
// 查询/删除：格式非法与不存在同为404；更新：两者都按400处理
func TestInstanceHandler_IDMapping(t *testing.T) {
	unknown := catalog.NewInstanceID().String()

	t.Run("GET格式非法返回404", func(t *testing.T) {
		env := newInstanceTestEnv(t)
		w := env.do(http.MethodGet, "/bookinstances/not-a-uuid", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("GET不存在返回404", func(t *testing.T) {
		env := newInstanceTestEnv(t)
		w := env.do(http.MethodGet, "/bookinstances/"+unknown, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("GET存在返回200", func(t *testing.T) {
		env := newInstanceTestEnv(t)
		w := env.do(http.MethodGet, "/bookinstances/"+env.seeded.ID.String(), "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), env.seeded.ID.String())
		assert.Contains(t, w.Body.String(), `"status":"o"`)
	})

	t.Run("PUT格式非法返回400", func(t *testing.T) {
		env := newInstanceTestEnv(t)
		w := env.do(http.MethodPut, "/bookinstances/not-a-uuid", `{"imprint":"x"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("PUT不存在返回400", func(t *testing.T) {
		env := newInstanceTestEnv(t)
		w := env.do(http.MethodPut, "/bookinstances/"+unknown, `{"imprint":"x"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("PUT存在返回200", func(t *testing.T) {
		env := newInstanceTestEnv(t)
		w := env.do(http.MethodPut, "/bookinstances/"+env.seeded.ID.String(), `{"imprint":"再版印次"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "再版印次")
	})

	t.Run("DELETE格式非法返回404", func(t *testing.T) {
		env := newInstanceTestEnv(t)
		w := env.do(http.MethodDelete, "/bookinstances/not-a-uuid", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("DELETE存在返回204", func(t *testing.T) {
		env := newInstanceTestEnv(t)
		w := env.do(http.MethodDelete, "/bookinstances/"+env.seeded.ID.String(), "")
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

// TestInstanceHandler_Return 测试归还登记的权限与状态迁移
func TestInstanceHandler_Return(t *testing.T) {
	t.Run("无权限返回403", func(t *testing.T) {
		env := newInstanceTestEnv(t)
		env.claims = &jwt.Claims{UserID: 8, Username: "reader"}

		w := env.do(http.MethodPost, "/bookinstances/"+env.seeded.ID.String()+"/return", "")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("有权限归还成功", func(t *testing.T) {
		env := newInstanceTestEnv(t)
		env.claims = &jwt.Claims{
			UserID:      7,
			Username:    "librarian",
			Permissions: []string{catalog.PermissionMarkReturned},
		}

		w := env.do(http.MethodPost, "/bookinstances/"+env.seeded.ID.String()+"/return", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"a"`)
		assert.Contains(t, w.Body.String(), `"borrower":null`)
		assert.Contains(t, w.Body.String(), `"due_back":null`)
	})

	t.Run("有权限但副本不存在返回404", func(t *testing.T) {
		env := newInstanceTestEnv(t)
		env.claims = &jwt.Claims{
			UserID:      7,
			Username:    "librarian",
			Permissions: []string{catalog.PermissionMarkReturned},
		}

		w := env.do(http.MethodPost, "/bookinstances/"+catalog.NewInstanceID().String()+"/return", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
