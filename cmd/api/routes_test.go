package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appauth "github.com/xiebiao/locallibrary/internal/application/auth"
	appcatalog "github.com/xiebiao/locallibrary/internal/application/catalog"
	"github.com/xiebiao/locallibrary/internal/domain/catalog"
	"github.com/xiebiao/locallibrary/internal/interface/http/handler"
	"github.com/xiebiao/locallibrary/internal/interface/http/middleware"
	"github.com/xiebiao/locallibrary/pkg/jwt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// countingAuthorRepo 内存作者仓储，记录写操作次数
// 用于验证未通过认证的请求不会触达仓储
type countingAuthorRepo struct {
	writes int
	items  map[uint]catalog.Author
}

func (r *countingAuthorRepo) Create(ctx context.Context, author *catalog.Author) error {
	r.writes++
	author.ID = uint(len(r.items) + 1)
	r.items[author.ID] = *author
	return nil
}

func (r *countingAuthorRepo) FindByID(ctx context.Context, id uint) (*catalog.Author, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, catalog.ErrAuthorNotFound
	}
	found := item
	return &found, nil
}

func (r *countingAuthorRepo) List(ctx context.Context, limit, offset int) ([]*catalog.Author, int64, error) {
	result := make([]*catalog.Author, 0, len(r.items))
	for id := range r.items {
		item := r.items[id]
		result = append(result, &item)
	}
	return result, int64(len(r.items)), nil
}

func (r *countingAuthorRepo) Update(ctx context.Context, author *catalog.Author) error {
	r.writes++
	if _, ok := r.items[author.ID]; !ok {
		return catalog.ErrAuthorNotFound
	}
	r.items[author.ID] = *author
	return nil
}

func (r *countingAuthorRepo) Delete(ctx context.Context, id uint) error {
	r.writes++
	if _, ok := r.items[id]; !ok {
		return catalog.ErrAuthorNotFound
	}
	delete(r.items, id)
	return nil
}

// passBlacklist 黑名单查询桩，任何Token都不在黑名单中
type passBlacklist struct{}

func (passBlacklist) IsInBlacklist(ctx context.Context, token string) (bool, error) {
	return false, nil
}

// newTestRouter 按真实路由表组装测试引擎
// 仅作者仓储有内存实现，其余仓储传nil：认证拦截发生在Handler之前，
// 401路径上这些依赖不会被触达
func newTestRouter(t *testing.T) (*gin.Engine, *countingAuthorRepo, *jwt.Manager) {
	t.Helper()

	jwtManager := jwt.NewManager("test-secret", time.Hour)
	authorRepo := &countingAuthorRepo{items: make(map[uint]catalog.Author)}

	authorHandler := handler.NewAuthorHandler(appcatalog.NewAuthorUseCase(authorRepo))
	genreHandler := handler.NewGenreHandler(appcatalog.NewGenreUseCase(nil))
	languageHandler := handler.NewLanguageHandler(appcatalog.NewLanguageUseCase(nil))
	bookHandler := handler.NewBookHandler(appcatalog.NewBookUseCase(nil, nil, nil, nil, nil))
	instanceHandler := handler.NewInstanceHandler(appcatalog.NewBookInstanceUseCase(nil, nil, nil))
	authHandler := handler.NewAuthHandler(appauth.NewIssueTokenUseCase(nil, jwtManager, nil))
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, passBlacklist{})

	r := gin.New()
	registerRoutes(r,
		authorHandler, genreHandler, languageHandler,
		bookHandler, instanceHandler, authHandler,
		authMiddleware,
	)

	return r, authorRepo, jwtManager
}

func TestRegisterRoutes_未登录写接口一律401(t *testing.T) {
	r, authorRepo, _ := newTestRouter(t)

	instanceID := "11111111-2222-3333-4444-555555555555"
	mutations := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/authors"},
		{http.MethodPut, "/authors/1"},
		{http.MethodDelete, "/authors/1"},
		{http.MethodPost, "/genres"},
		{http.MethodPut, "/genres/1"},
		{http.MethodDelete, "/genres/1"},
		{http.MethodPost, "/languages"},
		{http.MethodPut, "/languages/1"},
		{http.MethodDelete, "/languages/1"},
		{http.MethodPost, "/books"},
		{http.MethodPut, "/books/1"},
		{http.MethodDelete, "/books/1"},
		{http.MethodPost, "/bookinstances"},
		{http.MethodPut, "/bookinstances/" + instanceID},
		{http.MethodDelete, "/bookinstances/" + instanceID},
		{http.MethodPost, "/bookinstances/" + instanceID + "/return"},
	}

	for _, m := range mutations {
		t.Run(m.method+" "+m.path, func(t *testing.T) {
			req := httptest.NewRequest(m.method, m.path, strings.NewReader(`{}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code, "无Token的写请求应返回401")
			assert.Contains(t, w.Body.String(), "message", "错误响应应包含message字段")
		})
	}

	assert.Zero(t, authorRepo.writes, "未通过认证的请求不应触达仓储")
}

func TestRegisterRoutes_读接口无需登录(t *testing.T) {
	r, _, _ := newTestRouter(t)

	t.Run("作者列表公开可读", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/authors", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("作者详情不存在返回404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/authors/99", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRegisterRoutes_登录后可创建作者(t *testing.T) {
	r, authorRepo, jwtManager := newTestRouter(t)

	token, err := jwtManager.GenerateToken(1, "librarian", nil)
	require.NoError(t, err)

	body := `{"first_name":"鲁","last_name":"迅"}`
	req := httptest.NewRequest(http.MethodPost, "/authors", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code, "携带有效Token应创建成功")
	assert.Equal(t, 1, authorRepo.writes, "应写入一次作者仓储")
}
