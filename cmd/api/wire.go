//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 使用方式：
// Step 1: 运行 `wire gen ./cmd/api`
// Step 2: Wire生成wire_gen.go，包含完整的依赖创建代码
// Step 3: main.go可改为调用InitializeApp()

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	goredis "github.com/redis/go-redis/v9"

	appauth "github.com/xiebiao/locallibrary/internal/application/auth"
	appcatalog "github.com/xiebiao/locallibrary/internal/application/catalog"
	"github.com/xiebiao/locallibrary/internal/domain/user"
	"github.com/xiebiao/locallibrary/internal/infrastructure/config"
	"github.com/xiebiao/locallibrary/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/locallibrary/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/locallibrary/internal/interface/http/handler"
	"github.com/xiebiao/locallibrary/internal/interface/http/middleware"
	"github.com/xiebiao/locallibrary/pkg/jwt"
)

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	config.Load,
	mysql.NewDB,
	redis.NewClient,
)

// repositorySet 仓储层依赖
// TxManager以窄接口形式注入应用层，便于测试替换
var repositorySet = wire.NewSet(
	mysql.NewAuthorRepository,
	mysql.NewGenreRepository,
	mysql.NewLanguageRepository,
	mysql.NewBookRepository,
	mysql.NewBookInstanceRepository,
	mysql.NewUserRepository,
	mysql.NewTxManager,
	wire.Bind(new(appcatalog.TxManager), new(*mysql.TxManager)),
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	user.NewService,
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appcatalog.NewAuthorUseCase,
	appcatalog.NewGenreUseCase,
	appcatalog.NewLanguageUseCase,
	appcatalog.NewBookUseCase,
	appcatalog.NewBookInstanceUseCase,
	appauth.NewIssueTokenUseCase,
)

// middlewareSet 中间件依赖
var middlewareSet = wire.NewSet(
	provideJWTManager,
	provideSessionStore,
	wire.Bind(new(middleware.TokenBlacklist), new(*redis.SessionStore)),
	middleware.NewAuthMiddleware,
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewAuthorHandler,
	handler.NewGenreHandler,
	handler.NewLanguageHandler,
	handler.NewBookHandler,
	handler.NewInstanceHandler,
	handler.NewAuthHandler,
)

// provideJWTManager 从配置创建JWT管理器
func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpire)
}

// provideSessionStore 从Redis客户端创建Session存储
func provideSessionStore(client *goredis.Client) *redis.SessionStore {
	return redis.NewSessionStore(client)
}

// provideGinEngine 创建并配置Gin引擎（含全部路由）
func provideGinEngine(
	cfg *config.Config,
	authorHandler *handler.AuthorHandler,
	genreHandler *handler.GenreHandler,
	languageHandler *handler.LanguageHandler,
	bookHandler *handler.BookHandler,
	instanceHandler *handler.InstanceHandler,
	authHandler *handler.AuthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	// registerRoutes内含健康检查与Swagger文档路由
	registerRoutes(r,
		authorHandler, genreHandler, languageHandler,
		bookHandler, instanceHandler, authHandler,
		authMiddleware,
	)

	return r
}

// InitializeApp 初始化整个应用
// Wire会在编译期分析依赖关系，在wire_gen.go中生成初始化代码
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		middlewareSet,
		handlerSet,
		provideGinEngine,
	)
	return nil, nil
}
