package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	appauth "github.com/xiebiao/locallibrary/internal/application/auth"
	appcatalog "github.com/xiebiao/locallibrary/internal/application/catalog"
	"github.com/xiebiao/locallibrary/internal/domain/user"
	"github.com/xiebiao/locallibrary/internal/infrastructure/config"
	"github.com/xiebiao/locallibrary/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/locallibrary/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/locallibrary/internal/interface/http/handler"
	"github.com/xiebiao/locallibrary/internal/interface/http/middleware"
	"github.com/xiebiao/locallibrary/pkg/jwt"
	"github.com/xiebiao/locallibrary/pkg/response"
)

// main 主程序入口
// 说明：手动依赖注入，wire.go提供等价的Wire配置
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	fmt.Printf("✓ 配置加载成功\n")
	fmt.Printf("  - 服务端口: %d\n", cfg.Server.Port)
	fmt.Printf("  - 运行模式: %s\n", cfg.Server.Mode)
	fmt.Printf("  - 数据库: %s:%d/%s\n", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	fmt.Printf("  - Redis: %s\n", cfg.Redis.Addr())

	// 2. 初始化数据库连接
	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	// 3. 初始化Redis连接
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Fatalf("初始化Redis失败: %v", err)
	}

	// 4. 依赖注入（手动组装）
	// Repository ← Service/TxManager ← UseCase ← Handler

	// 基础设施层
	authorRepo := mysql.NewAuthorRepository(db)
	genreRepo := mysql.NewGenreRepository(db)
	languageRepo := mysql.NewLanguageRepository(db)
	bookRepo := mysql.NewBookRepository(db)
	instanceRepo := mysql.NewBookInstanceRepository(db)
	userRepo := mysql.NewUserRepository(db)
	txManager := mysql.NewTxManager(db)
	sessionStore := redis.NewSessionStore(redisClient)
	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpire)

	// 领域层
	userService := user.NewService(userRepo)

	// 应用层
	authorUseCase := appcatalog.NewAuthorUseCase(authorRepo)
	genreUseCase := appcatalog.NewGenreUseCase(genreRepo)
	languageUseCase := appcatalog.NewLanguageUseCase(languageRepo)
	bookUseCase := appcatalog.NewBookUseCase(bookRepo, authorRepo, languageRepo, genreRepo, txManager)
	instanceUseCase := appcatalog.NewBookInstanceUseCase(instanceRepo, bookRepo, userRepo)
	issueTokenUseCase := appauth.NewIssueTokenUseCase(userService, jwtManager, sessionStore)

	// 接口层
	authorHandler := handler.NewAuthorHandler(authorUseCase)
	genreHandler := handler.NewGenreHandler(genreUseCase)
	languageHandler := handler.NewLanguageHandler(languageUseCase)
	bookHandler := handler.NewBookHandler(bookUseCase)
	instanceHandler := handler.NewInstanceHandler(instanceUseCase)
	authHandler := handler.NewAuthHandler(issueTokenUseCase)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, sessionStore)

	// 5. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// 6. 注册路由
	registerRoutes(r,
		authorHandler, genreHandler, languageHandler,
		bookHandler, instanceHandler, authHandler,
		authMiddleware,
	)

	// 7. 启动服务
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	fmt.Printf("\n🚀 服务启动成功！\n")
	fmt.Printf("   访问地址: http://localhost%s\n", addr)
	fmt.Printf("   健康检查: http://localhost%s/ping\n", addr)
	fmt.Printf("   API文档:  http://localhost%s/swagger/index.html\n", addr)
	fmt.Printf("\n按Ctrl+C停止服务\n\n")

	if err := r.Run(addr); err != nil {
		log.Fatalf("启动服务失败: %v", err)
	}
}

// registerRoutes 注册路由
// 读接口公开，所有写接口需登录；归还登记额外要求归还权限
func registerRoutes(
	r *gin.Engine,
	authorHandler *handler.AuthorHandler,
	genreHandler *handler.GenreHandler,
	languageHandler *handler.LanguageHandler,
	bookHandler *handler.BookHandler,
	instanceHandler *handler.InstanceHandler,
	authHandler *handler.AuthHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.OK(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Swagger文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 认证
	auth := r.Group("/auth")
	{
		auth.POST("/token", authHandler.IssueToken)
	}

	requireAuth := authMiddleware.RequireAuth()

	// 作者
	authors := r.Group("/authors")
	{
		authors.GET("", authorHandler.ListAuthors)
		authors.GET("/:id", authorHandler.GetAuthor)

		authors.POST("", requireAuth, authorHandler.CreateAuthor)
		authors.PUT("/:id", requireAuth, authorHandler.UpdateAuthor)
		authors.DELETE("/:id", requireAuth, authorHandler.DeleteAuthor)
	}

	// 体裁
	genres := r.Group("/genres")
	{
		genres.GET("", genreHandler.ListGenres)
		genres.GET("/:id", genreHandler.GetGenre)

		genres.POST("", requireAuth, genreHandler.CreateGenre)
		genres.PUT("/:id", requireAuth, genreHandler.UpdateGenre)
		genres.DELETE("/:id", requireAuth, genreHandler.DeleteGenre)
	}

	// 语种
	languages := r.Group("/languages")
	{
		languages.GET("", languageHandler.ListLanguages)
		languages.GET("/:id", languageHandler.GetLanguage)

		languages.POST("", requireAuth, languageHandler.CreateLanguage)
		languages.PUT("/:id", requireAuth, languageHandler.UpdateLanguage)
		languages.DELETE("/:id", requireAuth, languageHandler.DeleteLanguage)
	}

	// 图书
	books := r.Group("/books")
	{
		books.GET("", bookHandler.ListBooks)
		books.GET("/:id", bookHandler.GetBook)

		books.POST("", requireAuth, bookHandler.CreateBook)
		books.PUT("/:id", requireAuth, bookHandler.UpdateBook)
		books.DELETE("/:id", requireAuth, bookHandler.DeleteBook)
	}

	// 副本
	instances := r.Group("/bookinstances")
	{
		instances.GET("", instanceHandler.ListInstances)
		instances.GET("/:id", instanceHandler.GetInstance)

		instances.POST("", requireAuth, instanceHandler.CreateInstance)
		instances.PUT("/:id", requireAuth, instanceHandler.UpdateInstance)
		instances.DELETE("/:id", requireAuth, instanceHandler.DeleteInstance)

		// 归还登记（登录之外还需持有归还权限，Handler内校验）
		instances.POST("/:id/return", requireAuth, instanceHandler.ReturnInstance)
	}
}
