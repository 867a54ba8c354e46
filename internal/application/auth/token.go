package auth

import (
	"context"
	"time"

	"github.com/xiebiao/locallibrary/internal/domain/user"
	"github.com/xiebiao/locallibrary/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/locallibrary/pkg/jwt"
)

// IssueTokenUseCase 凭证换取Token用例
// 设计说明：
// 1. 校验用户名密码（领域服务，失败不泄露用户名是否存在）
// 2. 签发携带权限列表的JWT
// 3. 会话写入Redis（记录签发时间，失败不影响签发）
type IssueTokenUseCase struct {
	userService  user.Service
	jwtManager   *jwt.Manager
	sessionStore *redis.SessionStore
}

// NewIssueTokenUseCase 创建Token签发用例
func NewIssueTokenUseCase(
	userService user.Service,
	jwtManager *jwt.Manager,
	sessionStore *redis.SessionStore,
) *IssueTokenUseCase {
	return &IssueTokenUseCase{
		userService:  userService,
		jwtManager:   jwtManager,
		sessionStore: sessionStore,
	}
}

// IssueTokenRequest 签发请求
type IssueTokenRequest struct {
	Username string
	Password string
}

// IssueTokenResponse 签发响应
type IssueTokenResponse struct {
	AccessToken string `json:"access_token"`
}

// Execute 执行签发
func (uc *IssueTokenUseCase) Execute(ctx context.Context, req IssueTokenRequest) (*IssueTokenResponse, error) {
	// 1. 校验凭证
	u, err := uc.userService.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}

	// 2. 签发JWT（权限列表进入Claims，细粒度校验无需再查库）
	token, err := uc.jwtManager.GenerateToken(u.ID, u.Username, u.Permissions)
	if err != nil {
		return nil, err
	}

	// 3. 会话写入Redis（会话保存失败不影响签发）
	sessionData := map[string]interface{}{
		"user_id":   u.ID,
		"username":  u.Username,
		"issued_at": time.Now().Unix(),
	}
	ttl := time.Duration(token.ExpiresIn) * time.Second
	_ = uc.sessionStore.SaveSession(ctx, u.ID, sessionData, ttl)

	return &IssueTokenResponse{AccessToken: token.AccessToken}, nil
}
