package user

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/xiebiao/locallibrary/pkg/errors"
)

// ErrUserNotFound 用户不存在
var ErrUserNotFound = apperrors.New(apperrors.ErrCodeNotFound, "用户不存在")

// Service 用户领域服务
// 设计说明：
// 1. Service包含不属于单个实体的业务逻辑（凭证校验）
// 2. Service依赖Repository接口，不依赖具体实现（依赖倒置）
type Service interface {
	// Authenticate 校验用户名密码
	// 用户不存在与密码错误返回同一个错误，不泄露用户名是否存在
	Authenticate(ctx context.Context, username, password string) (*User, error)
}

type service struct {
	repo Repository
}

// NewService 创建用户服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Authenticate 校验用户名密码
func (s *service) Authenticate(ctx context.Context, username, password string) (*User, error) {
	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			// 统一返回凭证错误，避免用户名枚举
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.Wrap(err, "密码校验失败")
	}

	return u, nil
}
