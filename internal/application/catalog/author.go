package catalog

import (
	"context"
	"time"

	"github.com/xiebiao/locallibrary/internal/domain/catalog"
)

// AuthorUseCase 作者用例
// 设计说明：
// 1. 提供作者资源的list/get/create/update/delete五个操作
// 2. update为merge-patch语义：请求中缺席的字段保持原值
type AuthorUseCase struct {
	authors catalog.AuthorRepository
}

// NewAuthorUseCase 创建作者用例
func NewAuthorUseCase(authors catalog.AuthorRepository) *AuthorUseCase {
	return &AuthorUseCase{authors: authors}
}

// CreateAuthorRequest 创建作者请求DTO
type CreateAuthorRequest struct {
	FirstName   string
	LastName    string
	DateOfBirth *time.Time
	DateOfDeath *time.Time
}

// UpdateAuthorRequest 更新作者请求DTO
// 指针字段为nil表示请求中缺席，保持原值
type UpdateAuthorRequest struct {
	FirstName   *string
	LastName    *string
	DateOfBirth *time.Time
	DateOfDeath *time.Time
}

// List 分页查询作者列表
func (uc *AuthorUseCase) List(ctx context.Context, limit, offset int) ([]*catalog.Author, int64, error) {
	return uc.authors.List(ctx, limit, offset)
}

// Get 根据ID查询作者
func (uc *AuthorUseCase) Get(ctx context.Context, id uint) (*catalog.Author, error) {
	return uc.authors.FindByID(ctx, id)
}

// Create 创建作者
func (uc *AuthorUseCase) Create(ctx context.Context, req CreateAuthorRequest) (*catalog.Author, error) {
	author := catalog.NewAuthor(req.FirstName, req.LastName, req.DateOfBirth, req.DateOfDeath)
	if err := uc.authors.Create(ctx, author); err != nil {
		return nil, err
	}
	return author, nil
}

// Update 更新作者（merge-patch）
func (uc *AuthorUseCase) Update(ctx context.Context, id uint, req UpdateAuthorRequest) (*catalog.Author, error) {
	author, err := uc.authors.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		author.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		author.LastName = *req.LastName
	}
	if req.DateOfBirth != nil {
		author.DateOfBirth = req.DateOfBirth
	}
	if req.DateOfDeath != nil {
		author.DateOfDeath = req.DateOfDeath
	}

	if err := uc.authors.Update(ctx, author); err != nil {
		return nil, err
	}
	return author, nil
}

// Delete 删除作者
func (uc *AuthorUseCase) Delete(ctx context.Context, id uint) error {
	return uc.authors.Delete(ctx, id)
}
