package catalog

import (
	"context"

	"github.com/xiebiao/locallibrary/internal/domain/catalog"
)

// LanguageUseCase 语种用例
type LanguageUseCase struct {
	languages catalog.LanguageRepository
}

// NewLanguageUseCase 创建语种用例
func NewLanguageUseCase(languages catalog.LanguageRepository) *LanguageUseCase {
	return &LanguageUseCase{languages: languages}
}

// CreateLanguageRequest 创建语种请求DTO
type CreateLanguageRequest struct {
	Name string
}

// UpdateLanguageRequest 更新语种请求DTO
type UpdateLanguageRequest struct {
	Name *string
}

// List 分页查询语种列表
func (uc *LanguageUseCase) List(ctx context.Context, limit, offset int) ([]*catalog.Language, int64, error) {
	return uc.languages.List(ctx, limit, offset)
}

// Get 根据ID查询语种
func (uc *LanguageUseCase) Get(ctx context.Context, id uint) (*catalog.Language, error) {
	return uc.languages.FindByID(ctx, id)
}

// Create 创建语种
func (uc *LanguageUseCase) Create(ctx context.Context, req CreateLanguageRequest) (*catalog.Language, error) {
	language := catalog.NewLanguage(req.Name)
	if err := uc.languages.Create(ctx, language); err != nil {
		return nil, err
	}
	return language, nil
}

// Update 更新语种（merge-patch）
func (uc *LanguageUseCase) Update(ctx context.Context, id uint, req UpdateLanguageRequest) (*catalog.Language, error) {
	language, err := uc.languages.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		language.Name = *req.Name
	}

	if err := uc.languages.Update(ctx, language); err != nil {
		return nil, err
	}
	return language, nil
}

// Delete 删除语种
func (uc *LanguageUseCase) Delete(ctx context.Context, id uint) error {
	return uc.languages.Delete(ctx, id)
}
