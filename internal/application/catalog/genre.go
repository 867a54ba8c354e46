package catalog

import (
	"context"

	"github.com/xiebiao/locallibrary/internal/domain/catalog"
)

// GenreUseCase 体裁用例
type GenreUseCase struct {
	genres catalog.GenreRepository
}

// NewGenreUseCase 创建体裁用例
func NewGenreUseCase(genres catalog.GenreRepository) *GenreUseCase {
	return &GenreUseCase{genres: genres}
}

// CreateGenreRequest 创建体裁请求DTO
type CreateGenreRequest struct {
	Name string
}

// UpdateGenreRequest 更新体裁请求DTO
type UpdateGenreRequest struct {
	Name *string
}

// List 分页查询体裁列表
func (uc *GenreUseCase) List(ctx context.Context, limit, offset int) ([]*catalog.Genre, int64, error) {
	return uc.genres.List(ctx, limit, offset)
}

// Get 根据ID查询体裁
func (uc *GenreUseCase) Get(ctx context.Context, id uint) (*catalog.Genre, error) {
	return uc.genres.FindByID(ctx, id)
}

// Create 创建体裁
func (uc *GenreUseCase) Create(ctx context.Context, req CreateGenreRequest) (*catalog.Genre, error) {
	genre := catalog.NewGenre(req.Name)
	if err := uc.genres.Create(ctx, genre); err != nil {
		return nil, err
	}
	return genre, nil
}

// Update 更新体裁（merge-patch）
func (uc *GenreUseCase) Update(ctx context.Context, id uint, req UpdateGenreRequest) (*catalog.Genre, error) {
	genre, err := uc.genres.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		genre.Name = *req.Name
	}

	if err := uc.genres.Update(ctx, genre); err != nil {
		return nil, err
	}
	return genre, nil
}

// Delete 删除体裁
func (uc *GenreUseCase) Delete(ctx context.Context, id uint) error {
	return uc.genres.Delete(ctx, id)
}
