package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/locallibrary/internal/domain/catalog"
	apperrors "github.com/xiebiao/locallibrary/pkg/errors"
)

// genreRepository 体裁仓储实现(MySQL)
type genreRepository struct {
	db *gorm.DB
}

// NewGenreRepository 创建体裁仓储
func NewGenreRepository(db *gorm.DB) catalog.GenreRepository {
	return &genreRepository{db: db}
}

// Create 创建体裁
func (r *genreRepository) Create(ctx context.Context, g *catalog.Genre) error {
	model := &GenreModel{Name: g.Name}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return catalog.ErrGenreNameDuplicate
		}
		return apperrors.Wrap(err, "创建体裁失败")
	}

	g.ID = model.ID
	g.CreatedAt = model.CreatedAt
	g.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找体裁
func (r *genreRepository) FindByID(ctx context.Context, id uint) (*catalog.Genre, error) {
	var model GenreModel
	err := getDB(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrGenreNotFound
		}
		return nil, apperrors.Wrap(err, "查询体裁失败")
	}
	return toGenreEntity(&model), nil
}

// List 分页查询体裁列表
func (r *genreRepository) List(ctx context.Context, limit, offset int) ([]*catalog.Genre, int64, error) {
	var models []GenreModel
	var total int64

	query := getDB(ctx, r.db).Model(&GenreModel{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询体裁总数失败")
	}

	if err := query.Order("id ASC").Limit(limit).Offset(offset).Find(&models).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询体裁列表失败")
	}

	genres := make([]*catalog.Genre, len(models))
	for i := range models {
		genres[i] = toGenreEntity(&models[i])
	}
	return genres, total, nil
}

// Update 更新体裁
func (r *genreRepository) Update(ctx context.Context, g *catalog.Genre) error {
	model := &GenreModel{ID: g.ID, Name: g.Name, CreatedAt: g.CreatedAt}

	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		if isDuplicateError(err) {
			return catalog.ErrGenreNameDuplicate
		}
		return apperrors.Wrap(err, "更新体裁失败")
	}

	g.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete 删除体裁(物理删除)
// 连接表中的关联记录由外键策略处理
func (r *genreRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&GenreModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除体裁失败")
	}
	if result.RowsAffected == 0 {
		return catalog.ErrGenreNotFound
	}
	return nil
}

// toGenreEntity GORM模型 → 领域实体
func toGenreEntity(model *GenreModel) *catalog.Genre {
	return &catalog.Genre{
		ID:        model.ID,
		Name:      model.Name,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
