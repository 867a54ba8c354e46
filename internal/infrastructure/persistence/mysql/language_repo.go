package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/locallibrary/internal/domain/catalog"
	apperrors "github.com/xiebiao/locallibrary/pkg/errors"
)

// languageRepository 语种仓储实现(MySQL)
type languageRepository struct {
	db *gorm.DB
}

// NewLanguageRepository 创建语种仓储
func NewLanguageRepository(db *gorm.DB) catalog.LanguageRepository {
	return &languageRepository{db: db}
}

// Create 创建语种
func (r *languageRepository) Create(ctx context.Context, l *catalog.Language) error {
	model := &LanguageModel{Name: l.Name}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return catalog.ErrLanguageNameDuplicate
		}
		return apperrors.Wrap(err, "创建语种失败")
	}

	l.ID = model.ID
	l.CreatedAt = model.CreatedAt
	l.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找语种
func (r *languageRepository) FindByID(ctx context.Context, id uint) (*catalog.Language, error) {
	var model LanguageModel
	err := getDB(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrLanguageNotFound
		}
		return nil, apperrors.Wrap(err, "查询语种失败")
	}
	return toLanguageEntity(&model), nil
}

// List 分页查询语种列表
func (r *languageRepository) List(ctx context.Context, limit, offset int) ([]*catalog.Language, int64, error) {
	var models []LanguageModel
	var total int64

	query := getDB(ctx, r.db).Model(&LanguageModel{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询语种总数失败")
	}

	if err := query.Order("id ASC").Limit(limit).Offset(offset).Find(&models).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询语种列表失败")
	}

	languages := make([]*catalog.Language, len(models))
	for i := range models {
		languages[i] = toLanguageEntity(&models[i])
	}
	return languages, total, nil
}

// Update 更新语种
func (r *languageRepository) Update(ctx context.Context, l *catalog.Language) error {
	model := &LanguageModel{ID: l.ID, Name: l.Name, CreatedAt: l.CreatedAt}

	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		if isDuplicateError(err) {
			return catalog.ErrLanguageNameDuplicate
		}
		return apperrors.Wrap(err, "更新语种失败")
	}

	l.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete 删除语种(物理删除)
func (r *languageRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&LanguageModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除语种失败")
	}
	if result.RowsAffected == 0 {
		return catalog.ErrLanguageNotFound
	}
	return nil
}

// toLanguageEntity GORM模型 → 领域实体
func toLanguageEntity(model *LanguageModel) *catalog.Language {
	return &catalog.Language{
		ID:        model.ID,
		Name:      model.Name,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
