package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/locallibrary/internal/domain/catalog"
	apperrors "github.com/xiebiao/locallibrary/pkg/errors"
)

// instanceRepository 图书副本仓储实现(MySQL)
// 设计说明:
// 1. 主键是UUID文本形式，领域层的InstanceID在这里格式化/解析
// 2. 查询预加载所属图书及其关联，响应需要嵌套完整图书对象
type instanceRepository struct {
	db *gorm.DB
}

// NewBookInstanceRepository 创建图书副本仓储
func NewBookInstanceRepository(db *gorm.DB) catalog.BookInstanceRepository {
	return &instanceRepository{db: db}
}

// Create 创建副本
func (r *instanceRepository) Create(ctx context.Context, bi *catalog.BookInstance) error {
	model := toInstanceModel(bi)

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建图书副本失败")
	}

	bi.CreatedAt = model.CreatedAt
	bi.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据副本标识查找(预加载所属图书)
func (r *instanceRepository) FindByID(ctx context.Context, id catalog.InstanceID) (*catalog.BookInstance, error) {
	var model BookInstanceModel
	err := getDB(ctx, r.db).
		Preload("Book").
		Preload("Book.Author").
		Preload("Book.Language").
		Preload("Book.Genres").
		Where("id = ?", id.String()).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrInstanceNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书副本失败")
	}
	return toInstanceEntity(&model)
}

// List 分页查询副本列表(预加载所属图书)
func (r *instanceRepository) List(ctx context.Context, limit, offset int) ([]*catalog.BookInstance, int64, error) {
	var models []BookInstanceModel
	var total int64

	query := getDB(ctx, r.db).Model(&BookInstanceModel{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询副本总数失败")
	}

	err := query.
		Preload("Book").
		Preload("Book.Author").
		Preload("Book.Language").
		Preload("Book.Genres").
		Order("id ASC").Limit(limit).Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询副本列表失败")
	}

	instances := make([]*catalog.BookInstance, 0, len(models))
	for i := range models {
		bi, err := toInstanceEntity(&models[i])
		if err != nil {
			return nil, 0, err
		}
		instances = append(instances, bi)
	}
	return instances, total, nil
}

// Update 更新副本(全字段保存)
// 应还日期与借阅人允许写回NULL(归还登记会同时清空两者)
func (r *instanceRepository) Update(ctx context.Context, bi *catalog.BookInstance) error {
	model := toInstanceModel(bi)
	model.CreatedAt = bi.CreatedAt

	err := getDB(ctx, r.db).Model(&BookInstanceModel{ID: bi.ID.String()}).
		Select("BookID", "Imprint", "DueBack", "BorrowerID", "Status").
		Updates(model).Error
	if err != nil {
		return apperrors.Wrap(err, "更新图书副本失败")
	}
	return nil
}

// Delete 删除副本(物理删除)
func (r *instanceRepository) Delete(ctx context.Context, id catalog.InstanceID) error {
	result := getDB(ctx, r.db).Where("id = ?", id.String()).Delete(&BookInstanceModel{})
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除图书副本失败")
	}
	if result.RowsAffected == 0 {
		return catalog.ErrInstanceNotFound
	}
	return nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

// toInstanceModel 领域实体 → GORM模型
func toInstanceModel(bi *catalog.BookInstance) *BookInstanceModel {
	model := &BookInstanceModel{
		ID:         bi.ID.String(),
		Imprint:    bi.Imprint,
		DueBack:    bi.DueBack,
		BorrowerID: bi.BorrowerID,
		Status:     string(bi.Status),
	}
	if bi.Book != nil {
		model.BookID = bi.Book.ID
	}
	return model
}

// toInstanceEntity GORM模型 → 领域实体
// 库中的标识理应总是合法UUID，解析失败说明数据被外部破坏
func toInstanceEntity(model *BookInstanceModel) (*catalog.BookInstance, error) {
	id, err := catalog.ParseInstanceID(model.ID)
	if err != nil {
		return nil, apperrors.Wrapf(err, "副本标识损坏: %s", model.ID)
	}

	bi := &catalog.BookInstance{
		ID:         id,
		Imprint:    model.Imprint,
		DueBack:    model.DueBack,
		BorrowerID: model.BorrowerID,
		Status:     catalog.Status(model.Status),
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
	if model.Book != nil {
		bi.Book = toBookEntity(model.Book)
	}
	return bi, nil
}
