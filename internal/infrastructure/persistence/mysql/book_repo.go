package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/locallibrary/internal/domain/catalog"
	apperrors "github.com/xiebiao/locallibrary/pkg/errors"
)

// bookRepository 图书仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/catalog定义的BookRepository接口
// 2. 图书涉及books表与book_genres连接表，写操作需配合TxManager在事务内执行
// 3. 查询统一预加载作者/语种/体裁，响应需要嵌套完整关联对象
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) catalog.BookRepository {
	return &bookRepository{db: db}
}

// Create 创建图书及其体裁关联
func (r *bookRepository) Create(ctx context.Context, b *catalog.Book) error {
	model := toBookModel(b)

	// Omit("Genres.*")：只写连接表记录，不更新已存在的体裁行
	if err := getDB(ctx, r.db).Omit("Genres.*").Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建图书失败")
	}

	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找图书(预加载关联)
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*catalog.Book, error) {
	var model BookModel
	err := getDB(ctx, r.db).
		Preload("Author").
		Preload("Language").
		Preload("Genres").
		First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}
	return toBookEntity(&model), nil
}

// List 分页查询图书列表(预加载关联)
func (r *bookRepository) List(ctx context.Context, limit, offset int) ([]*catalog.Book, int64, error) {
	var models []BookModel
	var total int64

	query := getDB(ctx, r.db).Model(&BookModel{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书总数失败")
	}

	err := query.
		Preload("Author").
		Preload("Language").
		Preload("Genres").
		Order("id ASC").Limit(limit).Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书列表失败")
	}

	books := make([]*catalog.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books, total, nil
}

// Update 更新图书标量字段与作者/语种引用
// 不触碰体裁关联，整体替换由ReplaceGenres完成
func (r *bookRepository) Update(ctx context.Context, b *catalog.Book) error {
	model := toBookModel(b)
	model.ID = b.ID
	model.CreatedAt = b.CreatedAt

	// Select指定列：作者/语种可被置空，必须显式写回NULL
	err := getDB(ctx, r.db).Model(&BookModel{ID: b.ID}).
		Select("Title", "Summary", "ISBN", "AuthorID", "LanguageID").
		Updates(model).Error
	if err != nil {
		return apperrors.Wrap(err, "更新图书失败")
	}
	return nil
}

// ReplaceGenres 整体替换图书的体裁集合
// 空集合表示清空所有关联
func (r *bookRepository) ReplaceGenres(ctx context.Context, bookID uint, genres []catalog.Genre) error {
	models := make([]GenreModel, len(genres))
	for i, g := range genres {
		models[i] = GenreModel{ID: g.ID}
	}

	err := getDB(ctx, r.db).
		Model(&BookModel{ID: bookID}).
		Omit("Genres.*").
		Association("Genres").
		Replace(&models)
	if err != nil {
		return apperrors.Wrap(err, "替换图书体裁失败")
	}
	return nil
}

// Delete 删除图书(物理删除)
func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Select("Genres").Delete(&BookModel{ID: id})
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除图书失败")
	}
	if result.RowsAffected == 0 {
		return catalog.ErrBookNotFound
	}
	return nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

// toBookModel 领域实体 → GORM模型
// 关联实体已在应用层解析，这里只取外键与体裁ID
func toBookModel(b *catalog.Book) *BookModel {
	model := &BookModel{
		Title:   b.Title,
		Summary: b.Summary,
		ISBN:    b.ISBN,
	}
	if b.Author != nil {
		model.AuthorID = &b.Author.ID
	}
	if b.Language != nil {
		model.LanguageID = &b.Language.ID
	}
	for _, g := range b.Genres {
		model.Genres = append(model.Genres, GenreModel{ID: g.ID})
	}
	return model
}

// toBookEntity GORM模型 → 领域实体
func toBookEntity(model *BookModel) *catalog.Book {
	b := &catalog.Book{
		ID:        model.ID,
		Title:     model.Title,
		Summary:   model.Summary,
		ISBN:      model.ISBN,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
	if model.Author != nil {
		b.Author = toAuthorEntity(model.Author)
	}
	if model.Language != nil {
		b.Language = toLanguageEntity(model.Language)
	}
	for i := range model.Genres {
		b.Genres = append(b.Genres, *toGenreEntity(&model.Genres[i]))
	}
	return b
}
