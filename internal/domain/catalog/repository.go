package catalog

import (
	"context"
)

// 仓储接口定义（依赖倒置原则）
// 设计说明：
// 1. 由domain层定义接口，infrastructure层实现
// 2. 便于Mock测试，不依赖具体数据库实现
// 3. List统一返回(当前页数据, 总数)，排序为主键序

// AuthorRepository 作者仓储接口
type AuthorRepository interface {
	// Create 创建作者，回填自增ID
	Create(ctx context.Context, author *Author) error

	// FindByID 根据ID查找作者，不存在返回ErrAuthorNotFound
	FindByID(ctx context.Context, id uint) (*Author, error)

	// List 分页查询作者列表
	List(ctx context.Context, limit, offset int) ([]*Author, int64, error)

	// Update 更新作者（全字段保存，merge-patch在应用层完成）
	Update(ctx context.Context, author *Author) error

	// Delete 删除作者（物理删除），不存在返回ErrAuthorNotFound
	Delete(ctx context.Context, id uint) error
}

// GenreRepository 体裁仓储接口
type GenreRepository interface {
	Create(ctx context.Context, genre *Genre) error
	FindByID(ctx context.Context, id uint) (*Genre, error)
	List(ctx context.Context, limit, offset int) ([]*Genre, int64, error)
	Update(ctx context.Context, genre *Genre) error
	Delete(ctx context.Context, id uint) error
}

// LanguageRepository 语种仓储接口
type LanguageRepository interface {
	Create(ctx context.Context, language *Language) error
	FindByID(ctx context.Context, id uint) (*Language, error)
	List(ctx context.Context, limit, offset int) ([]*Language, int64, error)
	Update(ctx context.Context, language *Language) error
	Delete(ctx context.Context, id uint) error
}

// BookRepository 图书仓储接口
type BookRepository interface {
	// Create 创建图书及其体裁关联
	// 注意：必须在同一事务内完成，任何一步失败不得留下部分数据
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找图书（预加载作者/语种/体裁），不存在返回ErrBookNotFound
	FindByID(ctx context.Context, id uint) (*Book, error)

	// List 分页查询图书列表（预加载关联）
	List(ctx context.Context, limit, offset int) ([]*Book, int64, error)

	// Update 更新图书标量字段与作者/语种引用（不触碰体裁关联）
	Update(ctx context.Context, book *Book) error

	// ReplaceGenres 整体替换图书的体裁集合（空集合表示清空）
	ReplaceGenres(ctx context.Context, bookID uint, genres []Genre) error

	// Delete 删除图书（物理删除），不存在返回ErrBookNotFound
	Delete(ctx context.Context, id uint) error
}

// BookInstanceRepository 图书副本仓储接口
type BookInstanceRepository interface {
	Create(ctx context.Context, instance *BookInstance) error

	// FindByID 根据副本标识查找（预加载所属图书），不存在返回ErrInstanceNotFound
	FindByID(ctx context.Context, id InstanceID) (*BookInstance, error)

	List(ctx context.Context, limit, offset int) ([]*BookInstance, int64, error)

	// Update 更新副本（全字段保存，可将应还日期/借阅人置空）
	Update(ctx context.Context, instance *BookInstance) error

	Delete(ctx context.Context, id InstanceID) error
}
