package catalog

import (
	"context"
	"errors"

	"github.com/xiebiao/locallibrary/internal/domain/catalog"
)

// BookUseCase 图书用例
// 设计说明：
// 1. 创建/更新前先解析所有关联ID，任何一个解析失败则拒绝整个变更，
//    错误消息指明类别与具体ID
// 2. 图书行与体裁关联的写入在同一事务内完成，中途失败不留部分数据
// 3. genre_ids为集合替换语义：请求中缺席保持原集合，出现（包括空列表）则整体替换
type BookUseCase struct {
	books     catalog.BookRepository
	authors   catalog.AuthorRepository
	languages catalog.LanguageRepository
	genres    catalog.GenreRepository
	txManager TxManager
}

// NewBookUseCase 创建图书用例
func NewBookUseCase(
	books catalog.BookRepository,
	authors catalog.AuthorRepository,
	languages catalog.LanguageRepository,
	genres catalog.GenreRepository,
	txManager TxManager,
) *BookUseCase {
	return &BookUseCase{
		books:     books,
		authors:   authors,
		languages: languages,
		genres:    genres,
		txManager: txManager,
	}
}

// CreateBookRequest 创建图书请求DTO
// AuthorID/LanguageID为nil或0表示不关联
type CreateBookRequest struct {
	Title      string
	Summary    string
	ISBN       string
	AuthorID   *uint
	LanguageID *uint
	GenreIDs   []uint
}

// UpdateBookRequest 更新图书请求DTO
// 指针字段为nil表示请求中缺席，保持原值；GenreIDs出现则整体替换体裁集合
type UpdateBookRequest struct {
	Title      *string
	Summary    *string
	ISBN       *string
	AuthorID   *uint
	LanguageID *uint
	GenreIDs   *[]uint
}

// List 分页查询图书列表
func (uc *BookUseCase) List(ctx context.Context, limit, offset int) ([]*catalog.Book, int64, error) {
	return uc.books.List(ctx, limit, offset)
}

// Get 根据ID查询图书
func (uc *BookUseCase) Get(ctx context.Context, id uint) (*catalog.Book, error) {
	return uc.books.FindByID(ctx, id)
}

// Create 创建图书
// 流程：解析关联 → 事务内写入图书行与体裁关联
func (uc *BookUseCase) Create(ctx context.Context, req CreateBookRequest) (*catalog.Book, error) {
	author, err := uc.resolveAuthor(ctx, req.AuthorID)
	if err != nil {
		return nil, err
	}

	language, err := uc.resolveLanguage(ctx, req.LanguageID)
	if err != nil {
		return nil, err
	}

	genreSet, err := uc.resolveGenres(ctx, req.GenreIDs)
	if err != nil {
		return nil, err
	}

	book := catalog.NewBook(req.Title, req.Summary, req.ISBN, author, language, genreSet)

	err = uc.txManager.Transaction(ctx, func(ctx context.Context) error {
		return uc.books.Create(ctx, book)
	})
	if err != nil {
		return nil, err
	}
	return book, nil
}

// Update 更新图书（merge-patch）
func (uc *BookUseCase) Update(ctx context.Context, id uint, req UpdateBookRequest) (*catalog.Book, error) {
	book, err := uc.books.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		book.Title = *req.Title
	}
	if req.Summary != nil {
		book.Summary = *req.Summary
	}
	if req.ISBN != nil {
		book.ISBN = *req.ISBN
	}

	// 关联ID出现即必须解析成功（更新时0不是"清空"的约定，解析失败同样拒绝）
	if req.AuthorID != nil {
		author, err := uc.authors.FindByID(ctx, *req.AuthorID)
		if err != nil {
			if errors.Is(err, catalog.ErrAuthorNotFound) {
				return nil, catalog.RelatedAuthorNotFound(*req.AuthorID)
			}
			return nil, err
		}
		book.Author = author
	}
	if req.LanguageID != nil {
		language, err := uc.languages.FindByID(ctx, *req.LanguageID)
		if err != nil {
			if errors.Is(err, catalog.ErrLanguageNotFound) {
				return nil, catalog.RelatedLanguageNotFound(*req.LanguageID)
			}
			return nil, err
		}
		book.Language = language
	}

	var genreSet []catalog.Genre
	replaceGenres := req.GenreIDs != nil
	if replaceGenres {
		genreSet, err = uc.resolveGenres(ctx, *req.GenreIDs)
		if err != nil {
			return nil, err
		}
	}

	err = uc.txManager.Transaction(ctx, func(ctx context.Context) error {
		if err := uc.books.Update(ctx, book); err != nil {
			return err
		}
		if replaceGenres {
			if err := uc.books.ReplaceGenres(ctx, book.ID, genreSet); err != nil {
				return err
			}
			book.Genres = genreSet
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return book, nil
}

// Delete 删除图书
func (uc *BookUseCase) Delete(ctx context.Context, id uint) error {
	return uc.books.Delete(ctx, id)
}

// resolveAuthor 解析作者引用（nil或0表示不关联）
func (uc *BookUseCase) resolveAuthor(ctx context.Context, id *uint) (*catalog.Author, error) {
	if id == nil || *id == 0 {
		return nil, nil
	}
	author, err := uc.authors.FindByID(ctx, *id)
	if err != nil {
		if errors.Is(err, catalog.ErrAuthorNotFound) {
			return nil, catalog.RelatedAuthorNotFound(*id)
		}
		return nil, err
	}
	return author, nil
}

// resolveLanguage 解析语种引用（nil或0表示不关联）
func (uc *BookUseCase) resolveLanguage(ctx context.Context, id *uint) (*catalog.Language, error) {
	if id == nil || *id == 0 {
		return nil, nil
	}
	language, err := uc.languages.FindByID(ctx, *id)
	if err != nil {
		if errors.Is(err, catalog.ErrLanguageNotFound) {
			return nil, catalog.RelatedLanguageNotFound(*id)
		}
		return nil, err
	}
	return language, nil
}

// resolveGenres 逐个解析体裁ID，去重后返回集合
// 第一个解析失败的ID即终止并拒绝整个变更
func (uc *BookUseCase) resolveGenres(ctx context.Context, ids []uint) ([]catalog.Genre, error) {
	seen := make(map[uint]bool, len(ids))
	genreSet := make([]catalog.Genre, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true

		genre, err := uc.genres.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, catalog.ErrGenreNotFound) {
				return nil, catalog.RelatedGenreNotFound(id)
			}
			return nil, err
		}
		genreSet = append(genreSet, *genre)
	}
	return genreSet, nil
}
