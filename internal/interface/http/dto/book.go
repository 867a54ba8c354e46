package dto

import (
	appcatalog "github.com/xiebiao/locallibrary/internal/application/catalog"
	"github.com/xiebiao/locallibrary/internal/domain/catalog"
)

// BookCreateRequest 创建图书请求
// author_id/language_id为0或缺席表示不关联
type BookCreateRequest struct {
	Title      string `json:"title" binding:"required" example:"呐喊"`
	Summary    string `json:"summary" binding:"required"`
	ISBN       string `json:"isbn" binding:"required" example:"9787020008734"`
	AuthorID   *uint  `json:"author_id"`
	LanguageID *uint  `json:"language_id"`
	GenreIDs   []uint `json:"genre_ids"`
}

// ToUseCase 转换为应用层请求
func (r *BookCreateRequest) ToUseCase() appcatalog.CreateBookRequest {
	return appcatalog.CreateBookRequest{
		Title:      r.Title,
		Summary:    r.Summary,
		ISBN:       r.ISBN,
		AuthorID:   r.AuthorID,
		LanguageID: r.LanguageID,
		GenreIDs:   r.GenreIDs,
	}
}

// BookUpdateRequest 更新图书请求（字段缺席表示保持原值）
// genre_ids出现（包括空列表）表示整体替换体裁集合
type BookUpdateRequest struct {
	Title      *string `json:"title"`
	Summary    *string `json:"summary"`
	ISBN       *string `json:"isbn"`
	AuthorID   *uint   `json:"author_id"`
	LanguageID *uint   `json:"language_id"`
	GenreIDs   *[]uint `json:"genre_ids"`
}

// ToUseCase 转换为应用层请求
func (r *BookUpdateRequest) ToUseCase() appcatalog.UpdateBookRequest {
	return appcatalog.UpdateBookRequest{
		Title:      r.Title,
		Summary:    r.Summary,
		ISBN:       r.ISBN,
		AuthorID:   r.AuthorID,
		LanguageID: r.LanguageID,
		GenreIDs:   r.GenreIDs,
	}
}

// BookResponse 图书响应（关联对象完整内嵌）
type BookResponse struct {
	ID       uint              `json:"id"`
	Title    string            `json:"title"`
	Summary  string            `json:"summary"`
	ISBN     string            `json:"isbn"`
	Author   *AuthorResponse   `json:"author"`
	Language *LanguageResponse `json:"language"`
	Genre    []*GenreResponse  `json:"genre"`
}

// NewBookResponse 由领域实体构造响应
func NewBookResponse(book *catalog.Book) *BookResponse {
	resp := &BookResponse{
		ID:      book.ID,
		Title:   book.Title,
		Summary: book.Summary,
		ISBN:    book.ISBN,
		Genre:   make([]*GenreResponse, 0, len(book.Genres)),
	}
	if book.Author != nil {
		resp.Author = NewAuthorResponse(book.Author)
	}
	if book.Language != nil {
		resp.Language = NewLanguageResponse(book.Language)
	}
	for i := range book.Genres {
		resp.Genre = append(resp.Genre, NewGenreResponse(&book.Genres[i]))
	}
	return resp
}

// NewBookResponseList 批量转换
func NewBookResponseList(books []*catalog.Book) []*BookResponse {
	items := make([]*BookResponse, 0, len(books))
	for _, b := range books {
		items = append(items, NewBookResponse(b))
	}
	return items
}
