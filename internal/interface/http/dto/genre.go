package dto

import (
	appcatalog "github.com/xiebiao/locallibrary/internal/application/catalog"
	"github.com/xiebiao/locallibrary/internal/domain/catalog"
)

// GenreCreateRequest 创建体裁请求
type GenreCreateRequest struct {
	Name string `json:"name" binding:"required" example:"科幻"`
}

// ToUseCase 转换为应用层请求
func (r *GenreCreateRequest) ToUseCase() appcatalog.CreateGenreRequest {
	return appcatalog.CreateGenreRequest{Name: r.Name}
}

// GenreUpdateRequest 更新体裁请求
type GenreUpdateRequest struct {
	Name *string `json:"name"`
}

// ToUseCase 转换为应用层请求
func (r *GenreUpdateRequest) ToUseCase() appcatalog.UpdateGenreRequest {
	return appcatalog.UpdateGenreRequest{Name: r.Name}
}

// GenreResponse 体裁响应
type GenreResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// NewGenreResponse 由领域实体构造响应
func NewGenreResponse(genre *catalog.Genre) *GenreResponse {
	return &GenreResponse{ID: genre.ID, Name: genre.Name}
}

// NewGenreResponseList 批量转换
func NewGenreResponseList(genres []*catalog.Genre) []*GenreResponse {
	items := make([]*GenreResponse, 0, len(genres))
	for _, g := range genres {
		items = append(items, NewGenreResponse(g))
	}
	return items
}

// LanguageCreateRequest 创建语种请求
type LanguageCreateRequest struct {
	Name string `json:"name" binding:"required" example:"中文"`
}

// ToUseCase 转换为应用层请求
func (r *LanguageCreateRequest) ToUseCase() appcatalog.CreateLanguageRequest {
	return appcatalog.CreateLanguageRequest{Name: r.Name}
}

// LanguageUpdateRequest 更新语种请求
type LanguageUpdateRequest struct {
	Name *string `json:"name"`
}

// ToUseCase 转换为应用层请求
func (r *LanguageUpdateRequest) ToUseCase() appcatalog.UpdateLanguageRequest {
	return appcatalog.UpdateLanguageRequest{Name: r.Name}
}

// LanguageResponse 语种响应
type LanguageResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// NewLanguageResponse 由领域实体构造响应
func NewLanguageResponse(language *catalog.Language) *LanguageResponse {
	return &LanguageResponse{ID: language.ID, Name: language.Name}
}

// NewLanguageResponseList 批量转换
func NewLanguageResponseList(languages []*catalog.Language) []*LanguageResponse {
	items := make([]*LanguageResponse, 0, len(languages))
	for _, l := range languages {
		items = append(items, NewLanguageResponse(l))
	}
	return items
}
