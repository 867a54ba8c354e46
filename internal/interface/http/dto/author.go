package dto

import (
	appcatalog "github.com/xiebiao/locallibrary/internal/application/catalog"
	"github.com/xiebiao/locallibrary/internal/domain/catalog"
)

// AuthorCreateRequest 创建作者请求
type AuthorCreateRequest struct {
	FirstName   string `json:"first_name" binding:"required" example:"鲁"`
	LastName    string `json:"last_name" binding:"required" example:"迅"`
	DateOfBirth *Date  `json:"date_of_birth"`
	DateOfDeath *Date  `json:"date_of_death"`
}

// ToUseCase 转换为应用层请求
func (r *AuthorCreateRequest) ToUseCase() appcatalog.CreateAuthorRequest {
	return appcatalog.CreateAuthorRequest{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		DateOfBirth: toTimePtr(r.DateOfBirth),
		DateOfDeath: toTimePtr(r.DateOfDeath),
	}
}

// AuthorUpdateRequest 更新作者请求（字段缺席表示保持原值）
type AuthorUpdateRequest struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	DateOfBirth *Date   `json:"date_of_birth"`
	DateOfDeath *Date   `json:"date_of_death"`
}

// ToUseCase 转换为应用层请求
func (r *AuthorUpdateRequest) ToUseCase() appcatalog.UpdateAuthorRequest {
	return appcatalog.UpdateAuthorRequest{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		DateOfBirth: toTimePtr(r.DateOfBirth),
		DateOfDeath: toTimePtr(r.DateOfDeath),
	}
}

// AuthorResponse 作者响应
type AuthorResponse struct {
	ID          uint    `json:"id"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	DateOfBirth *string `json:"date_of_birth"`
	DateOfDeath *string `json:"date_of_death"`
}

// NewAuthorResponse 由领域实体构造响应
func NewAuthorResponse(author *catalog.Author) *AuthorResponse {
	return &AuthorResponse{
		ID:          author.ID,
		FirstName:   author.FirstName,
		LastName:    author.LastName,
		DateOfBirth: formatDatePtr(author.DateOfBirth),
		DateOfDeath: formatDatePtr(author.DateOfDeath),
	}
}

// NewAuthorResponseList 批量转换
func NewAuthorResponseList(authors []*catalog.Author) []*AuthorResponse {
	items := make([]*AuthorResponse, 0, len(authors))
	for _, a := range authors {
		items = append(items, NewAuthorResponse(a))
	}
	return items
}
