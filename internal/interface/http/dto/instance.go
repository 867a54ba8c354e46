package dto

import (
	appcatalog "github.com/xiebiao/locallibrary/internal/application/catalog"
	"github.com/xiebiao/locallibrary/internal/domain/catalog"
)

// InstanceCreateRequest 创建副本请求
// status为空表示默认在架可借；borrower_id为0或缺席表示无借阅人
type InstanceCreateRequest struct {
	BookID     uint   `json:"book_id" binding:"required"`
	Imprint    string `json:"imprint" binding:"required" example:"人民文学出版社 2021"`
	DueBack    *Date  `json:"due_back"`
	BorrowerID *uint  `json:"borrower_id"`
	Status     string `json:"status" example:"a"`
}

// ToUseCase 转换为应用层请求
func (r *InstanceCreateRequest) ToUseCase() appcatalog.CreateInstanceRequest {
	return appcatalog.CreateInstanceRequest{
		BookID:     r.BookID,
		Imprint:    r.Imprint,
		DueBack:    toTimePtr(r.DueBack),
		BorrowerID: r.BorrowerID,
		Status:     r.Status,
	}
}

// InstanceUpdateRequest 更新副本请求（字段缺席表示保持原值）
// borrower_id三态：缺席=不变、0=清空借阅人、正数=设置借阅人
type InstanceUpdateRequest struct {
	BookID     *uint   `json:"book_id"`
	Imprint    *string `json:"imprint"`
	DueBack    *Date   `json:"due_back"`
	BorrowerID *uint   `json:"borrower_id"`
	Status     *string `json:"status"`
}

// ToUseCase 转换为应用层请求
func (r *InstanceUpdateRequest) ToUseCase() appcatalog.UpdateInstanceRequest {
	return appcatalog.UpdateInstanceRequest{
		BookID:     r.BookID,
		Imprint:    r.Imprint,
		DueBack:    toTimePtr(r.DueBack),
		BorrowerID: r.BorrowerID,
		Status:     r.Status,
	}
}

// InstanceResponse 副本响应（所属图书完整内嵌，借阅人仅输出用户ID）
type InstanceResponse struct {
	ID       string        `json:"id"`
	Book     *BookResponse `json:"book"`
	Imprint  string        `json:"imprint"`
	DueBack  *string       `json:"due_back"`
	Borrower *uint         `json:"borrower"`
	Status   string        `json:"status"`
}

// NewInstanceResponse 由领域实体构造响应
func NewInstanceResponse(instance *catalog.BookInstance) *InstanceResponse {
	resp := &InstanceResponse{
		ID:       instance.ID.String(),
		Imprint:  instance.Imprint,
		DueBack:  formatDatePtr(instance.DueBack),
		Borrower: instance.BorrowerID,
		Status:   string(instance.Status),
	}
	if instance.Book != nil {
		resp.Book = NewBookResponse(instance.Book)
	}
	return resp
}

// NewInstanceResponseList 批量转换
func NewInstanceResponseList(instances []*catalog.BookInstance) []*InstanceResponse {
	items := make([]*InstanceResponse, 0, len(instances))
	for _, bi := range instances {
		items = append(items, NewInstanceResponse(bi))
	}
	return items
}

// TokenRequest 凭证换取Token请求
type TokenRequest struct {
	Username string `json:"username" binding:"required" example:"librarian"`
	Password string `json:"password" binding:"required" example:"123456"`
}

// TokenResponse Token响应
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}
