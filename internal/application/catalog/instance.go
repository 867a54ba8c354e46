package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/xiebiao/locallibrary/internal/domain/catalog"
	"github.com/xiebiao/locallibrary/internal/domain/user"
)

// BookInstanceUseCase 图书副本用例
// 设计说明：
// 1. 副本标识为UUID，parse失败与记录不存在同码（对外均为"不存在"）
// 2. borrower_id三态约定（仅更新时）：缺席=不变、0=清空借阅人、正数=解析并设置
// 3. MarkReturned是系统中唯一的显式状态迁移，权限校验在接口层完成
type BookInstanceUseCase struct {
	instances catalog.BookInstanceRepository
	books     catalog.BookRepository
	users     user.Repository
}

// NewBookInstanceUseCase 创建图书副本用例
func NewBookInstanceUseCase(
	instances catalog.BookInstanceRepository,
	books catalog.BookRepository,
	users user.Repository,
) *BookInstanceUseCase {
	return &BookInstanceUseCase{
		instances: instances,
		books:     books,
		users:     users,
	}
}

// CreateInstanceRequest 创建副本请求DTO
// Status为空表示默认在架可借；BorrowerID为nil或0表示无借阅人
type CreateInstanceRequest struct {
	BookID     uint
	Imprint    string
	DueBack    *time.Time
	BorrowerID *uint
	Status     string
}

// UpdateInstanceRequest 更新副本请求DTO
// 指针字段为nil表示请求中缺席，保持原值
type UpdateInstanceRequest struct {
	BookID     *uint
	Imprint    *string
	DueBack    *time.Time
	BorrowerID *uint
	Status     *string
}

// List 分页查询副本列表
func (uc *BookInstanceUseCase) List(ctx context.Context, limit, offset int) ([]*catalog.BookInstance, int64, error) {
	return uc.instances.List(ctx, limit, offset)
}

// Get 根据副本标识查询
func (uc *BookInstanceUseCase) Get(ctx context.Context, id catalog.InstanceID) (*catalog.BookInstance, error) {
	return uc.instances.FindByID(ctx, id)
}

// Create 创建副本
func (uc *BookInstanceUseCase) Create(ctx context.Context, req CreateInstanceRequest) (*catalog.BookInstance, error) {
	book, err := uc.books.FindByID(ctx, req.BookID)
	if err != nil {
		if errors.Is(err, catalog.ErrBookNotFound) {
			return nil, catalog.RelatedBookNotFound(req.BookID)
		}
		return nil, err
	}

	var borrowerID *uint
	if req.BorrowerID != nil && *req.BorrowerID > 0 {
		if err := uc.resolveBorrower(ctx, *req.BorrowerID); err != nil {
			return nil, err
		}
		borrowerID = req.BorrowerID
	}

	status := catalog.Status(req.Status)
	if req.Status == "" {
		status = catalog.StatusAvailable
	}
	if !status.IsValid() {
		return nil, catalog.ErrInvalidStatus
	}

	instance := catalog.NewBookInstance(book, req.Imprint, req.DueBack, borrowerID, status)
	if err := uc.instances.Create(ctx, instance); err != nil {
		return nil, err
	}
	return instance, nil
}

// Update 更新副本（merge-patch）
func (uc *BookInstanceUseCase) Update(ctx context.Context, id catalog.InstanceID, req UpdateInstanceRequest) (*catalog.BookInstance, error) {
	instance, err := uc.instances.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.BookID != nil {
		book, err := uc.books.FindByID(ctx, *req.BookID)
		if err != nil {
			if errors.Is(err, catalog.ErrBookNotFound) {
				return nil, catalog.RelatedBookNotFound(*req.BookID)
			}
			return nil, err
		}
		instance.Book = book
	}
	if req.Imprint != nil {
		instance.Imprint = *req.Imprint
	}
	if req.DueBack != nil {
		instance.DueBack = req.DueBack
	}
	if req.Status != nil {
		status := catalog.Status(*req.Status)
		if !status.IsValid() {
			return nil, catalog.ErrInvalidStatus
		}
		instance.Status = status
	}

	// borrower_id三态：缺席=不变、0=清空、正数=解析并设置
	if req.BorrowerID != nil {
		if *req.BorrowerID == 0 {
			instance.BorrowerID = nil
		} else {
			if err := uc.resolveBorrower(ctx, *req.BorrowerID); err != nil {
				return nil, err
			}
			instance.BorrowerID = req.BorrowerID
		}
	}

	instance.UpdatedAt = time.Now()
	if err := uc.instances.Update(ctx, instance); err != nil {
		return nil, err
	}
	return instance, nil
}

// Delete 删除副本
func (uc *BookInstanceUseCase) Delete(ctx context.Context, id catalog.InstanceID) error {
	return uc.instances.Delete(ctx, id)
}

// MarkReturned 归还登记
// 原子地置状态为在架可借并清空应还日期与借阅人；幂等
func (uc *BookInstanceUseCase) MarkReturned(ctx context.Context, id catalog.InstanceID) (*catalog.BookInstance, error) {
	instance, err := uc.instances.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	instance.MarkReturned()
	if err := uc.instances.Update(ctx, instance); err != nil {
		return nil, err
	}
	return instance, nil
}

// resolveBorrower 校验借阅人用户存在
func (uc *BookInstanceUseCase) resolveBorrower(ctx context.Context, id uint) error {
	if _, err := uc.users.FindByID(ctx, id); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return catalog.RelatedBorrowerNotFound(id)
		}
		return err
	}
	return nil
}
