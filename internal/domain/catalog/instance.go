package catalog

import (
	"time"

	"github.com/google/uuid"
)

// PermissionMarkReturned 归还登记所需的细粒度权限
// 区别于普通登录认证，仅馆员持有
const PermissionMarkReturned = "catalog.can_mark_returned"

// Status 副本状态（封闭枚举，单字符编码）
type Status string

const (
	// StatusAvailable 在架可借
	StatusAvailable Status = "a"
	// StatusMaintenance 维护中
	StatusMaintenance Status = "m"
	// StatusOnLoan 已借出
	StatusOnLoan Status = "o"
	// StatusReserved 已预约
	StatusReserved Status = "r"
)

// IsValid 校验状态是否为合法取值
func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusMaintenance, StatusOnLoan, StatusReserved:
		return true
	}
	return false
}

// InstanceID 副本唯一标识（128位UUID，序列化为规范文本形式）
// 设计说明：专用值类型 + 显式parse/format，不在schema层做动态转换
type InstanceID uuid.UUID

// NewInstanceID 生成新的副本标识
func NewInstanceID() InstanceID {
	return InstanceID(uuid.New())
}

// ParseInstanceID 解析文本形式的副本标识
// 格式非法时返回ErrInvalidInstanceID
func ParseInstanceID(s string) (InstanceID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return InstanceID{}, ErrInvalidInstanceID
	}
	return InstanceID(id), nil
}

// String 返回规范文本形式（8-4-4-4-12小写十六进制）
func (id InstanceID) String() string {
	return uuid.UUID(id).String()
}

// BookInstance 图书副本实体
// 每个副本对应馆藏中的一本实书，引用一条Book记录
type BookInstance struct {
	ID         InstanceID
	Book       *Book // 所属图书（必填）
	Imprint    string
	DueBack    *time.Time // 应还日期，可空
	BorrowerID *uint      // 借阅人用户ID，可空（用户记录归外部身份系统所有）
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewBookInstance 创建新副本（工厂方法）
// 标识由服务端生成，status为空时默认在架可借
func NewBookInstance(book *Book, imprint string, dueBack *time.Time, borrowerID *uint, status Status) *BookInstance {
	if status == "" {
		status = StatusAvailable
	}
	now := time.Now()
	return &BookInstance{
		ID:         NewInstanceID(),
		Book:       book,
		Imprint:    imprint,
		DueBack:    dueBack,
		BorrowerID: borrowerID,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// MarkReturned 归还登记（领域行为）
// 系统中唯一的显式状态迁移：置为在架可借并清空应还日期与借阅人
// 幂等：对已归还的副本重复调用产生相同状态
func (bi *BookInstance) MarkReturned() {
	bi.Status = StatusAvailable
	bi.DueBack = nil
	bi.BorrowerID = nil
	bi.UpdatedAt = time.Now()
}
