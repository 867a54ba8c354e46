package catalog

import (
	"time"
)

// Author 作者实体
// 设计说明：
// 1. 姓名为必填字段，生卒日期可空
// 2. 领域实体不依赖GORM tag（infrastructure层的Repository实现时会处理映射）
type Author struct {
	ID          uint
	FirstName   string
	LastName    string
	DateOfBirth *time.Time // 可空，只取日期部分
	DateOfDeath *time.Time // 可空
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewAuthor 创建新作者（工厂方法）
func NewAuthor(firstName, lastName string, dateOfBirth, dateOfDeath *time.Time) *Author {
	now := time.Now()
	return &Author{
		FirstName:   firstName,
		LastName:    lastName,
		DateOfBirth: dateOfBirth,
		DateOfDeath: dateOfDeath,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
