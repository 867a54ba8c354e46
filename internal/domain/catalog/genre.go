package catalog

import (
	"time"
)

// Genre 图书体裁实体
// 与Book是多对多关系（一本书可属于多个体裁）
type Genre struct {
	ID        uint
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewGenre 创建新体裁
func NewGenre(name string) *Genre {
	now := time.Now()
	return &Genre{
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Language 图书语种实体
// Book通过可空外键引用Language（一对多）
type Language struct {
	ID        uint
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewLanguage 创建新语种
func NewLanguage(name string) *Language {
	now := time.Now()
	return &Language{
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
