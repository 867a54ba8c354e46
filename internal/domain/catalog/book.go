package catalog

import (
	"time"
)

// Book 图书实体（聚合根）
// 设计说明：
// 1. Author、Language为可空关联，创建/更新前必须先解析为已存在的记录
// 2. Genres是体裁集合（集合语义，无顺序），更新时整体替换
// 3. 响应需要嵌套完整的关联对象，因此实体直接持有解析后的关联实体
type Book struct {
	ID        uint
	Title     string
	Summary   string
	ISBN      string
	Author    *Author   // 可空
	Language  *Language // 可空
	Genres    []Genre   // 集合（成员资格语义）
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBook 创建新图书（工厂方法）
// 关联实体由调用方先解析（未解析的ID不应进入领域层）
func NewBook(title, summary, isbn string, author *Author, language *Language, genres []Genre) *Book {
	now := time.Now()
	return &Book{
		Title:     title,
		Summary:   summary,
		ISBN:      isbn,
		Author:    author,
		Language:  language,
		Genres:    genres,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
