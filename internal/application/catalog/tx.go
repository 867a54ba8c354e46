package catalog

import (
	"context"
)

// TxManager 事务边界接口
// 设计说明：
// 1. 应用层只依赖事务语义，不依赖具体数据库实现（mysql.TxManager实现此接口）
// 2. 图书创建/更新涉及books表与book_genres连接表，必须作为单一事务边界，
//    中途失败不得留下部分数据
type TxManager interface {
	// Transaction 在单一事务内执行fn，fn返回error时整体回滚
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}
