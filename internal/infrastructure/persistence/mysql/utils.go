package mysql

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// isDuplicateError 识别唯一索引冲突（MySQL错误码1062）
// 仓储据此把底层错误翻译为"已存在"类业务错误
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// 部分驱动路径不会映射到gorm.ErrDuplicatedKey，退化为文本匹配
	return strings.Contains(err.Error(), "Duplicate entry")
}
