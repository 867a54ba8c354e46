package user

import (
	"time"
)

// User 用户实体
// 设计说明：
// 1. 用户记录归外部身份系统所有，本服务只读（签发Token、解析借阅人）
// 2. 密码为bcrypt哈希值，不存在明文
// 3. Permissions是细粒度权限授予列表（如catalog.can_mark_returned）
type User struct {
	ID          uint
	Username    string
	Password    string // bcrypt哈希值
	Permissions []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasPermission 检查用户是否持有指定权限
func (u *User) HasPermission(perm string) bool {
	for _, p := range u.Permissions {
		if p == perm {
			return true
		}
	}
	return false
}
