package dto

import (
	"fmt"
	"strings"
	"time"
)

// dateLayout 日期序列化格式（仅日期，无时间部分）
const dateLayout = "2006-01-02"

// Date 仅日期的JSON封装（YYYY-MM-DD）
// 设计说明：出生/去世/应还日期都只有日期语义，
// 用专门类型避免time.Time默认的RFC3339格式混入时间部分
type Date struct {
	time.Time
}

// UnmarshalJSON 解析"2006-01-02"格式
// null视为缺席；空字符串不是合法日期，按格式错误拒绝
func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	s := strings.Trim(string(data), `"`)
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("日期格式非法(应为YYYY-MM-DD): %s", s)
	}
	d.Time = t
	return nil
}

// MarshalJSON 输出"2006-01-02"格式
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.Format(dateLayout) + `"`), nil
}

// toTimePtr Date指针 → time.Time指针
func toTimePtr(d *Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

// formatDatePtr time.Time指针 → 日期字符串指针（响应用）
func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
