package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/locallibrary/pkg/response"
)

// parseID 解析路径中的整数ID
// 非数字的路径参数与数字但查不到记录等价，都按404处理
func parseID(c *gin.Context, notFoundMsg string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.NotFound(c, notFoundMsg)
		return 0, false
	}
	return uint(id), true
}
