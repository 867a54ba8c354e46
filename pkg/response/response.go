package response

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/locallibrary/pkg/errors"
)

// ErrorBody 错误响应体
// 设计说明：
// 1. 错误通过HTTP状态码区分类型（400/401/403/404/500）
// 2. 响应体只包含用户可读的message，内部错误细节不外露
type ErrorBody struct {
	Message string `json:"message"`
}

// OK 200响应，body为资源本身
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201响应，用于资源创建成功
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// NoContent 204响应，用于资源删除成功
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error 错误响应（自动处理AppError）
// 用法：
//
//	result, err := useCase.Execute(...)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)

	// 内部错误不外露细节，只返回通用提示
	message := appErr.Message
	if appErr.HTTPStatus() >= http.StatusInternalServerError {
		message = "系统内部错误"
	}

	c.JSON(appErr.HTTPStatus(), ErrorBody{Message: message})
}

// BadRequest 400响应
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorBody{Message: message})
}

// Unauthorized 401响应
func Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, ErrorBody{Message: message})
}

// Forbidden 403响应
func Forbidden(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, ErrorBody{Message: message})
}

// NotFound 404响应
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorBody{Message: message})
}

// =========================================
// 分页响应结构
// =========================================

const (
	// DefaultPageLimit 默认每页数量
	DefaultPageLimit = 100
	// MaxPageLimit 每页数量上限，防止大查询
	MaxPageLimit = 100
)

// Page 分页数据封装
// items + count约定：items为当前页数据，count为总记录数
type Page struct {
	Items interface{} `json:"items"` // 当前页数据
	Count int64       `json:"count"` // 总记录数
}

// OKWithPage 分页成功响应
func OKWithPage(c *gin.Context, items interface{}, count int64) {
	c.JSON(http.StatusOK, Page{Items: items, Count: count})
}

// PageParams 从query参数解析limit/offset
// 非法值（非数字、负数、超上限）回退到默认值
func PageParams(c *gin.Context) (limit, offset int) {
	limit = DefaultPageLimit
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	if raw := c.Query("offset"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			offset = v
		}
	}
	return limit, offset
}
