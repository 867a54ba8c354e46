package handler

import (
	"github.com/gin-gonic/gin"

	appcatalog "github.com/xiebiao/locallibrary/internal/application/catalog"
	"github.com/xiebiao/locallibrary/internal/interface/http/dto"
	"github.com/xiebiao/locallibrary/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	bookUseCase *appcatalog.BookUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(bookUseCase *appcatalog.BookUseCase) *BookHandler {
	return &BookHandler{bookUseCase: bookUseCase}
}

// ListBooks 分页查询图书列表
// @Summary      图书列表
// @Tags         图书
// @Produce      json
// @Param        limit query int false "每页数量(默认100)"
// @Param        offset query int false "偏移量"
// @Success      200 {object} response.Page{items=[]dto.BookResponse}
// @Router       /books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	limit, offset := response.PageParams(c)

	books, count, err := h.bookUseCase.List(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OKWithPage(c, dto.NewBookResponseList(books), count)
}

// GetBook 查询单本图书（含作者、语种、体裁）
// @Summary      图书详情
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} dto.BookResponse
// @Failure      404 {object} response.ErrorBody "图书不存在"
// @Router       /books/{id} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	id, ok := parseID(c, "图书不存在")
	if !ok {
		return
	}

	book, err := h.bookUseCase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewBookResponse(book))
}

// CreateBook 创建图书
// 关联的作者/语种/体裁ID任一解析失败则拒绝整个创建
// @Summary      创建图书
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.BookCreateRequest true "图书信息"
// @Success      201 {object} dto.BookResponse
// @Failure      400 {object} response.ErrorBody "参数错误或关联ID不存在"
// @Failure      401 {object} response.ErrorBody "未登录"
// @Router       /books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req dto.BookCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	book, err := h.bookUseCase.Create(c.Request.Context(), req.ToUseCase())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.NewBookResponse(book))
}

// UpdateBook 更新图书（请求中缺席的字段保持原值）
// genre_ids出现时整体替换体裁集合，空列表表示清空
// @Summary      更新图书
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Param        request body dto.BookUpdateRequest true "图书信息"
// @Success      200 {object} dto.BookResponse
// @Failure      400 {object} response.ErrorBody "参数错误或关联ID不存在"
// @Failure      401 {object} response.ErrorBody "未登录"
// @Failure      404 {object} response.ErrorBody "图书不存在"
// @Router       /books/{id} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	id, ok := parseID(c, "图书不存在")
	if !ok {
		return
	}

	var req dto.BookUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	book, err := h.bookUseCase.Update(c.Request.Context(), id, req.ToUseCase())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewBookResponse(book))
}

// DeleteBook 删除图书（体裁关联一并清除）
// @Summary      删除图书
// @Tags         图书
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Success      204
// @Failure      401 {object} response.ErrorBody "未登录"
// @Failure      404 {object} response.ErrorBody "图书不存在"
// @Router       /books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, ok := parseID(c, "图书不存在")
	if !ok {
		return
	}

	if err := h.bookUseCase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
