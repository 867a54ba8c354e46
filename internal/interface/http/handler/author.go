package handler

import (
	"github.com/gin-gonic/gin"

	appcatalog "github.com/xiebiao/locallibrary/internal/application/catalog"
	"github.com/xiebiao/locallibrary/internal/interface/http/dto"
	"github.com/xiebiao/locallibrary/pkg/response"
)

// AuthorHandler 作者HTTP处理器
type AuthorHandler struct {
	authorUseCase *appcatalog.AuthorUseCase
}

// NewAuthorHandler 创建作者处理器
func NewAuthorHandler(authorUseCase *appcatalog.AuthorUseCase) *AuthorHandler {
	return &AuthorHandler{authorUseCase: authorUseCase}
}

// ListAuthors 分页查询作者列表
// @Summary      作者列表
// @Tags         作者
// @Produce      json
// @Param        limit query int false "每页数量(默认100)"
// @Param        offset query int false "偏移量"
// @Success      200 {object} response.Page{items=[]dto.AuthorResponse}
// @Router       /authors [get]
func (h *AuthorHandler) ListAuthors(c *gin.Context) {
	limit, offset := response.PageParams(c)

	authors, count, err := h.authorUseCase.List(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OKWithPage(c, dto.NewAuthorResponseList(authors), count)
}

// GetAuthor 查询单个作者
// @Summary      作者详情
// @Tags         作者
// @Produce      json
// @Param        id path int true "作者ID"
// @Success      200 {object} dto.AuthorResponse
// @Failure      404 {object} response.ErrorBody "作者不存在"
// @Router       /authors/{id} [get]
func (h *AuthorHandler) GetAuthor(c *gin.Context) {
	id, ok := parseID(c, "作者不存在")
	if !ok {
		return
	}

	author, err := h.authorUseCase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewAuthorResponse(author))
}

// CreateAuthor 创建作者
// @Summary      创建作者
// @Tags         作者
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.AuthorCreateRequest true "作者信息"
// @Success      201 {object} dto.AuthorResponse
// @Failure      400 {object} response.ErrorBody "参数错误"
// @Failure      401 {object} response.ErrorBody "未登录"
// @Router       /authors [post]
func (h *AuthorHandler) CreateAuthor(c *gin.Context) {
	var req dto.AuthorCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	author, err := h.authorUseCase.Create(c.Request.Context(), req.ToUseCase())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.NewAuthorResponse(author))
}

// UpdateAuthor 更新作者（请求中缺席的字段保持原值）
// @Summary      更新作者
// @Tags         作者
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "作者ID"
// @Param        request body dto.AuthorUpdateRequest true "作者信息"
// @Success      200 {object} dto.AuthorResponse
// @Failure      400 {object} response.ErrorBody "参数错误"
// @Failure      401 {object} response.ErrorBody "未登录"
// @Failure      404 {object} response.ErrorBody "作者不存在"
// @Router       /authors/{id} [put]
func (h *AuthorHandler) UpdateAuthor(c *gin.Context) {
	id, ok := parseID(c, "作者不存在")
	if !ok {
		return
	}

	var req dto.AuthorUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	author, err := h.authorUseCase.Update(c.Request.Context(), id, req.ToUseCase())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewAuthorResponse(author))
}

// DeleteAuthor 删除作者
// @Summary      删除作者
// @Tags         作者
// @Security     BearerAuth
// @Param        id path int true "作者ID"
// @Success      204
// @Failure      401 {object} response.ErrorBody "未登录"
// @Failure      404 {object} response.ErrorBody "作者不存在"
// @Router       /authors/{id} [delete]
func (h *AuthorHandler) DeleteAuthor(c *gin.Context) {
	id, ok := parseID(c, "作者不存在")
	if !ok {
		return
	}

	if err := h.authorUseCase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
