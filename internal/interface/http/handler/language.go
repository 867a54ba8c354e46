package handler

import (
	"github.com/gin-gonic/gin"

	appcatalog "github.com/xiebiao/locallibrary/internal/application/catalog"
	"github.com/xiebiao/locallibrary/internal/interface/http/dto"
	"github.com/xiebiao/locallibrary/pkg/response"
)

// LanguageHandler 语种HTTP处理器
type LanguageHandler struct {
	languageUseCase *appcatalog.LanguageUseCase
}

// NewLanguageHandler 创建语种处理器
func NewLanguageHandler(languageUseCase *appcatalog.LanguageUseCase) *LanguageHandler {
	return &LanguageHandler{languageUseCase: languageUseCase}
}

// ListLanguages 分页查询语种列表
// @Summary      语种列表
// @Tags         语种
// @Produce      json
// @Param        limit query int false "每页数量(默认100)"
// @Param        offset query int false "偏移量"
// @Success      200 {object} response.Page{items=[]dto.LanguageResponse}
// @Router       /languages [get]
func (h *LanguageHandler) ListLanguages(c *gin.Context) {
	limit, offset := response.PageParams(c)

	languages, count, err := h.languageUseCase.List(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OKWithPage(c, dto.NewLanguageResponseList(languages), count)
}

// GetLanguage 查询单个语种
// @Summary      语种详情
// @Tags         语种
// @Produce      json
// @Param        id path int true "语种ID"
// @Success      200 {object} dto.LanguageResponse
// @Failure      404 {object} response.ErrorBody "语种不存在"
// @Router       /languages/{id} [get]
func (h *LanguageHandler) GetLanguage(c *gin.Context) {
	id, ok := parseID(c, "语种不存在")
	if !ok {
		return
	}

	language, err := h.languageUseCase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewLanguageResponse(language))
}

// CreateLanguage 创建语种
// @Summary      创建语种
// @Tags         语种
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.LanguageCreateRequest true "语种信息"
// @Success      201 {object} dto.LanguageResponse
// @Failure      400 {object} response.ErrorBody "参数错误"
// @Failure      401 {object} response.ErrorBody "未登录"
// @Router       /languages [post]
func (h *LanguageHandler) CreateLanguage(c *gin.Context) {
	var req dto.LanguageCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	language, err := h.languageUseCase.Create(c.Request.Context(), req.ToUseCase())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.NewLanguageResponse(language))
}

// UpdateLanguage 更新语种
// @Summary      更新语种
// @Tags         语种
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "语种ID"
// @Param        request body dto.LanguageUpdateRequest true "语种信息"
// @Success      200 {object} dto.LanguageResponse
// @Failure      401 {object} response.ErrorBody "未登录"
// @Failure      404 {object} response.ErrorBody "语种不存在"
// @Router       /languages/{id} [put]
func (h *LanguageHandler) UpdateLanguage(c *gin.Context) {
	id, ok := parseID(c, "语种不存在")
	if !ok {
		return
	}

	var req dto.LanguageUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	language, err := h.languageUseCase.Update(c.Request.Context(), id, req.ToUseCase())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewLanguageResponse(language))
}

// DeleteLanguage 删除语种
// @Summary      删除语种
// @Tags         语种
// @Security     BearerAuth
// @Param        id path int true "语种ID"
// @Success      204
// @Failure      401 {object} response.ErrorBody "未登录"
// @Failure      404 {object} response.ErrorBody "语种不存在"
// @Router       /languages/{id} [delete]
func (h *LanguageHandler) DeleteLanguage(c *gin.Context) {
	id, ok := parseID(c, "语种不存在")
	if !ok {
		return
	}

	if err := h.languageUseCase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
