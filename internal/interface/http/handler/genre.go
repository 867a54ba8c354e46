package handler

import (
	"github.com/gin-gonic/gin"

	appcatalog "github.com/xiebiao/locallibrary/internal/application/catalog"
	"github.com/xiebiao/locallibrary/internal/interface/http/dto"
	"github.com/xiebiao/locallibrary/pkg/response"
)

// GenreHandler 体裁HTTP处理器
type GenreHandler struct {
	genreUseCase *appcatalog.GenreUseCase
}

// NewGenreHandler 创建体裁处理器
func NewGenreHandler(genreUseCase *appcatalog.GenreUseCase) *GenreHandler {
	return &GenreHandler{genreUseCase: genreUseCase}
}

// ListGenres 分页查询体裁列表
// @Summary      体裁列表
// @Tags         体裁
// @Produce      json
// @Param        limit query int false "每页数量(默认100)"
// @Param        offset query int false "偏移量"
// @Success      200 {object} response.Page{items=[]dto.GenreResponse}
// @Router       /genres [get]
func (h *GenreHandler) ListGenres(c *gin.Context) {
	limit, offset := response.PageParams(c)

	genres, count, err := h.genreUseCase.List(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OKWithPage(c, dto.NewGenreResponseList(genres), count)
}

// GetGenre 查询单个体裁
// @Summary      体裁详情
// @Tags         体裁
// @Produce      json
// @Param        id path int true "体裁ID"
// @Success      200 {object} dto.GenreResponse
// @Failure      404 {object} response.ErrorBody "体裁不存在"
// @Router       /genres/{id} [get]
func (h *GenreHandler) GetGenre(c *gin.Context) {
	id, ok := parseID(c, "体裁不存在")
	if !ok {
		return
	}

	genre, err := h.genreUseCase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewGenreResponse(genre))
}

// CreateGenre 创建体裁
// @Summary      创建体裁
// @Tags         体裁
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.GenreCreateRequest true "体裁信息"
// @Success      201 {object} dto.GenreResponse
// @Failure      400 {object} response.ErrorBody "参数错误"
// @Failure      401 {object} response.ErrorBody "未登录"
// @Router       /genres [post]
func (h *GenreHandler) CreateGenre(c *gin.Context) {
	var req dto.GenreCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	genre, err := h.genreUseCase.Create(c.Request.Context(), req.ToUseCase())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.NewGenreResponse(genre))
}

// UpdateGenre 更新体裁
// @Summary      更新体裁
// @Tags         体裁
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "体裁ID"
// @Param        request body dto.GenreUpdateRequest true "体裁信息"
// @Success      200 {object} dto.GenreResponse
// @Failure      401 {object} response.ErrorBody "未登录"
// @Failure      404 {object} response.ErrorBody "体裁不存在"
// @Router       /genres/{id} [put]
func (h *GenreHandler) UpdateGenre(c *gin.Context) {
	id, ok := parseID(c, "体裁不存在")
	if !ok {
		return
	}

	var req dto.GenreUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	genre, err := h.genreUseCase.Update(c.Request.Context(), id, req.ToUseCase())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewGenreResponse(genre))
}

// DeleteGenre 删除体裁
// @Summary      删除体裁
// @Tags         体裁
// @Security     BearerAuth
// @Param        id path int true "体裁ID"
// @Success      204
// @Failure      401 {object} response.ErrorBody "未登录"
// @Failure      404 {object} response.ErrorBody "体裁不存在"
// @Router       /genres/{id} [delete]
func (h *GenreHandler) DeleteGenre(c *gin.Context) {
	id, ok := parseID(c, "体裁不存在")
	if !ok {
		return
	}

	if err := h.genreUseCase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
