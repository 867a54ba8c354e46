package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	appcatalog "github.com/xiebiao/locallibrary/internal/application/catalog"
	"github.com/xiebiao/locallibrary/internal/domain/catalog"
	"github.com/xiebiao/locallibrary/internal/interface/http/dto"
	"github.com/xiebiao/locallibrary/internal/interface/http/middleware"
	"github.com/xiebiao/locallibrary/pkg/response"
)

// InstanceHandler 图书副本HTTP处理器
// 副本标识为UUID文本，查询/删除时格式非法与记录不存在同为404，
// 更新时两者都按参数错误(400)处理
type InstanceHandler struct {
	instanceUseCase *appcatalog.BookInstanceUseCase
}

// NewInstanceHandler 创建副本处理器
func NewInstanceHandler(instanceUseCase *appcatalog.BookInstanceUseCase) *InstanceHandler {
	return &InstanceHandler{instanceUseCase: instanceUseCase}
}

// ListInstances 分页查询副本列表
// @Summary      副本列表
// @Tags         副本
// @Produce      json
// @Param        limit query int false "每页数量(默认100)"
// @Param        offset query int false "偏移量"
// @Success      200 {object} response.Page{items=[]dto.InstanceResponse}
// @Router       /bookinstances [get]
func (h *InstanceHandler) ListInstances(c *gin.Context) {
	limit, offset := response.PageParams(c)

	instances, count, err := h.instanceUseCase.List(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OKWithPage(c, dto.NewInstanceResponseList(instances), count)
}

// GetInstance 查询单个副本（含所属图书）
// @Summary      副本详情
// @Tags         副本
// @Produce      json
// @Param        id path string true "副本标识(UUID)"
// @Success      200 {object} dto.InstanceResponse
// @Failure      404 {object} response.ErrorBody "副本不存在"
// @Router       /bookinstances/{id} [get]
func (h *InstanceHandler) GetInstance(c *gin.Context) {
	id, err := catalog.ParseInstanceID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	instance, err := h.instanceUseCase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewInstanceResponse(instance))
}

// CreateInstance 创建副本（标识由服务端生成）
// @Summary      创建副本
// @Tags         副本
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.InstanceCreateRequest true "副本信息"
// @Success      201 {object} dto.InstanceResponse
// @Failure      400 {object} response.ErrorBody "参数错误或关联ID不存在"
// @Failure      401 {object} response.ErrorBody "未登录"
// @Router       /bookinstances [post]
func (h *InstanceHandler) CreateInstance(c *gin.Context) {
	var req dto.InstanceCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	instance, err := h.instanceUseCase.Create(c.Request.Context(), req.ToUseCase())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.NewInstanceResponse(instance))
}

// UpdateInstance 更新副本（请求中缺席的字段保持原值）
// 此接口下标识非法或副本不存在都按参数错误处理
// @Summary      更新副本
// @Tags         副本
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "副本标识(UUID)"
// @Param        request body dto.InstanceUpdateRequest true "副本信息"
// @Success      200 {object} dto.InstanceResponse
// @Failure      400 {object} response.ErrorBody "参数错误、标识非法或副本不存在"
// @Failure      401 {object} response.ErrorBody "未登录"
// @Router       /bookinstances/{id} [put]
func (h *InstanceHandler) UpdateInstance(c *gin.Context) {
	id, err := catalog.ParseInstanceID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "副本标识格式非法")
		return
	}

	var req dto.InstanceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	instance, err := h.instanceUseCase.Update(c.Request.Context(), id, req.ToUseCase())
	if err != nil {
		if errors.Is(err, catalog.ErrInstanceNotFound) {
			response.BadRequest(c, "副本不存在")
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewInstanceResponse(instance))
}

// DeleteInstance 删除副本
// @Summary      删除副本
// @Tags         副本
// @Security     BearerAuth
// @Param        id path string true "副本标识(UUID)"
// @Success      204
// @Failure      401 {object} response.ErrorBody "未登录"
// @Failure      404 {object} response.ErrorBody "副本不存在"
// @Router       /bookinstances/{id} [delete]
func (h *InstanceHandler) DeleteInstance(c *gin.Context) {
	id, err := catalog.ParseInstanceID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.instanceUseCase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// ReturnInstance 归还登记
// 需要登录且持有归还登记权限；幂等，对已归还副本重复调用结果不变
// @Summary      归还登记
// @Tags         副本
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "副本标识(UUID)"
// @Success      200 {object} dto.InstanceResponse
// @Failure      401 {object} response.ErrorBody "未登录"
// @Failure      403 {object} response.ErrorBody "无归还登记权限"
// @Failure      404 {object} response.ErrorBody "副本不存在"
// @Router       /bookinstances/{id}/return [post]
func (h *InstanceHandler) ReturnInstance(c *gin.Context) {
	if !middleware.HasPermission(c, catalog.PermissionMarkReturned) {
		response.Forbidden(c, "无权限进行归还登记")
		return
	}

	id, err := catalog.ParseInstanceID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	instance, err := h.instanceUseCase.MarkReturned(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewInstanceResponse(instance))
}
