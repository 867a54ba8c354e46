package handler

import (
	"github.com/gin-gonic/gin"

	appauth "github.com/xiebiao/locallibrary/internal/application/auth"
	"github.com/xiebiao/locallibrary/internal/interface/http/dto"
	"github.com/xiebiao/locallibrary/pkg/response"
)

// AuthHandler 认证HTTP处理器
type AuthHandler struct {
	issueTokenUseCase *appauth.IssueTokenUseCase
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(issueTokenUseCase *appauth.IssueTokenUseCase) *AuthHandler {
	return &AuthHandler{issueTokenUseCase: issueTokenUseCase}
}

// IssueToken 凭证换取Access Token
// 凭证错误统一返回401，不区分用户名不存在与密码错误
// @Summary      获取Token
// @Tags         认证
// @Accept       json
// @Produce      json
// @Param        request body dto.TokenRequest true "用户名与密码"
// @Success      200 {object} dto.TokenResponse
// @Failure      400 {object} response.ErrorBody "参数错误"
// @Failure      401 {object} response.ErrorBody "用户名或密码错误"
// @Router       /auth/token [post]
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req dto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	result, err := h.issueTokenUseCase.Execute(c.Request.Context(), appauth.IssueTokenRequest{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.TokenResponse{AccessToken: result.AccessToken})
}
