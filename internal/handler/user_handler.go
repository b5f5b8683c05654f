package handler

import (
	"net/http"

	"github.com/appdotbuilder/img-share/internal/common/httpx"
	"github.com/appdotbuilder/img-share/internal/dto"

	"github.com/gin-gonic/gin"
)

// CreateUser 注册用户。语义为严格创建：重名/重邮箱返回 409，
// 不做“已存在即登录”的合并
func (h *Handler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	user, err := h.users.CreateUser(req.Username, req.Email)
	if err != nil {
		httpx.WriteServiceError(c, err, "创建用户失败")
		return
	}

	c.JSON(http.StatusCreated, user)
}
