package handler

import (
	"net/http"
	"strconv"

	"github.com/appdotbuilder/img-share/internal/common/httpx"

	"github.com/gin-gonic/gin"
)

// GetPublicImages 公开图片流，最新创建的在前
func (h *Handler) GetPublicImages(c *gin.Context) {
	images, err := h.queries.ListPublicImages()
	if err != nil {
		httpx.WriteServiceError(c, err, "获取图片列表失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"list": images, "total": len(images)})
}

// GetUserImages 指定用户的全部图片（含私有图片）
func (h *Handler) GetUserImages(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的用户 ID"})
		return
	}

	images, err := h.queries.ListUserImages(uint(userID))
	if err != nil {
		httpx.WriteServiceError(c, err, "获取图片列表失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"list": images, "total": len(images)})
}
