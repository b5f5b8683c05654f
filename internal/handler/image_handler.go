package handler

import (
	"net/http"
	"strconv"

	"github.com/appdotbuilder/img-share/internal/common/httpx"
	"github.com/appdotbuilder/img-share/internal/dto"

	"github.com/gin-gonic/gin"
)

// UploadImage 登记一条图片元数据并分配短链接
func (h *Handler) UploadImage(c *gin.Context) {
	var req dto.UploadImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	image, err := h.images.Upload(req)
	if err != nil {
		httpx.WriteServiceError(c, err, "上传失败，请稍后重试")
		return
	}

	c.JSON(http.StatusCreated, image)
}

// UpdateImage 部分更新图片元数据。
// 不校验归属：任何调用方都可按 id 更新，与删除的归属校验不对称，
// 属既有语义，保留不改
func (h *Handler) UpdateImage(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的图片 ID"})
		return
	}

	var req dto.UpdateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	image, err := h.images.Update(id, req)
	if err != nil {
		httpx.WriteServiceError(c, err, "更新失败")
		return
	}
	if image == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "图片不存在"})
		return
	}

	c.JSON(http.StatusOK, image)
}

// DeleteImage 删除图片：仅属主可删，不存在与无权限均返回 404
func (h *Handler) DeleteImage(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的图片 ID"})
		return
	}

	userID, err := strconv.ParseUint(c.Query("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的用户 ID"})
		return
	}

	deleted, err := h.images.Delete(id, uint(userID))
	if err != nil {
		httpx.WriteServiceError(c, err, "删除失败")
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "图片不存在或无权删除"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}

// GetImageByShortURL 短链接访问公开图片，命中即自增浏览量
func (h *Handler) GetImageByShortURL(c *gin.Context) {
	shortURL := c.Param("short_url")

	image, err := h.images.GetByShortURL(shortURL)
	if err != nil {
		httpx.WriteServiceError(c, err, "查询失败")
		return
	}
	if image == nil {
		// 不存在与私有图片同样返回 404，不泄露私有图片的存在性
		c.JSON(http.StatusNotFound, gin.H{"error": "图片不存在"})
		return
	}

	c.JSON(http.StatusOK, image)
}

func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
