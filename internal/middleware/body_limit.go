package middleware

import (
	"net/http"

	"github.com/appdotbuilder/img-share/internal/config"

	"github.com/gin-gonic/gin"
)

// BodyLimitMiddleware 限制请求体大小
// 本服务只接收元数据 JSON，不接收文件本体，限制可以收得很紧
func BodyLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		maxSizeMB := config.Get().Server.BodyLimitMB
		if maxSizeMB <= 0 {
			// 如果未设置或为0，默认 2MB
			maxSizeMB = 2
		}

		// 限制大小 (MB -> Bytes)
		maxBytes := int64(maxSizeMB) * 1024 * 1024

		// 使用 MaxBytesReader 限制读取的字节数
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)

		c.Next()
	}
}
