package middleware

import (
	"net/http"
	"time"

	"github.com/appdotbuilder/img-share/internal/config"
	"github.com/appdotbuilder/img-share/internal/service"

	"github.com/gin-gonic/gin"
)

// ViewRateLimitMiddleware 短链接访问限流：优先使用 Redis 固定窗口计数
// （多实例部署时共享计数），Redis 未启用或不可用时回退到内存限流
func ViewRateLimitMiddleware() gin.HandlerFunc {
	memoryFallback := UploadRateLimitMiddleware()

	return func(c *gin.Context) {
		cfg := config.Get().RateLimit
		if !cfg.Enabled {
			c.Next()
			return
		}

		rdb := service.GetRedisClient()
		if rdb == nil {
			memoryFallback(c)
			return
		}

		limit := cfg.ViewPerMinute
		if limit <= 0 {
			limit = 120
		}

		// 固定窗口：INCR + 首次设置过期
		key := service.RedisKey("rate", "view", c.ClientIP())
		count, err := rdb.Incr(c.Request.Context(), key).Result()
		if err != nil {
			// Redis 故障时放行，不让限流成为可用性瓶颈
			c.Next()
			return
		}
		if count == 1 {
			rdb.Expire(c.Request.Context(), key, time.Minute)
		}

		if count > int64(limit) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "请求过于频繁，请稍后再试"})
			c.Abort()
			return
		}
		c.Next()
	}
}
