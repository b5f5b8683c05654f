package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/appdotbuilder/img-share/internal/config"

	"github.com/gin-gonic/gin"
)

func newTestEngine(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw)
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	return r
}

func doGet(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// 测试内容：验证安全标头被写入响应。
func TestSecurityHeaders(t *testing.T) {
	r := newTestEngine(SecurityHeaders())

	w := doGet(r, "/ping")
	if w.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Fatalf("期望 nosniff 标头")
	}
	if w.Header().Get("X-Frame-Options") != "DENY" {
		t.Fatalf("期望 DENY 标头")
	}
}

// 测试内容：验证每个响应都携带请求 ID，且透传调用方提供的 ID。
func TestRequestID(t *testing.T) {
	r := newTestEngine(RequestID())

	w := doGet(r, "/ping")
	if w.Header().Get(RequestIDHeader) == "" {
		t.Fatalf("期望生成请求 ID")
	}

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set(RequestIDHeader, "fixed-id")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Header().Get(RequestIDHeader) != "fixed-id" {
		t.Fatalf("期望透传请求 ID，实际为 %q", w.Header().Get(RequestIDHeader))
	}
}

// 测试内容：验证限流关闭时请求全部放行。
func TestUploadRateLimit_Disabled(t *testing.T) {
	config.Set(config.Config{})
	r := newTestEngine(UploadRateLimitMiddleware())

	for i := 0; i < 10; i++ {
		if w := doGet(r, "/ping"); w.Code != http.StatusOK {
			t.Fatalf("期望放行，实际为 %d", w.Code)
		}
	}
}

// 测试内容：验证限流开启后突发超额请求被 429 拒绝。
func TestUploadRateLimit_Enabled(t *testing.T) {
	cfg := config.Config{}
	cfg.RateLimit.Enabled = true
	cfg.RateLimit.UploadRPS = 0.001
	cfg.RateLimit.UploadBurst = 2
	config.Set(cfg)
	defer config.Set(config.Config{})

	r := newTestEngine(UploadRateLimitMiddleware())

	allowed := 0
	rejected := 0
	for i := 0; i < 5; i++ {
		w := doGet(r, "/ping")
		switch w.Code {
		case http.StatusOK:
			allowed++
		case http.StatusTooManyRequests:
			rejected++
		default:
			t.Fatalf("非预期状态码: %d", w.Code)
		}
	}
	if allowed != 2 || rejected != 3 {
		t.Fatalf("期望 2 放行 3 拒绝，实际为 %d/%d", allowed, rejected)
	}
}

// 测试内容：验证 Redis 未启用时短链接限流回退到内存实现并正常放行。
func TestViewRateLimit_FallbackWhenRedisDisabled(t *testing.T) {
	config.Set(config.Config{})
	r := newTestEngine(ViewRateLimitMiddleware())

	if w := doGet(r, "/ping"); w.Code != http.StatusOK {
		t.Fatalf("期望放行，实际为 %d", w.Code)
	}
}
