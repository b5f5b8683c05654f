package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/appdotbuilder/img-share/internal/handler"
	"github.com/appdotbuilder/img-share/internal/middleware"
	"github.com/appdotbuilder/img-share/internal/repository"
	"github.com/appdotbuilder/img-share/internal/service"
	"github.com/appdotbuilder/img-share/internal/testutils"

	"github.com/gin-gonic/gin"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb := testutils.SetupDB(t)
	userStore := repository.NewUserRepository(gdb)
	imageStore := repository.NewImageRepository(gdb)
	h := handler.NewHandler(
		service.NewUserService(userStore),
		service.NewImageService(imageStore, userStore),
		service.NewImageQueryService(imageStore),
	)

	r := gin.New()
	NewRouter(h).Init(r)
	return r
}

// 测试内容：验证路由注册后 ping 与健康检查可达，并附带全局中间件的响应头。
func TestRouterInit(t *testing.T) {
	r := setupRouter(t)

	req := httptest.NewRequest("GET", "/api/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("期望 ping 返回 200，实际为 %d", w.Code)
	}
	if w.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Fatalf("期望全局安全标头生效")
	}
	if w.Header().Get(middleware.RequestIDHeader) == "" {
		t.Fatalf("期望请求 ID 标头生效")
	}

	req = httptest.NewRequest("GET", "/api/health", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("期望健康检查返回 200，实际为 %d", w.Code)
	}
}

// 测试内容：验证短链接路由注册在公开分组下，未命中返回 404。
func TestRouter_ShortURLRoute(t *testing.T) {
	r := setupRouter(t)

	req := httptest.NewRequest("GET", "/api/s/zzzzzzzz", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("期望 404，实际为 %d", w.Code)
	}
}
