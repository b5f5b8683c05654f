package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/appdotbuilder/img-share/internal/model"
	"github.com/appdotbuilder/img-share/internal/repository"
	"github.com/appdotbuilder/img-share/internal/service"
	"github.com/appdotbuilder/img-share/internal/testutils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// setupTestServer 构建带内存数据库的测试服务，路由注册与生产一致
func setupTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb := testutils.SetupDB(t)
	userStore := repository.NewUserRepository(gdb)
	imageStore := repository.NewImageRepository(gdb)

	h := NewHandler(
		service.NewUserService(userStore),
		service.NewImageService(imageStore, userStore),
		service.NewImageQueryService(imageStore),
	)

	r := gin.New()
	api := r.Group("/api")
	api.GET("/health", h.Health)
	api.GET("/s/:short_url", h.GetImageByShortURL)
	api.POST("/users", h.CreateUser)
	api.GET("/users/:id/images", h.GetUserImages)
	api.POST("/images", h.UploadImage)
	api.GET("/images/public", h.GetPublicImages)
	api.PATCH("/images/:id", h.UpdateImage)
	api.DELETE("/images/:id", h.DeleteImage)

	return r, gdb
}

func doJSON(t *testing.T, r *gin.Engine, method string, path string, body string) *httptest.ResponseRecorder {
	t.Helper()

	var buf *bytes.Buffer
	if body == "" {
		buf = bytes.NewBuffer(nil)
	} else {
		buf = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeImage(t *testing.T, data []byte) model.Image {
	t.Helper()

	var image model.Image
	if err := json.Unmarshal(data, &image); err != nil {
		t.Fatalf("解析响应失败: %v (%s)", err, data)
	}
	return image
}

func mustCreateTestUser(t *testing.T, r *gin.Engine, username string, email string) model.User {
	t.Helper()

	w := doJSON(t, r, "POST", "/api/users", `{"username":"`+username+`","email":"`+email+`"}`)
	if w.Code != 201 {
		t.Fatalf("创建用户失败: code=%d body=%s", w.Code, w.Body.String())
	}
	var user model.User
	if err := json.Unmarshal(w.Body.Bytes(), &user); err != nil {
		t.Fatalf("解析用户失败: %v", err)
	}
	return user
}

func mustUploadTestImage(t *testing.T, r *gin.Engine, body string) model.Image {
	t.Helper()

	w := doJSON(t, r, "POST", "/api/images", body)
	if w.Code != 201 {
		t.Fatalf("上传失败: code=%d body=%s", w.Code, w.Body.String())
	}
	return decodeImage(t, w.Body.Bytes())
}
