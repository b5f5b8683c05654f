package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/appdotbuilder/img-share/internal/config"
	"github.com/appdotbuilder/img-share/internal/consts"
	"github.com/appdotbuilder/img-share/internal/db"
	"github.com/appdotbuilder/img-share/internal/handler"
	"github.com/appdotbuilder/img-share/internal/repository"
	"github.com/appdotbuilder/img-share/internal/router"
	"github.com/appdotbuilder/img-share/internal/service"

	"github.com/gin-gonic/gin"
)

func main() {

	configDir := flag.String("config", "config", "配置文件目录")
	flag.Parse()

	config.InitConfig(*configDir)

	gdb, err := db.Init(config.Get().Database)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	log.Printf("✅ 数据库(%s)连接成功，表结构已同步", config.Get().Database.Type)

	// 组装依赖：仓储 -> 服务 -> 处理器，不使用全局句柄
	userStore := repository.NewUserRepository(gdb)
	imageStore := repository.NewImageRepository(gdb)

	h := handler.NewHandler(
		service.NewUserService(userStore),
		service.NewImageService(imageStore, userStore),
		service.NewImageQueryService(imageStore),
	)

	gin.SetMode(config.Get().Server.Mode)

	r := gin.Default()
	if proxy := config.Get().Server.TrustedProxy; proxy != "" {
		if err := r.SetTrustedProxies(strings.Split(proxy, ",")); err != nil {
			log.Fatalf("❌ 代理配置无效: %v", err)
		}
	}

	router.NewRouter(h).Init(r)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"error": "API not found"})
	})

	printWelcomeMessage()

	// 停机配置
	srv := &http.Server{
		Addr:    ":" + config.Get().Server.Port,
		Handler: r,
	}

	go func() {
		// 服务连接
		log.Printf("🚀 服务启动成功，运行在 :%s\n", config.Get().Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ 服务启动失败: %s\n", err)
		}
	}()

	// 等待中断信号关闭服务器（设置 5 秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 正在关闭服务...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("❌ 服务强制关闭:", err)
	}
	if err := service.CloseRedisClient(); err != nil {
		log.Printf("⚠️ 关闭 Redis 连接失败: %v", err)
	}
	log.Println("✅ 服务已退出")
}

func printWelcomeMessage() {
	fmt.Println()
	fmt.Println(" ┌───────────────────────────────────────────────────────┐")
	fmt.Printf(" │   🚀  %s\n", consts.ApplicationName)
	fmt.Println(" ├───────────────────────────────────────────────────────┤")
	fmt.Printf(" │   📦  版本     : %s\n", consts.ApplicationVersion)
	fmt.Printf(" │   🔥  服务端口 : %s\n", config.Get().Server.Port)
	fmt.Println(" └───────────────────────────────────────────────────────┘")
	fmt.Println()
}
