package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Ahsin6/Mood-Tracker/config"
	"github.com/Ahsin6/Mood-Tracker/middleware"
	"github.com/Ahsin6/Mood-Tracker/routes"
	"github.com/Ahsin6/Mood-Tracker/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// 初始化日志
	if err := config.InitLogger(); err != nil {
		log.Fatalf("无法初始化日志: %v", err)
	}
	defer config.Logger.Sync()

	// 加载配置
	conf, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("无法加载配置: %v", err)
	}

	// 初始化 Google 表格客户端
	ctx := context.Background()
	sheetsClient, err := services.NewSheetsClient(ctx, conf.GoogleCredentialsJSON)
	if err != nil {
		log.Fatalf("无法初始化表格客户端: %v", err)
	}

	// 启动时解析一次表格句柄，之后全部操作显式传递
	handle, err := sheetsClient.OpenOrCreate(ctx, conf.SpreadsheetName)
	if err != nil {
		log.Fatalf("无法打开或创建表格: %v", err)
	}
	if handle.Created {
		config.Logger.Infow("已创建新表格", "name", conf.SpreadsheetName, "url", handle.URL())
	} else {
		config.Logger.Infow("已打开表格", "name", conf.SpreadsheetName, "url", handle.URL())
	}

	// 创建心情存储
	store := services.NewMoodStore(sheetsClient, handle)

	// 设置Gin模式
	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 创建Gin引擎
	r := gin.New()

	// 设置中间件
	middleware.SetupMiddleware(r)
	r.Use(middleware.RequestLogger())

	// 加载页面模板
	r.LoadHTMLGlob("templates/*")

	// 注册路由
	routes.RegisterRoutes(r, store, conf.RefreshSeconds)

	// 创建HTTP服务器
	srv := &http.Server{
		Addr:    ":" + conf.ServerPort,
		Handler: r,
	}

	// 在goroutine中启动服务器
	go func() {
		log.Printf("启动服务器，监听端口: %s", conf.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("服务器启动失败: %v", err)
		}
	}()

	// 等待中断信号以实现优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("正在关闭服务器...")

	// 创建超时上下文
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// 优雅关闭服务器
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("服务器关闭失败: %v", err)
	}

	log.Println("服务器已关闭")
}
