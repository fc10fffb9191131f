package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/LENAX/autoflow-engine/pkg/api"
	"github.com/LENAX/autoflow-engine/pkg/config"
	"github.com/LENAX/autoflow-engine/pkg/core/graph"
	"github.com/LENAX/autoflow-engine/pkg/core/serializer"
	"github.com/LENAX/autoflow-engine/pkg/ident"
)

var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	// 命令行参数
	configPath := flag.String("config", "./configs/engine.yaml", "引擎配置文件路径")
	host := flag.String("host", "0.0.0.0", "监听地址")
	flag.Parse()

	log.Printf("Autoflow Engine Server v%s", Version)
	log.Printf("配置文件: %s", *configPath)

	// 1. 加载并校验配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("配置不合法: %v", err)
	}

	// 2. 构建模板注册表（内置模板 + 可选YAML叠加）
	registry := graph.NewRegistry()
	if cfg.Registry.TemplatesFile != "" {
		if err := registry.LoadFile(cfg.Registry.TemplatesFile); err != nil {
			log.Fatalf("加载模板文件失败: %v", err)
		}
		log.Printf("模板文件已叠加: %s", cfg.Registry.TemplatesFile)
	}

	// 3. 构建序列化引擎
	engine := serializer.New(registry, ident.NewUUIDGenerator()).
		WithDefaultName(cfg.Serializer.DefaultName).
		WithVersion(cfg.Serializer.Version)

	// 4. 创建API服务器
	serverConfig := api.ServerConfig{
		Host:         *host,
		Port:         cfg.HTTPPort,
		Mode:         cfg.Mode,
		ReadTimeout:  api.DefaultServerConfig().ReadTimeout,
		WriteTimeout: api.DefaultServerConfig().WriteTimeout,
	}

	apiServer := api.NewAPIServer(engine, registry, serverConfig, Version)

	// 5. 在goroutine中启动API服务器
	go func() {
		if err := apiServer.Start(); err != nil {
			log.Printf("API服务器错误: %v", err)
		}
	}()

	log.Printf("✅ Autoflow Engine Server started on %s:%d", *host, cfg.HTTPPort)

	// 6. 等待中断信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("正在关闭服务...")

	// 7. 优雅关闭
	shutdownCtx, cancel := context.WithTimeout(context.Background(), api.DefaultServerConfig().WriteTimeout)
	defer cancel()

	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("关闭API服务器失败: %v", err)
	}

	log.Println("✅ 服务已停止")
}
