package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/betbot/hyperscale/internal/app"
	"github.com/betbot/hyperscale/internal/console"
	"github.com/betbot/hyperscale/internal/hyperliquid"
	"github.com/betbot/hyperscale/pkg/config"
	"github.com/betbot/hyperscale/pkg/logger"
)

func main() {
	// .env 可选（不存在不是错误）
	_ = godotenv.Load()

	config.SetConfigPath("config.yaml")
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "配置错误: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(logger.Config{
		Level:      cfg.LogLevel,
		OutputFile: cfg.LogFile,
		MaxSize:    50,
		MaxBackups: 3,
		MaxAge:     7,
		Compress:   true,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}

	client := hyperliquid.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout())

	deps := app.Deps{
		Fetcher:  client,
		Activity: client,
		Input:    console.NewPrompt(os.Stdin, os.Stdout, cfg.Coin),
		Out:      os.Stdout,
		Now:      time.Now,
	}

	if err := app.Run(context.Background(), cfg, deps); err != nil {
		logger.Errorf("运行失败: %v", err)
		fmt.Fprintf(os.Stderr, "\n错误: %v\n", err)
		os.Exit(1)
	}
}
