package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/blog_service/config"
	"github.com/Xushengqwer/blog_service/dependencies"
	mysqlRepo "github.com/Xushengqwer/blog_service/repo/mysql"
)

func main() {
	var configFile string
	var numPosts int
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "配置文件路径")
	flag.IntVar(&numPosts, "n", 50, "要生成的帖子数量 (默认: 50)")
	flag.Parse()

	if numPosts <= 0 {
		fmt.Println("错误: 生成的帖子数量必须大于 0")
		os.Exit(1)
	}

	cfg, err := appConfig.LoadConfig(configFile)
	if err != nil {
		fmt.Printf("加载配置失败 (%s): %v\n", configFile, err)
		os.Exit(1)
	}

	logger, err := dependencies.InitLogger(&cfg.ZapConfig)
	if err != nil {
		fmt.Printf("初始化 Logger 失败: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	db, err := dependencies.InitMySQL(cfg, logger)
	if err != nil {
		logger.Fatal("初始化 MySQL 失败 (Seeder)", zap.Error(err))
	}

	postRepo := mysqlRepo.NewPostRepository(db, logger)
	categoryRepo := mysqlRepo.NewCategoryRepository(db, logger)
	commentRepo := mysqlRepo.NewCommentRepository(db, logger)
	engagementRepo := mysqlRepo.NewEngagementRepository(db, logger)

	startTime := time.Now()
	Seed(context.Background(), db, postRepo, categoryRepo, commentRepo, engagementRepo, logger, numPosts)
	logger.Info("数据填充完成", zap.Duration("elapsed", time.Since(startTime)))
}
