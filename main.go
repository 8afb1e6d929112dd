package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/blog_service/config"
	"github.com/Xushengqwer/blog_service/controller"
	"github.com/Xushengqwer/blog_service/dependencies"
	"github.com/Xushengqwer/blog_service/mq/producer"
	mysqlRepo "github.com/Xushengqwer/blog_service/repo/mysql"
	redisRepo "github.com/Xushengqwer/blog_service/repo/redis"
	"github.com/Xushengqwer/blog_service/router"
	"github.com/Xushengqwer/blog_service/service"
	"github.com/Xushengqwer/blog_service/tasks"
)

// @title           Blog Service API
// @version         1.0
// @description     博客内容管理服务，提供帖子发布、审核、互动与列表查询能力。

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @schemes http https
func main() {
	var configFile string
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "Path to configuration file")
	flag.Parse()

	// 1. 加载配置
	cfg, err := appConfig.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("FATAL: 加载配置失败 (%s): %v", configFile, err)
	}

	// 2. 初始化 Logger
	logger, err := dependencies.InitLogger(&cfg.ZapConfig)
	if err != nil {
		log.Fatalf("FATAL: 初始化 Logger 失败: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()
	logger.Info("Logger 初始化成功")

	// 3. 初始化链路追踪
	tracerShutdown, err := dependencies.InitTracer(context.Background(), &cfg.TracerConfig, logger)
	if err != nil {
		logger.Fatal("初始化 TracerProvider 失败", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracerShutdown(ctx); err != nil {
			logger.Error("关闭 TracerProvider 失败", zap.Error(err))
		}
	}()

	// 4. 初始化核心依赖
	db, err := dependencies.InitMySQL(cfg, logger)
	if err != nil {
		logger.Fatal("初始化 MySQL 失败", zap.Error(err))
	}

	rdb, err := dependencies.InitRedis(&cfg.RedisConfig, logger)
	if err != nil {
		logger.Fatal("初始化 Redis 失败", zap.Error(err))
	}

	cosClient, err := dependencies.InitCOS(&cfg.COSConfig, logger)
	if err != nil {
		logger.Fatal("初始化 COS 客户端失败", zap.Error(err))
	}

	var kafkaProducer *producer.KafkaProducer
	if len(cfg.KafkaConfig.Brokers) > 0 {
		kafkaProducer = producer.NewKafkaProducer(cfg.KafkaConfig, logger)
		logger.Info("Kafka 生产者已初始化")
	} else {
		logger.Warn("未配置 Kafka brokers，事件发布被禁用")
	}

	// 5. 数据仓库层
	postRepo := mysqlRepo.NewPostRepository(db, logger)
	categoryRepo := mysqlRepo.NewCategoryRepository(db, logger)
	commentRepo := mysqlRepo.NewCommentRepository(db, logger)
	engagementRepo := mysqlRepo.NewEngagementRepository(db, logger)
	postBatchRepo := mysqlRepo.NewPostBatchRepository(db, logger, cfg.ViewSyncConfig)
	postViewRepo := redisRepo.NewPostViewRepository(rdb, logger, cfg.ViewSyncConfig)

	// 6. 服务层
	postService := service.NewPostService(db, postRepo, categoryRepo, commentRepo, postViewRepo, kafkaProducer, cosClient, logger)
	engagementService := service.NewEngagementService(postRepo, engagementRepo, logger)
	postListService := service.NewPostListService(postRepo, categoryRepo, logger)
	adminService := service.NewAdminPostService(postRepo, kafkaProducer, logger)

	// 7. 控制器层
	postController := controller.NewPostController(postService, postListService)
	engagementController := controller.NewEngagementController(engagementService)
	postAdminController := controller.NewPostAdminController(adminService)

	// 8. 后台定时任务
	syncTask := tasks.NewViewCountSyncTask(postViewRepo, postBatchRepo, logger)

	// 9. 路由与 HTTP 服务器
	ginRouter := router.SetupRouter(logger, cfg, postController, engagementController, postAdminController)
	httpServer := &http.Server{
		Addr:    cfg.ServerConfig.ListenAddr,
		Handler: ginRouter,
	}

	go func() {
		logger.Info("HTTP 服务器开始监听", zap.String("address", cfg.ServerConfig.ListenAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP 服务器启动失败", zap.Error(err))
		}
	}()

	// 10. 优雅关停
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	receivedSignal := <-quit
	logger.Info("收到关停信号，开始优雅退出...", zap.String("signal", receivedSignal.String()))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("关闭 HTTP 服务器失败", zap.Error(err))
	}

	// 等待定时任务跑完当前一轮
	syncStopCtx := syncTask.Stop()
	select {
	case <-syncStopCtx.Done():
		logger.Info("浏览量回刷任务已停止")
	case <-shutdownCtx.Done():
		logger.Error("等待定时任务停止超时", zap.Error(shutdownCtx.Err()))
	}

	if kafkaProducer != nil {
		if err := kafkaProducer.Close(); err != nil {
			logger.Error("关闭 Kafka 生产者失败", zap.Error(err))
		}
	}

	logger.Info("服务已成功关闭")
}
