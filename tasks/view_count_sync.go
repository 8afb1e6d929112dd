package tasks

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_service/constant"
	mysqlRepo "github.com/Xushengqwer/blog_service/repo/mysql"
	redisRepo "github.com/Xushengqwer/blog_service/repo/redis"
)

// ViewCountSyncTask 定时把 Redis 中累积的帖子浏览量回刷到 MySQL。
type ViewCountSyncTask struct {
	postViewRepo  redisRepo.PostViewRepository
	postBatchRepo mysqlRepo.PostBatchRepository
	cron          *cron.Cron
	logger        *zap.Logger
}

// NewViewCountSyncTask 初始化并启动浏览量回刷定时任务。
func NewViewCountSyncTask(
	postViewRepo redisRepo.PostViewRepository,
	postBatchRepo mysqlRepo.PostBatchRepository,
	logger *zap.Logger,
) *ViewCountSyncTask {
	// 调度表达式带秒字段
	cronV3 := cron.New(cron.WithSeconds())
	task := &ViewCountSyncTask{
		postViewRepo:  postViewRepo,
		postBatchRepo: postBatchRepo,
		cron:          cronV3,
		logger:        logger,
	}
	task.startCronJob()
	return task
}

func (t *ViewCountSyncTask) startCronJob() {
	schedule := constant.SyncViewCountInterval

	entryID, err := t.cron.AddFunc(schedule, func() {
		startTime := time.Now()
		// 单次执行的超时上限要覆盖 Redis 全量扫描加 MySQL 批量更新
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		t.syncViewCountsToDB(ctx)

		t.logger.Info("浏览量回刷任务执行完毕", zap.Duration("elapsed", time.Since(startTime)))
	})
	if err != nil {
		t.logger.Fatal("添加浏览量回刷 cron 作业失败", zap.Error(err), zap.String("schedule", schedule))
	}

	t.cron.Start()
	t.logger.Info("浏览量回刷定时任务已启动",
		zap.String("schedule", schedule), zap.Uint("cronEntryID", uint(entryID)))
}

// syncViewCountsToDB 执行一轮回刷：Redis 全量读取 → MySQL 批量更新。
func (t *ViewCountSyncTask) syncViewCountsToDB(ctx context.Context) {
	viewCounts, err := t.postViewRepo.GetAllViewCounts(ctx)
	if err != nil {
		t.logger.Error("从 Redis 获取全量浏览量失败，本轮回刷中止", zap.Error(err))
		return
	}
	if len(viewCounts) == 0 {
		return
	}

	if err := t.postBatchRepo.BatchUpdatePostViewCounts(ctx, viewCounts); err != nil {
		// 失败的批次留待下一轮补齐
		t.logger.Error("浏览量批量回刷存在失败批次", zap.Error(err), zap.Int("submitted", len(viewCounts)))
	}
}

// Stop 停止调度器，返回的 context 在所有运行中的任务结束后关闭。
func (t *ViewCountSyncTask) Stop() context.Context {
	t.logger.Info("正在停止浏览量回刷定时任务...")
	return t.cron.Stop()
}
