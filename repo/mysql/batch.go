package mysql

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	appConfig "github.com/Xushengqwer/blog_service/config"
	"github.com/Xushengqwer/blog_service/models/entities"
)

// PostBatchRepository 定义批量数据库操作接口，服务于浏览量回刷等后台任务。
type PostBatchRepository interface {
	// BatchUpdatePostViewCounts 并发地把 Redis 中的浏览量批量写回 MySQL。
	// - 更新分批执行，允许部分批次失败：错误被聚合返回，其余批次照常提交，
	//   失败的帖子浏览量留待下一轮任务补齐，实现最终一致。
	BatchUpdatePostViewCounts(ctx context.Context, viewCounts map[string]int64) error
}

type postBatchRepository struct {
	db          *gorm.DB
	logger      *zap.Logger
	viewSyncCfg appConfig.ViewSyncConfig
}

// NewPostBatchRepository 是 postBatchRepository 的构造函数。
func NewPostBatchRepository(db *gorm.DB, logger *zap.Logger, viewSyncCfg appConfig.ViewSyncConfig) PostBatchRepository {
	return &postBatchRepository{db: db, logger: logger, viewSyncCfg: viewSyncCfg}
}

// updateItem 在并发处理通道中传递帖子 ID 与对应浏览量。
type updateItem struct {
	ID        string
	ViewCount int64
}

func (r *postBatchRepository) BatchUpdatePostViewCounts(ctx context.Context, viewCounts map[string]int64) error {
	totalUpdates := len(viewCounts)
	if totalUpdates == 0 {
		return nil
	}

	batchSize := r.viewSyncCfg.BatchSize
	if batchSize <= 0 {
		batchSize = 500
	}
	concurrencyLevel := r.viewSyncCfg.ConcurrencyLevel
	if concurrencyLevel <= 0 {
		concurrencyLevel = 1
	}

	itemsToUpdate := make([]updateItem, 0, totalUpdates)
	for id, count := range viewCounts {
		itemsToUpdate = append(itemsToUpdate, updateItem{ID: id, ViewCount: count})
	}
	totalBatches := (totalUpdates + batchSize - 1) / batchSize

	r.logger.Info("开始并发批量回刷浏览量",
		zap.Int("total", totalUpdates),
		zap.Int("batchSize", batchSize),
		zap.Int("concurrency", concurrencyLevel),
		zap.Int("batches", totalBatches),
	)

	var wg sync.WaitGroup
	jobs := make(chan []updateItem, concurrencyLevel)
	results := make(chan error, totalBatches)
	startTime := time.Now()

	for i := 0; i < concurrencyLevel; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for batch := range jobs {
				select {
				case <-ctx.Done():
					results <- fmt.Errorf("worker %d: context cancelled: %w", workerID, ctx.Err())
					continue
				default:
				}
				results <- r.processBatch(ctx, batch, workerID)
			}
		}(i)
	}

	go func() {
		defer close(jobs)
		for i := 0; i < totalUpdates; i += batchSize {
			end := i + batchSize
			if end > totalUpdates {
				end = totalUpdates
			}
			batchCopy := make([]updateItem, end-i)
			copy(batchCopy, itemsToUpdate[i:end])

			select {
			case <-ctx.Done():
				return
			case jobs <- batchCopy:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	var aggregatedErrors []error
	for err := range results {
		if err != nil {
			aggregatedErrors = append(aggregatedErrors, err)
		}
	}

	failedCount := len(aggregatedErrors)
	r.logger.Info("浏览量批量回刷完成",
		zap.Duration("elapsed", time.Since(startTime)),
		zap.Int("batches", totalBatches),
		zap.Int("failedBatches", failedCount),
	)

	if failedCount > 0 {
		errorStrings := make([]string, 0, failedCount)
		for _, e := range aggregatedErrors {
			errorStrings = append(errorStrings, e.Error())
		}
		return fmt.Errorf("浏览量批量回刷部分失败 (%d/%d 批次): %s",
			failedCount, totalBatches, strings.Join(errorStrings, "; "))
	}
	return nil
}

// processBatch 用单条 CASE WHEN 更新语句写回一个批次。
func (r *postBatchRepository) processBatch(ctx context.Context, batch []updateItem, workerID int) error {
	var (
		ids          []string
		sqlCase      strings.Builder
		updateParams []interface{}
	)
	sqlCase.WriteString("CASE id ")
	for _, item := range batch {
		ids = append(ids, item.ID)
		sqlCase.WriteString("WHEN ? THEN ? ")
		updateParams = append(updateParams, item.ID, item.ViewCount)
	}
	sqlCase.WriteString("END")

	err := r.db.WithContext(ctx).Model(&entities.Post{}).
		Where("id IN ?", ids).
		Update("view_count", gorm.Expr(sqlCase.String(), updateParams...)).Error
	if err != nil {
		r.logger.Error("浏览量批次更新失败",
			zap.Int("workerID", workerID), zap.Int("batchSize", len(batch)), zap.Error(err))
		return fmt.Errorf("worker %d 处理批次 (大小 %d) 失败: %w", workerID, len(batch), err)
	}
	return nil
}
