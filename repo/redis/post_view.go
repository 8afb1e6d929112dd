package redis

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/blog_service/config"
	"github.com/Xushengqwer/blog_service/constant"
)

// PostViewRepository 定义了与帖子浏览计数相关的 Redis 操作接口。
// - 浏览量先在 Redis 中累积，由定时任务批量回刷 MySQL。
type PostViewRepository interface {
	// IncrementViewCount 原子性地增加指定帖子的浏览量并更新排行分数。
	// - 每个帖子维护一个带 TTL 的去重集合，同一用户在窗口内的重复浏览只计一次。
	// - 计数器自增与 ZSet 更新由 Lua 脚本原子完成。
	IncrementViewCount(ctx context.Context, postID string, userID string) error

	// GetViewCount 读取某帖子当前在 Redis 中的浏览量，键不存在时返回 0。
	GetViewCount(ctx context.Context, postID string) (int64, error)

	// GetAllViewCounts 用 SCAN 分批获取全部帖子的浏览量，作为回刷 MySQL 的数据源。
	GetAllViewCounts(ctx context.Context) (map[string]int64, error)
}

type postViewRepository struct {
	redisClient *redis.Client
	logger      *zap.Logger
	viewSyncCfg appConfig.ViewSyncConfig
}

// NewPostViewRepository 创建 PostViewRepository 实例。
func NewPostViewRepository(redisClient *redis.Client, logger *zap.Logger, viewSyncCfg appConfig.ViewSyncConfig) PostViewRepository {
	return &postViewRepository{
		redisClient: redisClient,
		logger:      logger,
		viewSyncCfg: viewSyncCfg,
	}
}

// incrViewLua 自增浏览量并把新值写入排行 ZSet。
var incrViewLua = redis.NewScript(`
    local viewCount = redis.call("INCR", KEYS[1])
    redis.call("ZADD", KEYS[2], viewCount, ARGV[1])
    return viewCount
`)

func (r *postViewRepository) IncrementViewCount(ctx context.Context, postID string, userID string) error {
	dedupKey := constant.PostViewDedupPrefix + postID
	viewCountKey := constant.PostViewCountPrefix + postID

	// 去重集合: SADD 返回 0 说明该用户在窗口内已计过一次浏览
	added, err := r.redisClient.SAdd(ctx, dedupKey, userID).Result()
	if err != nil {
		return fmt.Errorf("写入浏览去重集合 %q 失败: %w", dedupKey, err)
	}
	if added == 0 {
		r.logger.Debug("浏览已在去重窗口内，跳过计数",
			zap.String("postID", postID), zap.String("userID", userID))
		return nil
	}

	// 刷新去重窗口；失败不中断计数
	if err := r.redisClient.Expire(ctx, dedupKey, constant.ViewDedupTTL).Err(); err != nil {
		r.logger.Warn("设置浏览去重集合过期时间失败", zap.String("dedupKey", dedupKey), zap.Error(err))
	}

	if _, err := incrViewLua.Run(ctx, r.redisClient,
		[]string{viewCountKey, constant.PostsRankKey}, postID).Result(); err != nil {
		r.logger.Error("浏览量自增脚本执行失败", zap.String("postID", postID), zap.Error(err))
		return fmt.Errorf("原子性增加浏览量失败 (postID: %s): %w", postID, err)
	}
	return nil
}

func (r *postViewRepository) GetViewCount(ctx context.Context, postID string) (int64, error) {
	val, err := r.redisClient.Get(ctx, constant.PostViewCountPrefix+postID).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		return 0, fmt.Errorf("读取帖子 %s 浏览量失败: %w", postID, err)
	}
	count, parseErr := strconv.ParseInt(val, 10, 64)
	if parseErr != nil {
		return 0, fmt.Errorf("解析帖子 %s 浏览量值 %q 失败: %w", postID, val, parseErr)
	}
	return count, nil
}

func (r *postViewRepository) GetAllViewCounts(ctx context.Context) (map[string]int64, error) {
	viewCounts := make(map[string]int64)
	matchPattern := constant.PostViewCountPrefix + "*"

	scanCount := r.viewSyncCfg.ScanBatchSize
	if scanCount <= 0 {
		scanCount = 1000
	}

	startTime := time.Now()
	var cursor uint64
	for {
		keys, nextCursor, err := r.redisClient.Scan(ctx, cursor, matchPattern, scanCount).Result()
		if err != nil {
			return nil, fmt.Errorf("扫描 Redis Keys 失败 (模式: %s): %w", matchPattern, err)
		}

		if len(keys) > 0 {
			values, mgetErr := r.redisClient.MGet(ctx, keys...).Result()
			if mgetErr != nil {
				return nil, fmt.Errorf("批量获取浏览量值失败 (%d keys): %w", len(keys), mgetErr)
			}

			for i, key := range keys {
				postID := strings.TrimPrefix(key, constant.PostViewCountPrefix)

				viewCount := int64(0)
				if i < len(values) && values[i] != nil {
					if valueStr, ok := values[i].(string); ok && valueStr != "" {
						parsed, parseErr := strconv.ParseInt(valueStr, 10, 64)
						if parseErr != nil {
							r.logger.Error("解析浏览量值失败，该帖子按 0 处理",
								zap.String("key", key), zap.String("value", valueStr), zap.Error(parseErr))
						} else {
							viewCount = parsed
						}
					}
				}
				viewCounts[postID] = viewCount
			}
		}

		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}

	r.logger.Info("完成扫描 Redis 帖子浏览量",
		zap.Int("posts", len(viewCounts)),
		zap.Duration("elapsed", time.Since(startTime)),
	)
	return viewCounts, nil
}
