package constant

import "time"

// Redis Key 相关常量
const (
	// PostViewDedupPrefix 是帖子浏览去重集合的 Key 前缀。
	// 每个帖子对应一个 Set，成员是已计入浏览的用户 ID，整键带 TTL。
	// 示例 Key: "post_view_dedup:5f1d7a2b9c3e4d5f6a7b8c9d"
	// Redis 类型: Set
	PostViewDedupPrefix = "post_view_dedup:"

	// PostViewCountPrefix 是帖子浏览量计数器的 Key 前缀。
	// 每个帖子对应一个 String 类型的 Key，用于原子性计数。
	// 示例 Key: "post_view_count:5f1d7a2b9c3e4d5f6a7b8c9d"，示例值: "58"
	PostViewCountPrefix = "post_view_count:"

	// PostsRankKey 是全局帖子浏览量排行的 Key 名称。
	// Sorted Set，成员是帖子 ID，分数是浏览量。
	PostsRankKey = "post_rank"
)

// ViewDedupTTL 是浏览去重集合的过期时间。
// 这个时间窗口决定了同一用户对同一帖子的浏览在多长时间内只被计数一次。
const ViewDedupTTL = 12 * time.Hour
