package constant

// 服务元信息，用于日志、追踪与事件来源标识。
const (
	ServiceName    = "blog_service"
	ServiceVersion = "1.0.0"
)

// SyncViewCountInterval 是浏览量回刷任务的 cron 表达式（带秒字段）。
const SyncViewCountInterval = "0 */5 * * * *"
