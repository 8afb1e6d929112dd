package entities

import (
	"database/sql"
	"time"

	"gorm.io/gorm"

	"github.com/Xushengqwer/blog_service/models/enums"
)

// Post 帖子实体
// - 使用场景: 帖子全生命周期的主记录，承载正文、审核状态、互动计数与附件
// - 表名: posts (GORM 默认使用结构体名复数形式)
type Post struct {
	// 主键，24 位十六进制标识符，创建时由服务生成，之后不可变
	// - 类型: char(24)，固定长度，等价于 12 字节随机数的十六进制编码
	ID string `gorm:"type:char(24);primaryKey"`

	CreatedAt time.Time
	UpdatedAt time.Time

	// 软删除标记；删除后的帖子对所有查询不可见，但行保留用于追溯
	DeletedAt gorm.DeletedAt `gorm:"index"`

	// 标题，必填，最大长度255个字符
	Title string `gorm:"type:varchar(255);not null"`

	// Slug，由标题派生的 URL 友好标识
	// - 唯一索引是防重的唯一权威：创建/更新时先查重给出业务码，
	//   约束本身兜底并发窗口
	// - 注意: 更新帖子时无条件按新标题重算，即使标题未变
	Slug string `gorm:"type:varchar(255);not null;uniqueIndex"`

	// 描述，帖子的简介文本
	Description string `gorm:"type:varchar(500);not null"`

	// 正文内容
	Content string `gorm:"type:text;not null"`

	// 作者ID，来自网关透传的用户身份，创建后不可变
	AuthorID string `gorm:"type:varchar(64);not null;index"`

	// 分类ID，引用 categories 表，创建后不允许修改
	CategoryID string `gorm:"type:char(24);not null;index"`

	// 状态，枚举字符串：pending/published/declined/banned
	// - 新建固定为 pending；状态只能通过审核操作变更
	Status enums.PostStatus `gorm:"type:varchar(16);not null;default:pending;index"`

	// 最近一次状态变更的时间与操作者，仅审核操作写入
	// - 时间列不指定方言类型，交给各数据库驱动推导（SQLite 测试栈依赖这一点）
	StatusAsOf sql.NullTime
	StatusBy   sql.NullString `gorm:"type:varchar(64)"`

	// 审核备注，记录审核（特别是拒绝/封禁时）的原因
	RemarksText sql.NullString `gorm:"type:varchar(500);comment:审核备注"`
	RemarksBy   sql.NullString `gorm:"type:varchar(64)"`

	// 附件原始字节与媒体类型，二者同时存在或同时为空
	// - 数据库中的字节是附件的唯一权威来源；对象存储镜像仅用于外链加速
	AttachmentData []byte         `gorm:"type:longblob"`
	AttachmentMime sql.NullString `gorm:"type:varchar(100)"`

	// 附件在对象存储中的公开访问 URL，未镜像时为空
	AttachmentURL sql.NullString `gorm:"type:varchar(512)"`

	// 点赞数与收藏数
	// - 不变式: 计数恒等于对应成员表中该帖子的行数，由同一事务内的
	//   成员插入/删除与计数增减共同维护
	LikeCount     int64 `gorm:"type:bigint;not null;default:0"`
	FavoriteCount int64 `gorm:"type:bigint;not null;default:0"`

	// 浏览量，由 Redis 中的计数定时回刷
	ViewCount int64 `gorm:"type:bigint;not null;default:0"`
}
