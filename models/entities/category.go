package entities

import "time"

// Category 帖子分类
// - 列表查询按分类过滤时先校验分类存在，再按 ID 过滤帖子
type Category struct {
	ID        string `gorm:"type:char(24);primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// 分类名，唯一
	Name string `gorm:"type:varchar(100);not null;uniqueIndex"`
}
