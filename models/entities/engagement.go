package entities

import "time"

// PostLike 点赞成员表
// - (post_id, user_id) 唯一索引保证同一用户对同一帖子至多一行，
//   互动操作的幂等性由该约束在数据库层兜底
type PostLike struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	PostID    string `gorm:"type:char(24);not null;uniqueIndex:uk_post_user_like"`
	UserID    string `gorm:"type:varchar(64);not null;uniqueIndex:uk_post_user_like"`
	CreatedAt time.Time
}

// PostFavorite 收藏成员表，结构与点赞表一致，二者完全独立
type PostFavorite struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	PostID    string `gorm:"type:char(24);not null;uniqueIndex:uk_post_user_fav"`
	UserID    string `gorm:"type:varchar(64);not null;uniqueIndex:uk_post_user_fav"`
	CreatedAt time.Time
}
