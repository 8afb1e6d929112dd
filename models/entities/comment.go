package entities

import "time"

// Comment 帖子评论
// - 删除帖子时，其全部评论在同一事务内先于帖子删除，
//   保证不会出现指向已删除帖子的孤儿评论
type Comment struct {
	ID        string `gorm:"type:char(24);primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	PostID   string `gorm:"type:char(24);not null;index"`
	AuthorID string `gorm:"type:varchar(64);not null"`
	Content  string `gorm:"type:text;not null"`
}
