package mysql

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/blog_service/models/entities"
)

// CommentRepository 定义评论的持久化操作接口。
type CommentRepository interface {
	// CreateComment 持久化一条新评论。
	CreateComment(ctx context.Context, comment *entities.Comment) error

	// DeleteCommentsByPostID 删除某帖子的全部评论。
	// - db 参数允许与帖子删除共用同一个事务，保证级联的原子性。
	DeleteCommentsByPostID(ctx context.Context, db *gorm.DB, postID string) (int64, error)

	// CountCommentsByPostID 统计某帖子的评论数。
	CountCommentsByPostID(ctx context.Context, postID string) (int64, error)
}

type commentRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewCommentRepository 是 commentRepository 的构造函数。
func NewCommentRepository(db *gorm.DB, logger *zap.Logger) CommentRepository {
	return &commentRepository{db: db, logger: logger}
}

func (r *commentRepository) CreateComment(ctx context.Context, comment *entities.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) DeleteCommentsByPostID(ctx context.Context, db *gorm.DB, postID string) (int64, error) {
	result := db.WithContext(ctx).Where("post_id = ?", postID).Delete(&entities.Comment{})
	if result.Error != nil {
		r.logger.Error("删除帖子评论失败", zap.String("postID", postID), zap.Error(result.Error))
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *commentRepository) CountCommentsByPostID(ctx context.Context, postID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Comment{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}
