package mysql

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/models/enums"
	"github.com/Xushengqwer/blog_service/myErrors"
)

// EngagementRepository 定义点赞/收藏的持久化操作接口。
// - 两类互动共用同一套原语：成员表插入/删除与帖子计数列增减在同一事务内完成，
//   保证计数恒等于成员行数。
type EngagementRepository interface {
	// Add 记录一次互动。
	// - 重复互动（唯一约束命中）返回 myErrors.ErrEngagementExists，且不改动计数。
	Add(ctx context.Context, kind enums.EngagementKind, postID, userID string) error

	// Remove 撤销一次互动。
	// - 记录不存在时返回 myErrors.ErrEngagementNotFound，且不改动计数。
	Remove(ctx context.Context, kind enums.EngagementKind, postID, userID string) error

	// Count 统计某帖子某类互动的成员行数，主要用于校验与测试。
	Count(ctx context.Context, kind enums.EngagementKind, postID string) (int64, error)
}

type engagementRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewEngagementRepository 是 engagementRepository 的构造函数。
func NewEngagementRepository(db *gorm.DB, logger *zap.Logger) EngagementRepository {
	return &engagementRepository{db: db, logger: logger}
}

func (r *engagementRepository) Add(ctx context.Context, kind enums.EngagementKind, postID, userID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 依赖 (post_id, user_id) 唯一约束探测重复：冲突时 DoNothing，
		// RowsAffected 为 0 即重复互动，并发双击也只会有一方成功。
		insert := tx.Clauses(clause.OnConflict{DoNothing: true})
		var result *gorm.DB
		if kind == enums.EngagementFavorite {
			result = insert.Create(&entities.PostFavorite{PostID: postID, UserID: userID})
		} else {
			result = insert.Create(&entities.PostLike{PostID: postID, UserID: userID})
		}
		if result.Error != nil {
			r.logger.Error("插入互动记录失败",
				zap.String("kind", string(kind)), zap.String("postID", postID),
				zap.String("userID", userID), zap.Error(result.Error))
			return result.Error
		}
		if result.RowsAffected == 0 {
			return myErrors.ErrEngagementExists
		}

		return tx.Model(&entities.Post{}).
			Where("id = ?", postID).
			UpdateColumn(kind.CountColumn(), gorm.Expr(kind.CountColumn()+" + 1")).Error
	})
}

func (r *engagementRepository) Remove(ctx context.Context, kind enums.EngagementKind, postID, userID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cond := tx.Where("post_id = ? AND user_id = ?", postID, userID)
		var result *gorm.DB
		if kind == enums.EngagementFavorite {
			result = cond.Delete(&entities.PostFavorite{})
		} else {
			result = cond.Delete(&entities.PostLike{})
		}
		if result.Error != nil {
			r.logger.Error("删除互动记录失败",
				zap.String("kind", string(kind)), zap.String("postID", postID),
				zap.String("userID", userID), zap.Error(result.Error))
			return result.Error
		}
		if result.RowsAffected == 0 {
			return myErrors.ErrEngagementNotFound
		}

		return tx.Model(&entities.Post{}).
			Where("id = ?", postID).
			UpdateColumn(kind.CountColumn(), gorm.Expr(kind.CountColumn()+" - 1")).Error
	})
}

func (r *engagementRepository) Count(ctx context.Context, kind enums.EngagementKind, postID string) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx)
	if kind == enums.EngagementFavorite {
		query = query.Model(&entities.PostFavorite{})
	} else {
		query = query.Model(&entities.PostLike{})
	}
	err := query.Where("post_id = ?", postID).Count(&count).Error
	return count, err
}
