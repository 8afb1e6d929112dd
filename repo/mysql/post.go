package mysql

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/models/enums"
	"github.com/Xushengqwer/blog_service/myErrors"
)

// ListFilter 封装列表查询的全部过滤条件。
// - Statuses 是允许出现的状态集合，由服务层根据过滤规则算好传入。
type ListFilter struct {
	CategoryID string
	From       time.Time
	To         time.Time
	Statuses   []enums.PostStatus
	Slug       string
	Limit      int
}

// PostRepository 定义了帖子数据在 MySQL 中的持久化操作接口。
// 接口的设计旨在将数据访问逻辑与业务逻辑（服务层）解耦。
type PostRepository interface {
	// CreatePost 持久化一个新的帖子记录。
	// - db 参数允许调用方传入事务句柄。
	CreatePost(ctx context.Context, db *gorm.DB, post *entities.Post) error

	// GetPostByID 根据主键检索帖子。
	// - 未找到时返回 myErrors.ErrRepoNotFound。
	GetPostByID(ctx context.Context, id string) (*entities.Post, error)

	// GetPostBySlug 根据 slug 检索帖子，用于创建/更新前的标题查重。
	// - 未找到时返回 myErrors.ErrRepoNotFound。
	GetPostBySlug(ctx context.Context, slug string) (*entities.Post, error)

	// UpdatePostByIDAndAuthor 按 (id, author_id) 条件更新帖子字段。
	// - 作者条件写进 WHERE，保证他人帖子的更新在数据库层直接落空。
	// - 影响 0 行时返回 myErrors.ErrRepoNotFound，由服务层区分不存在与无权限。
	UpdatePostByIDAndAuthor(ctx context.Context, postID, authorID string, updates map[string]interface{}) error

	// UpdatePostStatus 更新帖子的审核状态及相关审计字段，不校验作者。
	UpdatePostStatus(ctx context.Context, postID string, updates map[string]interface{}) error

	// ListPosts 按过滤条件查询帖子列表，按创建时间降序。
	ListPosts(ctx context.Context, filter *ListFilter) ([]*entities.Post, error)

	// DeletePost 对指定帖子执行软删除。
	// - 影响 0 行时返回 myErrors.ErrRepoNotFound。
	DeletePost(ctx context.Context, db *gorm.DB, id string) error
}

// postRepository 是 PostRepository 接口针对 MySQL 的具体实现。
type postRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewPostRepository 是 postRepository 的构造函数。
func NewPostRepository(db *gorm.DB, logger *zap.Logger) PostRepository {
	return &postRepository{db: db, logger: logger}
}

func (r *postRepository) CreatePost(ctx context.Context, db *gorm.DB, post *entities.Post) error {
	return db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) GetPostByID(ctx context.Context, id string) (*entities.Post, error) {
	var post entities.Post
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, myErrors.ErrRepoNotFound
		}
		r.logger.Error("根据 ID 获取帖子失败", zap.String("postID", id), zap.Error(err))
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) GetPostBySlug(ctx context.Context, slug string) (*entities.Post, error) {
	var post entities.Post
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, myErrors.ErrRepoNotFound
		}
		r.logger.Error("根据 slug 获取帖子失败", zap.String("slug", slug), zap.Error(err))
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) UpdatePostByIDAndAuthor(ctx context.Context, postID, authorID string, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = time.Now()

	result := r.db.WithContext(ctx).
		Model(&entities.Post{}).
		Where("id = ? AND author_id = ?", postID, authorID).
		Updates(updates)
	if result.Error != nil {
		r.logger.Error("更新帖子失败",
			zap.String("postID", postID), zap.String("authorID", authorID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return myErrors.ErrRepoNotFound
	}
	return nil
}

func (r *postRepository) UpdatePostStatus(ctx context.Context, postID string, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Post{}).
		Where("id = ?", postID).
		Updates(updates)
	if result.Error != nil {
		r.logger.Error("更新帖子状态失败", zap.String("postID", postID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return myErrors.ErrRepoNotFound
	}
	return nil
}

func (r *postRepository) ListPosts(ctx context.Context, filter *ListFilter) ([]*entities.Post, error) {
	var posts []*entities.Post

	query := r.db.WithContext(ctx).Model(&entities.Post{})
	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if len(filter.Statuses) > 0 {
		query = query.Where("status IN ?", filter.Statuses)
	}
	if filter.Slug != "" {
		query = query.Where("slug = ?", filter.Slug)
	}
	// 创建时间区间为左闭右开
	query = query.Where("created_at >= ? AND created_at < ?", filter.From, filter.To)

	query = query.Order("created_at DESC").Order("id DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	if err := query.Find(&posts).Error; err != nil {
		r.logger.Error("查询帖子列表失败", zap.Error(err))
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) DeletePost(ctx context.Context, db *gorm.DB, id string) error {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Post{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return myErrors.ErrRepoNotFound
	}
	return nil
}
