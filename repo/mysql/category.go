package mysql

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/myErrors"
)

// CategoryRepository 定义分类的持久化操作接口。
type CategoryRepository interface {
	// CreateCategory 持久化一个新分类。
	CreateCategory(ctx context.Context, category *entities.Category) error

	// GetCategoryByID 根据主键检索分类。
	// - 未找到时返回 myErrors.ErrRepoNotFound。
	GetCategoryByID(ctx context.Context, id string) (*entities.Category, error)
}

type categoryRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewCategoryRepository 是 categoryRepository 的构造函数。
func NewCategoryRepository(db *gorm.DB, logger *zap.Logger) CategoryRepository {
	return &categoryRepository{db: db, logger: logger}
}

func (r *categoryRepository) CreateCategory(ctx context.Context, category *entities.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) GetCategoryByID(ctx context.Context, id string) (*entities.Category, error) {
	var category entities.Category
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, myErrors.ErrRepoNotFound
		}
		r.logger.Error("根据 ID 获取分类失败", zap.String("categoryID", id), zap.Error(err))
		return nil, err
	}
	return &category, nil
}
