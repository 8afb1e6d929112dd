package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/models/vo"
	"github.com/Xushengqwer/blog_service/myErrors"
	mysqlRepo "github.com/Xushengqwer/blog_service/repo/mysql"
	"github.com/Xushengqwer/blog_service/utils"
)

// testEnv 聚合服务层测试所需的数据库与仓库实例。
type testEnv struct {
	db             *gorm.DB
	postRepo       mysqlRepo.PostRepository
	categoryRepo   mysqlRepo.CategoryRepository
	commentRepo    mysqlRepo.CommentRepository
	engagementRepo mysqlRepo.EngagementRepository
}

// newTestEnv 基于内存 SQLite 构建一套真实仓库，服务层测试不做仓库打桩。
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// 内存库绑定单连接，防止连接池拿到新的空库
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entities.Post{},
		&entities.PostLike{},
		&entities.PostFavorite{},
		&entities.Category{},
		&entities.Comment{},
	))

	logger := zap.NewNop()
	return &testEnv{
		db:             db,
		postRepo:       mysqlRepo.NewPostRepository(db, logger),
		categoryRepo:   mysqlRepo.NewCategoryRepository(db, logger),
		commentRepo:    mysqlRepo.NewCommentRepository(db, logger),
		engagementRepo: mysqlRepo.NewEngagementRepository(db, logger),
	}
}

// postService 构建被测的帖子服务；Kafka/COS/Redis 均不参与。
func (e *testEnv) postService() PostService {
	return NewPostService(e.db, e.postRepo, e.categoryRepo, e.commentRepo, nil, nil, nil, zap.NewNop())
}

func (e *testEnv) engagementService() EngagementService {
	return NewEngagementService(e.postRepo, e.engagementRepo, zap.NewNop())
}

func (e *testEnv) adminService() AdminPostService {
	return NewAdminPostService(e.postRepo, nil, zap.NewNop())
}

// createCategory 插入一个分类并返回其 ID。
func (e *testEnv) createCategory(t *testing.T, name string) string {
	t.Helper()
	category := &entities.Category{ID: utils.NewID(), Name: name}
	require.NoError(t, e.categoryRepo.CreateCategory(context.Background(), category))
	return category.ID
}

// createPost 通过服务层创建一篇帖子，走完整的创建校验路径。
func (e *testEnv) createPost(t *testing.T, authorID, title, categoryID string) *vo.PostVO {
	t.Helper()
	created, err := e.postService().CreatePost(context.Background(), authorID, &dto.CreatePostRequest{
		Title:       title,
		Description: "description for " + title,
		Content:     "content for " + title,
		CategoryID:  categoryID,
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	return created
}

// assertAppError 断言错误是携带预期状态与业务码的 AppError。
func assertAppError(t *testing.T, err error, wantStatus, wantCode int) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := myErrors.AsAppError(err)
	require.True(t, ok, "期望 AppError，实际: %v", err)
	assert.Equal(t, wantStatus, appErr.Status, "HTTP 状态不符")
	assert.Equal(t, wantCode, appErr.Code, "业务码不符")
}
