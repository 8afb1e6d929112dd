package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gosimple/slug"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/models/enums"
	"github.com/Xushengqwer/blog_service/myErrors"
	"github.com/Xushengqwer/blog_service/utils"
)

// listNow 是列表测试里固定的“当前时间”。
var listNow = time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)

// newListService 构建一个把当前时间固定为 listNow 的列表服务。
func newListService(env *testEnv) PostListService {
	return &postListService{
		postRepo:     env.postRepo,
		categoryRepo: env.categoryRepo,
		logger:       zap.NewNop(),
		now:          func() time.Time { return listNow },
	}
}

// seedListPost 以指定状态和创建时间直接落库一篇帖子。
func seedListPost(t *testing.T, env *testEnv, title, categoryID string, status enums.PostStatus, createdAt time.Time) *entities.Post {
	t.Helper()
	post := &entities.Post{
		ID:          utils.NewID(),
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
		Title:       title,
		Slug:        slug.Make(title),
		Description: "d",
		Content:     "c",
		AuthorID:    "author-1",
		CategoryID:  categoryID,
		Status:      status,
	}
	require.NoError(t, env.postRepo.CreatePost(context.Background(), env.db, post))
	return post
}

func TestPostListService_StatusFiltering(t *testing.T) {
	env := newTestEnv(t)
	svc := newListService(env)
	ctx := context.Background()
	categoryID := env.createCategory(t, "tech")

	seedListPost(t, env, "Pending One", categoryID, enums.Pending, listNow.AddDate(0, 0, -5))
	published := seedListPost(t, env, "Published One", categoryID, enums.Published, listNow.AddDate(0, 0, -3))
	seedListPost(t, env, "Declined One", categoryID, enums.Declined, listNow.AddDate(0, 0, -2))
	seedListPost(t, env, "Banned One", categoryID, enums.Banned, listNow.AddDate(0, 0, -1))

	t.Run("缺省过滤时被拒绝的帖子不出现", func(t *testing.T) {
		result, err := svc.ListPosts(ctx, &dto.ListPostsRequest{})
		require.NoError(t, err)
		assert.Equal(t, 3, result.Count)
		assert.Len(t, result.Posts, 3)
		for _, p := range result.Posts {
			assert.NotEqual(t, enums.Declined, p.Status)
		}
		// 按创建时间降序
		assert.Equal(t, "Banned One", result.Posts[0].Title)
		assert.Equal(t, "Published One", result.Posts[1].Title)
		assert.Equal(t, "Pending One", result.Posts[2].Title)
	})

	t.Run("按单一状态过滤", func(t *testing.T) {
		result, err := svc.ListPosts(ctx, &dto.ListPostsRequest{Status: string(enums.Published)})
		require.NoError(t, err)
		require.Equal(t, 1, result.Count)
		assert.Equal(t, published.ID, result.Posts[0].ID)
	})

	t.Run("按declined过滤等同于缺省_仍不返回被拒绝帖子", func(t *testing.T) {
		result, err := svc.ListPosts(ctx, &dto.ListPostsRequest{Status: string(enums.Declined)})
		require.NoError(t, err)
		assert.Equal(t, 3, result.Count)
		for _, p := range result.Posts {
			assert.NotEqual(t, enums.Declined, p.Status)
		}
	})

	t.Run("未知状态值同样收敛到可列出集合", func(t *testing.T) {
		result, err := svc.ListPosts(ctx, &dto.ListPostsRequest{Status: "archived"})
		require.NoError(t, err)
		assert.Equal(t, 3, result.Count)
	})
}

func TestPostListService_DateRange(t *testing.T) {
	env := newTestEnv(t)
	svc := newListService(env)
	ctx := context.Background()
	categoryID := env.createCategory(t, "tech")

	recent := seedListPost(t, env, "Recent Post", categoryID, enums.Published, listNow.AddDate(0, 0, -3))
	old := seedListPost(t, env, "Ancient Post", categoryID, enums.Published, listNow.AddDate(0, -2, 0))

	t.Run("缺省窗口为最近一个日历月", func(t *testing.T) {
		result, err := svc.ListPosts(ctx, &dto.ListPostsRequest{})
		require.NoError(t, err)
		require.Equal(t, 1, result.Count)
		assert.Equal(t, recent.ID, result.Posts[0].ID)
	})

	t.Run("显式起始日期放宽窗口", func(t *testing.T) {
		result, err := svc.ListPosts(ctx, &dto.ListPostsRequest{Start: "2025-04-01"})
		require.NoError(t, err)
		assert.Equal(t, 2, result.Count)
	})

	t.Run("区间右端包含整个结束日", func(t *testing.T) {
		result, err := svc.ListPosts(ctx, &dto.ListPostsRequest{
			Start: "2025-05-01",
			End:   old.CreatedAt.Format("2006-01-02"),
		})
		require.NoError(t, err)
		require.Equal(t, 1, result.Count)
		assert.Equal(t, old.ID, result.Posts[0].ID)
	})

	t.Run("起始日期格式非法", func(t *testing.T) {
		_, err := svc.ListPosts(ctx, &dto.ListPostsRequest{Start: "not-a-date"})
		assertAppError(t, err, http.StatusBadRequest, myErrors.CodeListPostsInvalidStartDate)
	})

	t.Run("结束日期格式非法", func(t *testing.T) {
		_, err := svc.ListPosts(ctx, &dto.ListPostsRequest{End: "2025/07/01"})
		assertAppError(t, err, http.StatusBadRequest, myErrors.CodeListPostsInvalidEndDate)
	})

	t.Run("结束日期不晚于起始日期", func(t *testing.T) {
		_, err := svc.ListPosts(ctx, &dto.ListPostsRequest{Start: "2025-07-10", End: "2025-07-01"})
		assertAppError(t, err, http.StatusBadRequest, myErrors.CodeListPostsEndBeforeStart)

		_, err = svc.ListPosts(ctx, &dto.ListPostsRequest{Start: "2025-07-10", End: "2025-07-10"})
		assertAppError(t, err, http.StatusBadRequest, myErrors.CodeListPostsEndBeforeStart)
	})

	t.Run("结束日期晚于当前时间被接受", func(t *testing.T) {
		result, err := svc.ListPosts(ctx, &dto.ListPostsRequest{End: "2030-01-01"})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Count)
	})
}

func TestPostListService_CategoryAndSlug(t *testing.T) {
	env := newTestEnv(t)
	svc := newListService(env)
	ctx := context.Background()
	techID := env.createCategory(t, "tech")
	lifeID := env.createCategory(t, "life")

	techPost := seedListPost(t, env, "Tech Post", techID, enums.Published, listNow.AddDate(0, 0, -2))
	seedListPost(t, env, "Life Post", lifeID, enums.Published, listNow.AddDate(0, 0, -1))

	t.Run("按分类过滤", func(t *testing.T) {
		result, err := svc.ListPosts(ctx, &dto.ListPostsRequest{Category: techID})
		require.NoError(t, err)
		require.Equal(t, 1, result.Count)
		assert.Equal(t, techPost.ID, result.Posts[0].ID)
	})

	t.Run("分类ID形状非法", func(t *testing.T) {
		_, err := svc.ListPosts(ctx, &dto.ListPostsRequest{Category: "bogus"})
		assertAppError(t, err, http.StatusBadRequest, myErrors.CodeListPostsMalformedCategory)
	})

	t.Run("分类不存在", func(t *testing.T) {
		_, err := svc.ListPosts(ctx, &dto.ListPostsRequest{Category: utils.NewID()})
		assertAppError(t, err, http.StatusNotFound, myErrors.CodeListPostsCategoryNotFound)
	})

	t.Run("按slug精确过滤", func(t *testing.T) {
		result, err := svc.ListPosts(ctx, &dto.ListPostsRequest{Slug: "tech-post"})
		require.NoError(t, err)
		require.Equal(t, 1, result.Count)
		assert.Equal(t, techPost.ID, result.Posts[0].ID)
	})
}

func TestPostListService_Limit(t *testing.T) {
	env := newTestEnv(t)
	svc := newListService(env)
	ctx := context.Background()
	categoryID := env.createCategory(t, "tech")

	for i := 0; i < 5; i++ {
		seedListPost(t, env, "Post Number "+string(rune('A'+i)), categoryID, enums.Published,
			listNow.Add(-time.Duration(i+1)*time.Hour))
	}

	result, err := svc.ListPosts(ctx, &dto.ListPostsRequest{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)
	require.Len(t, result.Posts, 2)
	// 截断保留最新的两条
	assert.Equal(t, "Post Number A", result.Posts[0].Title)
	assert.Equal(t, "Post Number B", result.Posts[1].Title)
}
