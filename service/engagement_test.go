package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/blog_service/myErrors"
	"github.com/Xushengqwer/blog_service/utils"
)

func TestEngagementService_LikeUnlike(t *testing.T) {
	env := newTestEnv(t)
	svc := env.engagementService()
	ctx := context.Background()
	categoryID := env.createCategory(t, "tech")
	post := env.createPost(t, "author-1", "Likeable Post", categoryID)

	t.Run("点赞后计数加一", func(t *testing.T) {
		got, err := svc.LikePost(ctx, post.ID, "user-1")
		require.NoError(t, err)
		assert.Equal(t, int64(1), got.LikeCount)
	})

	t.Run("重复点赞冲突且计数不变", func(t *testing.T) {
		_, err := svc.LikePost(ctx, post.ID, "user-1")
		assertAppError(t, err, http.StatusConflict, myErrors.CodeLikePostAlreadyDone)

		stored, err := env.postRepo.GetPostByID(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), stored.LikeCount)
	})

	t.Run("取消点赞恢复计数", func(t *testing.T) {
		got, err := svc.UnlikePost(ctx, post.ID, "user-1")
		require.NoError(t, err)
		assert.Equal(t, int64(0), got.LikeCount)
	})

	t.Run("未点赞时取消点赞冲突", func(t *testing.T) {
		_, err := svc.UnlikePost(ctx, post.ID, "user-1")
		assertAppError(t, err, http.StatusConflict, myErrors.CodeUnlikePostNotDone)
	})

	t.Run("帖子不存在", func(t *testing.T) {
		_, err := svc.LikePost(ctx, utils.NewID(), "user-1")
		assertAppError(t, err, http.StatusNotFound, myErrors.CodeLikePostNotFound)

		_, err = svc.UnlikePost(ctx, "malformed", "user-1")
		assertAppError(t, err, http.StatusNotFound, myErrors.CodeUnlikePostNotFound)
	})
}

func TestEngagementService_FavoriteUnfavorite(t *testing.T) {
	env := newTestEnv(t)
	svc := env.engagementService()
	ctx := context.Background()
	categoryID := env.createCategory(t, "tech")
	post := env.createPost(t, "author-1", "Collectible Post", categoryID)

	t.Run("收藏与点赞互不影响", func(t *testing.T) {
		_, err := svc.LikePost(ctx, post.ID, "user-1")
		require.NoError(t, err)

		got, err := svc.FavoritePost(ctx, post.ID, "user-1")
		require.NoError(t, err)
		assert.Equal(t, int64(1), got.FavoriteCount)
		assert.Equal(t, int64(1), got.LikeCount)
	})

	t.Run("重复收藏冲突", func(t *testing.T) {
		_, err := svc.FavoritePost(ctx, post.ID, "user-1")
		assertAppError(t, err, http.StatusConflict, myErrors.CodeFavoritePostAlready)
	})

	t.Run("取消收藏后点赞保留", func(t *testing.T) {
		got, err := svc.UnfavoritePost(ctx, post.ID, "user-1")
		require.NoError(t, err)
		assert.Equal(t, int64(0), got.FavoriteCount)
		assert.Equal(t, int64(1), got.LikeCount)
	})

	t.Run("未收藏时取消收藏冲突", func(t *testing.T) {
		_, err := svc.UnfavoritePost(ctx, post.ID, "user-1")
		assertAppError(t, err, http.StatusConflict, myErrors.CodeUnfavoritePostNotDone)
	})

	t.Run("帖子不存在", func(t *testing.T) {
		_, err := svc.FavoritePost(ctx, utils.NewID(), "user-1")
		assertAppError(t, err, http.StatusNotFound, myErrors.CodeFavoritePostNotFound)

		_, err = svc.UnfavoritePost(ctx, utils.NewID(), "user-1")
		assertAppError(t, err, http.StatusNotFound, myErrors.CodeUnfavoritePostNotFound)
	})
}
