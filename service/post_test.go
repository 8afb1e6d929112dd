package service

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/models/enums"
	"github.com/Xushengqwer/blog_service/myErrors"
	"github.com/Xushengqwer/blog_service/utils"
)

func strPtr(s string) *string { return &s }

func TestPostService_CreatePost(t *testing.T) {
	env := newTestEnv(t)
	svc := env.postService()
	ctx := context.Background()
	categoryID := env.createCategory(t, "tech")

	t.Run("创建成功_初始状态为待审核", func(t *testing.T) {
		created, err := svc.CreatePost(ctx, "author-1", &dto.CreatePostRequest{
			Title:       "Hello World",
			Description: "first post",
			Content:     "body",
			CategoryID:  categoryID,
		})
		require.NoError(t, err)
		assert.Equal(t, enums.Pending, created.Status)
		assert.Equal(t, "hello-world", created.Slug)
		assert.Equal(t, "author-1", created.AuthorID)
		assert.True(t, utils.IsValidID(created.ID))
		// 无附件时三个字段都保持 null
		assert.Nil(t, created.Attachment.Data)
		assert.Nil(t, created.Attachment.ContentType)
		assert.Nil(t, created.Attachment.URL)
	})

	t.Run("分类ID形状非法", func(t *testing.T) {
		_, err := svc.CreatePost(ctx, "author-1", &dto.CreatePostRequest{
			Title: "bad category", Description: "d", Content: "c", CategoryID: "not-a-hex-id",
		})
		assertAppError(t, err, http.StatusBadRequest, myErrors.CodeCreatePostCategoryNotFound)
	})

	t.Run("分类不存在", func(t *testing.T) {
		_, err := svc.CreatePost(ctx, "author-1", &dto.CreatePostRequest{
			Title: "ghost category", Description: "d", Content: "c", CategoryID: utils.NewID(),
		})
		assertAppError(t, err, http.StatusNotFound, myErrors.CodeCreatePostCategoryNotFound)
	})

	t.Run("重复标题被拒绝", func(t *testing.T) {
		env.createPost(t, "author-1", "Unique Title", categoryID)

		// 不同作者、同一标题同样冲突，slug 全局唯一
		_, err := svc.CreatePost(ctx, "author-2", &dto.CreatePostRequest{
			Title: "Unique Title", Description: "d", Content: "c", CategoryID: categoryID,
		})
		assertAppError(t, err, http.StatusConflict, myErrors.CodeCreatePostDuplicateTitle)
	})

	t.Run("带附件创建", func(t *testing.T) {
		raw := []byte{0x89, 0x50, 0x4e, 0x47}
		encoded := base64.StdEncoding.EncodeToString(raw)

		created, err := svc.CreatePost(ctx, "author-1", &dto.CreatePostRequest{
			Title: "With Attachment", Description: "d", Content: "c", CategoryID: categoryID,
			AttachmentData: strPtr(encoded),
			AttachmentMime: strPtr("image/png"),
		})
		require.NoError(t, err)
		require.NotNil(t, created.Attachment.Data)
		assert.Equal(t, encoded, *created.Attachment.Data)
		require.NotNil(t, created.Attachment.ContentType)
		assert.Equal(t, "image/png", *created.Attachment.ContentType)
		// 未接入对象存储时不产生外链
		assert.Nil(t, created.Attachment.URL)
	})

	t.Run("附件字段必须成对出现", func(t *testing.T) {
		_, err := svc.CreatePost(ctx, "author-1", &dto.CreatePostRequest{
			Title: "Half Attachment", Description: "d", Content: "c", CategoryID: categoryID,
			AttachmentData: strPtr(base64.StdEncoding.EncodeToString([]byte("x"))),
		})
		assertAppError(t, err, http.StatusBadRequest, myErrors.CodeCreatePostAttachmentPairing)
	})

	t.Run("附件base64非法", func(t *testing.T) {
		_, err := svc.CreatePost(ctx, "author-1", &dto.CreatePostRequest{
			Title: "Bad Base64", Description: "d", Content: "c", CategoryID: categoryID,
			AttachmentData: strPtr("%%% not base64 %%%"),
			AttachmentMime: strPtr("image/png"),
		})
		assertAppError(t, err, http.StatusBadRequest, myErrors.CodeCreatePostAttachmentEncoding)
	})
}

func TestPostService_GetPostByID(t *testing.T) {
	env := newTestEnv(t)
	svc := env.postService()
	ctx := context.Background()
	categoryID := env.createCategory(t, "tech")
	created := env.createPost(t, "author-1", "Readable Post", categoryID)

	t.Run("读取成功", func(t *testing.T) {
		got, err := svc.GetPostByID(ctx, created.ID, "")
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "Readable Post", got.Title)
	})

	t.Run("ID形状非法", func(t *testing.T) {
		_, err := svc.GetPostByID(ctx, "short", "")
		assertAppError(t, err, http.StatusBadRequest, myErrors.CodeGetPostMalformedID)
	})

	t.Run("帖子不存在", func(t *testing.T) {
		_, err := svc.GetPostByID(ctx, utils.NewID(), "")
		assertAppError(t, err, http.StatusNotFound, myErrors.CodeGetPostNotFound)
	})
}

func TestPostService_UpdatePost(t *testing.T) {
	env := newTestEnv(t)
	svc := env.postService()
	ctx := context.Background()
	categoryID := env.createCategory(t, "tech")

	t.Run("仅作者可更新", func(t *testing.T) {
		created := env.createPost(t, "author-1", "Owned Post", categoryID)

		_, err := svc.UpdatePost(ctx, created.ID, "intruder", &dto.UpdatePostRequest{
			Title: strPtr("Hijacked"),
		})
		assertAppError(t, err, http.StatusForbidden, myErrors.CodeUpdatePostForbidden)

		// 原帖未被动过
		got, err := svc.GetPostByID(ctx, created.ID, "")
		require.NoError(t, err)
		assert.Equal(t, "Owned Post", got.Title)
	})

	t.Run("更新标题同时重算slug", func(t *testing.T) {
		created := env.createPost(t, "author-1", "Old Title Here", categoryID)

		updated, err := svc.UpdatePost(ctx, created.ID, "author-1", &dto.UpdatePostRequest{
			Title: strPtr("Brand New Title"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Brand New Title", updated.Title)
		assert.Equal(t, "brand-new-title", updated.Slug)
	})

	t.Run("改成他人帖子的标题被拒绝", func(t *testing.T) {
		env.createPost(t, "author-1", "Taken Title", categoryID)
		mine := env.createPost(t, "author-1", "My Own Title", categoryID)

		_, err := svc.UpdatePost(ctx, mine.ID, "author-1", &dto.UpdatePostRequest{
			Title: strPtr("Taken Title"),
		})
		assertAppError(t, err, http.StatusConflict, myErrors.CodeUpdatePostDuplicateTitle)
	})

	t.Run("标题未变时不算重复", func(t *testing.T) {
		created := env.createPost(t, "author-1", "Stable Title", categoryID)

		updated, err := svc.UpdatePost(ctx, created.ID, "author-1", &dto.UpdatePostRequest{
			Title:   strPtr("Stable Title"),
			Content: strPtr("revised content"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Stable Title", updated.Title)
		assert.Equal(t, "revised content", updated.Content)
	})

	t.Run("省略的字段保持原值", func(t *testing.T) {
		created := env.createPost(t, "author-1", "Partial Update", categoryID)

		updated, err := svc.UpdatePost(ctx, created.ID, "author-1", &dto.UpdatePostRequest{
			Description: strPtr("new description"),
		})
		require.NoError(t, err)
		assert.Equal(t, "new description", updated.Description)
		assert.Equal(t, created.Title, updated.Title)
		assert.Equal(t, created.Content, updated.Content)
	})

	t.Run("附件字段必须成对出现", func(t *testing.T) {
		created := env.createPost(t, "author-1", "Half Replace", categoryID)

		_, err := svc.UpdatePost(ctx, created.ID, "author-1", &dto.UpdatePostRequest{
			AttachmentMime: strPtr("image/png"),
		})
		assertAppError(t, err, http.StatusBadRequest, myErrors.CodeUpdatePostAttachmentPairing)
	})

	t.Run("帖子不存在", func(t *testing.T) {
		_, err := svc.UpdatePost(ctx, utils.NewID(), "author-1", &dto.UpdatePostRequest{
			Title: strPtr("whatever"),
		})
		assertAppError(t, err, http.StatusNotFound, myErrors.CodeUpdatePostNotFound)
	})
}

func TestPostService_DeletePost(t *testing.T) {
	env := newTestEnv(t)
	svc := env.postService()
	ctx := context.Background()
	categoryID := env.createCategory(t, "tech")

	t.Run("删除级联清理评论", func(t *testing.T) {
		created := env.createPost(t, "author-1", "Doomed Post", categoryID)
		for i := 0; i < 3; i++ {
			require.NoError(t, env.commentRepo.CreateComment(ctx, &entities.Comment{
				ID:       utils.NewID(),
				PostID:   created.ID,
				AuthorID: "commenter",
				Content:  "nice post",
			}))
		}

		require.NoError(t, svc.DeletePost(ctx, created.ID, "author-1", enums.RoleUser))

		_, err := svc.GetPostByID(ctx, created.ID, "")
		assertAppError(t, err, http.StatusNotFound, myErrors.CodeGetPostNotFound)

		remaining, err := env.commentRepo.CountCommentsByPostID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), remaining)
	})

	t.Run("非作者且非管理员不可删除", func(t *testing.T) {
		created := env.createPost(t, "author-1", "Protected Post", categoryID)

		err := svc.DeletePost(ctx, created.ID, "intruder", enums.RoleUser)
		assertAppError(t, err, http.StatusForbidden, myErrors.CodeDeletePostForbidden)

		_, err = svc.GetPostByID(ctx, created.ID, "")
		require.NoError(t, err)
	})

	t.Run("管理员可删除他人帖子", func(t *testing.T) {
		created := env.createPost(t, "author-1", "Moderated Away", categoryID)
		require.NoError(t, env.commentRepo.CreateComment(ctx, &entities.Comment{
			ID:       utils.NewID(),
			PostID:   created.ID,
			AuthorID: "commenter",
			Content:  "spam",
		}))

		require.NoError(t, svc.DeletePost(ctx, created.ID, "admin-1", enums.RoleAdmin))

		_, err := svc.GetPostByID(ctx, created.ID, "")
		assertAppError(t, err, http.StatusNotFound, myErrors.CodeGetPostNotFound)

		remaining, err := env.commentRepo.CountCommentsByPostID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), remaining)
	})

	t.Run("ID形状非法", func(t *testing.T) {
		err := svc.DeletePost(ctx, strings.Repeat("z", 24), "author-1", enums.RoleUser)
		assertAppError(t, err, http.StatusBadRequest, myErrors.CodeDeletePostMalformedID)
	})

	t.Run("帖子不存在", func(t *testing.T) {
		err := svc.DeletePost(ctx, utils.NewID(), "author-1", enums.RoleUser)
		assertAppError(t, err, http.StatusNotFound, myErrors.CodeDeletePostNotFound)
	})
}
