package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/models/enums"
	"github.com/Xushengqwer/blog_service/myErrors"
	"github.com/Xushengqwer/blog_service/utils"
)

func TestAdminPostService_ProcessPost(t *testing.T) {
	env := newTestEnv(t)
	svc := env.adminService()
	ctx := context.Background()
	categoryID := env.createCategory(t, "tech")

	t.Run("审核通过_记录裁决审计字段", func(t *testing.T) {
		post := env.createPost(t, "author-1", "Awaiting Review", categoryID)

		processed, err := svc.ProcessPost(ctx, post.ID, "admin-1", enums.RoleAdmin, &dto.ProcessPostRequest{
			Status: string(enums.Published),
		})
		require.NoError(t, err)
		assert.Equal(t, enums.Published, processed.Status)
		require.NotNil(t, processed.StatusAsOf)

		stored, err := env.postRepo.GetPostByID(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, enums.Published, stored.Status)
		// 裁决时间要能在测试数据库里写入并完整读回
		assert.True(t, stored.StatusAsOf.Valid)
		assert.True(t, stored.StatusBy.Valid)
		assert.Equal(t, "admin-1", stored.StatusBy.String)
	})

	t.Run("拒绝时落库备注与备注人", func(t *testing.T) {
		post := env.createPost(t, "author-1", "Rejectable Post", categoryID)
		remarks := "violates community guidelines"

		processed, err := svc.ProcessPost(ctx, post.ID, "admin-2", enums.RoleAdmin, &dto.ProcessPostRequest{
			Status:  string(enums.Declined),
			Remarks: &remarks,
		})
		require.NoError(t, err)
		assert.Equal(t, enums.Declined, processed.Status)
		require.NotNil(t, processed.Remarks)
		assert.Equal(t, remarks, *processed.Remarks)

		stored, err := env.postRepo.GetPostByID(ctx, post.ID)
		require.NoError(t, err)
		assert.True(t, stored.RemarksBy.Valid)
		assert.Equal(t, "admin-2", stored.RemarksBy.String)
	})

	t.Run("非管理员被拒绝", func(t *testing.T) {
		post := env.createPost(t, "author-1", "Untouchable Post", categoryID)

		_, err := svc.ProcessPost(ctx, post.ID, "author-1", enums.RoleUser, &dto.ProcessPostRequest{
			Status: string(enums.Published),
		})
		assertAppError(t, err, http.StatusForbidden, myErrors.CodeProcessPostForbidden)

		// 状态未被改动
		stored, err := env.postRepo.GetPostByID(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, enums.Pending, stored.Status)
	})

	t.Run("目标状态不合法", func(t *testing.T) {
		post := env.createPost(t, "author-1", "Limbo Post", categoryID)

		// pending 不是裁决结果，不能作为目标状态
		_, err := svc.ProcessPost(ctx, post.ID, "admin-1", enums.RoleAdmin, &dto.ProcessPostRequest{
			Status: string(enums.Pending),
		})
		assertAppError(t, err, http.StatusUnprocessableEntity, myErrors.CodeProcessPostInvalidStatus)

		_, err = svc.ProcessPost(ctx, post.ID, "admin-1", enums.RoleAdmin, &dto.ProcessPostRequest{
			Status: "archived",
		})
		assertAppError(t, err, http.StatusUnprocessableEntity, myErrors.CodeProcessPostInvalidStatus)
	})

	t.Run("ID形状非法", func(t *testing.T) {
		_, err := svc.ProcessPost(ctx, "nope", "admin-1", enums.RoleAdmin, &dto.ProcessPostRequest{
			Status: string(enums.Published),
		})
		assertAppError(t, err, http.StatusBadRequest, myErrors.CodeProcessPostMalformedID)
	})

	t.Run("帖子不存在", func(t *testing.T) {
		_, err := svc.ProcessPost(ctx, utils.NewID(), "admin-1", enums.RoleAdmin, &dto.ProcessPostRequest{
			Status: string(enums.Published),
		})
		assertAppError(t, err, http.StatusNotFound, myErrors.CodeProcessPostNotFound)
	})

	t.Run("已发布帖子可再次裁决为封禁", func(t *testing.T) {
		post := env.createPost(t, "author-1", "Bannable Post", categoryID)

		_, err := svc.ProcessPost(ctx, post.ID, "admin-1", enums.RoleAdmin, &dto.ProcessPostRequest{
			Status: string(enums.Published),
		})
		require.NoError(t, err)

		processed, err := svc.ProcessPost(ctx, post.ID, "admin-1", enums.RoleAdmin, &dto.ProcessPostRequest{
			Status: string(enums.Banned),
		})
		require.NoError(t, err)
		assert.Equal(t, enums.Banned, processed.Status)
	})
}
