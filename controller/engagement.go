package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/blog_service/middleware"
	"github.com/Xushengqwer/blog_service/models/vo"
	"github.com/Xushengqwer/blog_service/pkg/response"
	"github.com/Xushengqwer/blog_service/service"
)

// EngagementController 点赞/收藏相关的 HTTP 处理器。
type EngagementController struct {
	engagementService service.EngagementService
}

// NewEngagementController 构造函数，用于创建 EngagementController 实例。
func NewEngagementController(engagementService service.EngagementService) *EngagementController {
	return &EngagementController{engagementService: engagementService}
}

func (ctrl *EngagementController) respond(c *gin.Context, postVO *vo.PostVO, err error, message string) {
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondSuccess(c, postVO, message)
}

// LikePost 点赞帖子
// @Summary      点赞帖子
// @Description  为帖子记一次点赞。重复点赞返回冲突业务码，计数不变。
// @Tags         engagement (互动)
// @Accept       json
// @Produce      json
// @Param        post_id path string true "帖子ID (24位十六进制)"
// @Success      200 {object} vo.PostResponseWrapper "成功响应，包含更新后的帖子"
// @Failure      404 {object} vo.ErrorResponseWrapper "帖子不存在"
// @Failure      409 {object} vo.ErrorResponseWrapper "已点赞过该帖子"
// @Router       /api/v1/blog/posts/{post_id}/like [post]
func (ctrl *EngagementController) LikePost(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	postVO, err := ctrl.engagementService.LikePost(c.Request.Context(), c.Param("post_id"), userID)
	ctrl.respond(c, postVO, err, "点赞成功")
}

// UnlikePost 取消点赞
// @Summary      取消点赞
// @Description  撤销对帖子的点赞。未点赞过返回冲突业务码，计数不变。
// @Tags         engagement (互动)
// @Accept       json
// @Produce      json
// @Param        post_id path string true "帖子ID (24位十六进制)"
// @Success      200 {object} vo.PostResponseWrapper "成功响应，包含更新后的帖子"
// @Failure      404 {object} vo.ErrorResponseWrapper "帖子不存在"
// @Failure      409 {object} vo.ErrorResponseWrapper "未点赞过该帖子"
// @Router       /api/v1/blog/posts/{post_id}/like [delete]
func (ctrl *EngagementController) UnlikePost(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	postVO, err := ctrl.engagementService.UnlikePost(c.Request.Context(), c.Param("post_id"), userID)
	ctrl.respond(c, postVO, err, "取消点赞成功")
}

// FavoritePost 收藏帖子
// @Summary      收藏帖子
// @Description  为帖子记一次收藏。重复收藏返回冲突业务码，计数不变。
// @Tags         engagement (互动)
// @Accept       json
// @Produce      json
// @Param        post_id path string true "帖子ID (24位十六进制)"
// @Success      200 {object} vo.PostResponseWrapper "成功响应，包含更新后的帖子"
// @Failure      404 {object} vo.ErrorResponseWrapper "帖子不存在"
// @Failure      409 {object} vo.ErrorResponseWrapper "已收藏过该帖子"
// @Router       /api/v1/blog/posts/{post_id}/favorite [post]
func (ctrl *EngagementController) FavoritePost(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	postVO, err := ctrl.engagementService.FavoritePost(c.Request.Context(), c.Param("post_id"), userID)
	ctrl.respond(c, postVO, err, "收藏成功")
}

// UnfavoritePost 取消收藏
// @Summary      取消收藏
// @Description  撤销对帖子的收藏。未收藏过返回冲突业务码，计数不变。
// @Tags         engagement (互动)
// @Accept       json
// @Produce      json
// @Param        post_id path string true "帖子ID (24位十六进制)"
// @Success      200 {object} vo.PostResponseWrapper "成功响应，包含更新后的帖子"
// @Failure      404 {object} vo.ErrorResponseWrapper "帖子不存在"
// @Failure      409 {object} vo.ErrorResponseWrapper "未收藏过该帖子"
// @Router       /api/v1/blog/posts/{post_id}/favorite [delete]
func (ctrl *EngagementController) UnfavoritePost(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	postVO, err := ctrl.engagementService.UnfavoritePost(c.Request.Context(), c.Param("post_id"), userID)
	ctrl.respond(c, postVO, err, "取消收藏成功")
}
