package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/blog_service/middleware"
	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/pkg/response"
	"github.com/Xushengqwer/blog_service/service"
)

// PostAdminController 帖子审核相关的 HTTP 处理器。
type PostAdminController struct {
	adminService service.AdminPostService
}

// NewPostAdminController 构造函数，用于创建 PostAdminController 实例。
func NewPostAdminController(adminService service.AdminPostService) *PostAdminController {
	return &PostAdminController{adminService: adminService}
}

// ProcessPost 审核帖子
// @Summary      审核帖子 (管理员)
// @Description  对帖子做审核裁决，目标状态限定为 published/declined/banned。可附带审核备注。
// @Tags         admin (管理)
// @Accept       json
// @Produce      json
// @Param        post_id path string true "帖子ID (24位十六进制)"
// @Param        request body dto.ProcessPostRequest true "审核请求体"
// @Success      200 {object} vo.PostResponseWrapper "成功响应，包含审核后的帖子"
// @Failure      400 {object} vo.ErrorResponseWrapper "帖子ID格式非法"
// @Failure      403 {object} vo.ErrorResponseWrapper "非管理员"
// @Failure      404 {object} vo.ErrorResponseWrapper "帖子不存在"
// @Failure      422 {object} vo.ErrorResponseWrapper "非法的目标状态"
// @Router       /api/v1/blog/admin/posts/{post_id}/process [post]
func (ctrl *PostAdminController) ProcessPost(c *gin.Context) {
	var reqDTO dto.ProcessPostRequest
	if err := c.ShouldBindJSON(&reqDTO); err != nil {
		response.RespondError(c, http.StatusBadRequest, http.StatusBadRequest, "无效的请求体: "+err.Error())
		return
	}
	operatorID, _ := middleware.GetUserID(c)
	role := middleware.GetUserRole(c)

	postVO, err := ctrl.adminService.ProcessPost(c.Request.Context(), c.Param("post_id"), operatorID, role, &reqDTO)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondSuccess(c, postVO, "帖子审核成功")
}
