package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/blog_service/middleware"
	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/pkg/response"
	"github.com/Xushengqwer/blog_service/service"
)

// PostController 帖子读写相关的 HTTP 处理器。
type PostController struct {
	postService     service.PostService
	postListService service.PostListService
}

// NewPostController 构造函数，用于创建 PostController 实例。
func NewPostController(postService service.PostService, postListService service.PostListService) *PostController {
	return &PostController{
		postService:     postService,
		postListService: postListService,
	}
}

// ListPosts 按条件查询帖子列表
// @Summary      获取帖子列表 (公开)
// @Description  按分类、创建时间区间、状态与 slug 过滤查询帖子。日期接受 2006-01-02 或 RFC3339 格式；start 缺省为一个月前，end 缺省为今天。
// @Tags         posts (帖子)
// @Accept       json
// @Produce      json
// @Param        category query string false "分类ID (24位十六进制)"
// @Param        start query string false "创建时间下界"
// @Param        end query string false "创建时间上界"
// @Param        status query string false "状态过滤" Enums(pending,published,banned)
// @Param        slug query string false "按 slug 精确过滤"
// @Param        limit query int false "返回条数上限" minimum(1)
// @Success      200 {object} vo.ListPostsResponseWrapper "成功响应，包含帖子列表与返回条数"
// @Failure      400 {object} vo.ErrorResponseWrapper "无效的查询参数"
// @Failure      404 {object} vo.ErrorResponseWrapper "分类不存在"
// @Router       /api/v1/blog/posts [get]
func (ctrl *PostController) ListPosts(c *gin.Context) {
	var reqDTO dto.ListPostsRequest
	if err := c.ShouldBindQuery(&reqDTO); err != nil {
		response.RespondError(c, http.StatusBadRequest, http.StatusBadRequest, "无效的查询参数: "+err.Error())
		return
	}

	listVO, err := ctrl.postListService.ListPosts(c.Request.Context(), &reqDTO)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondSuccess(c, listVO, "帖子列表获取成功")
}

// GetPost 获取单个帖子
// @Summary      获取帖子详情 (公开)
// @Description  按 ID 获取帖子。携带用户身份的请求会记一次浏览（去重窗口内只计一次）。
// @Tags         posts (帖子)
// @Accept       json
// @Produce      json
// @Param        post_id path string true "帖子ID (24位十六进制)"
// @Success      200 {object} vo.PostResponseWrapper "成功响应，包含帖子详情"
// @Failure      400 {object} vo.ErrorResponseWrapper "帖子ID格式非法"
// @Failure      404 {object} vo.ErrorResponseWrapper "帖子不存在"
// @Router       /api/v1/blog/posts/{post_id} [get]
func (ctrl *PostController) GetPost(c *gin.Context) {
	postID := c.Param("post_id")
	viewerID, _ := middleware.GetUserID(c)

	postVO, err := ctrl.postService.GetPostByID(c.Request.Context(), postID, viewerID)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondSuccess(c, postVO, "帖子获取成功")
}

// CreatePost 创建帖子
// @Summary      创建帖子
// @Description  创建一篇新帖子，初始状态为待审核。作者身份取自网关透传的请求头。
// @Tags         posts (帖子)
// @Accept       json
// @Produce      json
// @Param        request body dto.CreatePostRequest true "创建帖子请求体"
// @Success      200 {object} vo.PostResponseWrapper "成功响应，包含新建帖子"
// @Failure      400 {object} vo.ErrorResponseWrapper "无效的请求体"
// @Failure      401 {object} vo.ErrorResponseWrapper "缺少用户身份"
// @Failure      409 {object} vo.ErrorResponseWrapper "同名帖子已存在"
// @Router       /api/v1/blog/posts [post]
func (ctrl *PostController) CreatePost(c *gin.Context) {
	var reqDTO dto.CreatePostRequest
	if err := c.ShouldBindJSON(&reqDTO); err != nil {
		response.RespondError(c, http.StatusBadRequest, http.StatusBadRequest, "无效的请求体: "+err.Error())
		return
	}
	userID, _ := middleware.GetUserID(c)

	postVO, err := ctrl.postService.CreatePost(c.Request.Context(), userID, &reqDTO)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondSuccess(c, postVO, "帖子创建成功")
}

// UpdatePost 更新帖子
// @Summary      更新帖子
// @Description  更新帖子的标题、描述、正文或附件，仅作者本人可操作。提供标题时 slug 会按新标题重算。
// @Tags         posts (帖子)
// @Accept       json
// @Produce      json
// @Param        post_id path string true "帖子ID (24位十六进制)"
// @Param        request body dto.UpdatePostRequest true "更新帖子请求体"
// @Success      200 {object} vo.PostResponseWrapper "成功响应，包含更新后的帖子"
// @Failure      403 {object} vo.ErrorResponseWrapper "非作者本人"
// @Failure      404 {object} vo.ErrorResponseWrapper "帖子不存在"
// @Failure      409 {object} vo.ErrorResponseWrapper "同名帖子已存在"
// @Router       /api/v1/blog/posts/{post_id} [put]
func (ctrl *PostController) UpdatePost(c *gin.Context) {
	var reqDTO dto.UpdatePostRequest
	if err := c.ShouldBindJSON(&reqDTO); err != nil {
		response.RespondError(c, http.StatusBadRequest, http.StatusBadRequest, "无效的请求体: "+err.Error())
		return
	}
	userID, _ := middleware.GetUserID(c)

	postVO, err := ctrl.postService.UpdatePost(c.Request.Context(), c.Param("post_id"), userID, &reqDTO)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondSuccess(c, postVO, "帖子更新成功")
}

// DeletePost 删除帖子
// @Summary      删除帖子
// @Description  删除帖子及其全部评论（同一事务内完成），作者本人或管理员可操作。
// @Tags         posts (帖子)
// @Accept       json
// @Produce      json
// @Param        post_id path string true "帖子ID (24位十六进制)"
// @Success      200 {object} vo.EmptyResponseWrapper "删除成功"
// @Failure      400 {object} vo.ErrorResponseWrapper "帖子ID格式非法"
// @Failure      403 {object} vo.ErrorResponseWrapper "非作者本人且非管理员"
// @Failure      404 {object} vo.ErrorResponseWrapper "帖子不存在"
// @Router       /api/v1/blog/posts/{post_id} [delete]
func (ctrl *PostController) DeletePost(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	role := middleware.GetUserRole(c)

	if err := ctrl.postService.DeletePost(c.Request.Context(), c.Param("post_id"), userID, role); err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondSuccess[any](c, nil, "帖子删除成功")
}
