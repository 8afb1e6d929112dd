package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	otelgin "go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/blog_service/config"
	"github.com/Xushengqwer/blog_service/constant"
	"github.com/Xushengqwer/blog_service/controller"
	"github.com/Xushengqwer/blog_service/middleware"
)

// SetupRouter 配置 Gin 引擎、全局中间件与路由注册。
func SetupRouter(
	logger *zap.Logger,
	cfg *appConfig.BlogConfig,
	postController *controller.PostController,
	engagementController *controller.EngagementController,
	postAdminController *controller.PostAdminController,
) *gin.Engine {
	// 自定义 Recovery 与 Logger，不用 gin.Default()
	router := gin.New()

	// 中间件顺序: 追踪 → panic 恢复 → 访问日志 → 超时 → 用户上下文
	router.Use(otelgin.Middleware(constant.ServiceName))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RequestTimeout(time.Duration(cfg.ServerConfig.RequestTimeout) * time.Second))
	router.Use(middleware.UserContext())

	v1 := router.Group("/api/v1/blog")
	{
		// 公开读取
		v1.GET("/posts", postController.ListPosts)
		v1.GET("/posts/:post_id", postController.GetPost)

		// 写操作要求网关透传的用户身份
		authed := v1.Group("")
		authed.Use(middleware.RequireUser())
		{
			authed.POST("/posts", postController.CreatePost)
			authed.PUT("/posts/:post_id", postController.UpdatePost)
			authed.DELETE("/posts/:post_id", postController.DeletePost)

			authed.POST("/posts/:post_id/like", engagementController.LikePost)
			authed.DELETE("/posts/:post_id/like", engagementController.UnlikePost)
			authed.POST("/posts/:post_id/favorite", engagementController.FavoritePost)
			authed.DELETE("/posts/:post_id/favorite", engagementController.UnfavoritePost)

			// 管理员角色在服务层校验，保证稳定的业务码
			authed.POST("/admin/posts/:post_id/process", postAdminController.ProcessPost)
		}
	}

	swaggerURL := ginSwagger.URL("/swagger/doc.json")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, swaggerURL))

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	logger.Info("Gin 路由器设置完成")
	return router
}
