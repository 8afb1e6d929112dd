package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/blog_service/models/enums"
	"github.com/Xushengqwer/blog_service/pkg/response"
)

// 网关透传身份的请求头与上下文键。
// - 本服务信任上游网关完成认证，这里只做透传与缺失校验。
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"

	ContextKeyUserID   = "userID"
	ContextKeyUserRole = "userRole"
)

// UserContext 把网关注入的用户身份写入 gin 上下文。
// - 头缺失时不拦截，由 RequireUser 在需要身份的路由上拦截。
func UserContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID := c.GetHeader(HeaderUserID); userID != "" {
			c.Set(ContextKeyUserID, userID)
		}
		role := enums.UserRole(c.GetHeader(HeaderUserRole))
		if role.IsValid() {
			c.Set(ContextKeyUserRole, role)
		}
		c.Next()
	}
}

// RequireUser 要求请求携带有效的用户身份，否则返回 401。
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(ContextKeyUserID); !ok {
			response.RespondError(c, http.StatusUnauthorized, http.StatusUnauthorized, "missing user identity")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin 要求请求者具有管理员角色，否则返回 403。
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.Get(ContextKeyUserRole)
		if !ok || role.(enums.UserRole) != enums.RoleAdmin {
			response.RespondError(c, http.StatusForbidden, http.StatusForbidden, "admin role required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserID 从 gin 上下文取出用户 ID。
func GetUserID(c *gin.Context) (string, bool) {
	v, ok := c.Get(ContextKeyUserID)
	if !ok {
		return "", false
	}
	return v.(string), true
}

// GetUserRole 从 gin 上下文取出用户角色，缺省为普通用户。
func GetUserRole(c *gin.Context) enums.UserRole {
	v, ok := c.Get(ContextKeyUserRole)
	if !ok {
		return enums.RoleUser
	}
	return v.(enums.UserRole)
}
