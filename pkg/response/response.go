package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/blog_service/myErrors"
)

// CodeSuccess 是成功响应的业务码；失败响应携带各失败点的全局唯一业务码。
const CodeSuccess = 0

// Response 是统一的响应信封。
type Response[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data,omitempty"`
}

// RespondSuccess 写出成功响应。
func RespondSuccess[T any](c *gin.Context, data T, message ...string) {
	msg := "success"
	if len(message) > 0 {
		msg = message[0]
	}
	c.JSON(http.StatusOK, Response[T]{
		Code:    CodeSuccess,
		Message: msg,
		Data:    data,
	})
}

// RespondError 写出带业务码的失败响应。
func RespondError(c *gin.Context, status int, code int, message string) {
	c.JSON(status, Response[any]{
		Code:    code,
		Message: message,
	})
}

// RespondAppError 把服务层返回的错误写出为响应。
// - *AppError 按其自带的状态与业务码输出；其他错误一律按 500 处理，
//   不向调用方泄露内部细节。
func RespondAppError(c *gin.Context, err error) {
	if appErr, ok := myErrors.AsAppError(err); ok {
		RespondError(c, appErr.Status, appErr.Code, appErr.Message)
		return
	}
	RespondError(c, http.StatusInternalServerError, http.StatusInternalServerError, "internal server error")
}
