package myErrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrRepoNotFound 表示仓库层未查询到目标记录。
// - 仓库层统一返回该哨兵错误，服务层用 errors.Is 判断后再包装成带业务码的 AppError。
var ErrRepoNotFound = errors.New("repo: record not found")

// ErrCacheMiss 表示在缓存层未找到对应的键值
var ErrCacheMiss = errors.New("cache: key not found (miss)")

// ErrEngagementExists 表示互动记录已存在（重复点赞/收藏）。
// - 由唯一约束的 DoNothing 插入路径探测得出，服务层映射为对应业务码。
var ErrEngagementExists = errors.New("repo: engagement already recorded")

// ErrEngagementNotFound 表示要撤销的互动记录不存在。
var ErrEngagementNotFound = errors.New("repo: engagement not recorded")

// AppError 是对外暴露的业务错误。
// - 每个失败点持有一个全局唯一的业务码（Code），便于客户端分支处理和日志关联。
// - Status 是 HTTP 状态类别；Op 标识发生错误的操作，随响应日志输出。
type AppError struct {
	Status  int    // HTTP 状态码
	Op      string // 操作名，例如 "createPost"
	Code    int    // 全局唯一业务码
	Message string // 面向调用方的描述
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s [%d]: %s", e.Op, e.Code, e.Message)
}

// New 构造一个 AppError。
func New(status int, op string, code int, message string) *AppError {
	return &AppError{Status: status, Op: op, Code: code, Message: message}
}

// AsAppError 尝试把任意 error 还原为 *AppError。
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// 业务码沿用旧版服务的编号，保证客户端兼容：
// - 12xxx 为帖子读写与互动操作，21xxx 为列表查询。
// - 编号全局唯一，新增失败点只能追加，不得复用。
const (
	CodeGetPostMalformedID = 12000
	CodeGetPostNotFound    = 12001

	CodeCreatePostCategoryNotFound = 12002
	CodeCreatePostDuplicateTitle   = 12003

	CodeUpdatePostNotFound  = 12004
	CodeUpdatePostForbidden = 12005

	CodeDeletePostMalformedID = 12006
	CodeDeletePostNotFound    = 12007
	CodeDeletePostForbidden   = 12008

	CodeLikePostNotFound       = 12009
	CodeLikePostAlreadyDone    = 12010
	CodeUnlikePostNotFound     = 12011
	CodeUnlikePostNotDone      = 12012
	CodeFavoritePostNotFound   = 12013
	CodeFavoritePostAlready    = 12014
	CodeUnfavoritePostNotFound = 12015
	CodeUnfavoritePostNotDone  = 12016

	CodeProcessPostMalformedID   = 12017
	CodeProcessPostNotFound      = 12018
	CodeProcessPostForbidden     = 12019
	CodeProcessPostInvalidStatus = 12020

	CodeUpdatePostDuplicateTitle = 12021

	CodeCreatePostAttachmentPairing  = 12022
	CodeCreatePostAttachmentEncoding = 12023
	CodeUpdatePostAttachmentPairing  = 12024
	CodeUpdatePostAttachmentEncoding = 12025

	CodeListPostsMalformedCategory = 21001
	CodeListPostsCategoryNotFound  = 21002
	CodeListPostsInvalidStartDate  = 21016
	CodeListPostsInvalidEndDate    = 21017
	CodeListPostsEndBeforeStart    = 21018
)

// 下面是各失败点的便捷构造函数。
// - 旧版服务对几乎所有错误返回 404/401，这里按错误分类规范化 HTTP 状态：
//   输入畸形=400，未找到=404，权限不足=403，冲突=409，非法状态=422。
//   业务码保持不变，客户端按 Code 分支不受影响。

func MalformedID(op string, code int) *AppError {
	return New(http.StatusBadRequest, op, code, "Malformed ID")
}

func PostNotFound(op string, code int) *AppError {
	return New(http.StatusNotFound, op, code, "Post with id not found")
}

func Forbidden(op string, code int, message string) *AppError {
	return New(http.StatusForbidden, op, code, message)
}

func Conflict(op string, code int, message string) *AppError {
	return New(http.StatusConflict, op, code, message)
}

func InvalidState(op string, code int, message string) *AppError {
	return New(http.StatusUnprocessableEntity, op, code, message)
}

func BadInput(op string, code int, message string) *AppError {
	return New(http.StatusBadRequest, op, code, message)
}
