package vo

// 本文件的包装类型仅服务于 swagger 文档生成，
// 让注解能够表达 response.Response[T] 的具体化形状。

// PostResponseWrapper 包装单个帖子响应
type PostResponseWrapper struct {
	Code    int    `json:"code"`
	Message string `json:"message,omitempty"`
	Data    PostVO `json:"data"`
}

// ListPostsResponseWrapper 包装列表查询响应
type ListPostsResponseWrapper struct {
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	Data    ListPostsVO `json:"data"`
}

// EmptyResponseWrapper 包装无数据响应
type EmptyResponseWrapper struct {
	Code    int    `json:"code"`
	Message string `json:"message,omitempty"`
}

// ErrorResponseWrapper 包装业务错误响应
type ErrorResponseWrapper struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
