package dto

// CreatePostRequest 定义了创建帖子的请求数据结构
// - 添加了 binding 标签用于输入验证
// - 作者身份来自网关透传的请求头，不在请求体中出现
type CreatePostRequest struct {
	Title       string `json:"title" binding:"required,max=255"`        // 帖子标题，必填，最大255字符
	Description string `json:"description" binding:"required,max=500"` // 帖子描述，必填，最大500字符
	Content     string `json:"content" binding:"required"`             // 帖子正文，必填
	CategoryID  string `json:"category_id" binding:"required"`         // 分类ID，必填，创建后不可变

	// 附件原始字节的 base64 编码与媒体类型，成对出现或成对省略
	AttachmentData *string `json:"attachment_data" binding:"omitempty"`
	AttachmentMime *string `json:"attachment_mime" binding:"omitempty,max=100"`
}

// UpdatePostRequest 定义了更新帖子的请求数据结构
// - 所有字段可选，省略的字段保持原值；附件字段成对提供时整体替换
// - 分类、作者、状态、计数不允许通过该接口修改
type UpdatePostRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	Content     *string `json:"content" binding:"omitempty"`

	AttachmentData *string `json:"attachment_data" binding:"omitempty"`
	AttachmentMime *string `json:"attachment_mime" binding:"omitempty,max=100"`
}
