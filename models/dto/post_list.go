package dto

// ListPostsRequest 定义了列表查询的请求数据结构（query 参数绑定）
// - 所有过滤条件均可选；日期接受 2006-01-02 或 RFC3339 两种格式
type ListPostsRequest struct {
	Category string `json:"category" form:"category"` // 分类ID，可选
	Start    string `json:"start" form:"start"`       // 创建时间下界，可选
	End      string `json:"end" form:"end"`           // 创建时间上界，可选
	Status   string `json:"status" form:"status"`     // 状态过滤，仅 pending/published/banned 生效
	Slug     string `json:"slug" form:"slug"`         // 按 slug 精确过滤，可选
	Limit    int    `json:"limit" form:"limit" binding:"omitempty,gt=0"`
}
