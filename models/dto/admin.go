package dto

// ProcessPostRequest 定义了审核帖子的请求数据结构
// - Status 必须是 published/declined/banned 之一，由服务层校验后给出业务码
// - Remarks 可选；提供时连同审核者一起落库
type ProcessPostRequest struct {
	Status  string  `json:"status" binding:"required"`
	Remarks *string `json:"remarks" binding:"omitempty,max=500"`
}
