package enums

// PostStatus 表示帖子的生命周期状态。
// - 新建帖子固定为待审核；审核操作只能流转到 published/declined/banned 三者之一。
type PostStatus string

const (
	Pending   PostStatus = "pending"   // 待审核
	Published PostStatus = "published" // 审核通过，公开可见
	Declined  PostStatus = "declined"  // 审核拒绝
	Banned    PostStatus = "banned"    // 封禁
)

// IsValid 校验字符串是否为已知状态。
func (s PostStatus) IsValid() bool {
	switch s {
	case Pending, Published, Declined, Banned:
		return true
	}
	return false
}

// IsProcessTarget 校验状态是否为审核操作允许的目标状态。
// - pending 不是合法目标：审核只做单向裁决，不回退。
func (s PostStatus) IsProcessTarget() bool {
	switch s {
	case Published, Declined, Banned:
		return true
	}
	return false
}

// IsListable 校验状态是否允许作为列表查询的过滤条件。
// - declined 被有意排除：被拒绝的帖子不出现在任何列表结果中。
func (s PostStatus) IsListable() bool {
	switch s {
	case Pending, Published, Banned:
		return true
	}
	return false
}

// ListableStatuses 返回列表查询允许出现的全部状态。
func ListableStatuses() []PostStatus {
	return []PostStatus{Pending, Published, Banned}
}
