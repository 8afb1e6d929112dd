package enums

// EngagementKind 区分两类互动：点赞与收藏。
// - 两类互动共用同一套“集合成员 + 计数列”原语，仅表名和计数列不同。
type EngagementKind string

const (
	EngagementLike     EngagementKind = "like"
	EngagementFavorite EngagementKind = "favorite"
)

// JoinTable 返回该互动类型对应的成员表名。
func (k EngagementKind) JoinTable() string {
	if k == EngagementFavorite {
		return "post_favorites"
	}
	return "post_likes"
}

// CountColumn 返回该互动类型在帖子表上的计数列名。
func (k EngagementKind) CountColumn() string {
	if k == EngagementFavorite {
		return "favorite_count"
	}
	return "like_count"
}
