package events

import (
	"time"

	"github.com/Xushengqwer/blog_service/models/enums"
)

// 事件类型常量，作为 Kafka 消息头与消费方路由的依据。
const (
	EventTypePostCreated       = "post.created"
	EventTypePostStatusChanged = "post.status_changed"
	EventTypePostDeleted       = "post.deleted"
)

// PostEventData 事件中携带的帖子快照。
type PostEventData struct {
	PostID     string           `json:"post_id"`
	Title      string           `json:"title"`
	Slug       string           `json:"slug"`
	AuthorID   string           `json:"author_id"`
	CategoryID string           `json:"category_id"`
	Status     enums.PostStatus `json:"status"`
}

// PostCreatedEvent 帖子创建事件。
type PostCreatedEvent struct {
	EventID   string        `json:"event_id"` // 事件唯一标识，用于消费侧幂等
	Timestamp time.Time     `json:"timestamp"`
	Post      PostEventData `json:"post"`
}

// PostStatusChangedEvent 帖子审核状态变更事件。
type PostStatusChangedEvent struct {
	EventID   string           `json:"event_id"`
	Timestamp time.Time        `json:"timestamp"`
	Post      PostEventData    `json:"post"`
	OldStatus enums.PostStatus `json:"old_status"`
	Operator  string           `json:"operator"` // 审核者的用户ID
	Remarks   string           `json:"remarks,omitempty"`
}

// PostDeletedEvent 帖子删除事件。
type PostDeletedEvent struct {
	EventID   string    `json:"event_id"`
	Timestamp time.Time `json:"timestamp"`
	PostID    string    `json:"post_id"`
	AuthorID  string    `json:"author_id"`
}
