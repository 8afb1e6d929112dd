package vo

import (
	"encoding/base64"
	"time"

	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/models/enums"
)

// AttachmentVO 附件视图
// - Data 是原始字节的 base64 编码；无附件时 Data 与 ContentType 均为 null
// - URL 仅在附件镜像到对象存储后出现
type AttachmentVO struct {
	Data        *string `json:"data"`
	ContentType *string `json:"contentType"`
	URL         *string `json:"url,omitempty"`
}

// PostVO 帖子视图对象，列表与详情共用
type PostVO struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	Slug          string           `json:"slug"`
	Description   string           `json:"description"`
	Content       string           `json:"content"`
	AuthorID      string           `json:"author_id"`
	CategoryID    string           `json:"category_id"`
	Status        enums.PostStatus `json:"status"`
	StatusAsOf    *time.Time       `json:"status_as_of,omitempty"`
	Remarks       *string          `json:"remarks,omitempty"`
	Attachment    AttachmentVO     `json:"attachment"`
	LikeCount     int64            `json:"like_count"`
	FavoriteCount int64            `json:"favorite_count"`
	ViewCount     int64            `json:"view_count"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// ListPostsVO 列表查询的响应视图
// - Count 是本次返回的条数（截断后），不是满足条件的总数
type ListPostsVO struct {
	Count int      `json:"count"`
	Posts []PostVO `json:"posts"`
}

// FromPostEntity 把帖子实体映射为视图对象。
// - 附件字节在这里做 base64 投影；无附件时保持 null，绝不输出空字符串
func FromPostEntity(post *entities.Post) PostVO {
	v := PostVO{
		ID:            post.ID,
		Title:         post.Title,
		Slug:          post.Slug,
		Description:   post.Description,
		Content:       post.Content,
		AuthorID:      post.AuthorID,
		CategoryID:    post.CategoryID,
		Status:        post.Status,
		LikeCount:     post.LikeCount,
		FavoriteCount: post.FavoriteCount,
		ViewCount:     post.ViewCount,
		CreatedAt:     post.CreatedAt,
		UpdatedAt:     post.UpdatedAt,
	}
	if post.StatusAsOf.Valid {
		t := post.StatusAsOf.Time
		v.StatusAsOf = &t
	}
	if post.RemarksText.Valid {
		r := post.RemarksText.String
		v.Remarks = &r
	}
	if len(post.AttachmentData) > 0 {
		encoded := base64.StdEncoding.EncodeToString(post.AttachmentData)
		v.Attachment.Data = &encoded
	}
	if post.AttachmentMime.Valid {
		mime := post.AttachmentMime.String
		v.Attachment.ContentType = &mime
	}
	if post.AttachmentURL.Valid {
		u := post.AttachmentURL.String
		v.Attachment.URL = &u
	}
	return v
}

// FromPostEntities 批量映射，保持输入顺序。
func FromPostEntities(posts []*entities.Post) []PostVO {
	out := make([]PostVO, 0, len(posts))
	for _, p := range posts {
		out = append(out, FromPostEntity(p))
	}
	return out
}
