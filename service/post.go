package service

import (
	"context"
	"database/sql"
	"encoding/base64"
	"errors"
	"net/http"
	"time"

	"github.com/gosimple/slug"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/blog_service/constant"
	"github.com/Xushengqwer/blog_service/dependencies"
	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/models/enums"
	"github.com/Xushengqwer/blog_service/models/vo"
	"github.com/Xushengqwer/blog_service/mq/producer"
	"github.com/Xushengqwer/blog_service/myErrors"
	mysqlRepo "github.com/Xushengqwer/blog_service/repo/mysql"
	redisRepo "github.com/Xushengqwer/blog_service/repo/redis"
	"github.com/Xushengqwer/blog_service/utils"
)

// PostService 帖子生命周期的业务逻辑接口。
type PostService interface {
	// CreatePost 创建帖子，初始状态固定为待审核。
	CreatePost(ctx context.Context, authorID string, req *dto.CreatePostRequest) (*vo.PostVO, error)

	// GetPostByID 按 ID 读取帖子；viewerID 非空时记一次浏览。
	GetPostByID(ctx context.Context, postID string, viewerID string) (*vo.PostVO, error)

	// UpdatePost 更新帖子，仅作者本人可操作。
	UpdatePost(ctx context.Context, postID, userID string, req *dto.UpdatePostRequest) (*vo.PostVO, error)

	// DeletePost 删除帖子及其全部评论，作者本人或管理员可操作。
	DeletePost(ctx context.Context, postID, userID string, role enums.UserRole) error
}

type postService struct {
	db           *gorm.DB
	postRepo     mysqlRepo.PostRepository
	categoryRepo mysqlRepo.CategoryRepository
	commentRepo  mysqlRepo.CommentRepository
	viewRepo     redisRepo.PostViewRepository
	kafka        *producer.KafkaProducer
	cosClient    dependencies.COSClientInterface
	logger       *zap.Logger
}

// NewPostService 是 postService 的构造函数。
// - kafka 与 cosClient 允许为 nil（测试环境或镜像未启用），相关步骤自动跳过。
func NewPostService(
	db *gorm.DB,
	postRepo mysqlRepo.PostRepository,
	categoryRepo mysqlRepo.CategoryRepository,
	commentRepo mysqlRepo.CommentRepository,
	viewRepo redisRepo.PostViewRepository,
	kafka *producer.KafkaProducer,
	cosClient dependencies.COSClientInterface,
	logger *zap.Logger,
) PostService {
	return &postService{
		db:           db,
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		commentRepo:  commentRepo,
		viewRepo:     viewRepo,
		kafka:        kafka,
		cosClient:    cosClient,
		logger:       logger,
	}
}

// decodeAttachment 校验并解码附件字段。
// - 数据与媒体类型必须成对出现；base64 非法按输入错误处理。
// - 两个失败点在创建与更新路径各有独立业务码，由调用方传入。
func decodeAttachment(op string, pairingCode, encodingCode int, data, mime *string) ([]byte, sql.NullString, error) {
	if data == nil && mime == nil {
		return nil, sql.NullString{}, nil
	}
	if data == nil || mime == nil {
		return nil, sql.NullString{}, myErrors.BadInput(op, pairingCode,
			"attachment_data and attachment_mime must be provided together")
	}
	raw, err := base64.StdEncoding.DecodeString(*data)
	if err != nil {
		return nil, sql.NullString{}, myErrors.BadInput(op, encodingCode,
			"attachment_data is not valid base64")
	}
	return raw, sql.NullString{String: *mime, Valid: true}, nil
}

func (s *postService) CreatePost(ctx context.Context, authorID string, req *dto.CreatePostRequest) (*vo.PostVO, error) {
	const op = "createPost"

	// 1. 分类必须存在且不可变更，创建时即校验
	if !utils.IsValidID(req.CategoryID) {
		return nil, myErrors.BadInput(op, myErrors.CodeCreatePostCategoryNotFound, "Malformed category ID")
	}
	if _, err := s.categoryRepo.GetCategoryByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, myErrors.ErrRepoNotFound) {
			return nil, myErrors.New(http.StatusNotFound, op, myErrors.CodeCreatePostCategoryNotFound, "Category with id not found")
		}
		return nil, err
	}

	// 2. slug 由标题派生；同 slug 已存在即视为重复标题
	postSlug := slug.Make(req.Title)
	if _, err := s.postRepo.GetPostBySlug(ctx, postSlug); err == nil {
		return nil, myErrors.Conflict(op, myErrors.CodeCreatePostDuplicateTitle, "Post with same title already exists")
	} else if !errors.Is(err, myErrors.ErrRepoNotFound) {
		return nil, err
	}

	attachmentData, attachmentMime, err := decodeAttachment(op,
		myErrors.CodeCreatePostAttachmentPairing, myErrors.CodeCreatePostAttachmentEncoding,
		req.AttachmentData, req.AttachmentMime)
	if err != nil {
		return nil, err
	}

	post := &entities.Post{
		ID:             utils.NewID(),
		Title:          req.Title,
		Slug:           postSlug,
		Description:    req.Description,
		Content:        req.Content,
		AuthorID:       authorID,
		CategoryID:     req.CategoryID,
		Status:         enums.Pending,
		AttachmentData: attachmentData,
		AttachmentMime: attachmentMime,
	}

	if err := s.postRepo.CreatePost(ctx, s.db, post); err != nil {
		// 并发窗口下唯一索引兜底，统一按重复标题处理
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, myErrors.Conflict(op, myErrors.CodeCreatePostDuplicateTitle, "Post with same title already exists")
		}
		s.logger.Error("创建帖子失败", zap.String("authorID", authorID), zap.Error(err))
		return nil, err
	}

	// 3. 附件镜像与事件发布异步进行，不阻塞创建结果
	if s.cosClient != nil && len(post.AttachmentData) > 0 {
		go s.mirrorAttachment(post.ID, post.AttachmentData, post.AttachmentMime.String)
	}
	if s.kafka != nil {
		go func(snapshot entities.Post) {
			sendCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := s.kafka.SendPostCreatedEvent(sendCtx, &snapshot); err != nil {
				s.logger.Warn("帖子创建事件发送失败", zap.String("postID", snapshot.ID), zap.Error(err))
			}
		}(*post)
	}

	result := vo.FromPostEntity(post)
	return &result, nil
}

// mirrorAttachment 把附件字节镜像到对象存储，并回写公开 URL。
func (s *postService) mirrorAttachment(postID string, data []byte, contentType string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	objectKey := constant.COSObjectKeyPrefixAttachments + postID
	publicURL, err := s.cosClient.UploadAttachment(ctx, objectKey, data, contentType)
	if err != nil {
		s.logger.Warn("附件镜像到对象存储失败", zap.String("postID", postID), zap.Error(err))
		return
	}
	if err := s.postRepo.UpdatePostStatus(ctx, postID, map[string]interface{}{
		"attachment_url": publicURL,
	}); err != nil {
		s.logger.Warn("回写附件 URL 失败", zap.String("postID", postID), zap.Error(err))
	}
}

func (s *postService) GetPostByID(ctx context.Context, postID string, viewerID string) (*vo.PostVO, error) {
	const op = "getPost"

	if !utils.IsValidID(postID) {
		return nil, myErrors.MalformedID(op, myErrors.CodeGetPostMalformedID)
	}

	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, myErrors.ErrRepoNotFound) {
			return nil, myErrors.PostNotFound(op, myErrors.CodeGetPostNotFound)
		}
		return nil, err
	}

	// 浏览计数走 Redis，不阻塞读取
	if s.viewRepo != nil && viewerID != "" {
		go func() {
			viewCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			if err := s.viewRepo.IncrementViewCount(viewCtx, postID, viewerID); err != nil {
				s.logger.Warn("记录浏览失败", zap.String("postID", postID), zap.Error(err))
			}
		}()
	}

	result := vo.FromPostEntity(post)

	// Redis 中未回刷的浏览量比数据库新，读取时以较大者为准
	if s.viewRepo != nil {
		if cached, err := s.viewRepo.GetViewCount(ctx, postID); err == nil && cached > result.ViewCount {
			result.ViewCount = cached
		}
	}
	return &result, nil
}

func (s *postService) UpdatePost(ctx context.Context, postID, userID string, req *dto.UpdatePostRequest) (*vo.PostVO, error) {
	const op = "updatePost"

	if !utils.IsValidID(postID) {
		return nil, myErrors.PostNotFound(op, myErrors.CodeUpdatePostNotFound)
	}

	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, myErrors.ErrRepoNotFound) {
			return nil, myErrors.PostNotFound(op, myErrors.CodeUpdatePostNotFound)
		}
		return nil, err
	}
	if post.AuthorID != userID {
		return nil, myErrors.Forbidden(op, myErrors.CodeUpdatePostForbidden, "Only the author may update this post")
	}

	updates := make(map[string]interface{})
	if req.Title != nil {
		// slug 按新标题无条件重算，即使标题未变
		newSlug := slug.Make(*req.Title)
		if existing, slugErr := s.postRepo.GetPostBySlug(ctx, newSlug); slugErr == nil {
			if existing.ID != postID {
				return nil, myErrors.Conflict(op, myErrors.CodeUpdatePostDuplicateTitle, "Post with same title already exists")
			}
		} else if !errors.Is(slugErr, myErrors.ErrRepoNotFound) {
			return nil, slugErr
		}
		updates["title"] = *req.Title
		updates["slug"] = newSlug
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Content != nil {
		updates["content"] = *req.Content
	}

	attachmentData, attachmentMime, err := decodeAttachment(op,
		myErrors.CodeUpdatePostAttachmentPairing, myErrors.CodeUpdatePostAttachmentEncoding,
		req.AttachmentData, req.AttachmentMime)
	if err != nil {
		return nil, err
	}
	if attachmentMime.Valid {
		updates["attachment_data"] = attachmentData
		updates["attachment_mime"] = attachmentMime
		// 旧镜像 URL 失效，等待重新镜像
		updates["attachment_url"] = sql.NullString{}
	}

	if len(updates) > 0 {
		// 作者条件写进 WHERE，读取与更新之间的作者变更窗口由数据库兜底
		if err := s.postRepo.UpdatePostByIDAndAuthor(ctx, postID, userID, updates); err != nil {
			if errors.Is(err, myErrors.ErrRepoNotFound) {
				return nil, myErrors.Forbidden(op, myErrors.CodeUpdatePostForbidden, "Only the author may update this post")
			}
			return nil, err
		}
	}

	updated, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if s.cosClient != nil && attachmentMime.Valid && len(attachmentData) > 0 {
		go s.mirrorAttachment(postID, attachmentData, attachmentMime.String)
	}

	result := vo.FromPostEntity(updated)
	return &result, nil
}

func (s *postService) DeletePost(ctx context.Context, postID, userID string, role enums.UserRole) error {
	const op = "deletePost"

	if !utils.IsValidID(postID) {
		return myErrors.MalformedID(op, myErrors.CodeDeletePostMalformedID)
	}

	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, myErrors.ErrRepoNotFound) {
			return myErrors.PostNotFound(op, myErrors.CodeDeletePostNotFound)
		}
		return err
	}
	// 管理员可以越过作者限制删除任何帖子
	if post.AuthorID != userID && role != enums.RoleAdmin {
		return myErrors.Forbidden(op, myErrors.CodeDeletePostForbidden, "Only the author or an admin may delete this post")
	}

	// 评论与帖子在同一事务内删除，不留孤儿评论
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.commentRepo.DeleteCommentsByPostID(ctx, tx, postID); err != nil {
			return err
		}
		return s.postRepo.DeletePost(ctx, tx, postID)
	})
	if err != nil {
		if errors.Is(err, myErrors.ErrRepoNotFound) {
			return myErrors.PostNotFound(op, myErrors.CodeDeletePostNotFound)
		}
		s.logger.Error("删除帖子失败", zap.String("postID", postID), zap.Error(err))
		return err
	}

	if s.cosClient != nil && post.AttachmentURL.Valid {
		go func() {
			delCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			objectKey := constant.COSObjectKeyPrefixAttachments + postID
			if err := s.cosClient.DeleteObject(delCtx, objectKey); err != nil {
				s.logger.Warn("删除附件镜像失败", zap.String("postID", postID), zap.Error(err))
			}
		}()
	}
	if s.kafka != nil {
		go func() {
			sendCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := s.kafka.SendPostDeletedEvent(sendCtx, postID, post.AuthorID); err != nil {
				s.logger.Warn("帖子删除事件发送失败", zap.String("postID", postID), zap.Error(err))
			}
		}()
	}
	return nil
}
