package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/models/enums"
	"github.com/Xushengqwer/blog_service/models/vo"
	"github.com/Xushengqwer/blog_service/mq/producer"
	"github.com/Xushengqwer/blog_service/myErrors"
	mysqlRepo "github.com/Xushengqwer/blog_service/repo/mysql"
	"github.com/Xushengqwer/blog_service/utils"
)

// AdminPostService 帖子审核的业务逻辑接口。
type AdminPostService interface {
	// ProcessPost 对帖子做审核裁决，目标状态限定为 published/declined/banned。
	// - 权限校验在服务层完成，保证非管理员得到稳定的业务码。
	ProcessPost(ctx context.Context, postID, operatorID string, role enums.UserRole, req *dto.ProcessPostRequest) (*vo.PostVO, error)
}

type adminPostService struct {
	postRepo mysqlRepo.PostRepository
	kafka    *producer.KafkaProducer
	logger   *zap.Logger
}

// NewAdminPostService 是 adminPostService 的构造函数。
func NewAdminPostService(postRepo mysqlRepo.PostRepository, kafka *producer.KafkaProducer, logger *zap.Logger) AdminPostService {
	return &adminPostService{postRepo: postRepo, kafka: kafka, logger: logger}
}

func (s *adminPostService) ProcessPost(ctx context.Context, postID, operatorID string, role enums.UserRole, req *dto.ProcessPostRequest) (*vo.PostVO, error) {
	const op = "processPost"

	if !utils.IsValidID(postID) {
		return nil, myErrors.MalformedID(op, myErrors.CodeProcessPostMalformedID)
	}
	if role != enums.RoleAdmin {
		return nil, myErrors.Forbidden(op, myErrors.CodeProcessPostForbidden, "Only admins may process posts")
	}

	targetStatus := enums.PostStatus(req.Status)
	if !targetStatus.IsProcessTarget() {
		return nil, myErrors.InvalidState(op, myErrors.CodeProcessPostInvalidStatus,
			"Status must be one of published, declined, banned")
	}

	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, myErrors.ErrRepoNotFound) {
			return nil, myErrors.PostNotFound(op, myErrors.CodeProcessPostNotFound)
		}
		return nil, err
	}
	oldStatus := post.Status

	updates := map[string]interface{}{
		"status":       targetStatus,
		"status_as_of": sql.NullTime{Time: time.Now(), Valid: true},
		"status_by":    sql.NullString{String: operatorID, Valid: true},
	}
	remarks := ""
	if req.Remarks != nil {
		remarks = *req.Remarks
		updates["remarks_text"] = sql.NullString{String: remarks, Valid: true}
		updates["remarks_by"] = sql.NullString{String: operatorID, Valid: true}
	}

	if err := s.postRepo.UpdatePostStatus(ctx, postID, updates); err != nil {
		if errors.Is(err, myErrors.ErrRepoNotFound) {
			return nil, myErrors.PostNotFound(op, myErrors.CodeProcessPostNotFound)
		}
		s.logger.Error("审核帖子失败", zap.String("postID", postID), zap.Error(err))
		return nil, err
	}

	updated, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if s.kafka != nil {
		snapshot := *updated
		go func() {
			sendCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := s.kafka.SendPostStatusChangedEvent(sendCtx, &snapshot, oldStatus, operatorID, remarks); err != nil {
				s.logger.Warn("审核状态变更事件发送失败", zap.String("postID", postID), zap.Error(err))
			}
		}()
	}

	result := vo.FromPostEntity(updated)
	return &result, nil
}
