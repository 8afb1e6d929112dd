package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_service/models/enums"
	"github.com/Xushengqwer/blog_service/models/vo"
	"github.com/Xushengqwer/blog_service/myErrors"
	mysqlRepo "github.com/Xushengqwer/blog_service/repo/mysql"
	"github.com/Xushengqwer/blog_service/utils"
)

// EngagementService 点赞/收藏的业务逻辑接口。
// - 四个操作共用一条带方向的切换原语，保证语义完全对称。
type EngagementService interface {
	LikePost(ctx context.Context, postID, userID string) (*vo.PostVO, error)
	UnlikePost(ctx context.Context, postID, userID string) (*vo.PostVO, error)
	FavoritePost(ctx context.Context, postID, userID string) (*vo.PostVO, error)
	UnfavoritePost(ctx context.Context, postID, userID string) (*vo.PostVO, error)
}

type engagementService struct {
	postRepo       mysqlRepo.PostRepository
	engagementRepo mysqlRepo.EngagementRepository
	logger         *zap.Logger
}

// NewEngagementService 是 engagementService 的构造函数。
func NewEngagementService(
	postRepo mysqlRepo.PostRepository,
	engagementRepo mysqlRepo.EngagementRepository,
	logger *zap.Logger,
) EngagementService {
	return &engagementService{
		postRepo:       postRepo,
		engagementRepo: engagementRepo,
		logger:         logger,
	}
}

// engagementCodes 是单个互动操作的业务码组合。
type engagementCodes struct {
	op            string
	notFound      int
	stateConflict int
	conflictMsg   string
}

// toggle 执行一次互动或撤销。
// - add 为 true 表示记录互动，false 表示撤销。
// - 幂等性由成员表唯一约束保证：重复操作返回冲突业务码，计数不变。
func (s *engagementService) toggle(ctx context.Context, kind enums.EngagementKind, add bool, postID, userID string, codes engagementCodes) (*vo.PostVO, error) {
	if !utils.IsValidID(postID) {
		return nil, myErrors.PostNotFound(codes.op, codes.notFound)
	}

	if _, err := s.postRepo.GetPostByID(ctx, postID); err != nil {
		if errors.Is(err, myErrors.ErrRepoNotFound) {
			return nil, myErrors.PostNotFound(codes.op, codes.notFound)
		}
		return nil, err
	}

	var err error
	if add {
		err = s.engagementRepo.Add(ctx, kind, postID, userID)
	} else {
		err = s.engagementRepo.Remove(ctx, kind, postID, userID)
	}
	if err != nil {
		if errors.Is(err, myErrors.ErrEngagementExists) || errors.Is(err, myErrors.ErrEngagementNotFound) {
			return nil, myErrors.Conflict(codes.op, codes.stateConflict, codes.conflictMsg)
		}
		s.logger.Error("互动操作失败",
			zap.String("op", codes.op), zap.String("postID", postID),
			zap.String("userID", userID), zap.Error(err))
		return nil, err
	}

	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	result := vo.FromPostEntity(post)
	return &result, nil
}

func (s *engagementService) LikePost(ctx context.Context, postID, userID string) (*vo.PostVO, error) {
	return s.toggle(ctx, enums.EngagementLike, true, postID, userID, engagementCodes{
		op:            "likePost",
		notFound:      myErrors.CodeLikePostNotFound,
		stateConflict: myErrors.CodeLikePostAlreadyDone,
		conflictMsg:   "You have already liked this post",
	})
}

func (s *engagementService) UnlikePost(ctx context.Context, postID, userID string) (*vo.PostVO, error) {
	return s.toggle(ctx, enums.EngagementLike, false, postID, userID, engagementCodes{
		op:            "unlikePost",
		notFound:      myErrors.CodeUnlikePostNotFound,
		stateConflict: myErrors.CodeUnlikePostNotDone,
		conflictMsg:   "You have not liked this post",
	})
}

func (s *engagementService) FavoritePost(ctx context.Context, postID, userID string) (*vo.PostVO, error) {
	return s.toggle(ctx, enums.EngagementFavorite, true, postID, userID, engagementCodes{
		op:            "favoritePost",
		notFound:      myErrors.CodeFavoritePostNotFound,
		stateConflict: myErrors.CodeFavoritePostAlready,
		conflictMsg:   "You have already favorited this post",
	})
}

func (s *engagementService) UnfavoritePost(ctx context.Context, postID, userID string) (*vo.PostVO, error) {
	return s.toggle(ctx, enums.EngagementFavorite, false, postID, userID, engagementCodes{
		op:            "unfavoritePost",
		notFound:      myErrors.CodeUnfavoritePostNotFound,
		stateConflict: myErrors.CodeUnfavoritePostNotDone,
		conflictMsg:   "You have not favorited this post",
	})
}
