package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/models/enums"
	"github.com/Xushengqwer/blog_service/models/vo"
	"github.com/Xushengqwer/blog_service/myErrors"
	mysqlRepo "github.com/Xushengqwer/blog_service/repo/mysql"
	"github.com/Xushengqwer/blog_service/utils"
)

// PostListService 帖子列表查询的业务逻辑接口。
type PostListService interface {
	// ListPosts 按分类、创建时间区间、状态与 slug 过滤查询帖子。
	ListPosts(ctx context.Context, req *dto.ListPostsRequest) (*vo.ListPostsVO, error)
}

type postListService struct {
	postRepo     mysqlRepo.PostRepository
	categoryRepo mysqlRepo.CategoryRepository
	logger       *zap.Logger

	// now 可注入，测试中用来固定“当前时间”
	now func() time.Time
}

// NewPostListService 是 postListService 的构造函数。
func NewPostListService(
	postRepo mysqlRepo.PostRepository,
	categoryRepo mysqlRepo.CategoryRepository,
	logger *zap.Logger,
) PostListService {
	return &postListService{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *postListService) ListPosts(ctx context.Context, req *dto.ListPostsRequest) (*vo.ListPostsVO, error) {
	const op = "listPosts"

	// 1. 分类过滤：先校验形状，再确认存在
	if req.Category != "" {
		if !utils.IsValidID(req.Category) {
			return nil, myErrors.BadInput(op, myErrors.CodeListPostsMalformedCategory, "Malformed category ID")
		}
		if _, err := s.categoryRepo.GetCategoryByID(ctx, req.Category); err != nil {
			if errors.Is(err, myErrors.ErrRepoNotFound) {
				return nil, myErrors.New(http.StatusNotFound, op, myErrors.CodeListPostsCategoryNotFound, "Category with id not found")
			}
			return nil, err
		}
	}

	// 2. 日期区间规范化，三类失败各有独立业务码
	from, to, err := utils.NormalizeDateRange(req.Start, req.End, s.now())
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrInvalidStartDate):
			return nil, myErrors.BadInput(op, myErrors.CodeListPostsInvalidStartDate, "Invalid start date")
		case errors.Is(err, utils.ErrInvalidEndDate):
			return nil, myErrors.BadInput(op, myErrors.CodeListPostsInvalidEndDate, "Invalid end date")
		case errors.Is(err, utils.ErrEndNotAfterStart):
			return nil, myErrors.BadInput(op, myErrors.CodeListPostsEndBeforeStart, "End date must be after start date")
		default:
			return nil, err
		}
	}

	// 3. 状态过滤：仅可列出的状态作为有效过滤条件生效；
	//    其余取值（含 declined）与缺省一样收敛到可列出集合，
	//    被拒绝的帖子在任何情况下都不会出现在结果里
	statuses := enums.ListableStatuses()
	if status := enums.PostStatus(req.Status); status.IsListable() {
		statuses = []enums.PostStatus{status}
	}

	posts, err := s.postRepo.ListPosts(ctx, &mysqlRepo.ListFilter{
		CategoryID: req.Category,
		From:       from,
		To:         to,
		Statuses:   statuses,
		Slug:       req.Slug,
		Limit:      req.Limit,
	})
	if err != nil {
		s.logger.Error("帖子列表查询失败", zap.Error(err))
		return nil, err
	}

	// Count 是截断后的返回条数，不是满足条件的总数
	return &vo.ListPostsVO{
		Count: len(posts),
		Posts: vo.FromPostEntities(posts),
	}, nil
}
