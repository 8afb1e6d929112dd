package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/models/enums"
	mysqlRepo "github.com/Xushengqwer/blog_service/repo/mysql"
	"github.com/Xushengqwer/blog_service/utils"
)

// seedCategories 是填充时固定创建的分类名。
var seedCategories = []string{"Technology", "Lifestyle", "Travel", "Food", "Opinion"}

// seedStatuses 让各状态的帖子都有覆盖，方便联调列表过滤。
var seedStatuses = []enums.PostStatus{enums.Pending, enums.Published, enums.Published, enums.Declined, enums.Banned}

// Seed 填充分类、帖子、评论与互动测试数据。
func Seed(
	ctx context.Context,
	db *gorm.DB,
	postRepo mysqlRepo.PostRepository,
	categoryRepo mysqlRepo.CategoryRepository,
	commentRepo mysqlRepo.CommentRepository,
	engagementRepo mysqlRepo.EngagementRepository,
	logger *zap.Logger,
	numPosts int,
) {
	logger.Info("开始填充测试数据...", zap.Int("数量", numPosts))

	// 1. 分类
	categoryIDs := make([]string, 0, len(seedCategories))
	for _, name := range seedCategories {
		category := &entities.Category{
			ID:   utils.NewID(),
			Name: fmt.Sprintf("%s-%s", name, gofakeit.LetterN(4)),
		}
		if err := categoryRepo.CreateCategory(ctx, category); err != nil {
			logger.Error("创建分类失败", zap.String("name", category.Name), zap.Error(err))
			continue
		}
		categoryIDs = append(categoryIDs, category.ID)
	}
	if len(categoryIDs) == 0 {
		logger.Error("没有可用分类，填充中止")
		return
	}

	// 2. 帖子（并发受限）
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, 10)

	for i := 0; i < numPosts; i++ {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(itemIndex int) {
			defer wg.Done()
			defer func() { <-semaphore }()

			authorID := uuid.New().String()
			title := fmt.Sprintf("%s %s", gofakeit.Sentence(gofakeit.Number(4, 10)), gofakeit.LetterN(6))

			post := &entities.Post{
				ID:          utils.NewID(),
				Title:       title,
				Slug:        slug.Make(title),
				Description: gofakeit.Sentence(12),
				Content:     gofakeit.Paragraph(3, 5, 20, "\n\n"),
				AuthorID:    authorID,
				CategoryID:  categoryIDs[gofakeit.Number(0, len(categoryIDs)-1)],
				Status:      seedStatuses[gofakeit.Number(0, len(seedStatuses)-1)],
			}
			if err := postRepo.CreatePost(ctx, db, post); err != nil {
				logger.Error(fmt.Sprintf("创建帖子 %d/%d 失败", itemIndex+1, numPosts),
					zap.String("title", post.Title), zap.Error(err))
				return
			}

			// 评论与互动
			for c := 0; c < gofakeit.Number(0, 3); c++ {
				comment := &entities.Comment{
					ID:       utils.NewID(),
					PostID:   post.ID,
					AuthorID: uuid.New().String(),
					Content:  gofakeit.Sentence(15),
				}
				if err := commentRepo.CreateComment(ctx, comment); err != nil {
					logger.Error("创建评论失败", zap.String("postID", post.ID), zap.Error(err))
				}
			}
			for l := 0; l < gofakeit.Number(0, 5); l++ {
				if err := engagementRepo.Add(ctx, enums.EngagementLike, post.ID, uuid.New().String()); err != nil {
					logger.Error("填充点赞失败", zap.String("postID", post.ID), zap.Error(err))
				}
			}
			for f := 0; f < gofakeit.Number(0, 3); f++ {
				if err := engagementRepo.Add(ctx, enums.EngagementFavorite, post.ID, uuid.New().String()); err != nil {
					logger.Error("填充收藏失败", zap.String("postID", post.ID), zap.Error(err))
				}
			}
		}(i)
	}

	wg.Wait()
	logger.Info("测试数据填充完毕。")
}
