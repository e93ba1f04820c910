package service

import (
	"WithTheLake/internal/api/dto"
	"WithTheLake/internal/repository"
	"context"
	log "log/slog"
	"time"
)

const DefaultRetentionDays = 30

type CleanupService interface {
	// PurgeExpired 物理删除软删超期的社区内容。
	// 评论先于帖子删除，保证不会留下无主评论；单表失败记录后继续。
	PurgeExpired(ctx context.Context, retentionDays int) (*dto.CleanupResultDTO, error)
}

type cleanupServiceImpl struct {
	commentRepo repository.CommentRepo
	postRepo    repository.PostRepo
}

func NewCleanupService(commentRepo repository.CommentRepo, postRepo repository.PostRepo) CleanupService {
	return &cleanupServiceImpl{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

func (s *cleanupServiceImpl) PurgeExpired(ctx context.Context, retentionDays int) (*dto.CleanupResultDTO, error) {
	if retentionDays <= 0 {
		retentionDays = DefaultRetentionDays
	}
	before := time.Now().AddDate(0, 0, -retentionDays)

	result := &dto.CleanupResultDTO{Errors: make([]string, 0)}

	deletedComments, err := s.commentRepo.PurgeSoftDeleted(ctx, before)
	if err != nil {
		log.ErrorContext(ctx, "社区清理-评论清理失败", "err", err)
		result.Errors = append(result.Errors, "comments: "+err.Error())
	}
	result.DeletedComments = deletedComments

	deletedPosts, err := s.postRepo.PurgeSoftDeleted(ctx, before)
	if err != nil {
		log.ErrorContext(ctx, "社区清理-帖子清理失败", "err", err)
		result.Errors = append(result.Errors, "posts: "+err.Error())
	}
	result.DeletedPosts = deletedPosts

	log.InfoContext(ctx, "社区清理完成",
		"deletedComments", result.DeletedComments,
		"deletedPosts", result.DeletedPosts,
		"errors", len(result.Errors))

	return result, nil
}
