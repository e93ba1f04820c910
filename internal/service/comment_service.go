package service

import (
	"WithTheLake/internal/api/dto"
	"WithTheLake/internal/model"
	"WithTheLake/internal/repository"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type CommentService interface {
	CreateComment(ctx context.Context, userID, postID uint64, req *dto.CreateCommentDTO) (*dto.CommentDTO, error)
	GetComments(ctx context.Context, postID uint64, page, pageSize int) (*dto.CommentListDTO, error)
	DeleteComment(ctx context.Context, userID, commentID uint64, isAdmin bool) error
}

type commentServiceImpl struct {
	commentRepo repository.CommentRepo
	postRepo    repository.PostRepo
}

func NewCommentService(commentRepo repository.CommentRepo, postRepo repository.PostRepo) CommentService {
	return &commentServiceImpl{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

func (s *commentServiceImpl) CreateComment(ctx context.Context, userID, postID uint64, req *dto.CreateCommentDTO) (*dto.CommentDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	if !post.IsActive {
		return nil, ErrPostNotFound
	}

	comment := &model.Comment{
		PostID:   postID,
		UserID:   userID,
		Content:  req.Content,
		IsActive: true,
	}
	if err = s.commentRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	created, err := s.commentRepo.GetComment(ctx, comment.ID)
	if err != nil {
		return nil, err
	}
	return toCommentDTO(created), nil
}

func (s *commentServiceImpl) GetComments(ctx context.Context, postID uint64, page, pageSize int) (*dto.CommentListDTO, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	comments, err := s.commentRepo.GetCommentsByPostID(ctx, postID, page, pageSize)
	if err != nil {
		return nil, err
	}
	total, err := s.commentRepo.CountCommentsByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}

	list := make([]*dto.CommentDTO, 0, len(comments))
	for _, comment := range comments {
		list = append(list, toCommentDTO(comment))
	}
	return &dto.CommentListDTO{Total: total, Comments: list}, nil
}

func (s *commentServiceImpl) DeleteComment(ctx context.Context, userID, commentID uint64, isAdmin bool) error {
	comment, err := s.commentRepo.GetComment(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}
	if !comment.IsActive {
		return ErrCommentNotFound
	}
	if comment.UserID != userID && !isAdmin {
		return UnauthorizedError
	}
	return s.commentRepo.SoftDeleteComment(ctx, commentID)
}

func toCommentDTO(comment *model.Comment) *dto.CommentDTO {
	return &dto.CommentDTO{
		ID:        comment.ID,
		PostID:    comment.PostID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt.Format(time.RFC3339),
		UserID:    comment.UserID,
		Nickname:  comment.User.Nickname,
		AvatarURL: comment.User.AvatarURL,
	}
}
