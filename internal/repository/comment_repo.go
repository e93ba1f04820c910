package repository

import (
	"WithTheLake/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

type CommentRepo interface {
	CreateComment(ctx context.Context, comment *model.Comment) error
	GetComment(ctx context.Context, id uint64) (*model.Comment, error)
	GetCommentsByPostID(ctx context.Context, postID uint64, page, pageSize int) ([]*model.Comment, error)
	CountCommentsByPostID(ctx context.Context, postID uint64) (int64, error)
	SoftDeleteComment(ctx context.Context, id uint64) error
	PurgeSoftDeleted(ctx context.Context, before time.Time) (int64, error)
}

type CommentRepoImpl struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepo {
	return &CommentRepoImpl{
		db: db,
	}
}

func (s *CommentRepoImpl) CreateComment(ctx context.Context, comment *model.Comment) error {
	return s.db.WithContext(ctx).Create(comment).Error
}

func (s *CommentRepoImpl) GetComment(ctx context.Context, id uint64) (*model.Comment, error) {
	var comment model.Comment
	err := s.db.WithContext(ctx).Preload("User").First(&comment, id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (s *CommentRepoImpl) GetCommentsByPostID(ctx context.Context, postID uint64, page, pageSize int) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := s.db.WithContext(ctx).Preload("User").
		Where("post_id = ? AND is_active = ?", postID, true).
		Order("created_at ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *CommentRepoImpl) CountCommentsByPostID(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Comment{}).
		Where("post_id = ? AND is_active = ?", postID, true).
		Count(&count).Error
	return count, err
}

func (s *CommentRepoImpl) SoftDeleteComment(ctx context.Context, id uint64) error {
	now := time.Now()
	return s.db.WithContext(ctx).Model(&model.Comment{}).Where("id = ?", id).
		Updates(map[string]interface{}{"is_active": false, "deleted_at": now}).Error
}

// PurgeSoftDeleted 物理删除软删超期评论，必须先于帖子清理执行
func (s *CommentRepoImpl) PurgeSoftDeleted(ctx context.Context, before time.Time) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("is_active = ? AND deleted_at IS NOT NULL AND deleted_at < ?", false, before).
		Delete(&model.Comment{})
	return result.RowsAffected, result.Error
}
