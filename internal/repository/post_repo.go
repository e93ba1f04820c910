package repository

import (
	"WithTheLake/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post) error
	GetPost(ctx context.Context, id uint64) (*model.Post, error)
	GetPostByIds(ctx context.Context, ids []uint64) ([]*model.Post, error)
	GetPostsByBoard(ctx context.Context, boardType string, page, pageSize int) ([]*model.Post, error)
	UpdatePost(ctx context.Context, post *model.Post) error
	UpdatePinned(ctx context.Context, id uint64, pinned bool) error
	IncrViewCount(ctx context.Context, id uint64, delta int64) error
	SoftDeletePost(ctx context.Context, id uint64) error
	PurgeSoftDeleted(ctx context.Context, before time.Time) (int64, error)
	CountPosts(ctx context.Context) (int64, error)
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &PostRepoImpl{
		db: db,
	}
}

func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Create(post).Error
}

func (s *PostRepoImpl) GetPost(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).Preload("User").First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *PostRepoImpl) GetPostByIds(ctx context.Context, ids []uint64) ([]*model.Post, error) {
	var posts []*model.Post
	err := s.db.WithContext(ctx).Preload("User").Where("id IN ?", ids).Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPostsByBoard 板块列表：置顶优先，其余按时间倒序，只取 active
func (s *PostRepoImpl) GetPostsByBoard(ctx context.Context, boardType string, page, pageSize int) ([]*model.Post, error) {
	var posts []*model.Post
	query := s.db.WithContext(ctx).Preload("User").Where("is_active = ?", true)
	if boardType != "" {
		query = query.Where("board_type = ?", boardType)
	}
	err := query.
		Order("is_pinned DESC, created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostRepoImpl) UpdatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Updates(post).Error
}

func (s *PostRepoImpl) UpdatePinned(ctx context.Context, id uint64, pinned bool) error {
	return s.db.WithContext(ctx).Model(&model.Post{}).Where("id = ?", id).Update("is_pinned", pinned).Error
}

// IncrViewCount 浏览量增量落库，Redis 侧保存的是待刷的增量
func (s *PostRepoImpl) IncrViewCount(ctx context.Context, id uint64, delta int64) error {
	return s.db.WithContext(ctx).Model(&model.Post{}).Where("id = ?", id).
		Update("view_count", gorm.Expr("view_count + ?", delta)).Error
}

// SoftDeletePost 标记删除并记录时间，物理清理由定时任务执行
func (s *PostRepoImpl) SoftDeletePost(ctx context.Context, id uint64) error {
	now := time.Now()
	return s.db.WithContext(ctx).Model(&model.Post{}).Where("id = ?", id).
		Updates(map[string]interface{}{"is_active": false, "deleted_at": now}).Error
}

// PurgeSoftDeleted 物理删除软删超期帖子，返回删除行数
func (s *PostRepoImpl) PurgeSoftDeleted(ctx context.Context, before time.Time) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("is_active = ? AND deleted_at IS NOT NULL AND deleted_at < ?", false, before).
		Delete(&model.Post{})
	return result.RowsAffected, result.Error
}

func (s *PostRepoImpl) CountPosts(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Post{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}
