package repository

import (
	"WithTheLake/internal/model"
	"context"

	"gorm.io/gorm"
)

type NewsRepo interface {
	CreateNews(ctx context.Context, news *model.News) error
	GetNews(ctx context.Context, id uint64) (*model.News, error)
	GetNewsList(ctx context.Context, publishedOnly bool, page, pageSize int) ([]*model.News, error)
	UpdateNews(ctx context.Context, news *model.News) error
	DeleteNews(ctx context.Context, id uint64) error
	CountNews(ctx context.Context) (int64, error)
}

type NewsRepoImpl struct {
	db *gorm.DB
}

func NewNewsRepository(db *gorm.DB) NewsRepo {
	return &NewsRepoImpl{
		db: db,
	}
}

func (s *NewsRepoImpl) CreateNews(ctx context.Context, news *model.News) error {
	return s.db.WithContext(ctx).Create(news).Error
}

func (s *NewsRepoImpl) GetNews(ctx context.Context, id uint64) (*model.News, error) {
	var news model.News
	err := s.db.WithContext(ctx).First(&news, id).Error
	if err != nil {
		return nil, err
	}
	return &news, nil
}

func (s *NewsRepoImpl) GetNewsList(ctx context.Context, publishedOnly bool, page, pageSize int) ([]*model.News, error) {
	var list []*model.News
	query := s.db.WithContext(ctx).Model(&model.News{})
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}
	err := query.
		Order("published_at DESC, id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (s *NewsRepoImpl) UpdateNews(ctx context.Context, news *model.News) error {
	return s.db.WithContext(ctx).Updates(news).Error
}

func (s *NewsRepoImpl) DeleteNews(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.News{}, id).Error
}

func (s *NewsRepoImpl) CountNews(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.News{}).Count(&count).Error
	return count, err
}
