package service

import (
	"WithTheLake/internal/api/dto"
	"WithTheLake/internal/model"
	"WithTheLake/internal/pkg/linkpreview"
	"WithTheLake/internal/repository"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// LinkPreviewer 外部链接元信息抓取
type LinkPreviewer interface {
	Fetch(ctx context.Context, pageURL string) (*linkpreview.Preview, error)
}

type NewsService interface {
	CreateNews(ctx context.Context, req *dto.SaveNewsDTO) (*dto.NewsDTO, error)
	GetNews(ctx context.Context, id uint64) (*dto.NewsDTO, error)
	GetNewsList(ctx context.Context, publishedOnly bool, page, pageSize int) ([]*dto.NewsDTO, error)
	UpdateNews(ctx context.Context, id uint64, req *dto.SaveNewsDTO) (*dto.NewsDTO, error)
	DeleteNews(ctx context.Context, id uint64) error
	// PreviewLink 后台编辑引用外部文章时的元信息预填
	PreviewLink(ctx context.Context, pageURL string) (*dto.LinkPreviewDTO, error)
}

type newsServiceImpl struct {
	newsRepo  repository.NewsRepo
	previewer LinkPreviewer
}

func NewNewsService(newsRepo repository.NewsRepo, previewer LinkPreviewer) NewsService {
	return &newsServiceImpl{
		newsRepo:  newsRepo,
		previewer: previewer,
	}
}

func (s *newsServiceImpl) CreateNews(ctx context.Context, req *dto.SaveNewsDTO) (*dto.NewsDTO, error) {
	news := &model.News{
		Title:       req.Title,
		Summary:     req.Summary,
		Content:     req.Content,
		CoverImage:  req.CoverImage,
		SourceURL:   req.SourceURL,
		IsPublished: req.IsPublished,
	}
	if req.IsPublished {
		now := time.Now()
		news.PublishedAt = &now
	}

	if err := s.newsRepo.CreateNews(ctx, news); err != nil {
		return nil, err
	}
	return toNewsDTO(news), nil
}

func (s *newsServiceImpl) GetNews(ctx context.Context, id uint64) (*dto.NewsDTO, error) {
	news, err := s.newsRepo.GetNews(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNewsNotFound
		}
		return nil, err
	}
	return toNewsDTO(news), nil
}

func (s *newsServiceImpl) GetNewsList(ctx context.Context, publishedOnly bool, page, pageSize int) ([]*dto.NewsDTO, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 50 {
		pageSize = 20
	}

	list, err := s.newsRepo.GetNewsList(ctx, publishedOnly, page, pageSize)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.NewsDTO, 0, len(list))
	for _, news := range list {
		result = append(result, toNewsDTO(news))
	}
	return result, nil
}

func (s *newsServiceImpl) UpdateNews(ctx context.Context, id uint64, req *dto.SaveNewsDTO) (*dto.NewsDTO, error) {
	news, err := s.newsRepo.GetNews(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNewsNotFound
		}
		return nil, err
	}

	news.Title = req.Title
	news.Summary = req.Summary
	news.Content = req.Content
	news.CoverImage = req.CoverImage
	news.SourceURL = req.SourceURL
	// 首次发布时记录时间，撤回发布保留原时间
	if req.IsPublished && !news.IsPublished && news.PublishedAt == nil {
		now := time.Now()
		news.PublishedAt = &now
	}
	news.IsPublished = req.IsPublished

	if err = s.newsRepo.UpdateNews(ctx, news); err != nil {
		return nil, err
	}
	return toNewsDTO(news), nil
}

func (s *newsServiceImpl) DeleteNews(ctx context.Context, id uint64) error {
	if _, err := s.newsRepo.GetNews(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNewsNotFound
		}
		return err
	}
	return s.newsRepo.DeleteNews(ctx, id)
}

func (s *newsServiceImpl) PreviewLink(ctx context.Context, pageURL string) (*dto.LinkPreviewDTO, error) {
	if pageURL == "" {
		return nil, ErrParamInvalid
	}
	preview, err := s.previewer.Fetch(ctx, pageURL)
	if err != nil {
		return nil, ErrParamInvalid
	}
	return &dto.LinkPreviewDTO{
		Title:       preview.Title,
		Description: preview.Description,
		ImageURL:    preview.ImageURL,
		Excerpt:     preview.Excerpt,
	}, nil
}

func toNewsDTO(news *model.News) *dto.NewsDTO {
	publishedAt := ""
	if news.PublishedAt != nil {
		publishedAt = news.PublishedAt.Format(time.RFC3339)
	}
	return &dto.NewsDTO{
		ID:          news.ID,
		Title:       news.Title,
		Summary:     news.Summary,
		Content:     news.Content,
		CoverImage:  news.CoverImage,
		SourceURL:   news.SourceURL,
		IsPublished: news.IsPublished,
		PublishedAt: publishedAt,
	}
}
