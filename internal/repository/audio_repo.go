package repository

import (
	"WithTheLake/internal/model"
	"context"

	"gorm.io/gorm"
)

type AudioTrackRepo interface {
	CreateTrack(ctx context.Context, track *model.AudioTrack) error
	GetTrack(ctx context.Context, id uint64) (*model.AudioTrack, error)
	GetTrackList(ctx context.Context, category string, publishedOnly bool, page, pageSize int) ([]*model.AudioTrack, error)
	UpdateTrack(ctx context.Context, track *model.AudioTrack) error
	DeleteTrack(ctx context.Context, id uint64) error
	CountTracks(ctx context.Context) (int64, error)
}

type AudioTrackRepoImpl struct {
	db *gorm.DB
}

func NewAudioTrackRepository(db *gorm.DB) AudioTrackRepo {
	return &AudioTrackRepoImpl{
		db: db,
	}
}

func (s *AudioTrackRepoImpl) CreateTrack(ctx context.Context, track *model.AudioTrack) error {
	return s.db.WithContext(ctx).Create(track).Error
}

func (s *AudioTrackRepoImpl) GetTrack(ctx context.Context, id uint64) (*model.AudioTrack, error) {
	var track model.AudioTrack
	err := s.db.WithContext(ctx).First(&track, id).Error
	if err != nil {
		return nil, err
	}
	return &track, nil
}

func (s *AudioTrackRepoImpl) GetTrackList(ctx context.Context, category string, publishedOnly bool, page, pageSize int) ([]*model.AudioTrack, error) {
	var list []*model.AudioTrack
	query := s.db.WithContext(ctx).Model(&model.AudioTrack{})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}
	err := query.
		Order("id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (s *AudioTrackRepoImpl) UpdateTrack(ctx context.Context, track *model.AudioTrack) error {
	return s.db.WithContext(ctx).Updates(track).Error
}

func (s *AudioTrackRepoImpl) DeleteTrack(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.AudioTrack{}, id).Error
}

func (s *AudioTrackRepoImpl) CountTracks(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.AudioTrack{}).Count(&count).Error
	return count, err
}
