package repository

import (
	"WithTheLake/internal/model"
	"context"

	"gorm.io/gorm"
)

type EmotionReportRepo interface {
	CreateReport(ctx context.Context, report *model.EmotionReport) error
	GetReport(ctx context.Context, userID uint64, weekKey string) (*model.EmotionReport, error)
	GetReportsByUser(ctx context.Context, userID uint64, limit int) ([]*model.EmotionReport, error)
	UpdateShareCardURL(ctx context.Context, reportID uint64, url string) error
}

type EmotionReportRepoImpl struct {
	db *gorm.DB
}

func NewEmotionReportRepo(db *gorm.DB) EmotionReportRepo {
	return &EmotionReportRepoImpl{
		db: db,
	}
}

// CreateReport 直接插入，唯一键冲突原样抛出，由 service 层判定幂等
func (s *EmotionReportRepoImpl) CreateReport(ctx context.Context, report *model.EmotionReport) error {
	return s.db.WithContext(ctx).Create(report).Error
}

func (s *EmotionReportRepoImpl) GetReport(ctx context.Context, userID uint64, weekKey string) (*model.EmotionReport, error) {
	var report model.EmotionReport
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND week_key = ?", userID, weekKey).
		First(&report).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (s *EmotionReportRepoImpl) GetReportsByUser(ctx context.Context, userID uint64, limit int) ([]*model.EmotionReport, error) {
	var reports []*model.EmotionReport
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("week_key DESC").
		Limit(limit).
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func (s *EmotionReportRepoImpl) UpdateShareCardURL(ctx context.Context, reportID uint64, url string) error {
	return s.db.WithContext(ctx).
		Model(&model.EmotionReport{}).
		Where("id = ?", reportID).
		Update("share_card_url", url).Error
}
