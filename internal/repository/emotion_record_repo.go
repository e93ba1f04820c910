package repository

import (
	"WithTheLake/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

type EmotionRecordRepo interface {
	CreateRecord(ctx context.Context, record *model.EmotionRecord) error
	GetRecordsByUser(ctx context.Context, userID uint64, page, pageSize int) ([]*model.EmotionRecord, error)
	GetRecordsBySession(ctx context.Context, sessionID string, page, pageSize int) ([]*model.EmotionRecord, error)
	GetRecordsByUserBetween(ctx context.Context, userID uint64, start, end time.Time) ([]*model.EmotionRecord, error)
	GetActiveUserIDsBetween(ctx context.Context, start, end time.Time) ([]uint64, error)
	GetEmotionTypesByOwner(ctx context.Context, userID *uint64, sessionID *string) ([]string, error)
	CountRecords(ctx context.Context) (int64, error)
}

type EmotionRecordRepoImpl struct {
	db *gorm.DB
}

func NewEmotionRecordRepo(db *gorm.DB) EmotionRecordRepo {
	return &EmotionRecordRepoImpl{
		db: db,
	}
}

func (s *EmotionRecordRepoImpl) CreateRecord(ctx context.Context, record *model.EmotionRecord) error {
	return s.db.WithContext(ctx).Create(record).Error
}

func (s *EmotionRecordRepoImpl) GetRecordsByUser(ctx context.Context, userID uint64, page, pageSize int) ([]*model.EmotionRecord, error) {
	var records []*model.EmotionRecord
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (s *EmotionRecordRepoImpl) GetRecordsBySession(ctx context.Context, sessionID string, page, pageSize int) ([]*model.EmotionRecord, error) {
	var records []*model.EmotionRecord
	err := s.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// GetRecordsByUserBetween 取 [start, end) 区间内的记录，按创建时间升序，供周报聚合
func (s *EmotionRecordRepoImpl) GetRecordsByUserBetween(ctx context.Context, userID uint64, start, end time.Time) ([]*model.EmotionRecord, error) {
	var records []*model.EmotionRecord
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, start, end).
		Order("created_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// GetActiveUserIDsBetween 区间内有记录的登录用户，周报扫描用
func (s *EmotionRecordRepoImpl) GetActiveUserIDsBetween(ctx context.Context, start, end time.Time) ([]uint64, error) {
	var userIDs []uint64
	err := s.db.WithContext(ctx).
		Model(&model.EmotionRecord{}).
		Where("user_id IS NOT NULL AND created_at >= ? AND created_at < ?", start, end).
		Distinct("user_id").
		Pluck("user_id", &userIDs).Error
	if err != nil {
		return nil, err
	}
	return userIDs, nil
}

// GetEmotionTypesByOwner 只取情绪类型列，按创建时间升序，聚合统计用
func (s *EmotionRecordRepoImpl) GetEmotionTypesByOwner(ctx context.Context, userID *uint64, sessionID *string) ([]string, error) {
	query := s.db.WithContext(ctx).Model(&model.EmotionRecord{})
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	} else {
		query = query.Where("session_id = ?", sessionID)
	}

	var types []string
	err := query.Order("created_at ASC").Pluck("emotion_type", &types).Error
	if err != nil {
		return nil, err
	}
	return types, nil
}

func (s *EmotionRecordRepoImpl) CountRecords(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.EmotionRecord{}).Count(&count).Error
	return count, err
}
