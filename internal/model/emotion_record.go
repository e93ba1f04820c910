package model

import (
	"time"
)

// EmotionRecord 情绪记录，创建后只读，不提供更新与用户删除。
// UserID / SessionID 恰好一个非空，写入路径统一经过 Owner。
type EmotionRecord struct {
	ID                 uint64    `gorm:"primaryKey"`
	UserID             *uint64   `gorm:"index:idx_user_created" json:"userId"`
	SessionID          *string   `gorm:"type:varchar(64);index" json:"sessionId"`
	EmotionType        string    `gorm:"type:varchar(32);not null" json:"emotionType"`
	EmotionReason      string    `gorm:"type:text;not null" json:"emotionReason"`
	HelpfulActions     []string  `gorm:"type:json;serializer:json;not null" json:"helpfulActions"`
	PositiveChanges    []string  `gorm:"type:json;serializer:json;not null" json:"positiveChanges"`
	SelfMessage        string    `gorm:"type:varchar(500);not null" json:"selfMessage"`
	ExperienceLocation *string   `gorm:"type:varchar(255)" json:"experienceLocation"`
	CreatedAt          time.Time `gorm:"index:idx_user_created" json:"createdAt"`
}

func (EmotionRecord) TableName() string {
	return "emotion_records"
}

// Owner 从存储列还原归属
func (s *EmotionRecord) Owner() Owner {
	if s.UserID != nil && *s.UserID != 0 {
		return OwnedBy(*s.UserID)
	}
	if s.SessionID != nil {
		return AnonymousOwner(*s.SessionID)
	}
	return Owner{}
}
