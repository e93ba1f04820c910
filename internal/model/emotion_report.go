package model

import (
	"time"
)

// EmotionCountItem 周报中的单情绪计数
type EmotionCountItem struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// EmotionReport 每用户每 ISO 周至多一行，写入后不更新。
// 重复插入视为成功空操作，由 service 层处理唯一键冲突。
type EmotionReport struct {
	ID            uint64             `gorm:"primaryKey"`
	UserID        uint64             `gorm:"not null;uniqueIndex:uk_user_week" json:"userId"`
	WeekKey       string             `gorm:"type:varchar(10);not null;uniqueIndex:uk_user_week" json:"weekKey"` // 2026-W35
	TotalRecords  int                `gorm:"not null;default:0" json:"totalRecords"`
	PositiveRatio int                `gorm:"not null;default:0" json:"positiveRatio"`
	EmotionCounts []EmotionCountItem `gorm:"type:json;serializer:json" json:"emotionCounts"`
	TopActions    []string           `gorm:"type:json;serializer:json" json:"topActions"`
	TopChanges    []string           `gorm:"type:json;serializer:json" json:"topChanges"`
	Insight       string             `gorm:"type:text;not null" json:"insight"`
	InsightSource string             `gorm:"type:varchar(16);not null;default:'fallback'" json:"insightSource"` // llm / fallback
	ShareCardURL  *string            `gorm:"type:varchar(255)" json:"shareCardUrl"`
	CreatedAt     time.Time          `json:"createdAt"`
}

func (EmotionReport) TableName() string {
	return "emotion_reports"
}
