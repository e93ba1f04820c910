package model

import (
	"time"
)

// AudioTrack 冥想/自然音频音轨
type AudioTrack struct {
	ID          uint64    `gorm:"primaryKey"`
	Title       string    `gorm:"type:varchar(128);not null" json:"title"`
	Artist      string    `gorm:"type:varchar(64);not null;default:''" json:"artist"`
	Category    string    `gorm:"type:varchar(32);not null;default:'';index" json:"category"` // meditation/nature/asmr
	AudioURL    string    `gorm:"type:varchar(255);not null" json:"audioUrl"`
	CoverURL    string    `gorm:"type:varchar(255);not null;default:''" json:"coverUrl"`
	Duration    int       `gorm:"not null;default:0" json:"duration"` // 秒
	IsPublished bool      `gorm:"type:tinyint(1);not null;default:1;index" json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (AudioTrack) TableName() string {
	return "audio_tracks"
}
