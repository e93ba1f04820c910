package model

import (
	"time"
)

// News 官方消息/公告
type News struct {
	ID          uint64     `gorm:"primaryKey"`
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Summary     string     `gorm:"type:varchar(500);not null;default:''" json:"summary"`
	Content     string     `gorm:"not null" json:"content"`
	CoverImage  string     `gorm:"type:varchar(255);not null;default:''" json:"coverImage"`
	SourceURL   *string    `gorm:"type:varchar(512)" json:"sourceUrl"` // 外部来源链接，可选
	IsPublished bool       `gorm:"type:tinyint(1);not null;default:0;index" json:"isPublished"`
	PublishedAt *time.Time `json:"publishedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (News) TableName() string {
	return "news"
}
