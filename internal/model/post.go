package model

import (
	"time"
)

// Post 社区帖子。软删除两段生命周期：active → soft-deleted(带时间戳) → 由清理任务物理删除。
type Post struct {
	ID        uint64     `gorm:"primaryKey"`
	UserID    uint64     `gorm:"not null;index:idx_user_id" json:"userId"`
	Title     string     `gorm:"type:varchar(255);not null" json:"title"`
	Content   string     `gorm:"not null" json:"content"`
	BoardType string     `gorm:"type:varchar(16);not null;index:idx_board_type" json:"boardType"` // notice/free/event/review
	IsPinned  bool       `gorm:"type:tinyint(1);not null;default:0" json:"isPinned"`
	ViewCount int64      `gorm:"not null;default:0" json:"viewCount"`
	IsActive  bool       `gorm:"type:tinyint(1);not null;default:1;index:idx_active_deleted" json:"isActive"`
	DeletedAt *time.Time `gorm:"index:idx_active_deleted" json:"deletedAt"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`

	// 关联关系
	User User `gorm:"foreignKey:UserID;references:ID"`
}

func (Post) TableName() string {
	return "community_posts"
}
