package model

import (
	"time"
)

// Comment 帖子评论。删除帖子不级联评论，由清理任务先删评论后删帖子。
type Comment struct {
	ID        uint64     `gorm:"primaryKey"`
	PostID    uint64     `gorm:"not null;index:idx_post_id" json:"postId"`
	UserID    uint64     `gorm:"not null" json:"userId"`
	Content   string     `gorm:"type:varchar(1000);not null" json:"content"`
	IsActive  bool       `gorm:"type:tinyint(1);not null;default:1;index:idx_active_deleted" json:"isActive"`
	DeletedAt *time.Time `gorm:"index:idx_active_deleted" json:"deletedAt"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

func (Comment) TableName() string {
	return "community_comments"
}
