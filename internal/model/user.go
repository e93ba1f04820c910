package model

import (
	"time"
)

type User struct {
	ID         uint64    `gorm:"primaryKey"`
	Provider   string    `gorm:"type:varchar(16);not null;default:'';uniqueIndex:uk_provider_uid" json:"provider"` // kakao / local
	ProviderID string    `gorm:"type:varchar(64);not null;default:'';uniqueIndex:uk_provider_uid" json:"providerId"`
	Username   *string   `gorm:"type:varchar(32);uniqueIndex" json:"username"` // 后台账号登录用
	Password   *string   `gorm:"type:varchar(255)" json:"-"`
	Nickname   string    `gorm:"type:varchar(64);not null;default:''" json:"nickname"`
	Email      *string   `gorm:"type:varchar(128)" json:"email"`
	AvatarURL  string    `gorm:"type:varchar(255);not null;default:''" json:"avatarUrl"`
	Role       string    `gorm:"type:varchar(16);not null;default:'USER'" json:"role"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}
