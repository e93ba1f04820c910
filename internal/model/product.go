package model

import (
	"time"
)

// Product 商城商品
type Product struct {
	ID          uint64    `gorm:"primaryKey"`
	Name        string    `gorm:"type:varchar(128);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       int64     `gorm:"not null;default:0" json:"price"` // 单位: 원
	ImageURL    string    `gorm:"type:varchar(255);not null;default:''" json:"imageUrl"`
	StockCount  int       `gorm:"not null;default:0" json:"stockCount"`
	IsActive    bool      `gorm:"type:tinyint(1);not null;default:1;index" json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Product) TableName() string {
	return "products"
}
