package es

import "time"

// PostES 写入 ES 的帖子文档，检索用
type PostES struct {
	ID           uint64    `json:"id"`
	UserID       uint64    `json:"user_id"`
	BoardType    string    `json:"board_type"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	UserNickname string    `json:"user_nickname"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
