package kafka

import "time"

// ViewEvent 帖子浏览事件，由接口侧异步投递
type ViewEvent struct {
	PostID   uint64    `json:"postId"`
	ViewedAt time.Time `json:"viewedAt"`
}
