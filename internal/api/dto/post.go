package dto

type CreatePostDTO struct {
	Title     string `json:"title" binding:"required" validate:"min=1,max=255"`
	Content   string `json:"content" binding:"required" validate:"min=1"`
	BoardType string `json:"boardType" binding:"required"`
}

type UpdatePostDTO struct {
	Title   string `json:"title" binding:"required" validate:"min=1,max=255"`
	Content string `json:"content" binding:"required" validate:"min=1"`
}

type PostDTO struct {
	// Post
	ID        uint64 `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	BoardType string `json:"boardType"`
	IsPinned  bool   `json:"isPinned"`
	ViewCount int64  `json:"viewCount"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`

	// User
	UserID    uint64 `json:"userId"`
	Nickname  string `json:"nickname"`
	AvatarURL string `json:"avatarUrl"`
}

type PostListDTO struct {
	Total int64      `json:"total"`
	Posts []*PostDTO `json:"posts"`
}
