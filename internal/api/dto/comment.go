package dto

type CreateCommentDTO struct {
	Content string `json:"content" binding:"required" validate:"min=1,max=1000"`
}

type CommentDTO struct {
	ID        uint64 `json:"id"`
	PostID    uint64 `json:"postId"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`

	UserID    uint64 `json:"userId"`
	Nickname  string `json:"nickname"`
	AvatarURL string `json:"avatarUrl"`
}

type CommentListDTO struct {
	Total    int64         `json:"total"`
	Comments []*CommentDTO `json:"comments"`
}
