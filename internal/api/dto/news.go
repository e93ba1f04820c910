package dto

type SaveNewsDTO struct {
	Title       string  `json:"title" binding:"required" validate:"min=1,max=255"`
	Summary     string  `json:"summary" validate:"max=500"`
	Content     string  `json:"content" binding:"required"`
	CoverImage  string  `json:"coverImage"`
	SourceURL   *string `json:"sourceUrl"`
	IsPublished bool    `json:"isPublished"`
}

type NewsDTO struct {
	ID          uint64  `json:"id"`
	Title       string  `json:"title"`
	Summary     string  `json:"summary"`
	Content     string  `json:"content"`
	CoverImage  string  `json:"coverImage"`
	SourceURL   *string `json:"sourceUrl"`
	IsPublished bool    `json:"isPublished"`
	PublishedAt string  `json:"publishedAt"`
}

// LinkPreviewDTO 外部来源链接的 OG 摘要
type LinkPreviewDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Excerpt     string `json:"excerpt"`
}
