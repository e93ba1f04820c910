package dto

// PageQuery 通用分页参数
type PageQuery struct {
	Page     int `form:"page,default=1" binding:"min=1"`
	PageSize int `form:"page_size,default=20" binding:"min=1,max=100"`
}

// SearchPostQuery 帖子搜索参数，board_type 为空时跨板块搜索
type SearchPostQuery struct {
	PageQuery
	Keyword   string `form:"keyword" binding:"required"`
	BoardType string `form:"board_type"`
}
