package dto

// CleanupResultDTO 清理执行汇总，单表失败不中断整体
type CleanupResultDTO struct {
	DeletedComments int64    `json:"deletedComments"`
	DeletedPosts    int64    `json:"deletedPosts"`
	Errors          []string `json:"errors"`
}
