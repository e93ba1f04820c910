package dto

// GenerateReportDTO 周报生成请求，weekKey 为空时取上一个完整周
type GenerateReportDTO struct {
	WeekKey string `json:"weekKey"`
}

type WeeklyReportDTO struct {
	ID            uint64            `json:"id"`
	WeekKey       string            `json:"weekKey"`
	TotalRecords  int               `json:"totalRecords"`
	PositiveRatio int               `json:"positiveRatio"`
	EmotionCounts []EmotionCountDTO `json:"emotionCounts"`
	TopActions    []string          `json:"topActions"`
	TopChanges    []string          `json:"topChanges"`
	Insight       string            `json:"insight"`
	InsightSource string            `json:"insightSource"`
	ShareCardURL  *string           `json:"shareCardUrl"`
	AlreadyExists bool              `json:"alreadyExists"`
	CreatedAt     string            `json:"createdAt"`
}
