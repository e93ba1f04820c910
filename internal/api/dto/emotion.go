package dto

// SubmitEmotionDTO 情绪记录提交体。指针字段用于区分 "未传" 与空值，
// 校验交给 emotion 包的校验器而不是 binding tag，错误码需要逐字段给出。
type SubmitEmotionDTO struct {
	EmotionType        *string  `json:"emotionType"`
	EmotionReason      *string  `json:"emotionReason"`
	HelpfulActions     []string `json:"helpfulActions"`
	PositiveChanges    []string `json:"positiveChanges"`
	SelfMessage        *string  `json:"selfMessage"`
	ExperienceLocation *string  `json:"experienceLocation"`
}

type EmotionRecordDTO struct {
	ID                 uint64   `json:"id"`
	EmotionType        string   `json:"emotionType"`
	EmotionLabel       string   `json:"emotionLabel"`
	EmotionReason      string   `json:"emotionReason"`
	HelpfulActions     []string `json:"helpfulActions"`
	PositiveChanges    []string `json:"positiveChanges"`
	SelfMessage        string   `json:"selfMessage"`
	ExperienceLocation *string  `json:"experienceLocation"`
	CreatedAt          string   `json:"createdAt"`
}

type EmotionCountDTO struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

type EmotionSummaryDTO struct {
	TotalRecords  int               `json:"totalRecords"`
	Counts        []EmotionCountDTO `json:"counts"`
	MostFrequent  string            `json:"mostFrequent"`
	PositiveRatio int               `json:"positiveRatio"`
	Insight       string            `json:"insight"`
}
