package dto

type SaveAudioTrackDTO struct {
	Title       string `json:"title" binding:"required" validate:"min=1,max=128"`
	Artist      string `json:"artist"`
	Category    string `json:"category"`
	AudioURL    string `json:"audioUrl" binding:"required"`
	CoverURL    string `json:"coverUrl"`
	Duration    int    `json:"duration" validate:"min=0"`
	IsPublished bool   `json:"isPublished"`
}

type AudioTrackDTO struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	Category    string `json:"category"`
	AudioURL    string `json:"audioUrl"`
	CoverURL    string `json:"coverUrl"`
	Duration    int    `json:"duration"`
	IsPublished bool   `json:"isPublished"`
}
