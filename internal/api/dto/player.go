package dto

// PlayerCommandDTO 播放器指令：load/play/pause/stop/seek/media_event
type PlayerCommandDTO struct {
	Command  string  `json:"command" binding:"required"`
	TrackID  uint64  `json:"trackId"`
	Position float64 `json:"position"`
	Event    string  `json:"event"`
}

type PlayerSnapshotDTO struct {
	TrackID   uint64  `json:"trackId"`
	State     string  `json:"state"`
	Position  float64 `json:"position"`
	IsLoading bool    `json:"isLoading"`
}
