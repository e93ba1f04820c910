package dto

// AdminDashboardDTO 后台首页统计
type AdminDashboardDTO struct {
	TotalUsers    int64 `json:"totalUsers"`
	TotalRecords  int64 `json:"totalRecords"`
	TotalPosts    int64 `json:"totalPosts"`
	TotalNews     int64 `json:"totalNews"`
	TotalProducts int64 `json:"totalProducts"`
	TotalTracks   int64 `json:"totalTracks"`
}

type AuditLogDTO struct {
	ID         string `json:"id"`
	OperatorID uint64 `json:"operatorId"`
	Action     string `json:"action"`
	Resource   string `json:"resource"`
	ResourceID string `json:"resourceId"`
	Detail     string `json:"detail,omitempty"`
	TraceID    string `json:"traceId,omitempty"`
	CreatedAt  string `json:"createdAt"`
}
