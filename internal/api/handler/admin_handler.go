package handler

import (
	"WithTheLake/internal/api/dto"
	"WithTheLake/internal/pkg/response"
	"WithTheLake/internal/service"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminSvc service.AdminService
}

func NewAdminHandler(adminSvc service.AdminService) *AdminHandler {
	return &AdminHandler{
		adminSvc: adminSvc,
	}
}

func (s *AdminHandler) GetDashboard(c *gin.Context) {
	dashboard, err := s.adminSvc.GetDashboard(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dashboard)
}

func (s *AdminHandler) GetAuditLogs(c *gin.Context) {
	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}

	logs, err := s.adminSvc.GetAuditLogs(c.Request.Context(), c.Query("resource"), query.Page, query.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, logs)
}
