package handler

import (
	"WithTheLake/internal/api/dto"
	"WithTheLake/internal/pkg/response"
	"WithTheLake/internal/service"
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportSvc service.ReportService
}

func NewReportHandler(reportSvc service.ReportService) *ReportHandler {
	return &ReportHandler{
		reportSvc: reportSvc,
	}
}

func (s *ReportHandler) GenerateReport(c *gin.Context) {
	userID := c.GetUint64("user_id")

	// 请求体可省略，省略时生成上一个完整周的周报
	var req dto.GenerateReportDTO
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, err)
		return
	}

	report, err := s.reportSvc.GenerateReport(c.Request.Context(), userID, req.WeekKey)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, report)
}

func (s *ReportHandler) GetReport(c *gin.Context) {
	userID := c.GetUint64("user_id")
	weekKey := c.Param("week_key")

	report, err := s.reportSvc.GetReport(c.Request.Context(), userID, weekKey)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, report)
}

func (s *ReportHandler) GetReports(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var query struct {
		Limit int `form:"limit,default=12" binding:"min=1,max=52"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}

	reports, err := s.reportSvc.GetReports(c.Request.Context(), userID, query.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, reports)
}
