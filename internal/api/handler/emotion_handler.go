package handler

import (
	"WithTheLake/internal/api/dto"
	"WithTheLake/internal/pkg/response"
	"WithTheLake/internal/service"

	"github.com/gin-gonic/gin"
)

type EmotionHandler struct {
	emotionSvc service.EmotionService
}

func NewEmotionHandler(emotionSvc service.EmotionService) *EmotionHandler {
	return &EmotionHandler{
		emotionSvc: emotionSvc,
	}
}

func (s *EmotionHandler) SubmitRecord(c *gin.Context) {
	var req dto.SubmitEmotionDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	record, err := s.emotionSvc.SubmitRecord(c.Request.Context(), recordOwner(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, record)
}

func (s *EmotionHandler) GetRecords(c *gin.Context) {
	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}

	records, err := s.emotionSvc.GetRecords(c.Request.Context(), recordOwner(c), query.Page, query.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, records)
}

func (s *EmotionHandler) GetSummary(c *gin.Context) {
	summary, err := s.emotionSvc.GetSummary(c.Request.Context(), recordOwner(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, summary)
}
