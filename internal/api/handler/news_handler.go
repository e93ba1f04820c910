package handler

import (
	"WithTheLake/internal/api/dto"
	"WithTheLake/internal/pkg/response"
	"WithTheLake/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type NewsHandler struct {
	newsSvc service.NewsService
}

func NewNewsHandler(newsSvc service.NewsService) *NewsHandler {
	return &NewsHandler{
		newsSvc: newsSvc,
	}
}

// GetNewsList 对外只展示已发布的资讯
func (s *NewsHandler) GetNewsList(c *gin.Context) {
	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}

	list, err := s.newsSvc.GetNewsList(c.Request.Context(), true, query.Page, query.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, list)
}

func (s *NewsHandler) GetNews(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	news, err := s.newsSvc.GetNews(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	// 未发布的资讯对外不可见
	if !news.IsPublished {
		response.Error(c, service.ErrNewsNotFound)
		return
	}

	response.Success(c, news)
}

func (s *NewsHandler) GetNewsListAdmin(c *gin.Context) {
	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}

	list, err := s.newsSvc.GetNewsList(c.Request.Context(), false, query.Page, query.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, list)
}

func (s *NewsHandler) GetNewsAdmin(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	news, err := s.newsSvc.GetNews(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, news)
}

func (s *NewsHandler) CreateNews(c *gin.Context) {
	var req dto.SaveNewsDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	news, err := s.newsSvc.CreateNews(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, news)
}

func (s *NewsHandler) UpdateNews(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.SaveNewsDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	news, err := s.newsSvc.UpdateNews(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, news)
}

func (s *NewsHandler) DeleteNews(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = s.newsSvc.DeleteNews(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// PreviewLink 后台编辑时抓取外部文章的 OG 元信息
func (s *NewsHandler) PreviewLink(c *gin.Context) {
	pageURL := c.Query("url")
	if pageURL == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	preview, err := s.newsSvc.PreviewLink(c.Request.Context(), pageURL)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, preview)
}
