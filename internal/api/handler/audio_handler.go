package handler

import (
	"WithTheLake/internal/api/dto"
	"WithTheLake/internal/pkg/consts"
	"WithTheLake/internal/pkg/response"
	"WithTheLake/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AudioHandler struct {
	audioSvc service.AudioService
}

func NewAudioHandler(audioSvc service.AudioService) *AudioHandler {
	return &AudioHandler{
		audioSvc: audioSvc,
	}
}

// GetTrackList 对外只展示已上架音轨，category 为空时不过滤
func (s *AudioHandler) GetTrackList(c *gin.Context) {
	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}

	list, err := s.audioSvc.GetTrackList(c.Request.Context(), c.Query("category"), true, query.Page, query.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, list)
}

func (s *AudioHandler) GetTrack(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	track, err := s.audioSvc.GetTrack(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !track.IsPublished {
		response.Error(c, service.ErrTrackNotFound)
		return
	}

	response.Success(c, track)
}

func (s *AudioHandler) GetTrackListAdmin(c *gin.Context) {
	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}

	list, err := s.audioSvc.GetTrackList(c.Request.Context(), c.Query("category"), false, query.Page, query.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, list)
}

func (s *AudioHandler) CreateTrack(c *gin.Context) {
	var req dto.SaveAudioTrackDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	track, err := s.audioSvc.CreateTrack(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, track)
}

func (s *AudioHandler) UpdateTrack(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.SaveAudioTrackDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	track, err := s.audioSvc.UpdateTrack(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, track)
}

func (s *AudioHandler) DeleteTrack(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = s.audioSvc.DeleteTrack(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// ExecuteCommand 播放器指令入口，会话由 X-Session-ID 标识
func (s *AudioHandler) ExecuteCommand(c *gin.Context) {
	sessionID := c.GetHeader(consts.SessionIDHeader)
	if sessionID == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.PlayerCommandDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	snapshot, err := s.audioSvc.ExecuteCommand(c.Request.Context(), sessionID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, snapshot)
}

func (s *AudioHandler) GetPlayerSnapshot(c *gin.Context) {
	sessionID := c.GetHeader(consts.SessionIDHeader)
	if sessionID == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	snapshot, err := s.audioSvc.GetPlayerSnapshot(c.Request.Context(), sessionID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, snapshot)
}
