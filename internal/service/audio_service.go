package service

import (
	"WithTheLake/internal/api/dto"
	"WithTheLake/internal/model"
	"WithTheLake/internal/pkg/consts"
	"WithTheLake/internal/pkg/player"
	"WithTheLake/internal/pkg/redis"
	"WithTheLake/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"time"

	"github.com/goccy/go-json"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

const playerSnapshotTTL = 24 * time.Hour

const (
	PlayerCmdLoad       = "load"
	PlayerCmdPlay       = "play"
	PlayerCmdPause      = "pause"
	PlayerCmdStop       = "stop"
	PlayerCmdSeek       = "seek"
	PlayerCmdMediaEvent = "media_event"
)

type AudioService interface {
	CreateTrack(ctx context.Context, req *dto.SaveAudioTrackDTO) (*dto.AudioTrackDTO, error)
	GetTrack(ctx context.Context, id uint64) (*dto.AudioTrackDTO, error)
	GetTrackList(ctx context.Context, category string, publishedOnly bool, page, pageSize int) ([]*dto.AudioTrackDTO, error)
	UpdateTrack(ctx context.Context, id uint64, req *dto.SaveAudioTrackDTO) (*dto.AudioTrackDTO, error)
	DeleteTrack(ctx context.Context, id uint64) error

	// ExecuteCommand 执行播放器指令并返回最新快照
	ExecuteCommand(ctx context.Context, sessionID string, cmd *dto.PlayerCommandDTO) (*dto.PlayerSnapshotDTO, error)
	// GetPlayerSnapshot 读取会话当前播放状态
	GetPlayerSnapshot(ctx context.Context, sessionID string) (*dto.PlayerSnapshotDTO, error)
	// SubscribePlayer 订阅会话播放状态变更
	SubscribePlayer(sessionID string) (<-chan player.Snapshot, func())
}

type audioServiceImpl struct {
	trackRepo repository.AudioTrackRepo
	players   *player.Store
}

func NewAudioService(trackRepo repository.AudioTrackRepo, players *player.Store) AudioService {
	return &audioServiceImpl{
		trackRepo: trackRepo,
		players:   players,
	}
}

func (s *audioServiceImpl) CreateTrack(ctx context.Context, req *dto.SaveAudioTrackDTO) (*dto.AudioTrackDTO, error) {
	track := &model.AudioTrack{}
	_ = copier.Copy(track, req)

	if err := s.trackRepo.CreateTrack(ctx, track); err != nil {
		return nil, err
	}
	return toAudioTrackDTO(track), nil
}

func (s *audioServiceImpl) GetTrack(ctx context.Context, id uint64) (*dto.AudioTrackDTO, error) {
	track, err := s.trackRepo.GetTrack(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrackNotFound
		}
		return nil, err
	}
	return toAudioTrackDTO(track), nil
}

func (s *audioServiceImpl) GetTrackList(ctx context.Context, category string, publishedOnly bool, page, pageSize int) ([]*dto.AudioTrackDTO, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 50
	}

	list, err := s.trackRepo.GetTrackList(ctx, category, publishedOnly, page, pageSize)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.AudioTrackDTO, 0, len(list))
	for _, track := range list {
		result = append(result, toAudioTrackDTO(track))
	}
	return result, nil
}

func (s *audioServiceImpl) UpdateTrack(ctx context.Context, id uint64, req *dto.SaveAudioTrackDTO) (*dto.AudioTrackDTO, error) {
	track, err := s.trackRepo.GetTrack(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrackNotFound
		}
		return nil, err
	}

	track.Title = req.Title
	track.Artist = req.Artist
	track.Category = req.Category
	track.AudioURL = req.AudioURL
	track.CoverURL = req.CoverURL
	track.Duration = req.Duration
	track.IsPublished = req.IsPublished

	if err = s.trackRepo.UpdateTrack(ctx, track); err != nil {
		return nil, err
	}
	return toAudioTrackDTO(track), nil
}

func (s *audioServiceImpl) DeleteTrack(ctx context.Context, id uint64) error {
	if _, err := s.trackRepo.GetTrack(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTrackNotFound
		}
		return err
	}
	return s.trackRepo.DeleteTrack(ctx, id)
}

func (s *audioServiceImpl) ExecuteCommand(ctx context.Context, sessionID string, cmd *dto.PlayerCommandDTO) (*dto.PlayerSnapshotDTO, error) {
	if sessionID == "" || cmd == nil {
		return nil, ErrParamInvalid
	}

	session := s.players.Session(sessionID)

	switch cmd.Command {
	case PlayerCmdLoad:
		track, err := s.trackRepo.GetTrack(ctx, cmd.TrackID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrTrackNotFound
			}
			return nil, err
		}
		if !track.IsPublished {
			return nil, ErrTrackNotFound
		}
		session.SetCurrentTrack(track.ID)
	case PlayerCmdPlay:
		if err := session.Play(); err != nil {
			return nil, err
		}
	case PlayerCmdPause:
		session.Pause()
	case PlayerCmdStop:
		session.Stop()
	case PlayerCmdSeek:
		session.Seek(cmd.Position)
	case PlayerCmdMediaEvent:
		session.OnMediaEvent(player.MediaEvent(cmd.Event))
	default:
		return nil, ErrParamInvalid
	}

	snap := session.Snapshot()
	s.saveSnapshot(ctx, sessionID, snap)
	return toPlayerSnapshotDTO(snap), nil
}

func (s *audioServiceImpl) GetPlayerSnapshot(ctx context.Context, sessionID string) (*dto.PlayerSnapshotDTO, error) {
	if sessionID == "" {
		return nil, ErrParamInvalid
	}
	return toPlayerSnapshotDTO(s.players.Session(sessionID).Snapshot()), nil
}

func (s *audioServiceImpl) SubscribePlayer(sessionID string) (<-chan player.Snapshot, func()) {
	return s.players.Session(sessionID).Subscribe()
}

// saveSnapshot 快照写入 Redis，仅用于观测与排障，失败不影响指令结果
func (s *audioServiceImpl) saveSnapshot(ctx context.Context, sessionID string, snap player.Snapshot) {
	payload, err := json.Marshal(snap)
	if err != nil {
		return
	}
	if err = redis.SetWithExpiration(ctx, consts.PlayerSnapshotKey+sessionID, payload, playerSnapshotTTL); err != nil {
		log.WarnContext(ctx, "播放器快照保存失败", "sessionID", sessionID, "err", err)
	}
}

func toPlayerSnapshotDTO(snap player.Snapshot) *dto.PlayerSnapshotDTO {
	return &dto.PlayerSnapshotDTO{
		TrackID:   snap.TrackID,
		State:     string(snap.State),
		Position:  snap.Position,
		IsLoading: snap.IsLoading,
	}
}

func toAudioTrackDTO(track *model.AudioTrack) *dto.AudioTrackDTO {
	result := &dto.AudioTrackDTO{}
	_ = copier.Copy(result, track)
	return result
}
